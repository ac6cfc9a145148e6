// Package localtime converts storefront wall-clock input into UTC instants.
package localtime

import (
	"strings"
	"time"

	"bounce-booking/internal/pkg/errs"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// LoadZone resolves an IANA zone name. Empty names are rejected so a
// missing business zone never silently becomes UTC.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.E(errs.KindInvalidRequest, "time zone is required")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.Ef(errs.KindInvalidRequest, "unknown time zone %q", name).WithCause(err)
	}
	return loc, nil
}

// ResolveZone prefers the requested zone and falls back to the business default.
func ResolveZone(requested, fallback string) string {
	if z := strings.TrimSpace(requested); z != "" {
		return z
	}
	return fallback
}

// ToUTC interprets date (Y-M-D) and wall clock (HH:mm) in zone and returns the UTC instant.
// Nonexistent local times inside a DST gap are normalized the way time.Date does.
func ToUTC(date, wallClock, zone string) (time.Time, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, errs.Ef(errs.KindInvalidRequest, "invalid event date %q", date).WithCause(err)
	}
	c, err := time.Parse(ClockLayout, strings.TrimSpace(wallClock))
	if err != nil {
		return time.Time{}, errs.Ef(errs.KindInvalidRequest, "invalid time %q", wallClock).WithCause(err)
	}
	local := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc)
	return local.UTC(), nil
}

// DateOnlyUTC normalizes a calendar date to UTC midnight for grouping and lookup.
func DateOnlyUTC(date string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, errs.Ef(errs.KindInvalidRequest, "invalid event date %q", date).WithCause(err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Window converts a local date plus start/end wall clocks into a UTC interval.
func Window(date, startClock, endClock, zone string) (start, end time.Time, err error) {
	start, err = ToUTC(date, startClock, zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ToUTC(date, endClock, zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, errs.E(errs.KindInvalidRequest, "end time must be after start time").
			WithDetail("startTime", startClock).
			WithDetail("endTime", endClock)
	}
	return start, end, nil
}

// FormatLocal renders t in zone; unknown zones fall back to UTC.
func FormatLocal(t time.Time, zone, layout string) string {
	loc, err := time.LoadLocation(zone)
	if err != nil || zone == "" {
		loc = time.UTC
	}
	return t.In(loc).Format(layout)
}
