package queries

import (
	"context"
	"log/slog"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/localtime"

	"github.com/google/uuid"
)

// MaxAvailabilityDays bounds a single availability lookup.
const MaxAvailabilityDays = 93

type BookingReadStore interface {
	BusinessByID(ctx context.Context, id uuid.UUID) (*BusinessView, error)
	ListForDashboard(ctx context.Context, businessID uuid.UUID, filters DashboardFilters, after *DashboardKey, limit int32) ([]*BookingListItem, error)
	ReservedSlots(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]ReservedSlot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingDetail, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	PaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]PaymentView, error)
	LatestInvoice(ctx context.Context, bookingID uuid.UUID) (*InvoiceView, error)
}

// AvailabilityCache stores availability views per business and date range.
// Set must be given the generation returned by the Get that missed, so a view
// computed before an invalidation is never filed under the newer generation.
type AvailabilityCache interface {
	Get(ctx context.Context, businessID uuid.UUID, rangeKey string) (CacheEntry, error)
	Set(ctx context.Context, businessID uuid.UUID, rangeKey string, generation int64, view *AvailabilityView) error
}

// CacheEntry is the result of a cache lookup. View is nil on a miss.
type CacheEntry struct {
	View       *AvailabilityView
	Generation int64
}

func (e CacheEntry) Hit() bool { return e.View != nil }

type DashboardKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type BookingQueries interface {
	ListForDashboard(ctx context.Context, businessID uuid.UUID, filters DashboardFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	Availability(ctx context.Context, businessID uuid.UUID, fromDate, toDate string) (*AvailabilityView, error)
	PublicDetail(ctx context.Context, bookingID uuid.UUID) (*PublicBookingView, error)
	EditDetail(ctx context.Context, businessID, bookingID uuid.UUID) (*BookingEditView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	cache AvailabilityCache
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, cache AvailabilityCache, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, cache: cache, clock: clk}
}

func (q *bookingQueriesImpl) ListForDashboard(
	ctx context.Context,
	businessID uuid.UUID,
	filters DashboardFilters,
	cursor *Cursor,
	limit int,
) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	for _, s := range filters.Statuses {
		if !booking.Status(s).IsValid() {
			return nil, nil, errs.E(errs.KindInvalidRequest, "unknown booking status").WithDetail("status", s)
		}
	}
	if filters.From != nil && filters.To != nil && !filters.To.After(*filters.From) {
		return nil, nil, errs.E(errs.KindInvalidRequest, "to must be after from")
	}

	var after *DashboardKey
	if cursor != nil && cursor.After != "" {
		createdAt, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		after = &DashboardKey{CreatedAt: createdAt, ID: id}
	}

	rows, err := q.store.ListForDashboard(ctx, businessID, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, readErr(err, "failed to list bookings")
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *bookingQueriesImpl) Availability(ctx context.Context, businessID uuid.UUID, fromDate, toDate string) (*AvailabilityView, error) {
	biz, err := q.store.BusinessByID(ctx, businessID)
	if err != nil {
		return nil, readErr(err, "business not found")
	}

	from, err := localtime.ToUTC(fromDate, "00:00", biz.TimeZone)
	if err != nil {
		return nil, err
	}
	lastDay, err := localtime.ToUTC(toDate, "00:00", biz.TimeZone)
	if err != nil {
		return nil, err
	}
	if lastDay.Before(from) {
		return nil, errs.E(errs.KindInvalidRequest, "to must not be before from")
	}
	to := localDayAfter(lastDay, biz.TimeZone)
	if to.Sub(from) > MaxAvailabilityDays*24*time.Hour {
		return nil, errs.Ef(errs.KindInvalidRequest, "availability range may span at most %d days", MaxAvailabilityDays)
	}

	rangeKey := fromDate + ":" + toDate
	entry, cerr := q.cache.Get(ctx, businessID, rangeKey)
	if cerr != nil {
		slog.Warn("availability cache read failed", "business_id", businessID, "error", cerr.Error())
	}
	view := entry.View
	if !entry.Hit() {
		slots, serr := q.store.ReservedSlots(ctx, businessID, from, to)
		if serr != nil {
			return nil, readErr(serr, "failed to load availability")
		}
		view = &AvailabilityView{
			BusinessID: businessID,
			TimeZone:   biz.TimeZone,
			From:       from,
			To:         to,
			Reserved:   slots,
		}
		// Without a generation from the lookup the view cannot be filed safely.
		if cerr == nil {
			if err := q.cache.Set(ctx, businessID, rangeKey, entry.Generation, view); err != nil {
				slog.Warn("availability cache write failed", "business_id", businessID, "error", err.Error())
			}
		}
	}

	// Holds lapse between sweeps, so liveness is re-evaluated on every read.
	now := q.clock.Now()
	live := make([]ReservedSlot, 0, len(view.Reserved))
	for _, s := range view.Reserved {
		if booking.IsLive(booking.Status(s.Status), s.ExpiresAt, now) {
			live = append(live, s)
		}
	}
	out := *view
	out.Reserved = live
	return &out, nil
}

func (q *bookingQueriesImpl) PublicDetail(ctx context.Context, bookingID uuid.UUID) (*PublicBookingView, error) {
	d, err := q.store.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, readErr(err, "booking not found")
	}

	status := effectiveStatus(d, q.clock.Now())
	return &PublicBookingView{
		ID:            d.ID,
		Status:        status,
		EventDate:     d.EventDate.UTC().Format(localtime.DateLayout),
		StartTime:     localtime.FormatLocal(d.StartTime, d.EventTimeZone, localtime.ClockLayout),
		EndTime:       localtime.FormatLocal(d.EndTime, d.EventTimeZone, localtime.ClockLayout),
		EventTimeZone: d.EventTimeZone,
		Items:         d.Items,
		Totals:        d.Totals,
		ExpiresAt:     d.ExpiresAt,
	}, nil
}

func (q *bookingQueriesImpl) EditDetail(ctx context.Context, businessID, bookingID uuid.UUID) (*BookingEditView, error) {
	d, err := q.store.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, readErr(err, "booking not found")
	}
	if d.BusinessID != businessID {
		return nil, errs.E(errs.KindNotFound, "booking not found")
	}
	d.Status = effectiveStatus(d, q.clock.Now())

	view := &BookingEditView{Booking: *d}
	if d.CustomerID != nil {
		if view.Customer, err = q.store.CustomerByID(ctx, *d.CustomerID); err != nil {
			return nil, readErr(err, "customer not found")
		}
	}
	if d.CouponID != nil {
		if view.Coupon, err = q.store.CouponByID(ctx, *d.CouponID); err != nil {
			return nil, readErr(err, "coupon not found")
		}
	}
	if view.Payments, err = q.store.PaymentsByBooking(ctx, d.ID); err != nil {
		return nil, readErr(err, "failed to load payments")
	}
	inv, err := q.store.LatestInvoice(ctx, d.ID)
	switch {
	case err == nil:
		view.Invoice = inv
	case infra.IsKind(err, infra.KindNotFound):
	default:
		return nil, readErr(err, "failed to load invoice")
	}
	return view, nil
}

// effectiveStatus reports lapsed holds as EXPIRED before the sweep writes it.
func effectiveStatus(d *BookingDetail, now time.Time) string {
	if booking.IsExpired(booking.Status(d.Status), d.ExpiresAt, now) {
		return string(booking.StatusExpired)
	}
	return d.Status
}

func localDayAfter(midnight time.Time, zone string) time.Time {
	loc, err := localtime.LoadZone(zone)
	if err != nil {
		return midnight.Add(24 * time.Hour)
	}
	l := midnight.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day()+1, 0, 0, 0, 0, loc).UTC()
}

func readErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.E(errs.KindNotFound, msg).WithCause(err)
	}
	return errs.E(errs.KindPersistence, msg).WithCause(err)
}
