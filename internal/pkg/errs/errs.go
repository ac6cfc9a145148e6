package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New records a stack at the call site.
func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return cr.WithStack(err)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err so errors.Is matches sentinel while the message and stack of
// err are kept. A nil err yields the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// Trace renders the verbose form of err, cut to at most limit lines, for
// structured log attributes.
func Trace(err error, limit int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	return lines
}
