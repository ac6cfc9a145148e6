package booking

import (
	"errors"
	"math"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/pkg/money"
)

var (
	ErrInvalidTimeWindow  = errors.New("end time must be after start time")
	ErrTotalsInconsistent = errors.New("total must equal subtotal plus tax")
	ErrNegativeAmount     = errors.New("amounts cannot be negative")
	ErrInvalidParticipant = errors.New("participant count cannot be negative")
)

type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start.UTC(), end: end.UTC()}, nil
}

func (w TimeWindow) Start() time.Time { return w.start }
func (w TimeWindow) End() time.Time   { return w.end }

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Buffered widens the window by the setup and teardown margins.
func (w TimeWindow) Buffered(before, after time.Duration) TimeWindow {
	return TimeWindow{start: w.start.Add(-before), end: w.end.Add(after)}
}

// Intersects is a closed-interval test: touching endpoints count as overlap.
func (w TimeWindow) Intersects(other TimeWindow) bool {
	return !w.start.After(other.end) && !w.end.Before(other.start)
}

func (w TimeWindow) Equal(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

func (w TimeWindow) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

type EventDetails struct {
	Address             address.Address
	ParticipantCount    *int32
	SpecialInstructions string
}

func (e EventDetails) Validate() error {
	if e.ParticipantCount != nil && *e.ParticipantCount < 0 {
		return ErrInvalidParticipant
	}
	return nil
}

// Totals holds the authoritative amounts. Subtotal is after discount, and
// Total is always Subtotal + Tax.
type Totals struct {
	subtotal money.Cents
	discount money.Cents
	tax      money.Cents
	taxRate  float64
	total    money.Cents
}

func NewTotals(subtotal, discount, tax money.Cents, taxRate float64) (Totals, error) {
	if subtotal < 0 || discount < 0 || tax < 0 || taxRate < 0 || math.IsNaN(taxRate) {
		return Totals{}, ErrNegativeAmount
	}
	return Totals{
		subtotal: subtotal,
		discount: discount,
		tax:      tax,
		taxRate:  taxRate,
		total:    subtotal + tax,
	}, nil
}

func ReconstructTotals(subtotal, discount, tax money.Cents, taxRate float64, total money.Cents) (Totals, error) {
	if total != subtotal+tax {
		return Totals{}, ErrTotalsInconsistent
	}
	return Totals{subtotal: subtotal, discount: discount, tax: tax, taxRate: taxRate, total: total}, nil
}

func (t Totals) Subtotal() money.Cents { return t.subtotal }
func (t Totals) Discount() money.Cents { return t.discount }
func (t Totals) Tax() money.Cents      { return t.tax }
func (t Totals) TaxRate() float64      { return t.taxRate }
func (t Totals) Total() money.Cents    { return t.total }
func (t Totals) IsZero() bool          { return t == Totals{} }
