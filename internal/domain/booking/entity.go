package booking

import (
	"errors"
	"time"

	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrNoItems          = errors.New("at least one item is required")
	ErrNotPayable       = errors.New("booking cannot be processed for payment")
	ErrHoldExpired      = errors.New("booking hold has expired")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotCancellable   = errors.New("booking cannot be cancelled in its current status")
	ErrNotExpirable     = errors.New("only HOLD or PENDING bookings can expire")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type Booking struct {
	id                 uuid.UUID
	businessID         uuid.UUID
	customerID         *uuid.UUID
	couponID           *uuid.UUID
	status             Status
	eventDate          time.Time
	window             TimeWindow
	eventTimeZone      string
	totals             Totals
	depositPaid        bool
	expiresAt          *time.Time
	event              EventDetails
	items              []Item
	taxCalculationID   *string
	taxMethod          string
	paymentIntentID    *string
	cancellationReason string
	createdAt          time.Time
	updatedAt          time.Time
}

type ReconstructParams struct {
	ID                 uuid.UUID
	BusinessID         uuid.UUID
	CustomerID         *uuid.UUID
	CouponID           *uuid.UUID
	Status             Status
	EventDate          time.Time
	Window             TimeWindow
	EventTimeZone      string
	Totals             Totals
	DepositPaid        bool
	ExpiresAt          *time.Time
	Event              EventDetails
	Items              []Item
	TaxCalculationID   *string
	TaxMethod          string
	PaymentIntentID    *string
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ReconstructBooking(p ReconstructParams) (*Booking, error) {
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:                 p.ID,
		businessID:         p.BusinessID,
		customerID:         p.CustomerID,
		couponID:           p.CouponID,
		status:             p.Status,
		eventDate:          p.EventDate,
		window:             p.Window,
		eventTimeZone:      p.EventTimeZone,
		totals:             p.Totals,
		depositPaid:        p.DepositPaid,
		expiresAt:          p.ExpiresAt,
		event:              p.Event,
		items:              p.Items,
		taxCalculationID:   p.TaxCalculationID,
		taxMethod:          p.TaxMethod,
		paymentIntentID:    p.PaymentIntentID,
		cancellationReason: p.CancellationReason,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}, nil
}

func (b *Booking) IsExpiredAt(now time.Time) bool {
	return IsExpired(b.status, b.expiresAt, now)
}

func (b *Booking) IsLiveAt(now time.Time) bool {
	return IsLive(b.status, b.expiresAt, now)
}

// EnsurePayable fails with Conflict for non-payable statuses and Expired for
// a stale HOLD or PENDING booking. The caller is expected to persist Expire.
func (b *Booking) EnsurePayable(now time.Time) error {
	if !b.status.Payable() {
		return errs.Ef(errs.KindConflict, "booking with status %s cannot be processed for payment", b.status).
			WithCause(ErrNotPayable).
			WithDetail("status", b.status.String())
	}
	if b.IsExpiredAt(now) {
		return errs.E(errs.KindExpired, "booking hold has expired, please start a new booking").
			WithCause(ErrHoldExpired).
			WithDetail("expired", true)
	}
	return nil
}

// Expire moves a stale HOLD or PENDING booking to EXPIRED; its items follow.
func (b *Booking) Expire(now time.Time) error {
	if !b.status.Expires() {
		return ErrNotExpirable
	}
	b.setStatus(StatusExpired)
	b.updatedAt = now
	return nil
}

type PaymentTerms struct {
	CustomerID       uuid.UUID
	CouponID         *uuid.UUID
	Event            EventDetails
	Totals           Totals
	TaxCalculationID *string
	TaxMethod        string
}

// PrepareForPayment stores authoritative totals, promotes a HOLD to PENDING
// and restarts the payment window. It reports whether the booking was a HOLD.
func (b *Booking) PrepareForPayment(terms PaymentTerms, now time.Time, ttl time.Duration) (bool, error) {
	if err := b.EnsurePayable(now); err != nil {
		return false, err
	}
	if err := terms.Event.Validate(); err != nil {
		return false, errs.E(errs.KindInvalidRequest, err.Error()).WithCause(err)
	}

	wasHold := b.status == StatusHold
	customerID := terms.CustomerID
	b.customerID = &customerID
	b.couponID = terms.CouponID
	b.event = terms.Event
	b.totals = terms.Totals
	b.taxCalculationID = terms.TaxCalculationID
	b.taxMethod = terms.TaxMethod
	b.setStatus(StatusPending)
	expires := now.Add(ttl)
	b.expiresAt = &expires
	b.updatedAt = now
	return wasHold, nil
}

func (b *Booking) AttachPaymentIntent(id string, now time.Time) {
	b.paymentIntentID = &id
	b.updatedAt = now
}

// EnsureCancellable reports whether Cancel would succeed without changing
// the booking.
func (b *Booking) EnsureCancellable() error {
	if b.status == StatusCancelled {
		return errs.E(errs.KindInvalidRequest, "booking is already cancelled").WithCause(ErrAlreadyCancelled)
	}
	if !b.status.Cancellable() {
		return errs.Ef(errs.KindInvalidRequest, "booking with status %s cannot be cancelled", b.status).
			WithCause(ErrNotCancellable).
			WithDetail("status", b.status.String())
	}
	return nil
}

// Cancel releases the booking's items. CANCELLED is terminal.
func (b *Booking) Cancel(reason string, now time.Time) error {
	if err := b.EnsureCancellable(); err != nil {
		return err
	}
	b.status = StatusCancelled
	b.items = nil
	b.cancellationReason = reason
	b.updatedAt = now
	return nil
}

func (b *Booking) setStatus(s Status) {
	b.status = s
	for i := range b.items {
		b.items[i].status = s
	}
}

func (b *Booking) ItemsTotal() money.Cents {
	var total money.Cents
	for _, item := range b.items {
		total += item.LineTotal()
	}
	return total
}

func (b *Booking) PricingInputs() []pricing.ItemInput {
	out := make([]pricing.ItemInput, 0, len(b.items))
	for _, item := range b.items {
		out = append(out, pricing.ItemInput{
			InventoryID: item.inventoryID,
			Name:        item.name,
			Quantity:    item.quantity,
			UnitPrice:   item.price,
		})
	}
	return out
}

func (b *Booking) InventoryIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(b.items))
	for _, item := range b.items {
		out = append(out, item.inventoryID)
	}
	return out
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) BusinessID() uuid.UUID      { return b.businessID }
func (b *Booking) CustomerID() *uuid.UUID     { return b.customerID }
func (b *Booking) CouponID() *uuid.UUID       { return b.couponID }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) EventDate() time.Time       { return b.eventDate }
func (b *Booking) Window() TimeWindow         { return b.window }
func (b *Booking) EventTimeZone() string      { return b.eventTimeZone }
func (b *Booking) Totals() Totals             { return b.totals }
func (b *Booking) DepositPaid() bool          { return b.depositPaid }
func (b *Booking) ExpiresAt() *time.Time      { return b.expiresAt }
func (b *Booking) Event() EventDetails        { return b.event }
func (b *Booking) Items() []Item              { return b.items }
func (b *Booking) TaxCalculationID() *string  { return b.taxCalculationID }
func (b *Booking) TaxMethod() string          { return b.taxMethod }
func (b *Booking) PaymentIntentID() *string   { return b.paymentIntentID }
func (b *Booking) CancellationReason() string { return b.cancellationReason }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
