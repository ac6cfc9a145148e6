//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type BookingItemSpec struct {
	InventoryID uuid.UUID
	Name        string
	UnitPrice   money.Cents
	Quantity    int32
}

type BookingBuilder struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	CustomerID    *uuid.UUID
	CouponID      *uuid.UUID
	Status        booking.Status
	Start         time.Time
	Duration      time.Duration
	BufferBefore  time.Duration
	BufferAfter   time.Duration
	TimeZone      string
	ExpiresAt     *time.Time
	Items         []BookingItemSpec
	Subtotal      money.Cents
	Discount      money.Cents
	Tax           money.Cents
	TaxRate       float64
	Address       address.Address
	Participants  *int32
	PaymentIntent *string
}

func NewBookingBuilder() *BookingBuilder {
	expires := RefTime.Add(30 * time.Minute)
	participants := int32(20)
	return &BookingBuilder{
		ID:           uuid.New(),
		BusinessID:   uuid.New(),
		Status:       booking.StatusHold,
		Start:        RefTime.Add(48 * time.Hour),
		Duration:     4 * time.Hour,
		BufferBefore: time.Hour,
		BufferAfter:  time.Hour,
		TimeZone:     "America/Chicago",
		ExpiresAt:    &expires,
		Items: []BookingItemSpec{
			{InventoryID: uuid.New(), Name: "Castle Bounce House", UnitPrice: 10000, Quantity: 1},
		},
		Address: address.Address{
			Line1:      "100 Main St",
			City:       "Austin",
			State:      "TX",
			PostalCode: "78701",
			Country:    "US",
		},
		Participants: &participants,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithExpiresAt(t *time.Time) *BookingBuilder {
	b.ExpiresAt = t
	return b
}

func (b *BookingBuilder) WithStart(t time.Time) *BookingBuilder {
	b.Start = t
	return b
}

func (b *BookingBuilder) WithBusinessID(id uuid.UUID) *BookingBuilder {
	b.BusinessID = id
	return b
}

func (b *BookingBuilder) WithItems(items ...BookingItemSpec) *BookingBuilder {
	b.Items = items
	return b
}

// WithTotals sets the post-discount subtotal and tax; total is derived.
func (b *BookingBuilder) WithTotals(subtotal, tax money.Cents, rate float64) *BookingBuilder {
	b.Subtotal = subtotal
	b.Tax = tax
	b.TaxRate = rate
	return b
}

func (b *BookingBuilder) WithCustomer(id uuid.UUID) *BookingBuilder {
	b.CustomerID = &id
	return b
}

func (b *BookingBuilder) Window(t testing.TB) booking.TimeWindow {
	t.Helper()
	w, err := booking.NewTimeWindow(b.Start, b.Start.Add(b.Duration))
	require.NoError(t, err)
	return w
}

func (b *BookingBuilder) Event() booking.EventDetails {
	return booking.EventDetails{
		Address:          b.Address,
		ParticipantCount: b.Participants,
	}
}

func (b *BookingBuilder) EventDate() time.Time {
	y, m, d := b.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (b *BookingBuilder) HoldSpec(t testing.TB) booking.HoldSpec {
	t.Helper()
	items := make([]booking.HoldItemSpec, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, booking.HoldItemSpec{
			InventoryID: it.InventoryID,
			Name:        it.Name,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		})
	}
	return booking.HoldSpec{
		EventDate: b.EventDate(),
		Window:    b.Window(t),
		TimeZone:  b.TimeZone,
		Items:     items,
		Event:     b.Event(),
	}
}

func (b *BookingBuilder) BuildDomain(t testing.TB) *booking.Booking {
	t.Helper()
	window := b.Window(t)
	buffered := window.Buffered(b.BufferBefore, b.BufferAfter)

	items := make([]booking.Item, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, booking.ReconstructItem(
			uuid.New(), it.InventoryID, it.Name, it.Quantity, it.UnitPrice, window, buffered, b.Status,
		))
	}

	totals, err := booking.NewTotals(b.Subtotal, b.Discount, b.Tax, b.TaxRate)
	require.NoError(t, err)

	bk, err := booking.ReconstructBooking(booking.ReconstructParams{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		CustomerID:      b.CustomerID,
		CouponID:        b.CouponID,
		Status:          b.Status,
		EventDate:       b.EventDate(),
		Window:          window,
		EventTimeZone:   b.TimeZone,
		Totals:          totals,
		ExpiresAt:       b.ExpiresAt,
		Event:           b.Event(),
		Items:           items,
		PaymentIntentID: b.PaymentIntent,
		CreatedAt:       RefTime,
		UpdatedAt:       RefTime,
	})
	require.NoError(t, err)
	return bk
}
