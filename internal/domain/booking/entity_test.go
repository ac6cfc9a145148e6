//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentTerms(t *testing.T) booking.PaymentTerms {
	t.Helper()
	totals, err := booking.NewTotals(10000, 0, 800, 0.08)
	require.NoError(t, err)
	return booking.PaymentTerms{
		CustomerID: uuid.New(),
		Event:      builder.NewBookingBuilder().Event(),
		Totals:     totals,
		TaxMethod:  "fallback_rate",
	}
}

func TestBooking_PrepareForPayment(t *testing.T) {
	now := builder.RefTime.Add(10 * time.Minute)

	t.Run("promotes hold to pending", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain(t)

		wasHold, err := b.PrepareForPayment(paymentTerms(t), now, 15*time.Minute)
		require.NoError(t, err)

		assert.True(t, wasHold)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, now.Add(15*time.Minute), *b.ExpiresAt())
		assert.Equal(t, money.Cents(10800), b.Totals().Total())
		for _, item := range b.Items() {
			assert.Equal(t, booking.StatusPending, item.Status())
		}
	})

	t.Run("pending stays pending with refreshed expiry", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain(t)

		wasHold, err := b.PrepareForPayment(paymentTerms(t), now, 15*time.Minute)
		require.NoError(t, err)
		assert.False(t, wasHold)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("expired hold", func(t *testing.T) {
		past := builder.RefTime.Add(-time.Minute)
		b := builder.NewBookingBuilder().WithExpiresAt(&past).BuildDomain(t)

		_, err := b.PrepareForPayment(paymentTerms(t), now, 15*time.Minute)
		require.ErrorIs(t, err, booking.ErrHoldExpired)
		require.ErrorIs(t, err, errs.ErrExpired)
		assert.Equal(t, booking.StatusHold, b.Status())
	})

	t.Run("missing expiry counts as expired", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithExpiresAt(nil).BuildDomain(t)

		_, err := b.PrepareForPayment(paymentTerms(t), now, 15*time.Minute)
		require.ErrorIs(t, err, errs.ErrExpired)
	})

	t.Run("confirmed booking is not payable", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain(t)

		_, err := b.PrepareForPayment(paymentTerms(t), now, 15*time.Minute)
		require.ErrorIs(t, err, booking.ErrNotPayable)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestBooking_Expire(t *testing.T) {
	b := builder.NewBookingBuilder().BuildDomain(t)
	require.NoError(t, b.Expire(builder.RefTime))
	assert.Equal(t, booking.StatusExpired, b.Status())
	for _, item := range b.Items() {
		assert.Equal(t, booking.StatusExpired, item.Status())
	}

	confirmed := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain(t)
	require.ErrorIs(t, confirmed.Expire(builder.RefTime), booking.ErrNotExpirable)
}

func TestBooking_Cancel(t *testing.T) {
	tests := []struct {
		status booking.Status
		errIs  error
	}{
		{status: booking.StatusHold},
		{status: booking.StatusPending},
		{status: booking.StatusConfirmed},
		{status: booking.StatusCancelled, errIs: booking.ErrAlreadyCancelled},
		{status: booking.StatusCompleted, errIs: booking.ErrNotCancellable},
		{status: booking.StatusExpired, errIs: booking.ErrNotCancellable},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tt.status).BuildDomain(t)

			err := b.Cancel("customer request", builder.RefTime)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				require.ErrorIs(t, err, errs.ErrInvalidRequest)
				assert.Equal(t, tt.status, b.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCancelled, b.Status())
			assert.Empty(t, b.Items())
			assert.Equal(t, "customer request", b.CancellationReason())
		})
	}
}

func TestIsLive(t *testing.T) {
	now := builder.RefTime
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name      string
		status    booking.Status
		expiresAt *time.Time
		live      bool
	}{
		{name: "hold before expiry", status: booking.StatusHold, expiresAt: &future, live: true},
		{name: "hold past expiry", status: booking.StatusHold, expiresAt: &past, live: false},
		{name: "hold at expiry instant", status: booking.StatusHold, expiresAt: &now, live: false},
		{name: "hold without expiry", status: booking.StatusHold, expiresAt: nil, live: false},
		{name: "pending past expiry", status: booking.StatusPending, expiresAt: &past, live: false},
		{name: "confirmed ignores expiry", status: booking.StatusConfirmed, expiresAt: &past, live: true},
		{name: "cancelled", status: booking.StatusCancelled, expiresAt: &future, live: false},
		{name: "expired", status: booking.StatusExpired, expiresAt: &future, live: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.live, booking.IsLive(tt.status, tt.expiresAt, now))
		})
	}
}

func TestTimeWindow(t *testing.T) {
	start := builder.RefTime
	w, err := booking.NewTimeWindow(start, start.Add(4*time.Hour))
	require.NoError(t, err)

	_, err = booking.NewTimeWindow(start, start)
	require.ErrorIs(t, err, booking.ErrInvalidTimeWindow)

	later, err := booking.NewTimeWindow(start.Add(5*time.Hour), start.Add(8*time.Hour))
	require.NoError(t, err)
	assert.False(t, w.Intersects(later))
	assert.True(t, w.Buffered(0, time.Hour).Intersects(later), "touching endpoints overlap")
	assert.True(t, w.Buffered(0, 2*time.Hour).Intersects(later))
}

func TestTotals(t *testing.T) {
	totals, err := booking.NewTotals(10000, 0, 800, 0.08)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(10800), totals.Total())

	_, err = booking.ReconstructTotals(10000, 0, 800, 0.08, 10801)
	require.ErrorIs(t, err, booking.ErrTotalsInconsistent)

	_, err = booking.NewTotals(-1, 0, 0, 0)
	require.ErrorIs(t, err, booking.ErrNegativeAmount)
}
