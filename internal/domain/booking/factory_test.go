//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/business"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type holdCase struct {
	name    string
	biz     func(*builder.BusinessBuilder)
	booking func(*builder.BookingBuilder)
	errIs   error
}

func runHoldCases(t *testing.T, cases []holdCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bb := builder.NewBusinessBuilder()
			if tc.biz != nil {
				bb.With(tc.biz)
			}
			kb := builder.NewBookingBuilder()
			if tc.booking != nil {
				kb.With(tc.booking)
			}

			f := booking.NewFactory(clock.NewMockClock(builder.RefTime), 30*time.Minute)
			hold, err := f.CreateHold(bb.BuildDomain(t), kb.HoldSpec(t))

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, hold)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, hold)
		})
	}
}

func TestFactory_CreateHold(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		bb := builder.NewBusinessBuilder()
		kb := builder.NewBookingBuilder()
		f := booking.NewFactory(clock.NewMockClock(builder.RefTime), 30*time.Minute)

		hold, err := f.CreateHold(bb.BuildDomain(t), kb.HoldSpec(t))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, hold.ID())
		assert.Equal(t, bb.ID, hold.BusinessID())
		assert.Equal(t, booking.StatusHold, hold.Status())
		assert.True(t, hold.Totals().IsZero())
		require.NotNil(t, hold.ExpiresAt())
		assert.Equal(t, builder.RefTime.Add(30*time.Minute), *hold.ExpiresAt())
		require.Len(t, hold.Items(), 1)

		item := hold.Items()[0]
		assert.Equal(t, booking.StatusHold, item.Status())
		assert.True(t, item.Window().Equal(hold.Window()))
		assert.Equal(t, hold.Window().Start().Add(-time.Hour), item.BufferedWindow().Start())
		assert.Equal(t, hold.Window().End().Add(time.Hour), item.BufferedWindow().End())
	})

	t.Run("notice window", func(t *testing.T) {
		runHoldCases(t, []holdCase{
			{
				name:    "one hour out with 24h minimum",
				booking: func(b *builder.BookingBuilder) { b.WithStart(builder.RefTime.Add(time.Hour)) },
				errIs:   business.ErrNoticeTooShort,
			},
			{
				name:    "exactly at minimum notice",
				booking: func(b *builder.BookingBuilder) { b.WithStart(builder.RefTime.Add(24 * time.Hour)) },
			},
			{
				name:    "one second short of minimum notice",
				booking: func(b *builder.BookingBuilder) { b.WithStart(builder.RefTime.Add(24*time.Hour - time.Second)) },
				errIs:   business.ErrNoticeTooShort,
			},
			{
				name:    "twenty five hours out",
				booking: func(b *builder.BookingBuilder) { b.WithStart(builder.RefTime.Add(25 * time.Hour)) },
			},
			{
				name:    "exactly at maximum notice",
				biz:     func(b *builder.BusinessBuilder) { b.WithNotice(24, 72) },
				booking: func(b *builder.BookingBuilder) { b.WithStart(builder.RefTime.Add(72 * time.Hour)) },
			},
			{
				name:    "beyond maximum notice",
				biz:     func(b *builder.BusinessBuilder) { b.WithNotice(24, 72) },
				booking: func(b *builder.BookingBuilder) { b.WithStart(builder.RefTime.Add(73 * time.Hour)) },
				errIs:   business.ErrNoticeTooLong,
			},
			{
				name:    "zero maximum means unbounded",
				biz:     func(b *builder.BusinessBuilder) { b.WithNotice(24, 0) },
				booking: func(b *builder.BookingBuilder) { b.WithStart(builder.RefTime.Add(5 * 365 * 24 * time.Hour)) },
			},
		})
	})

	t.Run("minimum amount", func(t *testing.T) {
		runHoldCases(t, []holdCase{
			{
				name: "exactly the minimum",
				biz:  func(b *builder.BusinessBuilder) { b.WithMinimum(10000) },
			},
			{
				name:  "one cent below the minimum",
				biz:   func(b *builder.BusinessBuilder) { b.WithMinimum(10001) },
				errIs: business.ErrBelowMinimum,
			},
			{
				name: "quantity counts toward the minimum",
				biz:  func(b *builder.BusinessBuilder) { b.WithMinimum(15000) },
				booking: func(b *builder.BookingBuilder) {
					b.WithItems(builder.BookingItemSpec{InventoryID: uuid.New(), UnitPrice: 7500, Quantity: 2})
				},
			},
		})
	})

	t.Run("item validation", func(t *testing.T) {
		runHoldCases(t, []holdCase{
			{
				name:    "no items",
				booking: func(b *builder.BookingBuilder) { b.WithItems() },
				errIs:   booking.ErrNoItems,
			},
			{
				name: "zero quantity",
				booking: func(b *builder.BookingBuilder) {
					b.WithItems(builder.BookingItemSpec{InventoryID: uuid.New(), UnitPrice: 10000, Quantity: 0})
				},
				errIs: booking.ErrInvalidQuantity,
			},
			{
				name: "negative price",
				booking: func(b *builder.BookingBuilder) {
					b.WithItems(builder.BookingItemSpec{InventoryID: uuid.New(), UnitPrice: -1, Quantity: 1})
				},
				errIs: booking.ErrNegativePrice,
			},
		})
	})

	t.Run("violations are invalid requests with detail", func(t *testing.T) {
		bb := builder.NewBusinessBuilder().WithMinimum(20000)
		f := booking.NewFactory(clock.NewMockClock(builder.RefTime), 0)

		_, err := f.CreateHold(bb.BuildDomain(t), builder.NewBookingBuilder().HoldSpec(t))
		require.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
		assert.Equal(t, "200.00", errs.DetailOf(err)["minimumAmount"])
		assert.Equal(t, "100.00", errs.DetailOf(err)["totalAmount"])
	})
}
