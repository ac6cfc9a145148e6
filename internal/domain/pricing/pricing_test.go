//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, amounts ...money.Cents) []pricing.LineItem {
	t.Helper()
	items := make([]pricing.ItemInput, 0, len(amounts))
	for _, a := range amounts {
		items = append(items, pricing.ItemInput{InventoryID: uuid.New(), Name: "Castle", Quantity: 1, UnitPrice: a})
	}
	out, err := pricing.MapItems(items)
	require.NoError(t, err)
	return out
}

func amounts(ls []pricing.LineItem) []money.Cents {
	out := make([]money.Cents, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Amount)
	}
	return out
}

func TestMapItems(t *testing.T) {
	t.Run("amount is unit price times quantity", func(t *testing.T) {
		id := uuid.New()
		out, err := pricing.MapItems([]pricing.ItemInput{{InventoryID: id, Name: "Slide", Quantity: 3, UnitPrice: 2500}})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, money.Cents(7500), out[0].Amount)
		assert.Equal(t, id.String(), out[0].Reference)
		assert.Equal(t, "Slide", out[0].Description)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := pricing.MapItems([]pricing.ItemInput{{InventoryID: uuid.New(), Quantity: 0, UnitPrice: 100}})
		require.ErrorIs(t, err, pricing.ErrInvalidQuantity)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := pricing.MapItems([]pricing.ItemInput{{InventoryID: uuid.New(), Quantity: 1, UnitPrice: -1}})
		require.ErrorIs(t, err, pricing.ErrNegativePrice)
	})
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		input    []money.Cents
		discount func() (pricing.Discount, error)
		expected []money.Cents
	}{
		{
			name:     "percentage rounds per line",
			input:    []money.Cents{10000, 333},
			discount: func() (pricing.Discount, error) { return pricing.NewPercentageDiscount(10) },
			expected: []money.Cents{9000, 300},
		},
		{
			name:     "hundred percent zeroes lines",
			input:    []money.Cents{10000, 5000},
			discount: func() (pricing.Discount, error) { return pricing.NewPercentageDiscount(100) },
			expected: []money.Cents{0, 0},
		},
		{
			name:     "fixed spreads pro rata",
			input:    []money.Cents{7500, 2500},
			discount: func() (pricing.Discount, error) { return pricing.NewFixedDiscount(1000) },
			expected: []money.Cents{6750, 2250},
		},
		{
			name:     "fixed remainder goes to last line",
			input:    []money.Cents{100, 100, 100},
			discount: func() (pricing.Discount, error) { return pricing.NewFixedDiscount(100) },
			expected: []money.Cents{67, 67, 66},
		},
		{
			name:     "fixed capped at subtotal",
			input:    []money.Cents{500, 300},
			discount: func() (pricing.Discount, error) { return pricing.NewFixedDiscount(5000) },
			expected: []money.Cents{0, 0},
		},
		{
			name:     "fixed share of large amounts does not overflow",
			input:    []money.Cents{6_000_000_000_000, 2_000_000_000_000},
			discount: func() (pricing.Discount, error) { return pricing.NewFixedDiscount(4_000_000_000_000) },
			expected: []money.Cents{3_000_000_000_000, 1_000_000_000_000},
		},
		{
			name:     "fixed share near the int64 limit",
			input:    []money.Cents{math.MaxInt64 / 2, math.MaxInt64 / 2},
			discount: func() (pricing.Discount, error) { return pricing.NewFixedDiscount(math.MaxInt64 / 2) },
			expected: []money.Cents{2_305_843_009_213_693_952, 2_305_843_009_213_693_951},
		},
		{
			name:     "zero discount leaves lines unchanged",
			input:    []money.Cents{500, 300},
			discount: func() (pricing.Discount, error) { return pricing.Discount{}, nil },
			expected: []money.Cents{500, 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.discount()
			require.NoError(t, err)

			in := lines(t, tt.input...)
			out := pricing.ApplyDiscount(in, d)

			assert.Equal(t, tt.expected, amounts(out))
			assert.Equal(t, tt.input, amounts(in), "input lines must not be modified")
		})
	}
}

func TestApplyDiscount_FixedTotalMatchesDiscount(t *testing.T) {
	in := lines(t, 1999, 4999, 3333, 17)
	d, err := pricing.NewFixedDiscount(1234)
	require.NoError(t, err)

	out := pricing.ApplyDiscount(in, d)

	assert.Equal(t, pricing.Subtotal(in)-1234, pricing.Subtotal(out))
	for i := range out {
		assert.GreaterOrEqual(t, out[i].Amount, money.Cents(0))
	}
}

func TestDiscountValidation(t *testing.T) {
	_, err := pricing.NewPercentageDiscount(101)
	require.ErrorIs(t, err, pricing.ErrInvalidDiscountPercent)

	_, err = pricing.NewPercentageDiscount(-1)
	require.ErrorIs(t, err, pricing.ErrInvalidDiscountPercent)

	_, err = pricing.NewFixedDiscount(-5)
	require.ErrorIs(t, err, pricing.ErrInvalidDiscountAmount)
}

func TestFallbackTax(t *testing.T) {
	assert.Equal(t, money.Cents(800), pricing.FallbackTax(10000, 0.08))
	assert.Equal(t, money.Cents(27), pricing.FallbackTax(333, 0.0825))
	assert.Equal(t, money.Cents(0), pricing.FallbackTax(0, 0.08))
}
