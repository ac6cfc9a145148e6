// Package pricing turns booking items into tax-calculator line items and
// applies coupon discounts to them.
package pricing

import (
	"errors"
	"math"
	"math/bits"

	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidQuantity        = errors.New("item quantity must be at least 1")
	ErrNegativePrice          = errors.New("item price cannot be negative")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

type Discount struct {
	discountType DiscountType
	percentOff   float64
	amountOff    money.Cents
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{discountType: DiscountPercentage, percentOff: percentOff}, nil
}

func NewFixedDiscount(amountOff money.Cents) (Discount, error) {
	if amountOff < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{discountType: DiscountFixed, amountOff: amountOff}, nil
}

func (d Discount) Type() DiscountType     { return d.discountType }
func (d Discount) PercentOff() float64    { return d.percentOff }
func (d Discount) AmountOff() money.Cents { return d.amountOff }
func (d Discount) IsZero() bool           { return d.discountType == "" }

// ItemInput is one booked inventory unit with its unit price.
type ItemInput struct {
	InventoryID uuid.UUID
	Name        string
	Quantity    int32
	UnitPrice   money.Cents
}

// LineItem is the shape handed to the tax calculator. Amount is the line total
// after any discount.
type LineItem struct {
	Reference   string
	InventoryID uuid.UUID
	Description string
	Quantity    int32
	UnitAmount  money.Cents
	Amount      money.Cents
}

// MapItems produces one line per item with amount = unit price x quantity.
func MapItems(items []ItemInput) ([]LineItem, error) {
	lines := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return nil, ErrNegativePrice
		}
		lines = append(lines, LineItem{
			Reference:   item.InventoryID.String(),
			InventoryID: item.InventoryID,
			Description: item.Name,
			Quantity:    item.Quantity,
			UnitAmount:  item.UnitPrice,
			Amount:      item.UnitPrice * money.Cents(item.Quantity),
		})
	}
	return lines, nil
}

func Subtotal(lines []LineItem) money.Cents {
	var total money.Cents
	for _, l := range lines {
		total += l.Amount
	}
	return total
}

// ApplyDiscount returns discounted copies of lines. Percentage coupons scale
// every line and round per line. Fixed coupons are capped at the subtotal and
// spread pro-rata by line amount; floor remainders land on the last lines.
func ApplyDiscount(lines []LineItem, d Discount) []LineItem {
	out := make([]LineItem, len(lines))
	copy(out, lines)

	switch d.discountType {
	case DiscountPercentage:
		factor := (100 - d.percentOff) / 100
		for i := range out {
			out[i].Amount = money.Cents(math.Round(float64(out[i].Amount) * factor))
		}
	case DiscountFixed:
		spreadFixed(out, d.amountOff)
	}
	return out
}

func spreadFixed(lines []LineItem, amountOff money.Cents) {
	subtotal := int64(Subtotal(lines))
	if subtotal <= 0 || amountOff <= 0 {
		return
	}
	off := int64(amountOff)
	if off > subtotal {
		off = subtotal
	}

	shares := make([]int64, len(lines))
	var assigned int64
	for i, l := range lines {
		shares[i] = proRata(off, int64(l.Amount), subtotal)
		assigned += shares[i]
	}

	remainder := off - assigned
	for i := len(lines) - 1; i >= 0 && remainder > 0; i-- {
		room := int64(lines[i].Amount) - shares[i]
		if room <= 0 {
			continue
		}
		add := min(room, remainder)
		shares[i] += add
		remainder -= add
	}

	for i := range lines {
		lines[i].Amount -= money.Cents(shares[i])
	}
}

// proRata returns floor(off*amount/subtotal) with a 128-bit intermediate
// product. off <= subtotal keeps the quotient within amount.
func proRata(off, amount, subtotal int64) int64 {
	if amount <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(off), uint64(amount))
	q, _ := bits.Div64(hi, lo, uint64(subtotal))
	return int64(q)
}

// FallbackTax is the tax owed at a flat rate when no calculator is available.
func FallbackTax(subtotal money.Cents, rate float64) money.Cents {
	return subtotal.MulRate(rate)
}
