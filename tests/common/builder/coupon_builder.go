//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"bounce-booking/internal/domain/coupon"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type CouponBuilder struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Code           string
	Type           pricing.DiscountType
	PercentOff     float64
	AmountOff      money.Cents
	StartDate      *time.Time
	EndDate        *time.Time
	MaxUses        *int32
	UsedCount      int32
	IsActive       bool
	StripeCouponID *string
}

func NewCouponBuilder() *CouponBuilder {
	stripeID := "co_summer10"
	return &CouponBuilder{
		ID:             uuid.New(),
		BusinessID:     uuid.New(),
		Code:           "SUMMER10",
		Type:           pricing.DiscountPercentage,
		PercentOff:     10,
		IsActive:       true,
		StripeCouponID: &stripeID,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

func (c *CouponBuilder) WithActive(active bool) *CouponBuilder {
	c.IsActive = active
	return c
}

func (c *CouponBuilder) WithWindow(start, end *time.Time) *CouponBuilder {
	c.StartDate = start
	c.EndDate = end
	return c
}

func (c *CouponBuilder) WithUsage(maxUses, used int32) *CouponBuilder {
	c.MaxUses = &maxUses
	c.UsedCount = used
	return c
}

func (c *CouponBuilder) WithFixed(amount money.Cents) *CouponBuilder {
	c.Type = pricing.DiscountFixed
	c.AmountOff = amount
	return c
}

func (c *CouponBuilder) WithPercent(pct float64) *CouponBuilder {
	c.Type = pricing.DiscountPercentage
	c.PercentOff = pct
	return c
}

func (c *CouponBuilder) WithStripeCouponID(id *string) *CouponBuilder {
	c.StripeCouponID = id
	return c
}

func (c *CouponBuilder) Discount(t testing.TB) pricing.Discount {
	t.Helper()
	var (
		d   pricing.Discount
		err error
	)
	if c.Type == pricing.DiscountFixed {
		d, err = pricing.NewFixedDiscount(c.AmountOff)
	} else {
		d, err = pricing.NewPercentageDiscount(c.PercentOff)
	}
	require.NoError(t, err)
	return d
}

func (c *CouponBuilder) BuildDomain(t testing.TB) *coupon.Coupon {
	t.Helper()
	cp, err := coupon.ReconstructCoupon(
		c.ID, c.BusinessID, c.Code, c.Discount(t),
		c.StartDate, c.EndDate, c.MaxUses, c.UsedCount, c.IsActive, c.StripeCouponID,
		RefTime, RefTime,
	)
	require.NoError(t, err)
	return cp
}
