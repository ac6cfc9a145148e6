package coupon

import (
	"errors"
	"time"

	"bounce-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrCouponInactive      = errors.New("coupon is not active")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponNotYetValid   = errors.New("coupon is not yet valid")
	ErrCouponExhausted     = errors.New("coupon has reached its usage limit")
	ErrCouponNotConfigured = errors.New("coupon is not configured with the payment processor")
)

type Coupon struct {
	id             uuid.UUID
	businessID     uuid.UUID
	code           Code
	discount       pricing.Discount
	startDate      *time.Time
	endDate        *time.Time
	maxUses        *int32
	usedCount      int32
	isActive       bool
	stripeCouponID *string
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructCoupon(
	id, businessID uuid.UUID,
	code string,
	discount pricing.Discount,
	startDate, endDate *time.Time,
	maxUses *int32,
	usedCount int32,
	isActive bool,
	stripeCouponID *string,
	createdAt, updatedAt time.Time,
) (*Coupon, error) {
	c, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}
	return &Coupon{
		id:             id,
		businessID:     businessID,
		code:           c,
		discount:       discount,
		startDate:      startDate,
		endDate:        endDate,
		maxUses:        maxUses,
		usedCount:      usedCount,
		isActive:       isActive,
		stripeCouponID: stripeCouponID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	return c.ValidateUsage(t) == nil
}

// ValidateUsage checks active flag, validity window and remaining uses.
// The window bounds are inclusive.
func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if c.startDate != nil && t.Before(*c.startDate) {
		return ErrCouponNotYetValid
	}
	if c.endDate != nil && t.After(*c.endDate) {
		return ErrCouponExpired
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return ErrCouponExhausted
	}
	return nil
}

// RequireProcessorCoupon returns the payment-processor coupon id; a coupon
// without one cannot be applied at checkout.
func (c *Coupon) RequireProcessorCoupon() (string, error) {
	if c.stripeCouponID == nil || *c.stripeCouponID == "" {
		return "", ErrCouponNotConfigured
	}
	return *c.stripeCouponID, nil
}

func (c *Coupon) ID() uuid.UUID              { return c.id }
func (c *Coupon) BusinessID() uuid.UUID      { return c.businessID }
func (c *Coupon) Code() Code                 { return c.code }
func (c *Coupon) Discount() pricing.Discount { return c.discount }
func (c *Coupon) StartDate() *time.Time      { return c.startDate }
func (c *Coupon) EndDate() *time.Time        { return c.endDate }
func (c *Coupon) MaxUses() *int32            { return c.maxUses }
func (c *Coupon) UsedCount() int32           { return c.usedCount }
func (c *Coupon) IsActive() bool             { return c.isActive }
func (c *Coupon) StripeCouponID() *string    { return c.stripeCouponID }
func (c *Coupon) CreatedAt() time.Time       { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time       { return c.updatedAt }
