//go:build unit || e2e

package builder

import (
	"testing"

	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Snapshot builders produce the write-side read shapes the unit-of-work mocks return.

func (b *BusinessBuilder) BuildSnapshot() *shared.BusinessSnapshot {
	return &shared.BusinessSnapshot{
		ID:                b.ID,
		Name:              b.Name,
		TimeZone:          b.Settings.TimeZone,
		MinNoticeHours:    b.Settings.MinNoticeHours,
		MaxNoticeHours:    b.Settings.MaxNoticeHours,
		MinBookingAmount:  b.Settings.MinBookingAmount,
		BufferBeforeHours: b.Settings.BufferBeforeHours,
		BufferAfterHours:  b.Settings.BufferAfterHours,
		DefaultTaxRate:    b.Settings.DefaultTaxRate,
		StripeAccountID:   b.StripeAccountID,
		Currency:          b.Currency,
	}
}

func (b *BookingBuilder) BuildSnapshot(t testing.TB) *shared.BookingSnapshot {
	t.Helper()
	window := b.Window(t)
	buffered := window.Buffered(b.BufferBefore, b.BufferAfter)

	items := make([]shared.BookingItemSnapshot, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, shared.BookingItemSnapshot{
			ID:            uuid.New(),
			InventoryID:   it.InventoryID,
			Name:          it.Name,
			Quantity:      it.Quantity,
			Price:         it.UnitPrice,
			StartTime:     window.Start(),
			EndTime:       window.End(),
			BufferedStart: buffered.Start(),
			BufferedEnd:   buffered.End(),
			Status:        b.Status.String(),
		})
	}

	return &shared.BookingSnapshot{
		ID:               b.ID,
		BusinessID:       b.BusinessID,
		CustomerID:       b.CustomerID,
		CouponID:         b.CouponID,
		Status:           b.Status.String(),
		EventDate:        b.EventDate(),
		StartTime:        window.Start(),
		EndTime:          window.End(),
		EventTimeZone:    b.TimeZone,
		SubtotalAmount:   b.Subtotal,
		DiscountAmount:   b.Discount,
		TaxAmount:        b.Tax,
		TaxRate:          b.TaxRate,
		TotalAmount:      b.Subtotal + b.Tax,
		ExpiresAt:        b.ExpiresAt,
		EventAddress:     b.Address,
		ParticipantCount: b.Participants,
		PaymentIntentID:  b.PaymentIntent,
		CreatedAt:        RefTime,
		UpdatedAt:        RefTime,
		Items:            items,
	}
}

func (c *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	value := int64(c.PercentOff)
	if c.Type == pricing.DiscountFixed {
		value = c.AmountOff.Int64()
	}
	return &shared.CouponSnapshot{
		ID:             c.ID,
		BusinessID:     c.BusinessID,
		Code:           c.Code,
		DiscountType:   string(c.Type),
		DiscountValue:  value,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		MaxUses:        c.MaxUses,
		UsedCount:      c.UsedCount,
		IsActive:       c.IsActive,
		StripeCouponID: c.StripeCouponID,
		CreatedAt:      RefTime,
		UpdatedAt:      RefTime,
	}
}

func (c *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:               c.ID,
		BusinessID:       c.BusinessID,
		Email:            c.Contact.Email,
		Name:             c.Contact.Name,
		Phone:            c.Contact.Phone,
		Address:          c.Contact.Address,
		StripeCustomerID: c.StripeCustomerID,
		CreatedAt:        RefTime,
		UpdatedAt:        RefTime,
	}
}

func (p *PaymentBuilder) BuildSnapshot() shared.PaymentSnapshot {
	return shared.PaymentSnapshot{
		ID:          p.ID,
		BookingID:   p.BookingID,
		Kind:        string(p.Kind),
		Status:      p.Status.String(),
		AmountCents: p.Amount,
		Currency:    "usd",
		ExternalRef: p.ExternalRef,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.CreatedAt,
	}
}
