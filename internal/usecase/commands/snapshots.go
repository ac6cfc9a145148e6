package commands

import (
	"encoding/json"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/business"
	"bounce-booking/internal/domain/coupon"
	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/domain/payment"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/shared"
)

func toBusiness(s *shared.BusinessSnapshot) (*business.Business, error) {
	biz, err := business.NewBusiness(s.ID, s.Name, business.Settings{
		TimeZone:          s.TimeZone,
		MinNoticeHours:    s.MinNoticeHours,
		MaxNoticeHours:    s.MaxNoticeHours,
		MinBookingAmount:  s.MinBookingAmount,
		BufferBeforeHours: s.BufferBeforeHours,
		BufferAfterHours:  s.BufferAfterHours,
		DefaultTaxRate:    s.DefaultTaxRate,
	}, s.StripeAccountID, s.Currency)
	if err != nil {
		return nil, errs.E(errs.KindPersistence, "business settings are invalid").WithCause(err)
	}
	return biz, nil
}

func toBooking(s *shared.BookingSnapshot) (*booking.Booking, error) {
	window, err := booking.NewTimeWindow(s.StartTime, s.EndTime)
	if err != nil {
		return nil, errs.E(errs.KindPersistence, "stored booking window is invalid").WithCause(err)
	}
	totals, err := booking.ReconstructTotals(s.SubtotalAmount, s.DiscountAmount, s.TaxAmount, s.TaxRate, s.TotalAmount)
	if err != nil {
		return nil, errs.E(errs.KindPersistence, "stored booking totals are inconsistent").WithCause(err)
	}

	items := make([]booking.Item, 0, len(s.Items))
	for _, it := range s.Items {
		w, werr := booking.NewTimeWindow(it.StartTime, it.EndTime)
		if werr != nil {
			return nil, errs.E(errs.KindPersistence, "stored item window is invalid").WithCause(werr)
		}
		bw, werr := booking.NewTimeWindow(it.BufferedStart, it.BufferedEnd)
		if werr != nil {
			return nil, errs.E(errs.KindPersistence, "stored item window is invalid").WithCause(werr)
		}
		items = append(items, booking.ReconstructItem(
			it.ID, it.InventoryID, it.Name, it.Quantity, it.Price, w, bw, booking.Status(it.Status),
		))
	}

	b, err := booking.ReconstructBooking(booking.ReconstructParams{
		ID:            s.ID,
		BusinessID:    s.BusinessID,
		CustomerID:    s.CustomerID,
		CouponID:      s.CouponID,
		Status:        booking.Status(s.Status),
		EventDate:     s.EventDate,
		Window:        window,
		EventTimeZone: s.EventTimeZone,
		Totals:        totals,
		DepositPaid:   s.DepositPaid,
		ExpiresAt:     s.ExpiresAt,
		Event: booking.EventDetails{
			Address:             s.EventAddress,
			ParticipantCount:    s.ParticipantCount,
			SpecialInstructions: s.SpecialInstructions,
		},
		Items:              items,
		TaxCalculationID:   s.TaxCalculationID,
		TaxMethod:          s.TaxMethod,
		PaymentIntentID:    s.PaymentIntentID,
		CancellationReason: s.CancellationReason,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	})
	if err != nil {
		return nil, errs.E(errs.KindPersistence, "stored booking is invalid").WithCause(err)
	}
	return b, nil
}

func toCoupon(s *shared.CouponSnapshot) (*coupon.Coupon, error) {
	var (
		d   pricing.Discount
		err error
	)
	switch pricing.DiscountType(s.DiscountType) {
	case pricing.DiscountPercentage:
		d, err = pricing.NewPercentageDiscount(float64(s.DiscountValue))
	case pricing.DiscountFixed:
		d, err = pricing.NewFixedDiscount(money.Cents(s.DiscountValue))
	default:
		err = pricing.ErrInvalidDiscountAmount
	}
	if err != nil {
		return nil, errs.E(errs.KindInvalidRequest, "coupon is misconfigured").WithCause(err)
	}

	c, err := coupon.ReconstructCoupon(
		s.ID, s.BusinessID, s.Code, d,
		s.StartDate, s.EndDate, s.MaxUses, s.UsedCount, s.IsActive, s.StripeCouponID,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return nil, errs.E(errs.KindInvalidRequest, "coupon is misconfigured").WithCause(err)
	}
	return c, nil
}

func toCustomer(s *shared.CustomerSnapshot) *customer.Customer {
	return customer.ReconstructCustomer(s.ID, s.BusinessID, customer.Contact{
		Email:   s.Email,
		Name:    s.Name,
		Phone:   s.Phone,
		Address: s.Address,
	}, s.StripeCustomerID, s.CreatedAt, s.UpdatedAt)
}

func toPayments(snaps []shared.PaymentSnapshot) []*payment.Payment {
	out := make([]*payment.Payment, 0, len(snaps))
	for _, s := range snaps {
		var refund *payment.RefundRecord
		if len(s.Metadata) > 0 && string(s.Metadata) != "null" && string(s.Metadata) != "{}" {
			var rec payment.RefundRecord
			if err := json.Unmarshal(s.Metadata, &rec); err == nil && rec.RefundID != "" {
				refund = &rec
			}
		}
		out = append(out, payment.ReconstructPayment(
			s.ID, s.BookingID, payment.Kind(s.Kind), payment.Status(s.Status), s.AmountCents,
			s.Currency, s.ExternalRef, refund, s.CreatedAt, s.UpdatedAt,
		))
	}
	return out
}
