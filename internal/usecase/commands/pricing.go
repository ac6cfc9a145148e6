package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/business"
	"bounce-booking/internal/domain/coupon"
	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type pricedBooking struct {
	lines    []pricing.LineItem
	original money.Cents
	tax      TaxQuote
	totals   booking.Totals
}

// priceBooking rebuilds line items from the snapshotted item prices, applies
// the coupon and quotes tax against the event address.
func priceBooking(
	ctx context.Context,
	taxes *TaxService,
	biz *business.Business,
	bk *booking.Booking,
	cp *coupon.Coupon,
	addr address.Address,
	currency string,
) (*pricedBooking, error) {
	lines, err := pricing.MapItems(bk.PricingInputs())
	if err != nil {
		return nil, invalid(err)
	}
	original := pricing.Subtotal(lines)
	if cp != nil {
		lines = pricing.ApplyDiscount(lines, cp.Discount())
	}
	subtotal := pricing.Subtotal(lines)

	stripeAccount := ""
	if id := biz.StripeAccountID(); id != nil {
		stripeAccount = *id
	}
	quote := taxes.Quote(ctx, TaxRequest{
		BookingID:     bk.ID(),
		Lines:         lines,
		Address:       addr,
		Currency:      currency,
		StripeAccount: stripeAccount,
		DefaultRate:   biz.DefaultTaxRate(),
	})

	totals, err := booking.NewTotals(subtotal, original-subtotal, quote.Amount, quote.Rate)
	if err != nil {
		return nil, invalid(err)
	}
	return &pricedBooking{lines: lines, original: original, tax: quote, totals: totals}, nil
}

// resolveCoupon returns nil when no code was supplied.
func resolveCoupon(ctx context.Context, reads shared.CommandReads, businessID uuid.UUID, code *string, now time.Time) (*coupon.Coupon, error) {
	if code == nil || strings.TrimSpace(*code) == "" {
		return nil, nil
	}
	normalized, err := coupon.NewCouponCode(*code)
	if err != nil {
		return nil, errs.E(errs.KindInvalidRequest, "coupon code is invalid").WithCause(err)
	}

	snap, err := reads.CouponByCode(ctx, businessID, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.E(errs.KindInvalidRequest, "coupon code is invalid").
				WithCause(err).
				WithDetail("couponCode", normalized.String())
		}
		return nil, fromRepo(err, "failed to load coupon")
	}

	cp, err := toCoupon(snap)
	if err != nil {
		return nil, err
	}
	if err := cp.ValidateUsage(now); err != nil {
		return nil, errs.E(errs.KindInvalidRequest, couponMessage(err)).
			WithCause(err).
			WithDetail("couponCode", cp.Code().String())
	}
	if _, err := cp.RequireProcessorCoupon(); err != nil {
		return nil, errs.E(errs.KindInvalidRequest, "coupon is not configured for online payment").
			WithCause(err).
			WithDetail("couponCode", cp.Code().String())
	}
	return cp, nil
}

func couponMessage(err error) string {
	switch {
	case errors.Is(err, coupon.ErrCouponExpired):
		return "coupon has expired"
	case errors.Is(err, coupon.ErrCouponNotYetValid):
		return "coupon is not yet valid"
	case errors.Is(err, coupon.ErrCouponExhausted):
		return "coupon has reached its usage limit"
	default:
		return "coupon is not active"
	}
}

// upsertCustomer finds the customer by (business, email) and refreshes their
// contact details, or creates them.
func upsertCustomer(ctx context.Context, tx shared.Tx, businessID uuid.UUID, contact customer.Contact, now time.Time) (*customer.Customer, error) {
	contact = contact.Normalize()
	if err := contact.Validate(); err != nil {
		return nil, invalid(err)
	}

	snap, err := tx.Reads().CustomerByEmail(ctx, businessID, contact.Email)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, fromRepo(err, "failed to load customer")
	}

	if snap == nil {
		c, cerr := customer.NewCustomer(businessID, contact, now)
		if cerr != nil {
			return nil, invalid(cerr)
		}
		if cerr = tx.Customers().Create(ctx, tx.DB(), c); cerr != nil {
			return nil, fromRepo(cerr, "failed to create customer")
		}
		return c, nil
	}

	c := toCustomer(snap)
	if err := c.UpdateContact(contact, now); err != nil {
		return nil, invalid(err)
	}
	if err := tx.Customers().Update(ctx, tx.DB(), c); err != nil {
		return nil, fromRepo(err, "failed to update customer")
	}
	return c, nil
}

// attachCoupon consumes one use of a coupon newly attached to the booking.
func attachCoupon(ctx context.Context, tx shared.Tx, bk *booking.Booking, cp *coupon.Coupon) (*uuid.UUID, error) {
	if cp == nil {
		return nil, nil
	}
	id := cp.ID()
	if current := bk.CouponID(); current != nil && *current == id {
		return &id, nil
	}
	if err := tx.Coupons().IncrementUsage(ctx, tx.DB(), id); err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.E(errs.KindInvalidRequest, "coupon has reached its usage limit").
				WithCause(err).
				WithDetail("couponCode", cp.Code().String())
		}
		return nil, fromRepo(err, "failed to record coupon usage")
	}
	return &id, nil
}

func stripeAccountOf(biz *business.Business) (string, error) {
	acct, err := biz.PaymentAccount()
	if err != nil {
		return "", errs.E(errs.KindInvalidRequest, "business is not set up to accept payments").WithCause(err)
	}
	return acct, nil
}

func currencyOf(biz *business.Business, fallback string) string {
	if c := biz.Currency(); c != "" {
		return strings.ToLower(c)
	}
	return fallback
}

// eventDetails validates the event metadata supplied at checkout; the
// address is required from this point on.
func eventDetails(in EventInput) (booking.EventDetails, error) {
	addr := in.Address.Normalize()
	if err := addr.Validate(); err != nil {
		return booking.EventDetails{}, errs.E(errs.KindInvalidRequest, "event address is incomplete").WithCause(err)
	}
	ev := booking.EventDetails{
		Address:             addr,
		ParticipantCount:    in.ParticipantCount,
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
	}
	if err := ev.Validate(); err != nil {
		return booking.EventDetails{}, invalid(err)
	}
	return ev, nil
}

type EventInput struct {
	Address             address.Address
	ParticipantCount    *int32
	SpecialInstructions string
}
