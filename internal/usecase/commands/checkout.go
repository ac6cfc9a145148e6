package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/business"
	"bounce-booking/internal/domain/coupon"
	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/domain/payment"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/localtime"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FinalizeCheckoutRequest struct {
	HoldID        uuid.UUID
	Customer      customer.Contact
	Event         EventInput
	EventDate     string
	StartTime     string
	EndTime       string
	EventTimeZone string
	CouponCode    *string
}

type CheckoutResult struct {
	ClientSecret string
	BookingID    uuid.UUID
}

type CheckoutCommands interface {
	FinalizeCheckout(ctx context.Context, businessID uuid.UUID, req FinalizeCheckoutRequest) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow      shared.UnitOfWork
	payments PaymentGateway
	taxes    *TaxService
	cache    AvailabilityCache
	clock    clock.Clock
	settings Settings
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	payments PaymentGateway,
	taxes *TaxService,
	cache AvailabilityCache,
	clk clock.Clock,
	settings Settings,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:      uow,
		payments: payments,
		taxes:    taxes,
		cache:    cache,
		clock:    clk,
		settings: settings,
	}
}

func (uc *checkoutUseCaseImpl) FinalizeCheckout(
	ctx context.Context,
	businessID uuid.UUID,
	req FinalizeCheckoutRequest,
) (*CheckoutResult, error) {
	biz, bk, err := loadPayable(ctx, uc.uow, uc.cache, uc.clock, businessID, req.HoldID)
	if err != nil {
		return nil, err
	}
	stripeAccount, err := stripeAccountOf(biz)
	if err != nil {
		return nil, err
	}

	if err := ensureSameWindow(biz, bk, req); err != nil {
		return nil, err
	}
	event, err := eventDetails(req.Event)
	if err != nil {
		return nil, err
	}
	contact := req.Customer.Normalize()
	if err := contact.Validate(); err != nil {
		return nil, invalid(err)
	}

	cp, err := resolveCoupon(ctx, uc.uow.CommandReads(), businessID, req.CouponCode, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	currency := currencyOf(biz, uc.settings.Currency)
	priced, err := priceBooking(ctx, uc.taxes, biz, bk, cp, event.Address, currency)
	if err != nil {
		return nil, err
	}

	var (
		cust    *customer.Customer
		updated *booking.Booking
	)
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		snap, terr := tx.Reads().BookingByID(ctx, bk.ID())
		if terr != nil {
			return fromRepo(terr, "booking not found")
		}
		current, terr := toBooking(snap)
		if terr != nil {
			return terr
		}

		cust, terr = upsertCustomer(ctx, tx, businessID, contact, now)
		if terr != nil {
			return terr
		}
		couponID, terr := attachCoupon(ctx, tx, current, cp)
		if terr != nil {
			return terr
		}

		wasHold, terr := current.PrepareForPayment(booking.PaymentTerms{
			CustomerID:       cust.ID(),
			CouponID:         couponID,
			Event:            event,
			Totals:           priced.totals,
			TaxCalculationID: priced.tax.CalculationID,
			TaxMethod:        priced.tax.Method,
		}, now, uc.settings.CheckoutTTL)
		if terr != nil {
			return terr
		}
		if terr = tx.Bookings().SavePaymentTerms(ctx, tx.DB(), current); terr != nil {
			return fromRepo(terr, "failed to update booking")
		}
		slog.Debug("booking priced", "booking_id", current.ID(), "promoted_from_hold", wasHold)
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	invalidateAvailability(ctx, uc.cache, businessID)

	stripeCustomerID, err := ensureStripeCustomer(ctx, uc.uow, uc.payments, uc.clock, stripeAccount, cust, businessID)
	if err != nil {
		return nil, err
	}

	totals := updated.Totals()
	intent, err := uc.payments.CreatePaymentIntent(ctx, PaymentIntentRequest{
		StripeAccount:  stripeAccount,
		CustomerID:     stripeCustomerID,
		Amount:         totals.Total(),
		Currency:       currency,
		Description:    fmt.Sprintf("Booking %s", updated.ID()),
		Metadata:       reconciliationMetadata(biz, updated, cust, cp, priced),
		IdempotencyKey: fmt.Sprintf("booking-%s-%d", updated.ID(), totals.Total().Int64()),
	})
	if err != nil {
		slog.Error("payment intent creation failed", "booking_id", updated.ID(), "error", err.Error())
		return nil, external("failed to create payment intent", err)
	}

	var superseded string
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		superseded = ""
		if terr := tx.Bookings().SetPaymentIntent(ctx, tx.DB(), updated.ID(), intent.ID); terr != nil {
			return fromRepo(terr, "failed to store payment intent")
		}
		replaced, terr := recordPendingPayment(ctx, tx, updated.ID(), totals.Total(), currency, intent.ID, uc.clock.Now())
		if terr != nil {
			return terr
		}
		superseded = replaced
		return nil
	})
	if err != nil {
		return nil, err
	}
	if superseded != "" {
		// The booking already points at the new intent; a failed void only
		// leaves an unpaid intent behind on the processor.
		if cerr := uc.payments.CancelPaymentIntent(ctx, stripeAccount, superseded); cerr != nil {
			slog.Warn("failed to cancel superseded payment intent",
				"booking_id", updated.ID(),
				"payment_intent_id", superseded,
				"error", cerr.Error())
		}
	}

	slog.Info("checkout finalized",
		"booking_id", updated.ID(),
		"business_id", businessID,
		"total", totals.Total().String(),
		"tax_method", priced.tax.Method)

	return &CheckoutResult{ClientSecret: intent.ClientSecret, BookingID: updated.ID()}, nil
}

// recordPendingPayment keeps one pending full payment per booking. A repeat
// checkout reprices the existing row and returns the intent it replaced.
func recordPendingPayment(
	ctx context.Context,
	tx shared.Tx,
	bookingID uuid.UUID,
	amount money.Cents,
	currency, intentID string,
	now time.Time,
) (string, error) {
	snaps, err := tx.Reads().PaymentsByBooking(ctx, bookingID)
	if err != nil {
		return "", fromRepo(err, "failed to load payments")
	}
	existing := payment.FindPending(toPayments(snaps), payment.KindFullPayment)
	if existing == nil {
		p := payment.NewPendingPayment(bookingID, payment.KindFullPayment, amount, currency, intentID, now)
		return "", fromRepo(tx.Payments().Create(ctx, tx.DB(), p), "failed to record payment")
	}

	superseded, err := existing.Reprice(amount, intentID, now)
	if err != nil {
		return "", errs.E(errs.KindConflict, "payment is no longer pending").WithCause(err)
	}
	if err := tx.Payments().SavePending(ctx, tx.DB(), existing); err != nil {
		return "", fromRepo(err, "failed to update payment")
	}
	return superseded, nil
}

// loadPayable loads the business and booking and enforces the payable state.
// A stale HOLD or PENDING booking is flipped to EXPIRED before the Expired
// error is returned.
func loadPayable(
	ctx context.Context,
	uow shared.UnitOfWork,
	cache AvailabilityCache,
	clk clock.Clock,
	businessID, bookingID uuid.UUID,
) (*business.Business, *booking.Booking, error) {
	bizSnap, err := uow.CommandReads().BusinessByID(ctx, businessID)
	if err != nil {
		return nil, nil, fromRepo(err, "business not found")
	}
	biz, err := toBusiness(bizSnap)
	if err != nil {
		return nil, nil, err
	}

	snap, err := uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fromRepo(err, "booking not found")
	}
	if snap.BusinessID != businessID {
		return nil, nil, errs.E(errs.KindNotFound, "booking not found")
	}
	bk, err := toBooking(snap)
	if err != nil {
		return nil, nil, err
	}

	payErr := bk.EnsurePayable(clk.Now())
	if payErr == nil {
		return biz, bk, nil
	}
	if !errors.Is(payErr, booking.ErrHoldExpired) {
		return nil, nil, payErr
	}

	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, terr := toBooking(snap)
		if terr != nil {
			return terr
		}
		if terr := current.Expire(clk.Now()); terr != nil {
			return invalid(terr)
		}
		return fromRepo(tx.Bookings().SaveStatus(ctx, tx.DB(), current), "failed to expire booking")
	})
	if err != nil {
		return nil, nil, err
	}
	invalidateAvailability(ctx, cache, businessID)
	slog.Info("expired stale booking on touch", "booking_id", bk.ID(), "business_id", businessID)
	return nil, nil, payErr
}

// ensureSameWindow rejects a checkout whose event time differs from the hold.
// Moving the event requires a new hold so the slot is conflict checked.
func ensureSameWindow(biz *business.Business, bk *booking.Booking, req FinalizeCheckoutRequest) error {
	if req.EventDate == "" && req.StartTime == "" && req.EndTime == "" {
		return nil
	}
	zone := localtime.ResolveZone(req.EventTimeZone, biz.TimeZone())
	start, end, err := localtime.Window(req.EventDate, req.StartTime, req.EndTime, zone)
	if err != nil {
		return err
	}
	if !start.Equal(bk.Window().Start()) || !end.Equal(bk.Window().End()) {
		return errs.E(errs.KindInvalidRequest, "event time differs from the held slot, please create a new hold")
	}
	return nil
}

// ensureStripeCustomer reuses the stored processor customer or creates one on
// the connected account and remembers it.
func ensureStripeCustomer(
	ctx context.Context,
	uow shared.UnitOfWork,
	payments PaymentGateway,
	clk clock.Clock,
	stripeAccount string,
	cust *customer.Customer,
	businessID uuid.UUID,
) (string, error) {
	contact := cust.Contact()
	id, err := payments.EnsureCustomer(ctx, CustomerRequest{
		StripeAccount: stripeAccount,
		ExistingID:    cust.StripeCustomerID(),
		Email:         contact.Email,
		Name:          contact.Name,
		Phone:         contact.Phone,
		Address:       contact.Address,
		Metadata: map[string]string{
			"prismaCustomerId": cust.ID().String(),
			"prismaBusinessId": businessID.String(),
		},
	})
	if err != nil {
		slog.Error("payment customer resolution failed", "customer_id", cust.ID(), "error", err.Error())
		return "", external("failed to create payment customer", err)
	}

	if existing := cust.StripeCustomerID(); existing != nil && *existing == id {
		return id, nil
	}
	cust.LinkStripeCustomer(id, clk.Now())
	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fromRepo(tx.Customers().SetStripeCustomer(ctx, tx.DB(), cust.ID(), id), "failed to store payment customer")
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// reconciliationMetadata is the flat key set external reconciliation tooling
// reads from the payment intent.
func reconciliationMetadata(
	biz *business.Business,
	bk *booking.Booking,
	cust *customer.Customer,
	cp *coupon.Coupon,
	priced *pricedBooking,
) map[string]string {
	totals := bk.Totals()
	md := map[string]string{
		"prismaBookingId":      bk.ID().String(),
		"prismaBusinessId":     biz.ID().String(),
		"prismaCustomerId":     cust.ID().String(),
		"subtotalAmount":       totals.Subtotal().String(),
		"discountAmount":       totals.Discount().String(),
		"taxAmount":            totals.Tax().String(),
		"taxRate":              strconv.FormatFloat(totals.TaxRate(), 'f', -1, 64),
		"totalAmount":          totals.Total().String(),
		"couponId":             "",
		"couponCode":           "",
		"taxCalculationId":     "",
		"taxCalculationMethod": priced.tax.Method,
	}
	if cp != nil {
		md["couponId"] = cp.ID().String()
		md["couponCode"] = cp.Code().String()
	}
	if priced.tax.CalculationID != nil {
		md["taxCalculationId"] = *priced.tax.CalculationID
	}
	return md
}
