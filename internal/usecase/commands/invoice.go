package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/domain/invoice"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	NotificationInvoiceReady = "invoice_ready"
	notifySendTimeout        = 10 * time.Second

	// InlineNotifyGrace holds a freshly queued job back from the dispatcher
	// while the request path makes its own send attempt.
	InlineNotifyGrace = 3 * notifySendTimeout
)

type IssueInvoiceRequest struct {
	// Customer may be omitted when the booking already has one.
	Customer   *customer.Contact
	Event      *EventInput
	CouponCode *string
	DueDays    *int
}

type InvoiceResult struct {
	InvoiceID  uuid.UUID
	BookingID  uuid.UUID
	ExternalID string
	Number     string
	HostedURL  string
	AmountDue  string
	DueAt      time.Time
}

type InvoiceCommands interface {
	IssueInvoice(ctx context.Context, businessID, bookingID uuid.UUID, req IssueInvoiceRequest) (*InvoiceResult, error)
}

type invoiceUseCaseImpl struct {
	uow      shared.UnitOfWork
	payments PaymentGateway
	taxes    *TaxService
	notifier Notifier
	cache    AvailabilityCache
	clock    clock.Clock
	settings Settings
}

func NewInvoiceUseCase(
	uow shared.UnitOfWork,
	payments PaymentGateway,
	taxes *TaxService,
	notifier Notifier,
	cache AvailabilityCache,
	clk clock.Clock,
	settings Settings,
) InvoiceCommands {
	return &invoiceUseCaseImpl{
		uow:      uow,
		payments: payments,
		taxes:    taxes,
		notifier: notifier,
		cache:    cache,
		clock:    clk,
		settings: settings,
	}
}

func (uc *invoiceUseCaseImpl) IssueInvoice(
	ctx context.Context,
	businessID, bookingID uuid.UUID,
	req IssueInvoiceRequest,
) (*InvoiceResult, error) {
	biz, bk, err := loadPayable(ctx, uc.uow, uc.cache, uc.clock, businessID, bookingID)
	if err != nil {
		return nil, err
	}
	stripeAccount, err := stripeAccountOf(biz)
	if err != nil {
		return nil, err
	}

	dueDays := uc.settings.InvoiceDueDays
	if req.DueDays != nil {
		if *req.DueDays < 1 {
			return nil, errs.E(errs.KindInvalidRequest, "due days must be at least 1")
		}
		dueDays = *req.DueDays
	}

	eventIn := EventInput{
		Address:             bk.Event().Address,
		ParticipantCount:    bk.Event().ParticipantCount,
		SpecialInstructions: bk.Event().SpecialInstructions,
	}
	if req.Event != nil {
		eventIn = *req.Event
	}
	event, err := eventDetails(eventIn)
	if err != nil {
		return nil, err
	}

	var contact *customer.Contact
	if req.Customer != nil {
		c := req.Customer.Normalize()
		if err := c.Validate(); err != nil {
			return nil, invalid(err)
		}
		contact = &c
	} else if bk.CustomerID() == nil {
		return nil, errs.E(errs.KindInvalidRequest, "customer details are required to invoice this booking")
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

		if contact != nil {
			cust, terr = upsertCustomer(ctx, tx, businessID, *contact, now)
		} else {
			cust, terr = existingCustomer(ctx, tx, *current.CustomerID())
		}
		if terr != nil {
			return terr
		}
		couponID, terr := attachCoupon(ctx, tx, current, cp)
		if terr != nil {
			return terr
		}

		if _, terr = current.PrepareForPayment(booking.PaymentTerms{
			CustomerID:       cust.ID(),
			CouponID:         couponID,
			Event:            event,
			Totals:           priced.totals,
			TaxCalculationID: priced.tax.CalculationID,
			TaxMethod:        priced.tax.Method,
		}, now, time.Duration(dueDays)*24*time.Hour); terr != nil {
			return terr
		}
		if terr = tx.Bookings().SavePaymentTerms(ctx, tx.DB(), current); terr != nil {
			return fromRepo(terr, "failed to update booking")
		}
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
	issued, err := uc.payments.IssueInvoice(ctx, InvoiceRequest{
		StripeAccount:  stripeAccount,
		CustomerID:     stripeCustomerID,
		Currency:       currency,
		Lines:          priced.lines,
		Tax:            totals.Tax(),
		DueDays:        dueDays,
		Metadata:       reconciliationMetadata(biz, updated, cust, cp, priced),
		IdempotencyKey: fmt.Sprintf("invoice-%s-%d", updated.ID(), totals.Total().Int64()),
	})
	if err != nil {
		slog.Error("invoice issuance failed", "booking_id", updated.ID(), "error", err.Error())
		return nil, external("failed to issue invoice", err)
	}

	now := uc.clock.Now()
	inv := invoice.NewSentInvoice(
		updated.ID(), businessID,
		issued.ID, issued.Number, issued.HostedURL,
		issued.AmountDue, updated.CouponID(),
		invoice.DueAt(now, dueDays), now,
	)
	contactNow := cust.Contact()
	msg := InvoiceReadyMessage{
		BookingID:     updated.ID(),
		InvoiceID:     inv.ID(),
		To:            contactNow.Email,
		CustomerName:  contactNow.Name,
		BusinessName:  biz.Name(),
		InvoiceNumber: inv.Number(),
		HostedURL:     inv.HostedURL(),
		AmountDue:     inv.AmountDue().String(),
		DueAt:         inv.DueAt(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, errs.E(errs.KindPersistence, "failed to encode notification").WithCause(err)
	}

	var jobID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if terr := tx.Invoices().Create(ctx, tx.DB(), inv); terr != nil {
			return fromRepo(terr, "failed to record invoice")
		}
		var terr error
		jobID, terr = tx.Notifications().CreateJob(ctx, tx.DB(), NotificationInvoiceReady, updated.ID().String(), payload, now.Add(InlineNotifyGrace))
		return fromRepo(terr, "failed to queue notification")
	})
	if err != nil {
		slog.Error("invoice sent but not recorded",
			"booking_id", updated.ID(),
			"stripe_invoice_id", issued.ID,
			"error", err.Error())
		return nil, err
	}

	uc.notify(ctx, jobID, msg)

	slog.Info("invoice issued",
		"booking_id", updated.ID(),
		"invoice_id", inv.ID(),
		"amount_due", inv.AmountDue().String(),
		"due_at", inv.DueAt())

	return &InvoiceResult{
		InvoiceID:  inv.ID(),
		BookingID:  updated.ID(),
		ExternalID: inv.ExternalID(),
		Number:     inv.Number(),
		HostedURL:  inv.HostedURL(),
		AmountDue:  inv.AmountDue().String(),
		DueAt:      inv.DueAt(),
	}, nil
}

// notify sends the invoice-ready email before the request returns, detached
// from client cancellation. The queued job is not due until InlineNotifyGrace
// has passed, so the dispatcher only picks it up when this send fails or the
// job could not be marked sent.
func (uc *invoiceUseCaseImpl) notify(ctx context.Context, jobID uuid.UUID, msg InvoiceReadyMessage) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifySendTimeout)
	defer cancel()

	if _, err := uc.notifier.SendInvoiceReady(sendCtx, msg); err != nil {
		slog.Warn("invoice email failed, left for retry", "booking_id", msg.BookingID, "job_id", jobID, "error", err.Error())
		return
	}
	err := uc.uow.Within(sendCtx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkSent(ctx, tx.DB(), jobID, uc.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to mark notification sent", "job_id", jobID, "error", err.Error())
	}
}

func existingCustomer(ctx context.Context, tx shared.Tx, id uuid.UUID) (*customer.Customer, error) {
	snap, err := tx.Reads().CustomerByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err, "customer not found")
	}
	return toCustomer(snap), nil
}
