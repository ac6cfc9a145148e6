package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/payment"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CancelRequest struct {
	FullRefund bool
	Reason     string
}

type RefundSummary struct {
	RefundID        string
	Amount          money.Cents
	Percentage      int64
	IsWithin24Hours bool
}

type CancelResult struct {
	BookingID uuid.UUID
	Status    booking.Status
	Refund    *RefundSummary
}

type CancellationCommands interface {
	CancelBooking(ctx context.Context, businessID, bookingID uuid.UUID, req CancelRequest) (*CancelResult, error)
}

type cancellationUseCaseImpl struct {
	uow      shared.UnitOfWork
	payments PaymentGateway
	cache    AvailabilityCache
	clock    clock.Clock
	policy   booking.RefundPolicy
}

func NewCancellationUseCase(
	uow shared.UnitOfWork,
	payments PaymentGateway,
	cache AvailabilityCache,
	clk clock.Clock,
	settings Settings,
) CancellationCommands {
	return &cancellationUseCaseImpl{
		uow:      uow,
		payments: payments,
		cache:    cache,
		clock:    clk,
		policy:   settings.RefundPolicy,
	}
}

// CancelBooking refunds the most relevant captured payment, then releases the
// booking's items. The processor refund runs before any local write so a
// refund failure leaves the booking untouched.
func (uc *cancellationUseCaseImpl) CancelBooking(
	ctx context.Context,
	businessID, bookingID uuid.UUID,
	req CancelRequest,
) (*CancelResult, error) {
	snap, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, fromRepo(err, "booking not found")
	}
	if snap.BusinessID != businessID {
		return nil, errs.E(errs.KindNotFound, "booking not found")
	}
	bk, err := toBooking(snap)
	if err != nil {
		return nil, err
	}
	if err := bk.EnsureCancellable(); err != nil {
		return nil, err
	}

	bizSnap, err := uc.uow.CommandReads().BusinessByID(ctx, businessID)
	if err != nil {
		return nil, fromRepo(err, "business not found")
	}
	biz, err := toBusiness(bizSnap)
	if err != nil {
		return nil, err
	}

	paySnaps, err := uc.uow.CommandReads().PaymentsByBooking(ctx, bookingID)
	if err != nil {
		return nil, fromRepo(err, "failed to load payments")
	}
	payments := toPayments(paySnaps)

	reason := strings.TrimSpace(req.Reason)
	var (
		refunded *payment.Payment
		summary  *RefundSummary
	)
	if p := payment.SelectRefundable(payments); p != nil && p.HasExternalRef() {
		stripeAccount, err := stripeAccountOf(biz)
		if err != nil {
			return nil, err
		}
		now := uc.clock.Now()
		decision := uc.policy.Decide(p.Amount(), bk.Window().Start(), now, req.FullRefund)

		result, err := uc.payments.Refund(ctx, RefundRequest{
			StripeAccount:   stripeAccount,
			PaymentIntentID: *p.ExternalRef(),
			Amount:          decision.Amount,
			Metadata: map[string]string{
				"prismaBookingId":  bk.ID().String(),
				"prismaPaymentId":  p.ID().String(),
				"refundPercentage": strconv.FormatInt(decision.Percentage, 10),
				"isWithin24Hours":  strconv.FormatBool(decision.IsWithinWindow),
				"reason":           reason,
			},
			IdempotencyKey: fmt.Sprintf("refund-%s-%d", p.ID(), decision.Amount.Int64()),
		})
		if err != nil {
			slog.Error("refund failed", "booking_id", bk.ID(), "payment_id", p.ID(), "error", err.Error())
			return nil, external("failed to process refund", err)
		}

		p.ApplyRefund(decision.Amount, payment.RefundRecord{
			RefundID:         result.ID,
			RefundPercentage: decision.Percentage,
			IsWithin24Hours:  decision.IsWithinWindow,
			Reason:           reason,
			RefundedAt:       now.UTC().Format(time.RFC3339),
		}, now)
		refunded = p
		summary = &RefundSummary{
			RefundID:        result.ID,
			Amount:          decision.Amount,
			Percentage:      decision.Percentage,
			IsWithin24Hours: decision.IsWithinWindow,
		}
	}

	// A serialization retry reruns the callback, so the transition is applied
	// to a copy rebuilt from the snapshot on every attempt.
	var cancelled *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if refunded != nil {
			if terr := tx.Payments().SaveRefund(ctx, tx.DB(), refunded); terr != nil {
				return fromRepo(terr, "failed to record refund")
			}
		}
		current, terr := toBooking(snap)
		if terr != nil {
			return terr
		}
		if terr := current.Cancel(reason, uc.clock.Now()); terr != nil {
			return terr
		}
		if terr := tx.Bookings().Cancel(ctx, tx.DB(), current); terr != nil {
			return fromRepo(terr, "failed to cancel booking")
		}
		cancelled = current
		return nil
	})
	if err != nil {
		if summary != nil {
			slog.Error("refund issued but booking update failed",
				"booking_id", bk.ID(),
				"refund_id", summary.RefundID,
				"error", err.Error())
		}
		return nil, err
	}

	invalidateAvailability(ctx, uc.cache, businessID)

	attrs := []any{"booking_id", bk.ID(), "business_id", businessID}
	if summary != nil {
		attrs = append(attrs, "refund_amount", summary.Amount.String(), "refund_percentage", summary.Percentage)
	}
	slog.Info("booking cancelled", attrs...)

	return &CancelResult{BookingID: cancelled.ID(), Status: cancelled.Status(), Refund: summary}, nil
}
