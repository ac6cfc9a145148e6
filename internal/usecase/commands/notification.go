package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/shared"
)

type DispatchResult struct {
	Sent   int
	Failed int
}

type NotificationCommands interface {
	// DispatchPending sends outbox jobs that are due.
	DispatchPending(ctx context.Context) (*DispatchResult, error)
}

type notificationUseCaseImpl struct {
	uow         shared.UnitOfWork
	notifier    Notifier
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewNotificationUseCase(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock, settings Settings) NotificationCommands {
	return &notificationUseCaseImpl{
		uow:         uow,
		notifier:    notifier,
		clock:       clk,
		batchSize:   settings.DispatchBatch,
		maxAttempts: settings.MaxSendAttempt,
	}
}

// DispatchPending claims due jobs and sends each one inside the claiming
// transaction, so a concurrent dispatcher skips the locked rows.
func (uc *notificationUseCaseImpl) DispatchPending(ctx context.Context) (*DispatchResult, error) {
	result := &DispatchResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result.Sent, result.Failed = 0, 0
		jobs, terr := tx.Notifications().ClaimDue(ctx, tx.DB(), uc.clock.Now(), uc.batchSize)
		if terr != nil {
			return fromRepo(terr, "failed to claim notifications")
		}

		for _, job := range jobs {
			sendErr := uc.send(ctx, job)
			now := uc.clock.Now()
			if sendErr == nil {
				if terr := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); terr != nil {
					return fromRepo(terr, "failed to mark notification sent")
				}
				result.Sent++
				continue
			}

			attempts := job.Attempts + 1
			giveUp := attempts >= uc.maxAttempts
			slog.Warn("notification send failed",
				"job_id", job.ID,
				"kind", job.Kind,
				"attempts", attempts,
				"give_up", giveUp,
				"error", sendErr.Error())
			if terr := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, attempts, now.Add(retryDelay(attempts)), sendErr.Error(), giveUp); terr != nil {
				return fromRepo(terr, "failed to mark notification failed")
			}
			result.Failed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Sent+result.Failed > 0 {
		slog.Info("notifications dispatched", "sent", result.Sent, "failed", result.Failed)
	}
	return result, nil
}

func (uc *notificationUseCaseImpl) send(ctx context.Context, job shared.NotificationJob) error {
	switch job.Kind {
	case NotificationInvoiceReady:
		var msg InvoiceReadyMessage
		if err := json.Unmarshal(job.Payload, &msg); err != nil {
			return errs.Wrap(err, "decode notification payload")
		}
		_, err := uc.notifier.SendInvoiceReady(ctx, msg)
		return err
	default:
		return errs.New("unknown notification kind " + job.Kind)
	}
}

// retryDelay doubles from one minute per attempt, capped at one hour.
func retryDelay(attempts int32) time.Duration {
	d := time.Minute
	for i := int32(1); i < attempts && d < time.Hour; i++ {
		d *= 2
	}
	if d > time.Hour {
		d = time.Hour
	}
	return d
}
