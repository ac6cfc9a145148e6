package commands

import (
	"context"
	"log/slog"

	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SweepCommands interface {
	// ExpireStaleHolds flips HOLD and PENDING bookings past their expiry to
	// EXPIRED and reports how many were released.
	ExpireStaleHolds(ctx context.Context) (int, error)
	// PurgeIdempotencyKeys deletes idempotency records past their retention.
	PurgeIdempotencyKeys(ctx context.Context) (int64, error)
}

type sweepUseCaseImpl struct {
	uow       shared.UnitOfWork
	cache     AvailabilityCache
	clock     clock.Clock
	batchSize int32
}

func NewSweepUseCase(uow shared.UnitOfWork, cache AvailabilityCache, clk clock.Clock, settings Settings) SweepCommands {
	return &sweepUseCaseImpl{
		uow:       uow,
		cache:     cache,
		clock:     clk,
		batchSize: settings.SweepBatchSize,
	}
}

func (uc *sweepUseCaseImpl) ExpireStaleHolds(ctx context.Context) (int, error) {
	var expired []shared.ExpiredBooking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var terr error
		expired, terr = tx.Bookings().ExpireStale(ctx, tx.DB(), uc.clock.Now(), uc.batchSize)
		return fromRepo(terr, "failed to expire stale bookings")
	})
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	touched := make(map[uuid.UUID]struct{}, len(expired))
	for _, e := range expired {
		if _, ok := touched[e.BusinessID]; ok {
			continue
		}
		touched[e.BusinessID] = struct{}{}
		invalidateAvailability(ctx, uc.cache, e.BusinessID)
	}

	slog.Info("expired stale bookings", "count", len(expired), "businesses", len(touched))
	return len(expired), nil
}

func (uc *sweepUseCaseImpl) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var terr error
		purged, terr = tx.Idempotency().DeleteExpired(ctx, tx.DB(), uc.clock.Now())
		return fromRepo(terr, "failed to purge idempotency keys")
	})
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		slog.Info("purged expired idempotency keys", "count", purged)
	}
	return purged, nil
}
