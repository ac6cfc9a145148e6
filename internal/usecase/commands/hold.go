package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/business"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/localtime"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const holdEndpoint = "POST /businesses/:businessId/holds"

type HoldItemRequest struct {
	InventoryItemID uuid.UUID   `json:"inventoryItemId"`
	Price           money.Cents `json:"price"`
	Quantity        int32       `json:"quantity"`
}

type CreateHoldRequest struct {
	EventDate     string            `json:"eventDate"`
	StartTime     string            `json:"startTime"`
	EndTime       string            `json:"endTime"`
	EventTimeZone string            `json:"eventTimeZone"`
	Items         []HoldItemRequest `json:"items"`
	Event         EventInput        `json:"event"`
}

type HoldResult struct {
	HoldID     uuid.UUID
	ExpiresAt  time.Time
	IsReplayed bool
}

type HoldCommands interface {
	CreateHold(ctx context.Context, businessID uuid.UUID, req CreateHoldRequest, idempotencyKey *uuid.UUID) (*HoldResult, error)
}

type holdUseCaseImpl struct {
	uow      shared.UnitOfWork
	factory  *booking.Factory
	cache    AvailabilityCache
	clock    clock.Clock
	settings Settings
}

func NewHoldUseCase(uow shared.UnitOfWork, clk clock.Clock, cache AvailabilityCache, settings Settings) HoldCommands {
	return &holdUseCaseImpl{
		uow:      uow,
		factory:  booking.NewFactory(clk, settings.HoldTTL),
		cache:    cache,
		clock:    clk,
		settings: settings,
	}
}

func (uc *holdUseCaseImpl) CreateHold(
	ctx context.Context,
	businessID uuid.UUID,
	req CreateHoldRequest,
	idempotencyKey *uuid.UUID,
) (*HoldResult, error) {
	bizSnap, err := uc.uow.CommandReads().BusinessByID(ctx, businessID)
	if err != nil {
		return nil, fromRepo(err, "business not found")
	}
	biz, err := toBusiness(bizSnap)
	if err != nil {
		return nil, err
	}

	if idempotencyKey != nil {
		replayed, err := uc.handleIdempotency(ctx, *idempotencyKey, businessID, requestHash(businessID, req))
		if err != nil || replayed != nil {
			return replayed, err
		}
	}

	result, err := uc.createHold(ctx, biz, req, idempotencyKey)
	if err != nil {
		if idempotencyKey != nil {
			uc.releaseKey(ctx, *idempotencyKey, businessID)
		}
		return nil, err
	}

	invalidateAvailability(ctx, uc.cache, businessID)
	return result, nil
}

func (uc *holdUseCaseImpl) handleIdempotency(ctx context.Context, key, businessID uuid.UUID, hash string) (*HoldResult, error) {
	now := uc.clock.Now()
	var claimed bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var terr error
		claimed, terr = tx.Idempotency().TryInsert(ctx, tx.DB(), key, businessID, holdEndpoint, hash, now, now.Add(uc.settings.IdempotencyTTL))
		return terr
	})
	if err != nil {
		return nil, fromRepo(err, "idempotency check failed")
	}
	if claimed {
		return nil, nil
	}

	rec, err := uc.uow.CommandReads().IdempotencyByKey(ctx, key, businessID)
	if err != nil {
		return nil, fromRepo(err, "idempotency check failed")
	}
	if rec.RequestHash != hash {
		return nil, errs.E(errs.KindConflict, "idempotency key was already used with a different request")
	}

	switch rec.Status {
	case shared.IdempotencyCompleted:
		if rec.ResultID == nil {
			return nil, errs.E(errs.KindPersistence, "completed request is missing its hold")
		}
		snap, err := uc.uow.CommandReads().BookingByID(ctx, *rec.ResultID)
		if err != nil {
			return nil, fromRepo(err, "hold not found")
		}
		var expiresAt time.Time
		if snap.ExpiresAt != nil {
			expiresAt = *snap.ExpiresAt
		}
		return &HoldResult{HoldID: snap.ID, ExpiresAt: expiresAt, IsReplayed: true}, nil
	default:
		return nil, errs.E(errs.KindConflict, "a request with this idempotency key is still in progress")
	}
}

func (uc *holdUseCaseImpl) createHold(
	ctx context.Context,
	biz *business.Business,
	req CreateHoldRequest,
	idempotencyKey *uuid.UUID,
) (*HoldResult, error) {
	spec, err := uc.buildSpec(ctx, biz, req)
	if err != nil {
		return nil, err
	}

	hold, err := uc.factory.CreateHold(biz, spec)
	if err != nil {
		return nil, err
	}

	inventoryIDs := hold.InventoryIDs()
	buffered := hold.Window().Buffered(biz.BufferBefore(), biz.BufferAfter())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		if _, terr := tx.Bookings().ExpireStaleForInventory(ctx, tx.DB(), inventoryIDs, now); terr != nil {
			return fromRepo(terr, "failed to release expired holds")
		}

		conflicts, terr := tx.Reads().ConflictingItems(ctx, inventoryIDs, buffered.Start(), buffered.End())
		if terr != nil {
			return fromRepo(terr, "failed to check availability")
		}
		for _, c := range conflicts {
			if booking.IsLive(booking.Status(c.Status), c.ExpiresAt, now) {
				return conflictError(c.InventoryID, c.InventoryName)
			}
		}

		if terr = tx.Bookings().CreateHold(ctx, tx.DB(), hold); terr != nil {
			if infra.IsKind(terr, infra.KindConflict) {
				return conflictError(inventoryIDs[0], "").WithCause(terr)
			}
			return fromRepo(terr, "failed to create hold")
		}

		if idempotencyKey != nil {
			if terr = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, biz.ID(), hold.ID()); terr != nil {
				return fromRepo(terr, "failed to complete idempotency key")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("hold created",
		"booking_id", hold.ID(),
		"business_id", biz.ID(),
		"items", len(hold.Items()),
		"expires_at", *hold.ExpiresAt())

	return &HoldResult{HoldID: hold.ID(), ExpiresAt: *hold.ExpiresAt()}, nil
}

func (uc *holdUseCaseImpl) buildSpec(ctx context.Context, biz *business.Business, req CreateHoldRequest) (booking.HoldSpec, error) {
	zone := localtime.ResolveZone(req.EventTimeZone, biz.TimeZone())
	start, end, err := localtime.Window(req.EventDate, req.StartTime, req.EndTime, zone)
	if err != nil {
		return booking.HoldSpec{}, err
	}
	eventDate, err := localtime.DateOnlyUTC(req.EventDate)
	if err != nil {
		return booking.HoldSpec{}, err
	}
	window, err := booking.NewTimeWindow(start, end)
	if err != nil {
		return booking.HoldSpec{}, invalid(err)
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	seen := make(map[uuid.UUID]struct{}, len(req.Items))
	for _, it := range req.Items {
		if _, dup := seen[it.InventoryItemID]; dup {
			return booking.HoldSpec{}, errs.E(errs.KindInvalidRequest, "each inventory item may appear only once").
				WithDetail("inventoryItemId", it.InventoryItemID.String())
		}
		seen[it.InventoryItemID] = struct{}{}
		ids = append(ids, it.InventoryItemID)
	}

	inventory, err := uc.uow.CommandReads().InventoryByIDs(ctx, biz.ID(), ids)
	if err != nil {
		return booking.HoldSpec{}, fromRepo(err, "failed to load inventory")
	}
	names := make(map[uuid.UUID]string, len(inventory))
	for _, inv := range inventory {
		if inv.IsActive {
			names[inv.ID] = inv.Name
		}
	}

	items := make([]booking.HoldItemSpec, 0, len(req.Items))
	for _, it := range req.Items {
		name, ok := names[it.InventoryItemID]
		if !ok {
			return booking.HoldSpec{}, errs.E(errs.KindNotFound, "inventory item not found").
				WithDetail("inventoryItemId", it.InventoryItemID.String())
		}
		items = append(items, booking.HoldItemSpec{
			InventoryID: it.InventoryItemID,
			Name:        name,
			UnitPrice:   it.Price,
			Quantity:    it.Quantity,
		})
	}

	return booking.HoldSpec{
		EventDate: eventDate,
		Window:    window,
		TimeZone:  zone,
		Items:     items,
		Event: booking.EventDetails{
			Address:             req.Event.Address.Normalize(),
			ParticipantCount:    req.Event.ParticipantCount,
			SpecialInstructions: req.Event.SpecialInstructions,
		},
	}, nil
}

func (uc *holdUseCaseImpl) releaseKey(ctx context.Context, key, businessID uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, businessID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key, "error", err.Error())
	}
}

func conflictError(inventoryID uuid.UUID, name string) *errs.Error {
	msg := "inventory item is not available for the selected time"
	if name != "" {
		msg = name + " is not available for the selected time"
	}
	e := errs.E(errs.KindConflict, msg).WithDetail("inventoryItemId", inventoryID.String())
	if name != "" {
		e = e.WithDetail("inventoryItemName", name)
	}
	return e
}

func requestHash(businessID uuid.UUID, req any) string {
	data, _ := json.Marshal(struct {
		BusinessID uuid.UUID `json:"businessId"`
		Request    any       `json:"request"`
	}{businessID, req})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
