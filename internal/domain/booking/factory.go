package booking

import (
	"time"

	"bounce-booking/internal/domain/business"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

const DefaultHoldTTL = 30 * time.Minute

type HoldItemSpec struct {
	InventoryID uuid.UUID
	Name        string
	UnitPrice   money.Cents
	Quantity    int32
}

type HoldSpec struct {
	EventDate time.Time
	Window    TimeWindow
	TimeZone  string
	Items     []HoldItemSpec
	Event     EventDetails
}

type Factory struct {
	Clock   clock.Clock
	HoldTTL time.Duration
}

func NewFactory(clock clock.Clock, holdTTL time.Duration) *Factory {
	if holdTTL <= 0 {
		holdTTL = DefaultHoldTTL
	}
	return &Factory{Clock: clock, HoldTTL: holdTTL}
}

// CreateHold validates the business booking rules and returns a HOLD with
// zero totals that expires after the hold TTL.
func (f *Factory) CreateHold(biz *business.Business, spec HoldSpec) (*Booking, error) {
	now := f.Clock.Now()

	if len(spec.Items) == 0 {
		return nil, errs.E(errs.KindInvalidRequest, ErrNoItems.Error()).WithCause(ErrNoItems)
	}
	if err := spec.Event.Validate(); err != nil {
		return nil, errs.E(errs.KindInvalidRequest, err.Error()).WithCause(err)
	}
	if err := biz.ValidateNotice(spec.Window.Start(), now); err != nil {
		return nil, err
	}

	buffered := spec.Window.Buffered(biz.BufferBefore(), biz.BufferAfter())
	items := make([]Item, 0, len(spec.Items))
	var total money.Cents
	for _, in := range spec.Items {
		item, err := newItem(in.InventoryID, in.Name, in.Quantity, in.UnitPrice, spec.Window, buffered, StatusHold)
		if err != nil {
			return nil, errs.E(errs.KindInvalidRequest, err.Error()).
				WithCause(err).
				WithDetail("inventoryItemId", in.InventoryID.String())
		}
		items = append(items, item)
		total += item.LineTotal()
	}

	if err := biz.ValidateMinimumAmount(total); err != nil {
		return nil, err
	}

	expires := now.Add(f.HoldTTL)
	return &Booking{
		id:            uuid.New(),
		businessID:    biz.ID(),
		status:        StatusHold,
		eventDate:     spec.EventDate,
		window:        spec.Window,
		eventTimeZone: spec.TimeZone,
		expiresAt:     &expires,
		event:         spec.Event,
		items:         items,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}
