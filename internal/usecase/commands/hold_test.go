//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/shared"
	"bounce-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type holdFixture struct {
	biz         *builder.BusinessBuilder
	inventoryID uuid.UUID
	req         commands.CreateHoldRequest
}

// newHoldFixture requests 12:00-16:00 Chicago time two days after RefTime.
func newHoldFixture() *holdFixture {
	inventoryID := uuid.New()
	participants := int32(15)
	return &holdFixture{
		biz:         builder.NewBusinessBuilder(),
		inventoryID: inventoryID,
		req: commands.CreateHoldRequest{
			EventDate: "2026-06-03",
			StartTime: "12:00",
			EndTime:   "16:00",
			Items: []commands.HoldItemRequest{
				{InventoryItemID: inventoryID, Price: 10000, Quantity: 1},
			},
			Event: commands.EventInput{
				Address:          address.Address{Line1: "100 Main St", City: "Austin", State: "TX", PostalCode: "78701"},
				ParticipantCount: &participants,
			},
		},
	}
}

func (f *holdFixture) inventory() []shared.InventorySnapshot {
	return []shared.InventorySnapshot{
		{ID: f.inventoryID, BusinessID: f.biz.ID, Name: "Castle Bounce House", PriceCents: 10000, IsActive: true},
	}
}

func (f *holdFixture) expectLoad(m *uowMocks) {
	m.reads.EXPECT().BusinessByID(gomock.Any(), f.biz.ID).Return(f.biz.BuildSnapshot(), nil)
}

func (f *holdFixture) expectInventory(m *uowMocks) {
	m.reads.EXPECT().InventoryByIDs(gomock.Any(), f.biz.ID, []uuid.UUID{f.inventoryID}).Return(f.inventory(), nil)
}

// =============================================================================
// CreateHold Tests
// =============================================================================

func TestHold_CreateHold(t *testing.T) {
	ctx := context.Background()
	heldStart := time.Date(2026, 6, 3, 17, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		mutate     func(*holdFixture)
		setupMocks func(*holdFixture, *uowMocks, *portMocks)
		expectKind errs.Kind
		assertErr  func(*testing.T, error)
	}{
		{
			name: "success: hold created for a free slot",
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				f.expectLoad(m)
				f.expectInventory(m)
				m.bookings.EXPECT().ExpireStaleForInventory(gomock.Any(), gomock.Any(), []uuid.UUID{f.inventoryID}, builder.RefTime).Return(int64(0), nil)
				m.reads.EXPECT().ConflictingItems(gomock.Any(), []uuid.UUID{f.inventoryID}, heldStart.Add(-time.Hour), heldStart.Add(5*time.Hour)).Return(nil, nil)
				m.bookings.EXPECT().CreateHold(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, b *booking.Booking) error {
						assert.Equal(t, booking.StatusHold, b.Status())
						assert.True(t, b.Window().Start().Equal(heldStart))
						assert.True(t, b.Totals().IsZero())
						require.Len(t, b.Items(), 1)
						assert.Equal(t, "Castle Bounce House", b.Items()[0].Name())
						return nil
					})
				p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
			},
		},
		{
			name: "success: lapsed hold on the same item does not block",
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				lapsed := builder.RefTime.Add(-time.Minute)
				f.expectLoad(m)
				f.expectInventory(m)
				m.bookings.EXPECT().ExpireStaleForInventory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.reads.EXPECT().ConflictingItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.ConflictSnapshot{
					{BookingID: uuid.New(), InventoryID: f.inventoryID, InventoryName: "Castle Bounce House", Status: "HOLD", ExpiresAt: &lapsed},
				}, nil)
				m.bookings.EXPECT().CreateHold(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)
			},
		},
		{
			name: "error: live hold on the same item",
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				live := builder.RefTime.Add(10 * time.Minute)
				f.expectLoad(m)
				f.expectInventory(m)
				m.bookings.EXPECT().ExpireStaleForInventory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.reads.EXPECT().ConflictingItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.ConflictSnapshot{
					{BookingID: uuid.New(), InventoryID: f.inventoryID, InventoryName: "Castle Bounce House", Status: "HOLD", ExpiresAt: &live},
				}, nil)
			},
			expectKind: errs.KindConflict,
			assertErr: func(t *testing.T, err error) {
				detail := errs.DetailOf(err)
				assert.Equal(t, "Castle Bounce House", detail["inventoryItemName"])
			},
		},
		{
			name: "error: confirmed booking on the same item",
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				f.expectLoad(m)
				f.expectInventory(m)
				m.bookings.EXPECT().ExpireStaleForInventory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.reads.EXPECT().ConflictingItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.ConflictSnapshot{
					{BookingID: uuid.New(), InventoryID: f.inventoryID, InventoryName: "Castle Bounce House", Status: "CONFIRMED"},
				}, nil)
			},
			expectKind: errs.KindConflict,
		},
		{
			name: "error: concurrent insert loses the race",
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				f.expectLoad(m)
				f.expectInventory(m)
				m.bookings.EXPECT().ExpireStaleForInventory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.reads.EXPECT().ConflictingItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().CreateHold(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("exclusion violation", nil, infra.KindConflict))
			},
			expectKind: errs.KindConflict,
		},
		{
			name: "error: business not found",
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				m.reads.EXPECT().BusinessByID(gomock.Any(), f.biz.ID).Return(nil, notFound("business"))
			},
			expectKind: errs.KindNotFound,
		},
		{
			name: "error: duplicate inventory item",
			mutate: func(f *holdFixture) {
				f.req.Items = append(f.req.Items, f.req.Items[0])
			},
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				f.expectLoad(m)
			},
			expectKind: errs.KindInvalidRequest,
		},
		{
			name: "error: inactive inventory item",
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				f.expectLoad(m)
				inv := f.inventory()
				inv[0].IsActive = false
				m.reads.EXPECT().InventoryByIDs(gomock.Any(), f.biz.ID, gomock.Any()).Return(inv, nil)
			},
			expectKind: errs.KindNotFound,
		},
		{
			name: "error: less notice than the business requires",
			mutate: func(f *holdFixture) {
				f.req.EventDate = "2026-06-01"
				f.req.StartTime = "18:00"
				f.req.EndTime = "20:00"
			},
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				f.expectLoad(m)
				f.expectInventory(m)
			},
			expectKind: errs.KindInvalidRequest,
			assertErr: func(t *testing.T, err error) {
				assert.Equal(t, "minNoticeHours", errs.DetailOf(err)["bound"])
			},
		},
		{
			name: "error: order below business minimum",
			mutate: func(f *holdFixture) {
				f.req.Items[0].Price = 1000
			},
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				f.expectLoad(m)
				f.expectInventory(m)
			},
			expectKind: errs.KindInvalidRequest,
		},
		{
			name: "error: end before start",
			mutate: func(f *holdFixture) {
				f.req.StartTime = "16:00"
				f.req.EndTime = "12:00"
			},
			setupMocks: func(f *holdFixture, m *uowMocks, p *portMocks) {
				f.expectLoad(m)
			},
			expectKind: errs.KindInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newHoldFixture()
			if tc.mutate != nil {
				tc.mutate(f)
			}
			m := newUoWMocks(ctrl)
			p := newPortMocks(ctrl)
			tc.setupMocks(f, m, p)

			uc := commands.NewHoldUseCase(m.uow, newTestClock(), p.cache, testSettings())
			result, err := uc.CreateHold(ctx, f.biz.ID, f.req, nil)

			if tc.expectKind != "" {
				requireKind(t, err, tc.expectKind)
				assert.Nil(t, result)
				if tc.assertErr != nil {
					tc.assertErr(t, err)
				}
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, result.HoldID)
			assert.Equal(t, builder.RefTime.Add(30*time.Minute), result.ExpiresAt)
			assert.False(t, result.IsReplayed)
		})
	}
}

// =============================================================================
// Idempotency Tests
// =============================================================================

func TestHold_CreateHold_Idempotency(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	t.Run("success: first request claims and completes the key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHoldFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(m)
		f.expectInventory(m)
		m.idempotency.EXPECT().
			TryInsert(gomock.Any(), gomock.Any(), key, f.biz.ID, gomock.Any(), gomock.Any(), builder.RefTime, builder.RefTime.Add(24*time.Hour)).
			Return(true, nil)
		m.bookings.EXPECT().ExpireStaleForInventory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.reads.EXPECT().ConflictingItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.bookings.EXPECT().CreateHold(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, f.biz.ID, gomock.Any()).Return(nil)
		p.cache.EXPECT().Invalidate(gomock.Any(), f.biz.ID).Return(nil)

		uc := commands.NewHoldUseCase(m.uow, newTestClock(), p.cache, testSettings())
		result, err := uc.CreateHold(ctx, f.biz.ID, f.req, &key)

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
	})

	t.Run("success: completed key replays the original hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHoldFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)
		original := builder.NewBookingBuilder().WithBusinessID(f.biz.ID)

		var hash string
		f.expectLoad(m)
		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, f.biz.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, h string, _, _ time.Time) (bool, error) {
				hash = h
				return false, nil
			})
		m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, f.biz.ID).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				id := original.ID
				return &shared.IdempotencyRecord{
					Key: key, BusinessID: f.biz.ID, Status: shared.IdempotencyCompleted, RequestHash: hash, ResultID: &id,
				}, nil
			})
		m.reads.EXPECT().BookingByID(gomock.Any(), original.ID).Return(original.BuildSnapshot(t), nil)

		uc := commands.NewHoldUseCase(m.uow, newTestClock(), p.cache, testSettings())
		result, err := uc.CreateHold(ctx, f.biz.ID, f.req, &key)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, original.ID, result.HoldID)
		assert.Equal(t, *original.ExpiresAt, result.ExpiresAt)
	})

	t.Run("error: key reused with a different request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHoldFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		f.expectLoad(m)
		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, f.biz.ID).Return(&shared.IdempotencyRecord{
			Key: key, BusinessID: f.biz.ID, Status: shared.IdempotencyCompleted, RequestHash: "other",
		}, nil)

		uc := commands.NewHoldUseCase(m.uow, newTestClock(), p.cache, testSettings())
		_, err := uc.CreateHold(ctx, f.biz.ID, f.req, &key)

		requireKind(t, err, errs.KindConflict)
	})

	t.Run("error: key still processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHoldFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)

		var hash string
		f.expectLoad(m)
		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, h string, _, _ time.Time) (bool, error) {
				hash = h
				return false, nil
			})
		m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, f.biz.ID).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{Key: key, Status: shared.IdempotencyProcessing, RequestHash: hash}, nil
			})

		uc := commands.NewHoldUseCase(m.uow, newTestClock(), p.cache, testSettings())
		_, err := uc.CreateHold(ctx, f.biz.ID, f.req, &key)

		requireKind(t, err, errs.KindConflict)
	})

	t.Run("error: failed hold releases the key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newHoldFixture()
		m := newUoWMocks(ctrl)
		p := newPortMocks(ctrl)
		live := builder.RefTime.Add(10 * time.Minute)

		f.expectLoad(m)
		f.expectInventory(m)
		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.bookings.EXPECT().ExpireStaleForInventory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.reads.EXPECT().ConflictingItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.ConflictSnapshot{
			{InventoryID: f.inventoryID, InventoryName: "Castle Bounce House", Status: "PENDING", ExpiresAt: &live},
		}, nil)
		m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, f.biz.ID).Return(nil)

		uc := commands.NewHoldUseCase(m.uow, newTestClock(), p.cache, testSettings())
		_, err := uc.CreateHold(ctx, f.biz.ID, f.req, &key)

		requireKind(t, err, errs.KindConflict)
	})
}
