//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/tests/common/builder"
	queriesmock "bounce-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func newQueries(ctrl *gomock.Controller) (queries.BookingQueries, *queriesmock.MockBookingReadStore, *queriesmock.MockAvailabilityCache) {
	store := queriesmock.NewMockBookingReadStore(ctrl)
	cache := queriesmock.NewMockAvailabilityCache(ctrl)
	return queries.NewBookingQueries(store, cache, clock.NewMockClock(builder.RefTime)), store, cache
}

func listItems(n int) []*queries.BookingListItem {
	items := make([]*queries.BookingListItem, n)
	for i := range items {
		items[i] = &queries.BookingListItem{
			ID:        uuid.New(),
			Status:    "CONFIRMED",
			CreatedAt: builder.RefTime.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

// =============================================================================
// ListForDashboard Tests
// =============================================================================

func TestBookingQueries_ListForDashboard(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	t.Run("success: next cursor points at the last returned row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		rows := listItems(3)
		store.EXPECT().ListForDashboard(ctx, businessID, gomock.Any(), (*queries.DashboardKey)(nil), int32(3)).Return(rows, nil)

		items, next, err := q.ListForDashboard(ctx, businessID, queries.DashboardFilters{}, nil, 2)

		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(createdAt))
	})

	t.Run("success: last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		store.EXPECT().ListForDashboard(ctx, businessID, gomock.Any(), gomock.Any(), int32(queries.DefaultListLimit+1)).Return(listItems(1), nil)

		items, next, err := q.ListForDashboard(ctx, businessID, queries.DashboardFilters{}, nil, 0)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("success: cursor is decoded into a keyset bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		afterID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(builder.RefTime, afterID)}
		store.EXPECT().ListForDashboard(ctx, businessID, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, _ queries.DashboardFilters, after *queries.DashboardKey, _ int32) ([]*queries.BookingListItem, error) {
				require.NotNil(t, after)
				assert.Equal(t, afterID, after.ID)
				assert.True(t, builder.RefTime.Equal(after.CreatedAt))
				return nil, nil
			})

		_, _, err := q.ListForDashboard(ctx, businessID, queries.DashboardFilters{}, cursor, 10)
		require.NoError(t, err)
	})

	t.Run("error: malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, _, _ := newQueries(ctrl)
		_, _, err := q.ListForDashboard(ctx, businessID, queries.DashboardFilters{}, &queries.Cursor{After: "not-a-cursor"}, 10)

		require.Error(t, err)
		assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
	})

	t.Run("error: unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, _, _ := newQueries(ctrl)
		_, _, err := q.ListForDashboard(ctx, businessID, queries.DashboardFilters{Statuses: []string{"HOLD", "PAID"}}, nil, 10)

		require.Error(t, err)
		assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
		assert.Equal(t, "PAID", errs.DetailOf(err)["status"])
	})

	t.Run("error: store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		store.EXPECT().ListForDashboard(ctx, businessID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("list", errDBConnectionLost))

		_, _, err := q.ListForDashboard(ctx, businessID, queries.DashboardFilters{}, nil, 10)

		require.Error(t, err)
		assert.Equal(t, errs.KindPersistence, errs.KindOf(err))
	})
}

// =============================================================================
// Availability Tests
// =============================================================================

func TestBookingQueries_Availability(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	biz := &queries.BusinessView{ID: businessID, Name: "Jumpin' Jacks", TimeZone: "America/Chicago", Currency: "usd"}

	live := builder.RefTime.Add(10 * time.Minute)
	lapsed := builder.RefTime.Add(-time.Minute)
	slots := []queries.ReservedSlot{
		{BookingID: uuid.New(), InventoryID: uuid.New(), Status: "HOLD", ExpiresAt: &live},
		{BookingID: uuid.New(), InventoryID: uuid.New(), Status: "PENDING", ExpiresAt: &lapsed},
		{BookingID: uuid.New(), InventoryID: uuid.New(), Status: "CONFIRMED"},
	}

	t.Run("success: cache miss loads, stores and filters lapsed holds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, cache := newQueries(ctrl)
		from := time.Date(2026, 6, 3, 5, 0, 0, 0, time.UTC)
		to := time.Date(2026, 6, 5, 5, 0, 0, 0, time.UTC)

		store.EXPECT().BusinessByID(ctx, businessID).Return(biz, nil)
		cache.EXPECT().Get(ctx, businessID, "2026-06-03:2026-06-04").Return(queries.CacheEntry{Generation: 7}, nil)
		store.EXPECT().ReservedSlots(ctx, businessID, from, to).Return(slots, nil)
		cache.EXPECT().Set(ctx, businessID, "2026-06-03:2026-06-04", int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, _ string, _ int64, view *queries.AvailabilityView) error {
				assert.Len(t, view.Reserved, 3, "the cached view keeps every stored slot")
				return nil
			})

		view, err := q.Availability(ctx, businessID, "2026-06-03", "2026-06-04")

		require.NoError(t, err)
		assert.Equal(t, "America/Chicago", view.TimeZone)
		require.Len(t, view.Reserved, 2)
		assert.Equal(t, "HOLD", view.Reserved[0].Status)
		assert.Equal(t, "CONFIRMED", view.Reserved[1].Status)
	})

	t.Run("success: cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, cache := newQueries(ctrl)
		cached := &queries.AvailabilityView{BusinessID: businessID, TimeZone: "America/Chicago", Reserved: slots}

		store.EXPECT().BusinessByID(ctx, businessID).Return(biz, nil)
		cache.EXPECT().Get(ctx, businessID, gomock.Any()).Return(queries.CacheEntry{View: cached, Generation: 2}, nil)

		view, err := q.Availability(ctx, businessID, "2026-06-03", "2026-06-04")

		require.NoError(t, err)
		assert.Len(t, view.Reserved, 2)
		assert.Len(t, cached.Reserved, 3, "the cached view is not mutated")
	})

	t.Run("success: cache read errors fall through to the store without a write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, cache := newQueries(ctrl)
		store.EXPECT().BusinessByID(ctx, businessID).Return(biz, nil)
		cache.EXPECT().Get(ctx, businessID, gomock.Any()).Return(queries.CacheEntry{}, errors.New("redis down"))
		store.EXPECT().ReservedSlots(ctx, businessID, gomock.Any(), gomock.Any()).Return(nil, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		view, err := q.Availability(ctx, businessID, "2026-06-03", "2026-06-03")

		require.NoError(t, err)
		assert.Empty(t, view.Reserved)
	})

	t.Run("success: cache write errors are tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, cache := newQueries(ctrl)
		store.EXPECT().BusinessByID(ctx, businessID).Return(biz, nil)
		cache.EXPECT().Get(ctx, businessID, gomock.Any()).Return(queries.CacheEntry{Generation: 1}, nil)
		store.EXPECT().ReservedSlots(ctx, businessID, gomock.Any(), gomock.Any()).Return(nil, nil)
		cache.EXPECT().Set(ctx, businessID, gomock.Any(), int64(1), gomock.Any()).Return(errors.New("redis down"))

		view, err := q.Availability(ctx, businessID, "2026-06-03", "2026-06-03")

		require.NoError(t, err)
		assert.Empty(t, view.Reserved)
	})

	t.Run("error: range too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		store.EXPECT().BusinessByID(ctx, businessID).Return(biz, nil)

		_, err := q.Availability(ctx, businessID, "2026-01-01", "2026-12-31")

		require.Error(t, err)
		assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
	})

	t.Run("error: to before from", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		store.EXPECT().BusinessByID(ctx, businessID).Return(biz, nil)

		_, err := q.Availability(ctx, businessID, "2026-06-04", "2026-06-03")

		require.Error(t, err)
		assert.Equal(t, errs.KindInvalidRequest, errs.KindOf(err))
	})

	t.Run("error: unknown business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		store.EXPECT().BusinessByID(ctx, businessID).Return(nil, infra.WrapRepoErr("business", nil, infra.KindNotFound))

		_, err := q.Availability(ctx, businessID, "2026-06-03", "2026-06-04")

		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

// =============================================================================
// Detail Tests
// =============================================================================

func bookingDetail(businessID uuid.UUID, status string, expiresAt *time.Time) *queries.BookingDetail {
	start := time.Date(2026, 6, 3, 17, 0, 0, 0, time.UTC)
	return &queries.BookingDetail{
		ID:            uuid.New(),
		BusinessID:    businessID,
		Status:        status,
		EventDate:     time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime:     start,
		EndTime:       start.Add(4 * time.Hour),
		EventTimeZone: "America/Chicago",
		ExpiresAt:     expiresAt,
		Totals:        queries.TotalsView{Subtotal: 10000, Tax: 800, TaxRate: 0.08, Total: 10800},
	}
}

func TestBookingQueries_PublicDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("success: local times and live status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		live := builder.RefTime.Add(10 * time.Minute)
		d := bookingDetail(uuid.New(), "HOLD", &live)
		store.EXPECT().BookingByID(ctx, d.ID).Return(d, nil)

		view, err := q.PublicDetail(ctx, d.ID)

		require.NoError(t, err)
		assert.Equal(t, "HOLD", view.Status)
		assert.Equal(t, "2026-06-03", view.EventDate)
		assert.Equal(t, "12:00", view.StartTime)
		assert.Equal(t, "16:00", view.EndTime)
	})

	t.Run("success: lapsed hold reads as expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		lapsed := builder.RefTime.Add(-time.Second)
		d := bookingDetail(uuid.New(), "PENDING", &lapsed)
		store.EXPECT().BookingByID(ctx, d.ID).Return(d, nil)

		view, err := q.PublicDetail(ctx, d.ID)

		require.NoError(t, err)
		assert.Equal(t, "EXPIRED", view.Status)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		id := uuid.New()
		store.EXPECT().BookingByID(ctx, id).Return(nil, infra.WrapRepoErr("booking", nil, infra.KindNotFound))

		_, err := q.PublicDetail(ctx, id)

		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestBookingQueries_EditDetail(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	t.Run("success: customer, payments and no invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		customerID := uuid.New()
		d := bookingDetail(businessID, "CONFIRMED", nil)
		d.CustomerID = &customerID

		store.EXPECT().BookingByID(ctx, d.ID).Return(d, nil)
		store.EXPECT().CustomerByID(ctx, customerID).Return(&queries.CustomerView{ID: customerID, Email: "parent@example.com"}, nil)
		store.EXPECT().PaymentsByBooking(ctx, d.ID).Return([]queries.PaymentView{{ID: uuid.New(), Status: "COMPLETED", Amount: 10800}}, nil)
		store.EXPECT().LatestInvoice(ctx, d.ID).Return(nil, infra.WrapRepoErr("invoice", nil, infra.KindNotFound))

		view, err := q.EditDetail(ctx, businessID, d.ID)

		require.NoError(t, err)
		require.NotNil(t, view.Customer)
		assert.Equal(t, "parent@example.com", view.Customer.Email)
		assert.Nil(t, view.Coupon)
		assert.Len(t, view.Payments, 1)
		assert.Nil(t, view.Invoice)
	})

	t.Run("error: booking of another business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		d := bookingDetail(uuid.New(), "CONFIRMED", nil)
		store.EXPECT().BookingByID(ctx, d.ID).Return(d, nil)

		_, err := q.EditDetail(ctx, businessID, d.ID)

		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("error: invoice lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q, store, _ := newQueries(ctrl)
		d := bookingDetail(businessID, "CONFIRMED", nil)
		store.EXPECT().BookingByID(ctx, d.ID).Return(d, nil)
		store.EXPECT().PaymentsByBooking(ctx, d.ID).Return(nil, nil)
		store.EXPECT().LatestInvoice(ctx, d.ID).Return(nil, infra.WrapRepoErr("invoice", errDBConnectionLost))

		_, err := q.EditDetail(ctx, businessID, d.ID)

		require.Error(t, err)
		assert.Equal(t, errs.KindPersistence, errs.KindOf(err))
	})
}
