//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/readstore"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/tests/common/builder"
	readstoremock "bounce-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type mockDBTX struct {
	sqlc.DBTX
}

func bookingRow(id uuid.UUID) sqlc.Bookings {
	start := time.Date(2026, 6, 3, 17, 0, 0, 0, time.UTC)
	return sqlc.Bookings{
		ID:                id,
		BusinessID:        uuid.New(),
		Status:            "HOLD",
		EventDate:         pgconv.DateToPgtype(time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)),
		StartTime:         pgconv.TimeToPgtype(start),
		EndTime:           pgconv.TimeToPgtype(start.Add(4 * time.Hour)),
		EventTimeZone:     "America/Chicago",
		SubtotalCents:     10000,
		TaxCents:          800,
		TaxRate:           0.08,
		TotalCents:        10800,
		ExpiresAt:         pgconv.TimeToPgtype(builder.RefTime.Add(30 * time.Minute)),
		EventAddressLine1: pgconv.StringToPgtype("100 Main St"),
		EventCity:         pgconv.StringToPgtype("Austin"),
		EventState:        pgconv.StringToPgtype("TX"),
		EventPostalCode:   pgconv.StringToPgtype("78701"),
		EventCountry:      pgconv.StringToPgtype("US"),
		CreatedAt:         pgconv.TimeToPgtype(builder.RefTime),
		UpdatedAt:         pgconv.TimeToPgtype(builder.RefTime),
	}
}

// =============================================================================
// BookingReadStore Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	db := mockDBTX{}
	id := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockBookingReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking with items",
			setupMock: func(q *readstoremock.MockBookingReadQueries) {
				q.EXPECT().GetBookingByID(ctx, db, id).Return(bookingRow(id), nil)
				q.EXPECT().ListBookingItems(ctx, db, id).Return([]sqlc.BookingItems{{
					ID:          uuid.New(),
					BookingID:   id,
					InventoryID: uuid.New(),
					Name:        "Castle Bounce House",
					Quantity:    1,
					PriceCents:  10000,
					Status:      "HOLD",
				}}, nil)
			},
		},
		{
			name: "error: not found",
			setupMock: func(q *readstoremock.MockBookingReadQueries) {
				q.EXPECT().GetBookingByID(ctx, db, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(q *readstoremock.MockBookingReadQueries) {
				q.EXPECT().GetBookingByID(ctx, db, id).Return(sqlc.Bookings{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: item listing fails",
			setupMock: func(q *readstoremock.MockBookingReadQueries) {
				q.EXPECT().GetBookingByID(ctx, db, id).Return(bookingRow(id), nil)
				q.EXPECT().ListBookingItems(ctx, db, id).Return(nil, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			tc.setupMock(mockQueries)

			store := readstore.NewBookingReadStore(mockQueries, db)
			snap, err := store.FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Nil(t, snap)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, snap.ID)
			assert.Equal(t, money.Cents(10800), snap.TotalAmount)
			assert.Equal(t, "Austin", snap.EventAddress.City)
			require.NotNil(t, snap.ExpiresAt)
			assert.True(t, builder.RefTime.Add(30*time.Minute).Equal(*snap.ExpiresAt))
			assert.Nil(t, snap.CustomerID)
			require.Len(t, snap.Items, 1)
			assert.Equal(t, money.Cents(10000), snap.Items[0].Price)
		})
	}
}

func TestBookingReadStore_FindConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	db := mockDBTX{}
	inventoryID := uuid.New()
	from := time.Date(2026, 6, 3, 16, 0, 0, 0, time.UTC)
	to := from.Add(6 * time.Hour)

	mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
	mockQueries.EXPECT().ListConflictingItems(ctx, db, sqlc.ListConflictingItemsParams{
		InventoryIds: []uuid.UUID{inventoryID},
		RangeStart:   pgconv.TimeToPgtype(from),
		RangeEnd:     pgconv.TimeToPgtype(to),
	}).Return([]sqlc.ListConflictingItemsRow{
		{BookingID: uuid.New(), InventoryID: inventoryID, InventoryName: "Castle", Status: "CONFIRMED"},
		{BookingID: uuid.New(), InventoryID: inventoryID, InventoryName: "Castle", Status: "HOLD", ExpiresAt: pgconv.TimeToPgtype(builder.RefTime)},
	}, nil)

	conflicts, err := readstore.NewBookingReadStore(mockQueries, db).FindConflicts(ctx, []uuid.UUID{inventoryID}, from, to)

	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Nil(t, conflicts[0].ExpiresAt)
	require.NotNil(t, conflicts[1].ExpiresAt)
	assert.True(t, builder.RefTime.Equal(*conflicts[1].ExpiresAt))
}

// =============================================================================
// IdempotencyReadStore Tests
// =============================================================================

func TestIdempotencyReadStore_Get(t *testing.T) {
	ctx := context.Background()
	tx := mockDBTX{}
	key, businessID := uuid.New(), uuid.New()

	t.Run("success: completed record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		resultID := uuid.New()
		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		mockQueries.EXPECT().GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{Key: key, BusinessID: businessID}).
			Return(sqlc.IdempotencyKeys{
				Key:         key,
				BusinessID:  businessID,
				Endpoint:    "POST /bookings/hold",
				RequestHash: "abc123",
				Status:      "completed",
				ResultID:    pgtype.UUID{Bytes: resultID, Valid: true},
				ExpiresAt:   pgconv.TimeToPgtype(builder.RefTime),
			}, nil)

		rec, err := readstore.NewIdempotencyReadStore(mockQueries).Get(ctx, tx, key, businessID)

		require.NoError(t, err)
		assert.Equal(t, "completed", rec.Status)
		require.NotNil(t, rec.ResultID)
		assert.Equal(t, resultID, *rec.ResultID)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		mockQueries.EXPECT().GetIdempotencyKey(ctx, tx, gomock.Any()).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		rec, err := readstore.NewIdempotencyReadStore(mockQueries).Get(ctx, tx, key, businessID)

		require.Error(t, err)
		assert.Nil(t, rec)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// BookingViewStore Tests
// =============================================================================

func TestBookingViewStore_ListForDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	db := mockDBTX{}
	businessID := uuid.New()
	after := &queries.DashboardKey{CreatedAt: builder.RefTime, ID: uuid.New()}

	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	mockQueries.EXPECT().ListBookingsForDashboard(ctx, db, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListBookingsForDashboardParams) ([]sqlc.ListBookingsForDashboardRow, error) {
			assert.Equal(t, businessID, arg.BusinessID)
			assert.Equal(t, []string{}, arg.Statuses)
			assert.False(t, arg.StartFrom.Valid)
			assert.True(t, arg.AfterCreatedAt.Valid)
			assert.Equal(t, pgconv.UUIDToPgtype(after.ID), arg.AfterID)
			assert.Equal(t, int32(21), arg.Limit)
			return []sqlc.ListBookingsForDashboardRow{{
				ID:            uuid.New(),
				Status:        "CONFIRMED",
				TotalCents:    10800,
				CustomerName:  pgconv.StringToPgtype("Pat Parent"),
				ItemCount:     2,
				EventTimeZone: "America/Chicago",
				CreatedAt:     pgconv.TimeToPgtype(builder.RefTime),
			}}, nil
		})

	items, err := readstore.NewBookingViewStore(mockQueries, db).ListForDashboard(ctx, businessID, queries.DashboardFilters{}, after, 21)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, money.Cents(10800), items[0].TotalAmount)
	require.NotNil(t, items[0].CustomerName)
	assert.Equal(t, "Pat Parent", *items[0].CustomerName)
	assert.Nil(t, items[0].CustomerEmail)
	assert.Equal(t, int32(2), items[0].ItemCount)
}

func TestBookingViewStore_LatestInvoice(t *testing.T) {
	ctx := context.Background()
	db := mockDBTX{}
	bookingID := uuid.New()

	t.Run("error: none issued yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetLatestInvoiceByBooking(ctx, db, bookingID).Return(sqlc.Invoices{}, pgx.ErrNoRows)

		_, err := readstore.NewBookingViewStore(mockQueries, db).LatestInvoice(ctx, bookingID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("success: invoice projected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetLatestInvoiceByBooking(ctx, db, bookingID).Return(sqlc.Invoices{
			ID:             uuid.New(),
			ExternalID:     "in_123",
			Number:         "INV-0001",
			Status:         "open",
			AmountDueCents: 10800,
			HostedUrl:      "https://invoice.stripe.com/i/in_123",
			DueAt:          pgconv.TimeToPgtype(builder.RefTime.AddDate(0, 0, 7)),
		}, nil)

		inv, err := readstore.NewBookingViewStore(mockQueries, db).LatestInvoice(ctx, bookingID)

		require.NoError(t, err)
		assert.Equal(t, "INV-0001", inv.Number)
		assert.Equal(t, money.Cents(10800), inv.AmountDue)
	})
}
