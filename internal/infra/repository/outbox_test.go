//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/tests/common/builder"
	repositorymock "bounce-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Idempotency Tests
// =============================================================================

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	tx := mockDBTX{}
	key, businessID := uuid.New(), uuid.New()

	testCases := []struct {
		name        string
		rows        int64
		mockErr     error
		expectClaim bool
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: key claimed", rows: 1, expectClaim: true},
		{name: "success: key already held", rows: 0, expectClaim: false},
		{name: "error: database failure", mockErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			queries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			queries.EXPECT().TryInsertIdempotencyKey(ctx, tx, sqlc.TryInsertIdempotencyKeyParams{
				Key:         key,
				BusinessID:  businessID,
				Endpoint:    "POST /bookings/hold",
				RequestHash: "abc123",
				ExpiresAt:   pgconv.TimeToPgtype(builder.RefTime.Add(24 * time.Hour)),
				CreatedAt:   pgconv.TimeToPgtype(builder.RefTime),
			}).Return(tc.rows, tc.mockErr)

			repo := repository.NewIdempotencyRepository(queries, tx)
			claimed, err := repo.TryInsert(ctx, tx, key, businessID, "POST /bookings/hold", "abc123", builder.RefTime, builder.RefTime.Add(24*time.Hour))

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectClaim, claimed)
		})
	}
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := mockDBTX{}
	queries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	queries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(builder.RefTime)).Return(int64(7), nil)

	n, err := repository.NewIdempotencyRepository(queries, tx).DeleteExpired(ctx, tx, builder.RefTime)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

// =============================================================================
// Notification Outbox Tests
// =============================================================================

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tx := mockDBTX{}
	queries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	row := sqlc.NotificationJobs{
		ID:       uuid.New(),
		Kind:     "invoice_ready",
		Topic:    uuid.NewString(),
		Payload:  []byte(`{"to":"parent@example.com"}`),
		Status:   "queued",
		Attempts: 2,
		RunAt:    pgconv.TimeToPgtype(builder.RefTime),
	}
	queries.EXPECT().ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(builder.RefTime),
		Limit: 20,
	}).Return([]sqlc.NotificationJobs{row}, nil)

	jobs, err := repository.NewNotificationRepository(queries, tx).ClaimDue(ctx, tx, builder.RefTime, 20)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, row.ID, jobs[0].ID)
	assert.Equal(t, "invoice_ready", jobs[0].Kind)
	assert.Equal(t, int32(2), jobs[0].Attempts)
	assert.True(t, builder.RefTime.Equal(jobs[0].RunAt))
}

func TestNotificationRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	tx := mockDBTX{}
	id := uuid.New()
	next := builder.RefTime.Add(4 * time.Minute)

	testCases := []struct {
		name         string
		giveUp       bool
		expectStatus string
	}{
		{name: "success: rescheduled", giveUp: false, expectStatus: "queued"},
		{name: "success: parked after the last attempt", giveUp: true, expectStatus: "failed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			queries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			queries.EXPECT().MarkNotificationJobFailed(ctx, tx, sqlc.MarkNotificationJobFailedParams{
				ID:        id,
				Status:    tc.expectStatus,
				Attempts:  3,
				RunAt:     pgconv.TimeToPgtype(next),
				LastError: pgtype.Text{String: "smtp timeout", Valid: true},
			}).Return(nil)

			err := repository.NewNotificationRepository(queries, tx).MarkFailed(ctx, tx, id, 3, next, "smtp timeout", tc.giveUp)
			require.NoError(t, err)
		})
	}
}
