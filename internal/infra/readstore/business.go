package readstore

import (
	"context"

	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BusinessReadQueries interface {
	GetBusinessByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Businesses, error)
}

type BusinessReadStore struct {
	queries BusinessReadQueries
	db      sqlc.DBTX
}

func NewBusinessReadStore(queries BusinessReadQueries, db sqlc.DBTX) *BusinessReadStore {
	return &BusinessReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.BusinessSnapshot, error) {
	row, err := r.queries.GetBusinessByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business by ID", err)
	}

	return &shared.BusinessSnapshot{
		ID:                row.ID,
		Name:              row.Name,
		TimeZone:          row.TimeZone,
		MinNoticeHours:    int(row.MinNoticeHours),
		MaxNoticeHours:    int(row.MaxNoticeHours),
		MinBookingAmount:  money.Cents(row.MinBookingAmountCents),
		BufferBeforeHours: int(row.BufferBeforeHours),
		BufferAfterHours:  int(row.BufferAfterHours),
		DefaultTaxRate:    row.DefaultTaxRate,
		StripeAccountID:   pgconv.StringPtrFromPgtype(row.StripeAccountID),
		Currency:          row.Currency,
	}, nil
}
