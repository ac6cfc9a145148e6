package readstore

import (
	"context"

	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type InventoryReadQueries interface {
	ListInventoryByIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInventoryByIDsParams) ([]sqlc.InventoryItems, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryReadQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByIDs returns the business's items among ids; unknown ids are omitted.
func (r *InventoryReadStore) FindByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]shared.InventorySnapshot, error) {
	rows, err := r.queries.ListInventoryByIDs(ctx, r.db, sqlc.ListInventoryByIDsParams{
		BusinessID: businessID,
		Ids:        ids,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory items", err)
	}

	out := make([]shared.InventorySnapshot, len(rows))
	for i, row := range rows {
		out[i] = shared.InventorySnapshot{
			ID:         row.ID,
			BusinessID: row.BusinessID,
			Name:       row.Name,
			PriceCents: money.Cents(row.PriceCents),
			IsActive:   row.IsActive,
		}
	}
	return out, nil
}
