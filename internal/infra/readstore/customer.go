package readstore

import (
	"context"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	GetCustomerByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCustomerByEmailParams) (sqlc.Customers, error)
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByEmail expects the email already normalized to lower case.
func (r *CustomerReadStore) FindByEmail(ctx context.Context, businessID uuid.UUID, email string) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomerByEmail(ctx, r.db, sqlc.GetCustomerByEmailParams{
		BusinessID: businessID,
		Email:      email,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}
	return toCustomerSnapshot(row), nil
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return toCustomerSnapshot(row), nil
}

func toCustomerSnapshot(row sqlc.Customers) *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:         row.ID,
		BusinessID: row.BusinessID,
		Email:      row.Email,
		Name:       row.Name,
		Phone:      pgconv.StringFromPgtype(row.Phone),
		Address: converter.AddressFromText(
			row.AddressLine1, row.AddressLine2, row.AddressCity,
			row.AddressState, row.AddressPostalCode, row.AddressCountry,
		),
		StripeCustomerID: pgconv.StringPtrFromPgtype(row.StripeCustomerID),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
