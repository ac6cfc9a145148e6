package repository

import (
	"context"

	"bounce-booking/internal/domain/customer"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) error
	UpdateCustomerContact(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerContactParams) (int64, error)
	SetCustomerStripeID(ctx context.Context, db sqlc.DBTX, arg sqlc.SetCustomerStripeIDParams) error
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error {
	if err := r.queries.CreateCustomer(ctx, tx, converter.CustomerToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error {
	rows, err := r.queries.UpdateCustomerContact(ctx, tx, converter.CustomerToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) SetStripeCustomer(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID, stripeCustomerID string) error {
	err := r.queries.SetCustomerStripeID(ctx, tx, sqlc.SetCustomerStripeIDParams{
		ID:               customerID,
		StripeCustomerID: pgconv.StringToPgtype(stripeCustomerID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link stripe customer", err)
	}
	return nil
}
