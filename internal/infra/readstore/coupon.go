package readstore

import (
	"context"

	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCouponByCodeParams) (sqlc.Coupons, error)
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, businessID uuid.UUID, code string) (*shared.CouponSnapshot, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, sqlc.GetCouponByCodeParams{
		BusinessID: businessID,
		Code:       code,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return toCouponSnapshot(row), nil
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.CouponSnapshot, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return toCouponSnapshot(row), nil
}

func toCouponSnapshot(row sqlc.Coupons) *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:             row.ID,
		BusinessID:     row.BusinessID,
		Code:           row.Code,
		DiscountType:   row.DiscountType,
		DiscountValue:  row.DiscountValue,
		StartDate:      pgconv.TimePtrFromPgtype(row.StartDate),
		EndDate:        pgconv.TimePtrFromPgtype(row.EndDate),
		MaxUses:        pgconv.Int32PtrFromPgtype(row.MaxUses),
		UsedCount:      row.UsedCount,
		IsActive:       row.IsActive,
		StripeCouponID: pgconv.StringPtrFromPgtype(row.StripeCouponID),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
