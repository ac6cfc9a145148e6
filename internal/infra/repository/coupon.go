package repository

import (
	"context"

	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	IncrementCouponUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

// IncrementUsage consumes one use. The update is guarded in SQL, so a coupon
// exhausted by a concurrent checkout reports a conflict.
func (r *CouponRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, couponID uuid.UUID) error {
	rows, err := r.queries.IncrementCouponUsage(ctx, tx, couponID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("coupon has no remaining uses", nil, infra.KindConflict)
	}
	return nil
}
