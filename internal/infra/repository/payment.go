package repository

import (
	"context"
	"encoding/json"

	"bounce-booking/internal/domain/payment"
	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	UpdatePaymentRefund(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentRefundParams) (int64, error)
	UpdatePendingPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePendingPaymentParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	err := r.queries.CreatePayment(ctx, tx, sqlc.CreatePaymentParams{
		ID:          p.ID(),
		BookingID:   p.BookingID(),
		Kind:        string(p.Kind()),
		Status:      p.Status().String(),
		AmountCents: p.Amount().Int64(),
		Currency:    p.Currency(),
		ExternalRef: pgconv.StringPtrToPgtype(p.ExternalRef()),
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

// SavePending rewrites the amount and intent of a payment that is still
// pending. A payment that settled in the meantime is reported as a conflict.
func (r *PaymentRepository) SavePending(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	rows, err := r.queries.UpdatePendingPayment(ctx, tx, sqlc.UpdatePendingPaymentParams{
		ID:          p.ID(),
		AmountCents: p.Amount().Int64(),
		ExternalRef: pgconv.StringPtrToPgtype(p.ExternalRef()),
		UpdatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update pending payment", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("payment is no longer pending", nil, infra.KindConflict)
	}
	return nil
}

// SaveRefund stores the post-refund status and amount with the refund record
// as the payment's metadata.
func (r *PaymentRepository) SaveRefund(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	metadata, err := json.Marshal(p.Refund())
	if err != nil {
		return infra.WrapRepoErr("failed to encode refund metadata", err)
	}

	rows, err := r.queries.UpdatePaymentRefund(ctx, tx, sqlc.UpdatePaymentRefundParams{
		ID:          p.ID(),
		Status:      p.Status().String(),
		AmountCents: p.Amount().Int64(),
		Metadata:    metadata,
		UpdatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record refund", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
