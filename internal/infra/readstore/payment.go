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

type PaymentReadQueries interface {
	ListPaymentsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]shared.PaymentSnapshot, error) {
	rows, err := r.queries.ListPaymentsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	out := make([]shared.PaymentSnapshot, len(rows))
	for i, row := range rows {
		out[i] = shared.PaymentSnapshot{
			ID:          row.ID,
			BookingID:   row.BookingID,
			Kind:        row.Kind,
			Status:      row.Status,
			AmountCents: money.Cents(row.AmountCents),
			Currency:    row.Currency,
			ExternalRef: pgconv.StringPtrFromPgtype(row.ExternalRef),
			Metadata:    row.Metadata,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return out, nil
}
