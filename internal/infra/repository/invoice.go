package repository

import (
	"context"

	"bounce-booking/internal/domain/invoice"
	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
)

type InvoiceWriteQueries interface {
	CreateInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInvoiceParams) error
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx sqlc.DBTX, inv *invoice.Invoice) error {
	err := r.queries.CreateInvoice(ctx, tx, sqlc.CreateInvoiceParams{
		ID:             inv.ID(),
		BookingID:      inv.BookingID(),
		BusinessID:     inv.BusinessID(),
		ExternalID:     inv.ExternalID(),
		Number:         inv.Number(),
		Status:         string(inv.Status()),
		AmountDueCents: inv.AmountDue().Int64(),
		HostedUrl:      inv.HostedURL(),
		CouponID:       pgconv.UUIDPtrToPgtype(inv.CouponID()),
		DueAt:          pgconv.TimeToPgtype(inv.DueAt()),
		SentAt:         pgconv.TimeToPgtype(inv.SentAt()),
		CreatedAt:      pgconv.TimeToPgtype(inv.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}
