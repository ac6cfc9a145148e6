package repository

import (
	"context"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingItemParams) error
	UpdateBookingPaymentTerms(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingPaymentTermsParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
	UpdateBookingItemsStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingItemsStatusParams) error
	SetBookingPaymentIntent(ctx context.Context, db sqlc.DBTX, arg sqlc.SetBookingPaymentIntentParams) error
	DeleteBookingItems(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) error
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
	ExpireStaleBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStaleBookingsParams) ([]sqlc.ExpireStaleBookingsRow, error)
	ExpireStaleBookingsForInventory(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireStaleBookingsForInventoryParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) CreateHold(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	for _, item := range b.Items() {
		if err := r.queries.CreateBookingItem(ctx, tx, converter.BookingItemToCreateParams(b.ID(), item)); err != nil {
			return infra.WrapRepoErr("failed to create booking item", err)
		}
	}
	return nil
}

func (r *BookingRepository) SavePaymentTerms(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	rows, err := r.queries.UpdateBookingPaymentTerms(ctx, tx, converter.BookingToPaymentTermsParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to save payment terms", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("booking is no longer awaiting payment", nil, infra.KindConflict)
	}
	return r.updateItemsStatus(ctx, tx, b.ID(), b.Status())
}

func (r *BookingRepository) SaveStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return r.updateItemsStatus(ctx, tx, b.ID(), b.Status())
}

func (r *BookingRepository) SetPaymentIntent(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, intentID string) error {
	err := r.queries.SetBookingPaymentIntent(ctx, tx, sqlc.SetBookingPaymentIntentParams{
		ID:              bookingID,
		PaymentIntentID: pgconv.StringToPgtype(intentID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store payment intent", err)
	}
	return nil
}

// Cancel deletes the items so the inventory is released in the same transaction.
func (r *BookingRepository) Cancel(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.DeleteBookingItems(ctx, tx, b.ID()); err != nil {
		return infra.WrapRepoErr("failed to release booking items", err)
	}
	rows, err := r.queries.CancelBooking(ctx, tx, sqlc.CancelBookingParams{
		ID:                 b.ID(),
		CancellationReason: pgconv.EmptyAsNull(b.CancellationReason()),
		UpdatedAt:          pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("booking is not cancellable", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) ExpireStaleForInventory(ctx context.Context, tx sqlc.DBTX, inventoryIDs []uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.ExpireStaleBookingsForInventory(ctx, tx, sqlc.ExpireStaleBookingsForInventoryParams{
		InventoryIds: inventoryIDs,
		Now:          pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale holds", err)
	}
	return n, nil
}

func (r *BookingRepository) ExpireStale(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.ExpiredBooking, error) {
	rows, err := r.queries.ExpireStaleBookings(ctx, tx, sqlc.ExpireStaleBookingsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sweep expired bookings", err)
	}
	out := make([]shared.ExpiredBooking, len(rows))
	for i, row := range rows {
		out[i] = shared.ExpiredBooking{ID: row.ID, BusinessID: row.BusinessID}
	}
	return out, nil
}

func (r *BookingRepository) updateItemsStatus(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, status booking.Status) error {
	err := r.queries.UpdateBookingItemsStatus(ctx, tx, sqlc.UpdateBookingItemsStatusParams{
		BookingID: bookingID,
		Status:    status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking items", err)
	}
	return nil
}
