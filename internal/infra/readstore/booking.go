package readstore

import (
	"context"
	"time"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingItems(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingItems, error)
	ListConflictingItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConflictingItemsParams) ([]sqlc.ListConflictingItemsRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID loads the booking together with its items.
func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	items, err := r.queries.ListBookingItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking items", err)
	}

	snap := toBookingSnapshot(row)
	snap.Items = make([]shared.BookingItemSnapshot, len(items))
	for i, it := range items {
		snap.Items[i] = shared.BookingItemSnapshot{
			ID:            it.ID,
			InventoryID:   it.InventoryID,
			Name:          it.Name,
			Quantity:      it.Quantity,
			Price:         money.Cents(it.PriceCents),
			StartTime:     pgconv.TimeFromPgtype(it.StartTime),
			EndTime:       pgconv.TimeFromPgtype(it.EndTime),
			BufferedStart: pgconv.TimeFromPgtype(it.BufferedStart),
			BufferedEnd:   pgconv.TimeFromPgtype(it.BufferedEnd),
			Status:        it.Status,
		}
	}
	return snap, nil
}

// FindConflicts returns items of bookings in a blocking status whose buffered
// window touches [from, to]. Expiry is left to the caller.
func (r *BookingReadStore) FindConflicts(ctx context.Context, inventoryIDs []uuid.UUID, from, to time.Time) ([]shared.ConflictSnapshot, error) {
	rows, err := r.queries.ListConflictingItems(ctx, r.db, sqlc.ListConflictingItemsParams{
		InventoryIds: inventoryIDs,
		RangeStart:   pgconv.TimeToPgtype(from),
		RangeEnd:     pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conflicting items", err)
	}

	out := make([]shared.ConflictSnapshot, len(rows))
	for i, row := range rows {
		out[i] = shared.ConflictSnapshot{
			BookingID:     row.BookingID,
			InventoryID:   row.InventoryID,
			InventoryName: row.InventoryName,
			Status:        row.Status,
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			EndTime:       pgconv.TimeFromPgtype(row.EndTime),
			ExpiresAt:     pgconv.TimePtrFromPgtype(row.ExpiresAt),
		}
	}
	return out, nil
}

func toBookingSnapshot(row sqlc.Bookings) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:             row.ID,
		BusinessID:     row.BusinessID,
		CustomerID:     pgconv.UUIDPtrFromPgtype(row.CustomerID),
		CouponID:       pgconv.UUIDPtrFromPgtype(row.CouponID),
		Status:         row.Status,
		EventDate:      pgconv.DateFromPgtype(row.EventDate),
		StartTime:      pgconv.TimeFromPgtype(row.StartTime),
		EndTime:        pgconv.TimeFromPgtype(row.EndTime),
		EventTimeZone:  row.EventTimeZone,
		SubtotalAmount: money.Cents(row.SubtotalCents),
		DiscountAmount: money.Cents(row.DiscountCents),
		TaxAmount:      money.Cents(row.TaxCents),
		TaxRate:        row.TaxRate,
		TotalAmount:    money.Cents(row.TotalCents),
		DepositPaid:    row.DepositPaid,
		ExpiresAt:      pgconv.TimePtrFromPgtype(row.ExpiresAt),
		EventAddress: converter.AddressFromText(
			row.EventAddressLine1, row.EventAddressLine2, row.EventCity,
			row.EventState, row.EventPostalCode, row.EventCountry,
		),
		ParticipantCount:    pgconv.Int32PtrFromPgtype(row.ParticipantCount),
		SpecialInstructions: pgconv.StringFromPgtype(row.SpecialInstructions),
		TaxCalculationID:    pgconv.StringPtrFromPgtype(row.TaxCalculationID),
		TaxMethod:           pgconv.StringFromPgtype(row.TaxMethod),
		PaymentIntentID:     pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		CancellationReason:  pgconv.StringFromPgtype(row.CancellationReason),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
