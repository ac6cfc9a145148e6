package readstore

import (
	"context"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/infra"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	BusinessReadQueries
	BookingReadQueries
	CustomerReadQueries
	CouponReadQueries
	PaymentReadQueries
	ListBookingsForDashboard(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForDashboardParams) ([]sqlc.ListBookingsForDashboardRow, error)
	ListAvailabilityItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailabilityItemsParams) ([]sqlc.ListAvailabilityItemsRow, error)
	GetLatestInvoiceByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Invoices, error)
}

// BookingViewStore projects stored rows into the read models.
type BookingViewStore struct {
	queries   BookingViewQueries
	db        sqlc.DBTX
	business  *BusinessReadStore
	bookings  *BookingReadStore
	customers *CustomerReadStore
	coupons   *CouponReadStore
	payments  *PaymentReadStore
}

func NewBookingViewStore(q BookingViewQueries, db sqlc.DBTX) *BookingViewStore {
	return &BookingViewStore{
		queries:   q,
		db:        db,
		business:  NewBusinessReadStore(q, db),
		bookings:  NewBookingReadStore(q, db),
		customers: NewCustomerReadStore(q, db),
		coupons:   NewCouponReadStore(q, db),
		payments:  NewPaymentReadStore(q, db),
	}
}

func (s *BookingViewStore) BusinessByID(ctx context.Context, id uuid.UUID) (*queries.BusinessView, error) {
	biz, err := s.business.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.BusinessView{
		ID:       biz.ID,
		Name:     biz.Name,
		TimeZone: biz.TimeZone,
		Currency: biz.Currency,
	}, nil
}

func (s *BookingViewStore) ListForDashboard(
	ctx context.Context,
	businessID uuid.UUID,
	filters queries.DashboardFilters,
	after *queries.DashboardKey,
	limit int32,
) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsForDashboardParams{
		BusinessID: businessID,
		Statuses:   filters.Statuses,
		StartFrom:  pgconv.TimePtrToPgtype(filters.From),
		StartTo:    pgconv.TimePtrToPgtype(filters.To),
		Limit:      limit,
	}
	if params.Statuses == nil {
		params.Statuses = []string{}
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := s.queries.ListBookingsForDashboard(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dashboard bookings", err)
	}

	out := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		out[i] = &queries.BookingListItem{
			ID:            row.ID,
			Status:        row.Status,
			EventDate:     pgconv.DateFromPgtype(row.EventDate),
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			EndTime:       pgconv.TimeFromPgtype(row.EndTime),
			EventTimeZone: row.EventTimeZone,
			TotalAmount:   money.Cents(row.TotalCents),
			CustomerName:  pgconv.StringPtrFromPgtype(row.CustomerName),
			CustomerEmail: pgconv.StringPtrFromPgtype(row.CustomerEmail),
			ItemCount:     row.ItemCount,
			ExpiresAt:     pgconv.TimePtrFromPgtype(row.ExpiresAt),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func (s *BookingViewStore) ReservedSlots(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]queries.ReservedSlot, error) {
	rows, err := s.queries.ListAvailabilityItems(ctx, s.db, sqlc.ListAvailabilityItemsParams{
		BusinessID: businessID,
		RangeStart: pgconv.TimeToPgtype(from),
		RangeEnd:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reserved items", err)
	}

	out := make([]queries.ReservedSlot, len(rows))
	for i, row := range rows {
		out[i] = queries.ReservedSlot{
			BookingID:     row.BookingID,
			InventoryID:   row.InventoryID,
			InventoryName: row.Name,
			Status:        row.Status,
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			EndTime:       pgconv.TimeFromPgtype(row.EndTime),
			BufferedStart: pgconv.TimeFromPgtype(row.BufferedStart),
			BufferedEnd:   pgconv.TimeFromPgtype(row.BufferedEnd),
			ExpiresAt:     pgconv.TimePtrFromPgtype(row.ExpiresAt),
		}
	}
	return out, nil
}

func (s *BookingViewStore) BookingByID(ctx context.Context, id uuid.UUID) (*queries.BookingDetail, error) {
	snap, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookingDetail(snap), nil
}

func (s *BookingViewStore) CustomerByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.CustomerView{
		ID:      c.ID,
		Email:   c.Email,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: toAddressView(c.Address),
	}, nil
}

func (s *BookingViewStore) CouponByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	c, err := s.coupons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.CouponView{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
	}, nil
}

func (s *BookingViewStore) PaymentsByBooking(ctx context.Context, bookingID uuid.UUID) ([]queries.PaymentView, error) {
	snaps, err := s.payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	out := make([]queries.PaymentView, len(snaps))
	for i, p := range snaps {
		out[i] = queries.PaymentView{
			ID:          p.ID,
			Kind:        p.Kind,
			Status:      p.Status,
			Amount:      p.AmountCents,
			Currency:    p.Currency,
			ExternalRef: p.ExternalRef,
			CreatedAt:   p.CreatedAt,
		}
	}
	return out, nil
}

func (s *BookingViewStore) LatestInvoice(ctx context.Context, bookingID uuid.UUID) (*queries.InvoiceView, error) {
	row, err := s.queries.GetLatestInvoiceByBooking(ctx, s.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	return &queries.InvoiceView{
		ID:         row.ID,
		ExternalID: row.ExternalID,
		Number:     row.Number,
		Status:     row.Status,
		AmountDue:  money.Cents(row.AmountDueCents),
		HostedURL:  row.HostedUrl,
		DueAt:      pgconv.TimeFromPgtype(row.DueAt),
		SentAt:     pgconv.TimeFromPgtype(row.SentAt),
	}, nil
}

func toBookingDetail(s *shared.BookingSnapshot) *queries.BookingDetail {
	items := make([]queries.BookingItemView, len(s.Items))
	for i, it := range s.Items {
		items[i] = queries.BookingItemView{
			ID:          it.ID,
			InventoryID: it.InventoryID,
			Name:        it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Status:      it.Status,
		}
	}
	return &queries.BookingDetail{
		ID:            s.ID,
		BusinessID:    s.BusinessID,
		CustomerID:    s.CustomerID,
		CouponID:      s.CouponID,
		Status:        s.Status,
		EventDate:     s.EventDate,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		EventTimeZone: s.EventTimeZone,
		Totals: queries.TotalsView{
			Subtotal: s.SubtotalAmount,
			Discount: s.DiscountAmount,
			Tax:      s.TaxAmount,
			TaxRate:  s.TaxRate,
			Total:    s.TotalAmount,
		},
		DepositPaid:         s.DepositPaid,
		ExpiresAt:           s.ExpiresAt,
		EventAddress:        toAddressView(s.EventAddress),
		ParticipantCount:    s.ParticipantCount,
		SpecialInstructions: s.SpecialInstructions,
		TaxMethod:           s.TaxMethod,
		PaymentIntentID:     s.PaymentIntentID,
		CancellationReason:  s.CancellationReason,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
		Items:               items,
	}
}

func toAddressView(a address.Address) queries.EventAddressView {
	return queries.EventAddressView{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
