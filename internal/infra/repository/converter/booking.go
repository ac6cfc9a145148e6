package converter

import (
	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/booking"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	ev := b.Event()
	addr := addressToText(ev.Address)
	return sqlc.CreateBookingParams{
		ID:                  b.ID(),
		BusinessID:          b.BusinessID(),
		Status:              b.Status().String(),
		EventDate:           pgconv.DateToPgtype(b.EventDate()),
		StartTime:           pgconv.TimeToPgtype(b.Window().Start()),
		EndTime:             pgconv.TimeToPgtype(b.Window().End()),
		EventTimeZone:       b.EventTimeZone(),
		ExpiresAt:           pgconv.TimePtrToPgtype(b.ExpiresAt()),
		EventAddressLine1:   addr.line1,
		EventAddressLine2:   addr.line2,
		EventCity:           addr.city,
		EventState:          addr.state,
		EventPostalCode:     addr.postalCode,
		EventCountry:        addr.country,
		ParticipantCount:    pgconv.Int32PtrToPgtype(ev.ParticipantCount),
		SpecialInstructions: pgconv.EmptyAsNull(ev.SpecialInstructions),
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingItemToCreateParams(bookingID uuid.UUID, it booking.Item) sqlc.CreateBookingItemParams {
	return sqlc.CreateBookingItemParams{
		ID:            it.ID(),
		BookingID:     bookingID,
		InventoryID:   it.InventoryID(),
		Name:          it.Name(),
		Quantity:      it.Quantity(),
		PriceCents:    it.Price().Int64(),
		Status:        it.Status().String(),
		StartTime:     pgconv.TimeToPgtype(it.Window().Start()),
		EndTime:       pgconv.TimeToPgtype(it.Window().End()),
		BufferedStart: pgconv.TimeToPgtype(it.BufferedWindow().Start()),
		BufferedEnd:   pgconv.TimeToPgtype(it.BufferedWindow().End()),
	}
}

func BookingToPaymentTermsParams(b *booking.Booking) sqlc.UpdateBookingPaymentTermsParams {
	ev := b.Event()
	addr := addressToText(ev.Address)
	totals := b.Totals()
	return sqlc.UpdateBookingPaymentTermsParams{
		ID:                  b.ID(),
		CustomerID:          pgconv.UUIDPtrToPgtype(b.CustomerID()),
		CouponID:            pgconv.UUIDPtrToPgtype(b.CouponID()),
		Status:              b.Status().String(),
		SubtotalCents:       totals.Subtotal().Int64(),
		DiscountCents:       totals.Discount().Int64(),
		TaxCents:            totals.Tax().Int64(),
		TaxRate:             totals.TaxRate(),
		TotalCents:          totals.Total().Int64(),
		ExpiresAt:           pgconv.TimePtrToPgtype(b.ExpiresAt()),
		EventAddressLine1:   addr.line1,
		EventAddressLine2:   addr.line2,
		EventCity:           addr.city,
		EventState:          addr.state,
		EventPostalCode:     addr.postalCode,
		EventCountry:        addr.country,
		ParticipantCount:    pgconv.Int32PtrToPgtype(ev.ParticipantCount),
		SpecialInstructions: pgconv.EmptyAsNull(ev.SpecialInstructions),
		TaxCalculationID:    pgconv.StringPtrToPgtype(b.TaxCalculationID()),
		TaxMethod:           pgconv.EmptyAsNull(b.TaxMethod()),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

type addressText struct {
	line1, line2, city, state, postalCode, country pgtype.Text
}

func addressToText(a address.Address) addressText {
	return addressText{
		line1:      pgconv.EmptyAsNull(a.Line1),
		line2:      pgconv.EmptyAsNull(a.Line2),
		city:       pgconv.EmptyAsNull(a.City),
		state:      pgconv.EmptyAsNull(a.State),
		postalCode: pgconv.EmptyAsNull(a.PostalCode),
		country:    pgconv.EmptyAsNull(a.Country),
	}
}

// AddressFromText rebuilds an address from nullable columns.
func AddressFromText(line1, line2, city, state, postalCode, country pgtype.Text) address.Address {
	return address.Address{
		Line1:      pgconv.StringFromPgtype(line1),
		Line2:      pgconv.StringFromPgtype(line2),
		City:       pgconv.StringFromPgtype(city),
		State:      pgconv.StringFromPgtype(state),
		PostalCode: pgconv.StringFromPgtype(postalCode),
		Country:    pgconv.StringFromPgtype(country),
	}
}
