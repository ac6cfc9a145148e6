//go:build unit || e2e

package builder

import (
	reqdto "bounce-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

func addressDTO() reqdto.AddressRequest {
	return reqdto.AddressRequest{
		Line1:      "100 Main St",
		City:       "Austin",
		State:      "TX",
		PostalCode: "78701",
		Country:    "US",
	}
}

// BuildHoldRequestDTO is a storefront hold for every item in the builder,
// on the builder's start date in its time zone.
func (b *BookingBuilder) BuildHoldRequestDTO() reqdto.CreateHoldRequest {
	items := make([]reqdto.HoldItemRequest, len(b.Items))
	for i, it := range b.Items {
		items[i] = reqdto.HoldItemRequest{
			InventoryItemID: it.InventoryID,
			PriceCents:      it.UnitPrice.Int64(),
			Quantity:        it.Quantity,
		}
	}
	return reqdto.CreateHoldRequest{
		EventDate:     "2026-06-03",
		StartTime:     "12:00",
		EndTime:       "16:00",
		EventTimeZone: b.TimeZone,
		Items:         items,
	}
}

func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	participants := int32(20)
	return reqdto.CheckoutRequest{
		HoldID: b.ID,
		Customer: reqdto.CustomerRequest{
			Email:   "parent@example.com",
			Name:    "Pat Parent",
			Phone:   "512-555-0100",
			Address: addressDTO(),
		},
		Event: reqdto.EventRequest{
			Address:          addressDTO(),
			ParticipantCount: &participants,
		},
		EventDate:     "2026-06-03",
		StartTime:     "12:00",
		EndTime:       "16:00",
		EventTimeZone: b.TimeZone,
	}
}

func NewHoldItemDTO() reqdto.HoldItemRequest {
	return reqdto.HoldItemRequest{InventoryItemID: uuid.New(), PriceCents: 10000, Quantity: 1}
}
