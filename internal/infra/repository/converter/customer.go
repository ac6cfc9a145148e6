package converter

import (
	"bounce-booking/internal/domain/customer"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"
)

func CustomerToCreateParams(c *customer.Customer) sqlc.CreateCustomerParams {
	contact := c.Contact()
	addr := addressToText(contact.Address)
	return sqlc.CreateCustomerParams{
		ID:                c.ID(),
		BusinessID:        c.BusinessID(),
		Email:             contact.Email,
		Name:              contact.Name,
		Phone:             pgconv.EmptyAsNull(contact.Phone),
		AddressLine1:      addr.line1,
		AddressLine2:      addr.line2,
		AddressCity:       addr.city,
		AddressState:      addr.state,
		AddressPostalCode: addr.postalCode,
		AddressCountry:    addr.country,
		CreatedAt:         pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CustomerToUpdateParams(c *customer.Customer) sqlc.UpdateCustomerContactParams {
	contact := c.Contact()
	addr := addressToText(contact.Address)
	return sqlc.UpdateCustomerContactParams{
		ID:                c.ID(),
		Name:              contact.Name,
		Phone:             pgconv.EmptyAsNull(contact.Phone),
		AddressLine1:      addr.line1,
		AddressLine2:      addr.line2,
		AddressCity:       addr.city,
		AddressState:      addr.state,
		AddressPostalCode: addr.postalCode,
		AddressCountry:    addr.country,
		UpdatedAt:         pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}
