//go:build unit || e2e

package builder

import (
	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/customer"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID               uuid.UUID
	BusinessID       uuid.UUID
	Contact          customer.Contact
	StripeCustomerID *string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Contact: customer.Contact{
			Email: "parent@example.com",
			Name:  "Pat Parent",
			Phone: "512-555-0100",
			Address: address.Address{
				Line1:      "200 Oak Ave",
				City:       "Austin",
				State:      "TX",
				PostalCode: "78702",
				Country:    "US",
			},
		},
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

func (c *CustomerBuilder) BuildDomain() *customer.Customer {
	return customer.ReconstructCustomer(c.ID, c.BusinessID, c.Contact, c.StripeCustomerID, RefTime, RefTime)
}
