//go:build unit

package customer_test

import (
	"testing"

	"bounce-booking/internal/domain/customer"
	"bounce-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		contact := builder.NewCustomerBuilder().Contact
		contact.Email = "  Parent@Example.COM "

		c, err := customer.NewCustomer(uuid.New(), contact, builder.RefTime)
		require.NoError(t, err)
		assert.Equal(t, "parent@example.com", c.Email())
	})

	t.Run("invalid email", func(t *testing.T) {
		contact := builder.NewCustomerBuilder().Contact
		contact.Email = "not-an-email"

		_, err := customer.NewCustomer(uuid.New(), contact, builder.RefTime)
		require.ErrorIs(t, err, customer.ErrInvalidEmail)
	})

	t.Run("missing name", func(t *testing.T) {
		contact := builder.NewCustomerBuilder().Contact
		contact.Name = " "

		_, err := customer.NewCustomer(uuid.New(), contact, builder.RefTime)
		require.ErrorIs(t, err, customer.ErrNameRequired)
	})
}

func TestCustomer_UpdateContact(t *testing.T) {
	c := builder.NewCustomerBuilder().BuildDomain()
	contact := c.Contact()
	contact.Email = "someone-else@example.com"
	contact.Phone = "512-555-0199"

	require.NoError(t, c.UpdateContact(contact, builder.RefTime))
	assert.Equal(t, "parent@example.com", c.Email())
	assert.Equal(t, "512-555-0199", c.Contact().Phone)
}
