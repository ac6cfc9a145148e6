package customer

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"bounce-booking/internal/domain/address"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrNameRequired = errors.New("customer name is required")
)

type Contact struct {
	Email   string
	Name    string
	Phone   string
	Address address.Address
}

// Normalize lower-cases the email, the customer's identity within a business.
func (c Contact) Normalize() Contact {
	return Contact{
		Email:   strings.ToLower(strings.TrimSpace(c.Email)),
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Address: c.Address.Normalize(),
	}
}

func (c Contact) Validate() error {
	if _, err := mail.ParseAddress(c.Email); err != nil || !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	if c.Name == "" {
		return ErrNameRequired
	}
	return nil
}

type Customer struct {
	id               uuid.UUID
	businessID       uuid.UUID
	contact          Contact
	stripeCustomerID *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCustomer(businessID uuid.UUID, contact Contact, now time.Time) (*Customer, error) {
	contact = contact.Normalize()
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	return &Customer{
		id:         uuid.New(),
		businessID: businessID,
		contact:    contact,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructCustomer(id, businessID uuid.UUID, contact Contact, stripeCustomerID *string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:               id,
		businessID:       businessID,
		contact:          contact,
		stripeCustomerID: stripeCustomerID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// UpdateContact replaces contact details; the email is the upsert key and
// stays unchanged.
func (c *Customer) UpdateContact(contact Contact, now time.Time) error {
	contact = contact.Normalize()
	contact.Email = c.contact.Email
	if err := contact.Validate(); err != nil {
		return err
	}
	c.contact = contact
	c.updatedAt = now
	return nil
}

func (c *Customer) LinkStripeCustomer(id string, now time.Time) {
	c.stripeCustomerID = &id
	c.updatedAt = now
}

func (c *Customer) ID() uuid.UUID             { return c.id }
func (c *Customer) BusinessID() uuid.UUID     { return c.businessID }
func (c *Customer) Contact() Contact          { return c.contact }
func (c *Customer) Email() string             { return c.contact.Email }
func (c *Customer) Name() string              { return c.contact.Name }
func (c *Customer) StripeCustomerID() *string { return c.stripeCustomerID }
func (c *Customer) CreatedAt() time.Time      { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time      { return c.updatedAt }
