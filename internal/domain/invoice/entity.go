package invoice

import (
	"time"

	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft Status = "DRAFT"
	StatusOpen  Status = "OPEN"
	StatusPaid  Status = "PAID"
	StatusVoid  Status = "VOID"
)

const DefaultDueDays = 7

type Invoice struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	businessID uuid.UUID
	externalID string
	number     string
	status     Status
	amountDue  money.Cents
	hostedURL  string
	couponID   *uuid.UUID
	dueAt      time.Time
	sentAt     time.Time
	createdAt  time.Time
}

// NewSentInvoice records an invoice the payment processor has finalized and
// sent to the customer.
func NewSentInvoice(
	bookingID, businessID uuid.UUID,
	externalID, number, hostedURL string,
	amountDue money.Cents,
	couponID *uuid.UUID,
	dueAt, now time.Time,
) *Invoice {
	return &Invoice{
		id:         uuid.New(),
		bookingID:  bookingID,
		businessID: businessID,
		externalID: externalID,
		number:     number,
		status:     StatusOpen,
		amountDue:  amountDue,
		hostedURL:  hostedURL,
		couponID:   couponID,
		dueAt:      dueAt,
		sentAt:     now,
		createdAt:  now,
	}
}

func ReconstructInvoice(
	id, bookingID, businessID uuid.UUID,
	externalID, number string,
	status Status,
	amountDue money.Cents,
	hostedURL string,
	couponID *uuid.UUID,
	dueAt, sentAt, createdAt time.Time,
) *Invoice {
	return &Invoice{
		id:         id,
		bookingID:  bookingID,
		businessID: businessID,
		externalID: externalID,
		number:     number,
		status:     status,
		amountDue:  amountDue,
		hostedURL:  hostedURL,
		couponID:   couponID,
		dueAt:      dueAt,
		sentAt:     sentAt,
		createdAt:  createdAt,
	}
}

// DueAt returns now plus the due period in whole days.
func DueAt(now time.Time, dueDays int) time.Time {
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}
	return now.AddDate(0, 0, dueDays)
}

func (i *Invoice) ID() uuid.UUID          { return i.id }
func (i *Invoice) BookingID() uuid.UUID   { return i.bookingID }
func (i *Invoice) BusinessID() uuid.UUID  { return i.businessID }
func (i *Invoice) ExternalID() string     { return i.externalID }
func (i *Invoice) Number() string         { return i.number }
func (i *Invoice) Status() Status         { return i.status }
func (i *Invoice) AmountDue() money.Cents { return i.amountDue }
func (i *Invoice) HostedURL() string      { return i.hostedURL }
func (i *Invoice) CouponID() *uuid.UUID   { return i.couponID }
func (i *Invoice) DueAt() time.Time       { return i.dueAt }
func (i *Invoice) SentAt() time.Time      { return i.sentAt }
func (i *Invoice) CreatedAt() time.Time   { return i.createdAt }
