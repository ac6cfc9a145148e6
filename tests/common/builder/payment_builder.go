//go:build unit || e2e

package builder

import (
	"time"

	"bounce-booking/internal/domain/payment"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Kind        payment.Kind
	Status      payment.Status
	Amount      money.Cents
	ExternalRef *string
	CreatedAt   time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	ref := "pi_test_123"
	return &PaymentBuilder{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		Kind:        payment.KindFullPayment,
		Status:      payment.StatusCompleted,
		Amount:      10800,
		ExternalRef: &ref,
		CreatedAt:   RefTime.Add(-time.Hour),
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) BuildDomain() *payment.Payment {
	return payment.ReconstructPayment(
		p.ID, p.BookingID, p.Kind, p.Status, p.Amount, "usd", p.ExternalRef, nil, p.CreatedAt, p.CreatedAt,
	)
}
