//go:build unit || e2e

package builder

import (
	"testing"

	"bounce-booking/internal/domain/business"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type BusinessBuilder struct {
	ID              uuid.UUID
	Name            string
	Settings        business.Settings
	StripeAccountID *string
	Currency        string
}

func NewBusinessBuilder() *BusinessBuilder {
	acct := "acct_test_123"
	return &BusinessBuilder{
		ID:   uuid.New(),
		Name: "Jumpin' Jacks Party Rentals",
		Settings: business.Settings{
			TimeZone:          "America/Chicago",
			MinNoticeHours:    24,
			MaxNoticeHours:    24 * 365,
			MinBookingAmount:  money.Cents(5000),
			BufferBeforeHours: 1,
			BufferAfterHours:  1,
			DefaultTaxRate:    0.08,
		},
		StripeAccountID: &acct,
		Currency:        "usd",
	}
}

func (b *BusinessBuilder) With(mutate func(*BusinessBuilder)) *BusinessBuilder {
	mutate(b)
	return b
}

func (b *BusinessBuilder) WithNotice(minHours, maxHours int) *BusinessBuilder {
	b.Settings.MinNoticeHours = minHours
	b.Settings.MaxNoticeHours = maxHours
	return b
}

func (b *BusinessBuilder) WithMinimum(amount money.Cents) *BusinessBuilder {
	b.Settings.MinBookingAmount = amount
	return b
}

func (b *BusinessBuilder) WithBuffers(beforeHours, afterHours int) *BusinessBuilder {
	b.Settings.BufferBeforeHours = beforeHours
	b.Settings.BufferAfterHours = afterHours
	return b
}

func (b *BusinessBuilder) WithStripeAccount(id *string) *BusinessBuilder {
	b.StripeAccountID = id
	return b
}

func (b *BusinessBuilder) BuildDomain(t testing.TB) *business.Business {
	t.Helper()
	biz, err := business.NewBusiness(b.ID, b.Name, b.Settings, b.StripeAccountID, b.Currency)
	require.NoError(t, err)
	return biz
}
