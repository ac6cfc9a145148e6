package commands

import (
	"context"
	"log/slog"
	"time"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

// PaymentGateway is the hosted payment processor. Every call runs against
// the merchant's connected account.
type PaymentGateway interface {
	EnsureCustomer(ctx context.Context, req CustomerRequest) (string, error)
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
	CancelPaymentIntent(ctx context.Context, stripeAccount, intentID string) error
	Refund(ctx context.Context, req RefundRequest) (*RefundResult, error)
	IssueInvoice(ctx context.Context, req InvoiceRequest) (*IssuedInvoice, error)
}

type TaxCalculator interface {
	Calculate(ctx context.Context, req TaxCalculationRequest) (*TaxCalculation, error)
}

type Notifier interface {
	SendInvoiceReady(ctx context.Context, msg InvoiceReadyMessage) (string, error)
}

// AvailabilityCache drops cached availability for a business after writes.
type AvailabilityCache interface {
	Invalidate(ctx context.Context, businessID uuid.UUID) error
}

func invalidateAvailability(ctx context.Context, cache AvailabilityCache, businessID uuid.UUID) {
	if err := cache.Invalidate(ctx, businessID); err != nil {
		slog.Warn("failed to invalidate availability cache", "business_id", businessID, "error", err.Error())
	}
}

type CustomerRequest struct {
	StripeAccount string
	ExistingID    *string
	Email         string
	Name          string
	Phone         string
	Address       address.Address
	Metadata      map[string]string
}

type PaymentIntentRequest struct {
	StripeAccount  string
	CustomerID     string
	Amount         money.Cents
	Currency       string
	Description    string
	Metadata       map[string]string
	IdempotencyKey string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type RefundRequest struct {
	StripeAccount   string
	PaymentIntentID string
	Amount          money.Cents
	Metadata        map[string]string
	IdempotencyKey  string
}

type RefundResult struct {
	ID     string
	Status string
}

type InvoiceRequest struct {
	StripeAccount  string
	CustomerID     string
	Currency       string
	Lines          []pricing.LineItem
	Tax            money.Cents
	DueDays        int
	Metadata       map[string]string
	IdempotencyKey string
}

type IssuedInvoice struct {
	ID        string
	Number    string
	HostedURL string
	AmountDue money.Cents
}

type TaxCalculationRequest struct {
	StripeAccount string
	Currency      string
	Lines         []pricing.LineItem
	Address       address.Address
}

type TaxCalculation struct {
	ID     string
	Amount money.Cents
}

type InvoiceReadyMessage struct {
	BookingID     uuid.UUID `json:"bookingId"`
	InvoiceID     uuid.UUID `json:"invoiceId"`
	To            string    `json:"to"`
	CustomerName  string    `json:"customerName"`
	BusinessName  string    `json:"businessName"`
	InvoiceNumber string    `json:"invoiceNumber"`
	HostedURL     string    `json:"hostedUrl"`
	AmountDue     string    `json:"amountDue"`
	DueAt         time.Time `json:"dueAt"`
}
