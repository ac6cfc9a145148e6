package commands

import (
	"context"
	"log/slog"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/money"

	"github.com/google/uuid"
)

const (
	TaxMethodStripe   = "stripe_tax"
	TaxMethodFallback = "fallback_rate"
)

type TaxRequest struct {
	BookingID     uuid.UUID
	Lines         []pricing.LineItem
	Address       address.Address
	Currency      string
	StripeAccount string
	DefaultRate   float64
}

type TaxQuote struct {
	Amount        money.Cents
	Rate          float64
	Method        string
	CalculationID *string
}

// TaxService quotes tax through the external calculator and falls back to the
// business default rate when it fails. It never returns an error.
type TaxService struct {
	calc TaxCalculator
}

func NewTaxService(calc TaxCalculator) *TaxService {
	return &TaxService{calc: calc}
}

func (s *TaxService) Quote(ctx context.Context, req TaxRequest) TaxQuote {
	subtotal := pricing.Subtotal(req.Lines)

	if s.calc != nil {
		calc, err := s.calc.Calculate(ctx, TaxCalculationRequest{
			StripeAccount: req.StripeAccount,
			Currency:      req.Currency,
			Lines:         req.Lines,
			Address:       req.Address,
		})
		if err == nil {
			rate := 0.0
			if subtotal > 0 {
				rate = float64(calc.Amount) / float64(subtotal)
			}
			id := calc.ID
			return TaxQuote{Amount: calc.Amount, Rate: rate, Method: TaxMethodStripe, CalculationID: &id}
		}
		slog.Warn("tax calculation failed, using fallback rate",
			"booking_id", req.BookingID,
			"rate", req.DefaultRate,
			"error", err.Error())
	}

	return TaxQuote{
		Amount: pricing.FallbackTax(subtotal, req.DefaultRate),
		Rate:   req.DefaultRate,
		Method: TaxMethodFallback,
	}
}
