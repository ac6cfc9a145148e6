package payments

import (
	"context"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
)

// TaxCalculator quotes tax for event lines through Stripe Tax. Amounts are
// tax exclusive.
type TaxCalculator struct {
	client *stripe.Client
	retry  retryPolicy
}

func NewTaxCalculator(cfg config.Config) *TaxCalculator {
	return &TaxCalculator{
		client: stripe.NewClient(cfg.Stripe.SecretKey),
		retry:  newRetryPolicy(cfg.Retry),
	}
}

func (c *TaxCalculator) Calculate(ctx context.Context, req commands.TaxCalculationRequest) (*commands.TaxCalculation, error) {
	if err := req.Address.Validate(); err != nil {
		return nil, errs.Wrap(err, "tax address")
	}

	params := &stripe.TaxCalculationCreateParams{
		Currency:        stripe.String(req.Currency),
		LineItems:       toTaxLines(req),
		CustomerDetails: toCustomerDetails(req.Address),
	}
	params.Params = connectedParams(req.StripeAccount, "")

	var calc *stripe.TaxCalculation
	err := c.retry.do(ctx, "tax_calculation.create", func() error {
		var err error
		calc, err = c.client.V1TaxCalculations.Create(ctx, params)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "calculate tax")
	}
	return &commands.TaxCalculation{ID: calc.ID, Amount: money.Cents(calc.TaxAmountExclusive)}, nil
}

func toTaxLines(req commands.TaxCalculationRequest) []*stripe.TaxCalculationCreateLineItemParams {
	lines := make([]*stripe.TaxCalculationCreateLineItemParams, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = &stripe.TaxCalculationCreateLineItemParams{
			Amount:      stripe.Int64(l.Amount.Int64()),
			Quantity:    stripe.Int64(int64(l.Quantity)),
			Reference:   stripe.String(l.Reference),
			TaxBehavior: stripe.String("exclusive"),
		}
	}
	return lines
}

func toCustomerDetails(a address.Address) *stripe.TaxCalculationCreateCustomerDetailsParams {
	return &stripe.TaxCalculationCreateCustomerDetailsParams{
		Address:       toAddressParams(a),
		AddressSource: stripe.String("shipping"),
	}
}
