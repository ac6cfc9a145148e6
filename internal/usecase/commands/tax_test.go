//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bounce-booking/internal/domain/address"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/money"
	"bounce-booking/internal/usecase/commands"
	commandsmock "bounce-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTaxService_Quote(t *testing.T) {
	ctx := context.Background()
	req := commands.TaxRequest{
		BookingID: uuid.New(),
		Lines: []pricing.LineItem{
			{Reference: "castle", Quantity: 1, UnitAmount: 10000, Amount: 10000},
			{Reference: "slide", Quantity: 2, UnitAmount: 2500, Amount: 5000},
		},
		Address:       address.Address{Line1: "100 Main St", City: "Austin", State: "TX", PostalCode: "78701", Country: "US"},
		Currency:      "usd",
		StripeAccount: "acct_test_123",
		DefaultRate:   0.08,
	}

	testCases := []struct {
		name         string
		setupMock    func(*commandsmock.MockTaxCalculator)
		nilCalc      bool
		expectAmount money.Cents
		expectRate   float64
		expectMethod string
		expectCalcID bool
	}{
		{
			name: "success: external calculation is used as-is",
			setupMock: func(m *commandsmock.MockTaxCalculator) {
				m.EXPECT().Calculate(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, in commands.TaxCalculationRequest) (*commands.TaxCalculation, error) {
						assert.Equal(t, "acct_test_123", in.StripeAccount)
						assert.Len(t, in.Lines, 2)
						return &commands.TaxCalculation{ID: "taxcalc_1", Amount: 1500}, nil
					})
			},
			expectAmount: 1500,
			expectRate:   0.1,
			expectMethod: commands.TaxMethodStripe,
			expectCalcID: true,
		},
		{
			name: "success: calculator error falls back to the default rate",
			setupMock: func(m *commandsmock.MockTaxCalculator) {
				m.EXPECT().Calculate(ctx, gomock.Any()).Return(nil, errStripeDown)
			},
			expectAmount: 1200,
			expectRate:   0.08,
			expectMethod: commands.TaxMethodFallback,
		},
		{
			name:         "success: no calculator configured",
			nilCalc:      true,
			expectAmount: 1200,
			expectRate:   0.08,
			expectMethod: commands.TaxMethodFallback,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var svc *commands.TaxService
			if tc.nilCalc {
				svc = commands.NewTaxService(nil)
			} else {
				calc := newPortMocks(ctrl).tax
				tc.setupMock(calc)
				svc = commands.NewTaxService(calc)
			}

			quote := svc.Quote(ctx, req)

			assert.Equal(t, tc.expectAmount, quote.Amount)
			assert.InDelta(t, tc.expectRate, quote.Rate, 1e-9)
			assert.Equal(t, tc.expectMethod, quote.Method)
			if tc.expectCalcID {
				require.NotNil(t, quote.CalculationID)
				assert.Equal(t, "taxcalc_1", *quote.CalculationID)
			} else {
				assert.Nil(t, quote.CalculationID)
			}
		})
	}
}
