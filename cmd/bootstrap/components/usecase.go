package components

import (
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSettings,
	commands.NewTaxService,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHoldUseCase,
		commands.NewCheckoutUseCase,
		commands.NewCancellationUseCase,
		commands.NewInvoiceUseCase,
		commands.NewSweepUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

// NewSettings overlays the environment on the built-in booking defaults.
func NewSettings(cfg config.Config) commands.Settings {
	s := commands.DefaultSettings()
	b := cfg.Booking
	if b.HoldTTL > 0 {
		s.HoldTTL = b.HoldTTL
	}
	if b.CheckoutTTL > 0 {
		s.CheckoutTTL = b.CheckoutTTL
	}
	if b.IdempotencyTTL > 0 {
		s.IdempotencyTTL = b.IdempotencyTTL
	}
	if b.InvoiceDueDays > 0 {
		s.InvoiceDueDays = int(b.InvoiceDueDays)
	}
	if b.LateCancelWindow > 0 {
		s.RefundPolicy = booking.RefundPolicy{
			LateWindow:        b.LateCancelWindow,
			LateRefundPercent: b.LateCancelRefundPercent,
		}
	}
	if cfg.Stripe.Currency != "" {
		s.Currency = cfg.Stripe.Currency
	}
	return s
}
