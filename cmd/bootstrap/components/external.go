package components

import (
	"bounce-booking/internal/infra/cache"
	"bounce-booking/internal/infra/email"
	"bounce-booking/internal/infra/payments"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// ExternalModule binds the Stripe, Resend and Redis adapters to the use case ports.
var ExternalModule = fx.Module("external",
	fx.Provide(
		fx.Annotate(
			payments.NewGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			payments.NewTaxCalculator,
			fx.As(new(commands.TaxCalculator)),
		),
		fx.Annotate(
			email.NewResendNotifier,
			fx.As(new(commands.Notifier)),
		),
		fx.Annotate(
			cache.NewAvailabilityCache,
			fx.As(new(commands.AvailabilityCache)),
			fx.As(new(queries.AvailabilityCache)),
		),
	),
)
