package components

import (
	"bounce-booking/internal/handler"
	"bounce-booking/internal/handler/api"
	"bounce-booking/internal/handler/middleware"
	"bounce-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPublicBookingHandler,
		api.NewMerchantBookingHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
