package bootstrap

import (
	"bounce-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.ExternalModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
