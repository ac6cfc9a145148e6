package bootstrap

import (
	"context"
	"log/slog"

	"bounce-booking/internal/infra/cache"
	"bounce-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(NewRedis),
)

// NewRedis connects the availability cache client; the ping happens here so
// a wrong address fails startup.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, closeClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			slog.Info("redis client ready", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
			return nil
		},
		OnStop: func(context.Context) error {
			closeClient()
			return nil
		},
	})
	return rdb, nil
}
