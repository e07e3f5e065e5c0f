package bootstrap

import (
	"context"
	"log/slog"

	"ticketing-notifier/internal/infra/cache"
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewStore,
	),
)

// NewRedisClient is always built: real-time broadcasts go over Redis pub/sub even when the store is local.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// Every Store caller fails open, so a missing Redis degrades instead of blocking startup.
				logger.Warn("redis is unreachable at startup", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewStore(cfg config.Config, client *redis.Client, clk clock.Clock, logger *slog.Logger) shared.Store {
	if cfg.Cache.Driver == "memory" {
		logger.Warn("using in-process store; dedup and reminder markers are not shared between instances")
		return cache.NewLocalStore(clk, cfg.Cache.CleanupInterval)
	}
	return cache.NewRedisStore(client)
}
