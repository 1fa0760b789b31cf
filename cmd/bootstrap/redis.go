package bootstrap

import (
	"context"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/handler/middleware"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/redis"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewTokenBucket,
			fx.As(new(middleware.RateLimiter)),
		),
	),
)

// An unreachable Redis only disables rate limiting, so startup never fails on it.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *goredis.Client {
	rdb := redis.NewClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.RateLimit.Enabled {
				return nil
			}
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = redis.Ping(pingCtx, rdb)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb
}

func NewTokenBucket(rdb *goredis.Client, cfg config.Config) *redis.TokenBucket {
	return redis.NewTokenBucket(rdb, cfg.RateLimit)
}
