package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping reports whether Redis answers. Callers treat a failure as degraded, not fatal.
func Ping(ctx context.Context, rdb *goredis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis is not reachable, rate limiting will fail open", "error", err.Error())
		return errs.Wrap(err, "redis ping")
	}
	return nil
}
