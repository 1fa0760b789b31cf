package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "parse database config")
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "open database")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "ping database")
	}

	cleanup := func() {
		slog.Info("closing database pool")
		pool.Close()
	}

	return pool, cleanup, nil
}

// ErrSchemaOutdated means migrations have not been applied to the target database.
var ErrSchemaOutdated = errs.New("database schema is missing required constraints")

// requiredConstraints back the no-double-booking and one-payment-per-booking rules.
var requiredConstraints = []string{
	"bookings_no_overlap",
	"payments_booking_id_key",
	"reviews_booking_id_key",
}

// VerifySchema checks that the constraints the write path relies on exist.
func VerifySchema(ctx context.Context, pool *pgxpool.Pool) error {
	var missing []string
	for _, name := range requiredConstraints {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = $1)", name).Scan(&exists)
		if err != nil {
			return errs.Wrap(err, "inspect schema")
		}
		if !exists {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errs.Wrapf(ErrSchemaOutdated, "missing %v", missing)
	}
	return nil
}
