package worker

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
)

const (
	JobOutboxRelay      = "outbox-relay"
	JobIdempotencyPurge = "idempotency-purge"
)

type PurgeResult struct {
	Deleted int64 `json:"deleted"`
}

// RegisterHousekeeping schedules the outbox relay and the idempotency key purge.
func RegisterHousekeeping(s *Scheduler, hk commands.HousekeepingCommands, cfg config.Config) error {
	if err := s.Register(JobOutboxRelay, cfg.Worker.OutboxSpec, func(ctx context.Context) (any, error) {
		return hk.RelayNotifications(ctx)
	}); err != nil {
		return err
	}

	return s.Register(JobIdempotencyPurge, cfg.Worker.IdempotencyPurgeSpec, func(ctx context.Context) (any, error) {
		n, err := hk.PurgeIdempotencyKeys(ctx)
		return PurgeResult{Deleted: n}, err
	})
}
