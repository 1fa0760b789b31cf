package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"
)

const (
	MaxNotificationAttempts = 5
	notificationRetryBase   = 30 * time.Second
)

type RelayReport struct {
	Claimed   int `json:"claimed"`
	Sent      int `json:"sent"`
	Retried   int `json:"retried"`
	Abandoned int `json:"abandoned"`
}

type HousekeepingCommands interface {
	// RelayNotifications publishes one batch of due outbox jobs.
	RelayNotifications(ctx context.Context) (RelayReport, error)
	// PurgeIdempotencyKeys drops keys whose replay window has closed.
	PurgeIdempotencyKeys(ctx context.Context) (int64, error)
}

type housekeepingUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	batchSize int32
}

func NewHousekeepingUseCase(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, cfg config.Config) HousekeepingCommands {
	batch := cfg.Worker.OutboxBatchSize
	if batch <= 0 {
		batch = 50
	}
	return &housekeepingUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		batchSize: batch,
	}
}

func (uc *housekeepingUseCaseImpl) RelayNotifications(ctx context.Context) (RelayReport, error) {
	var report RelayReport
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		report = RelayReport{}
		now := uc.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, uc.batchSize)
		if err != nil {
			return err
		}
		report.Claimed = len(jobs)

		for _, job := range jobs {
			perr := uc.publisher.Publish(ctx, job.Topic, job.Payload)
			if perr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				report.Sent++
				continue
			}

			status, next := nextAttempt(job.Attempts, now)
			slog.Warn("Notification publish failed",
				"job_id", job.ID,
				"kind", job.Kind,
				"attempt", job.Attempts+1,
				"error", perr.Error())
			if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, status, perr.Error(), next); err != nil {
				return err
			}
			if status == shared.NotificationStatusFailed {
				report.Abandoned++
			} else {
				report.Retried++
			}
		}
		return nil
	})
	if err != nil {
		return RelayReport{}, err
	}

	if report.Claimed > 0 {
		slog.Info("Notification relay finished",
			"claimed", report.Claimed,
			"sent", report.Sent,
			"retried", report.Retried,
			"abandoned", report.Abandoned)
	}
	return report, nil
}

// nextAttempt keeps the job queued with a doubling delay until the attempt
// budget is spent.
func nextAttempt(attempts int32, now time.Time) (string, time.Time) {
	made := attempts + 1
	if made >= MaxNotificationAttempts {
		return shared.NotificationStatusFailed, now
	}
	return shared.NotificationStatusQueued, now.Add(notificationRetryBase << (made - 1))
}

func (uc *housekeepingUseCaseImpl) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		purged, err = tx.Idempotency().DeleteExpired(ctx, tx.DB(), uc.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		slog.Info("Expired idempotency keys purged", "count", purged)
	}
	return purged, nil
}
