package bootstrap

import (
	"context"
	"log/slog"

	"github.com/B1gB4dB4ng/HotelApp/internal/handler/api"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			worker.NewReconciler,
			fx.As(fx.Self()),
			fx.As(new(api.ReconcileRunner)),
		),
		fx.Annotate(
			NewScheduler,
			fx.As(fx.Self()),
			fx.As(new(api.JobScheduler)),
		),
	),
	fx.Invoke(
		startReconciler,
		startScheduler,
	),
)

// Jobs are registered even when the scheduler is disabled; RunNow still reaches them.
func NewScheduler(clk clock.Clock, cfg config.Config, hk commands.HousekeepingCommands) (*worker.Scheduler, error) {
	s := worker.NewScheduler(clk, cfg)
	if err := worker.RegisterHousekeeping(s, hk, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func startReconciler(lc fx.Lifecycle, r *worker.Reconciler, cfg config.Config) {
	if !cfg.Worker.ReconcileEnabled {
		slog.Info("room status reconciler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: r.Start,
		OnStop:  r.Stop,
	})
}

func startScheduler(lc fx.Lifecycle, s *worker.Scheduler, cfg config.Config) {
	if !cfg.Worker.SchedulerEnabled {
		slog.Info("housekeeping scheduler disabled, jobs run on demand only")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
