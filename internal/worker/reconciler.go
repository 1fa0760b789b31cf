package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
)

var errAlreadyStarted = errs.New("reconciler already started")

// Reconciler runs the room status reconciliation pass once at start and then
// once per interval until stopped. Passes never overlap, including manual ones.
type Reconciler struct {
	cmds     commands.RoomStatusCommands
	clock    clock.Clock
	interval time.Duration

	passMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewReconciler(cmds commands.RoomStatusCommands, clk clock.Clock, cfg config.Config) *Reconciler {
	interval := cfg.Worker.ReconcileInterval
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Reconciler{
		cmds:     cmds,
		clock:    clk,
		interval: interval,
	}
}

// Start returns immediately. The loop outlives ctx and ends with Stop.
func (r *Reconciler) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return errAlreadyStarted
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.loop(loopCtx, r.done)

	slog.Info("Room status reconciler started", "interval", r.interval.String())
	return nil
}

// Stop cancels the running pass and waits for the loop to exit, or for ctx.
func (r *Reconciler) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		slog.Info("Room status reconciler stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "waiting for reconciler to stop")
	}
}

// RunOnce runs a single pass, waiting for any pass already in progress.
func (r *Reconciler) RunOnce(ctx context.Context) (commands.ReconcileReport, error) {
	r.passMu.Lock()
	defer r.passMu.Unlock()

	return r.cmds.ReconcileExpired(ctx)
}

func (r *Reconciler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Reconciliation pass failed", "error", err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-r.clock.After(r.interval):
		}
	}
}
