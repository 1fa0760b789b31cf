package worker

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 5 * time.Minute

var (
	ErrUnknownJob      = errs.Define("unknown job", errs.ErrNotFound)
	ErrJobRunning      = errs.Define("job is already running", errs.ErrConflict)
	errDuplicateJob    = errs.New("job registered twice")
	errSchedulerClosed = errs.New("scheduler is stopped")
)

// JobFunc returns a summary of what the run did.
type JobFunc func(ctx context.Context) (any, error)

type JobStatus struct {
	Name      string
	Spec      string
	Scheduled bool
	NextRun   *time.Time
	LastRun   *time.Time
	LastError *string
}

type JobRun struct {
	Name       string
	StartedAt  time.Time
	FinishedAt time.Time
	Result     any
}

type job struct {
	name    string
	spec    string
	fn      JobFunc
	entryID cron.EntryID

	running sync.Mutex

	mu      sync.Mutex
	lastRun *time.Time
	lastErr *string
}

// Scheduler owns the housekeeping jobs. Registered jobs can always be run by
// name; they only fire on their spec once Start was called.
type Scheduler struct {
	cron  *cron.Cron
	clock clock.Clock

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	jobs    map[string]*job
	started bool
	stopped bool
}

func NewScheduler(clk clock.Clock, cfg config.Config) *Scheduler {
	logger := cronLogger{}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(cfg.Worker.Location()),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
		clock:  clk,
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(map[string]*job),
	}
}

// Register adds a job under spec, a six field cron expression with seconds.
func (s *Scheduler) Register(name, spec string, fn JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return errs.Wrap(errDuplicateJob, name)
	}

	j := &job{name: name, spec: spec, fn: fn}
	id, err := s.cron.AddFunc(spec, func() {
		if _, err := s.run(s.ctx, j); err != nil && !errs.Is(err, ErrJobRunning) {
			slog.Error("Scheduled job failed", "job", name, "error", err.Error())
		}
	})
	if err != nil {
		return errs.Wrap(err, "schedule job "+name)
	}
	j.entryID = id
	s.jobs[name] = j

	slog.Info("Scheduled job", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true
	s.cron.Start()
	slog.Info("Job scheduler started", "jobs", len(s.jobs))
}

// Stop cancels running jobs and waits for them to return, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	stopCtx := s.cron.Stop()

	select {
	case <-stopCtx.Done():
		slog.Info("Job scheduler stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "waiting for scheduled jobs")
	}
}

// RunNow runs a registered job immediately on the caller's context.
func (s *Scheduler) RunNow(ctx context.Context, name string) (JobRun, error) {
	s.mu.Lock()
	j, ok := s.jobs[name]
	stopped := s.stopped
	s.mu.Unlock()

	if !ok {
		return JobRun{}, errs.Wrap(ErrUnknownJob, name)
	}
	if stopped {
		return JobRun{}, errSchedulerClosed
	}
	slog.Info("Running job on demand", "job", name)
	return s.run(ctx, j)
}

// Jobs lists registered jobs ordered by name.
func (s *Scheduler) Jobs() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]JobStatus, 0, len(s.jobs))
	for _, j := range s.jobs {
		st := JobStatus{
			Name:      j.name,
			Spec:      j.spec,
			Scheduled: s.started && !s.stopped,
		}
		if entry := s.cron.Entry(j.entryID); !entry.Next.IsZero() {
			next := entry.Next
			st.NextRun = &next
		}
		j.mu.Lock()
		st.LastRun, st.LastError = j.lastRun, j.lastErr
		j.mu.Unlock()
		out = append(out, st)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

func (s *Scheduler) run(ctx context.Context, j *job) (JobRun, error) {
	if !j.running.TryLock() {
		return JobRun{}, errs.Wrap(ErrJobRunning, j.name)
	}
	defer j.running.Unlock()

	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	run := JobRun{Name: j.name, StartedAt: s.clock.Now()}
	result, err := j.fn(ctx)
	run.FinishedAt = s.clock.Now()
	run.Result = result

	j.mu.Lock()
	started := run.StartedAt
	j.lastRun = &started
	if err != nil {
		msg := err.Error()
		j.lastErr = &msg
	} else {
		j.lastErr = nil
	}
	j.mu.Unlock()

	if err != nil {
		return run, err
	}
	slog.Debug("Job finished",
		"job", j.name,
		"duration", run.FinishedAt.Sub(run.StartedAt).String())
	return run, nil
}

// cronLogger routes robfig/cron output through slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}
