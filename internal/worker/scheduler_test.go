//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/worker"
	commandsmock "github.com/B1gB4dB4ng/HotelApp/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newScheduler(t *testing.T) (*worker.Scheduler, *commandsmock.MockHousekeepingCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	hk := commandsmock.NewMockHousekeepingCommands(ctrl)
	cfg := config.NewTestConfig()
	s := worker.NewScheduler(clock.NewMockClock(time.Date(2024, 6, 20, 3, 0, 0, 0, time.UTC)), cfg)
	require.NoError(t, worker.RegisterHousekeeping(s, hk, cfg))
	t.Cleanup(func() { _ = s.Stop(context.Background()) })
	return s, hk
}

func TestScheduler_RunNow(t *testing.T) {
	ctx := context.Background()

	t.Run("success: outbox relay returns its report", func(t *testing.T) {
		s, hk := newScheduler(t)
		report := commands.RelayReport{Claimed: 3, Sent: 2, Retried: 1}
		hk.EXPECT().RelayNotifications(gomock.Any()).Return(report, nil)

		run, err := s.RunNow(ctx, worker.JobOutboxRelay)

		require.NoError(t, err)
		assert.Equal(t, worker.JobOutboxRelay, run.Name)
		assert.Equal(t, report, run.Result)
	})

	t.Run("success: purge reports deleted keys", func(t *testing.T) {
		s, hk := newScheduler(t)
		hk.EXPECT().PurgeIdempotencyKeys(gomock.Any()).Return(int64(4), nil)

		run, err := s.RunNow(ctx, worker.JobIdempotencyPurge)

		require.NoError(t, err)
		assert.Equal(t, worker.PurgeResult{Deleted: 4}, run.Result)
	})

	t.Run("failure is recorded on the job", func(t *testing.T) {
		s, hk := newScheduler(t)
		hk.EXPECT().PurgeIdempotencyKeys(gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := s.RunNow(ctx, worker.JobIdempotencyPurge)
		require.Error(t, err)

		var purge worker.JobStatus
		for _, st := range s.Jobs() {
			if st.Name == worker.JobIdempotencyPurge {
				purge = st
			}
		}
		require.NotNil(t, purge.LastRun)
		require.NotNil(t, purge.LastError)
		assert.Equal(t, "db down", *purge.LastError)
	})

	t.Run("unknown job is not found", func(t *testing.T) {
		s, _ := newScheduler(t)

		_, err := s.RunNow(ctx, "vacuum")

		require.Error(t, err)
		assert.True(t, errs.Is(err, worker.ErrUnknownJob))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("a job cannot run twice at once", func(t *testing.T) {
		s, hk := newScheduler(t)
		entered := make(chan struct{})
		release := make(chan struct{})
		hk.EXPECT().RelayNotifications(gomock.Any()).
			DoAndReturn(func(context.Context) (commands.RelayReport, error) {
				close(entered)
				<-release
				return commands.RelayReport{}, nil
			})

		done := make(chan error, 1)
		go func() {
			_, err := s.RunNow(ctx, worker.JobOutboxRelay)
			done <- err
		}()
		<-entered

		_, err := s.RunNow(ctx, worker.JobOutboxRelay)
		assert.True(t, errs.Is(err, worker.ErrJobRunning))
		assert.True(t, errs.Is(err, errs.ErrConflict))

		close(release)
		require.NoError(t, <-done)
	})
}

func TestScheduler_Jobs(t *testing.T) {
	s, _ := newScheduler(t)

	jobs := s.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, worker.JobIdempotencyPurge, jobs[0].Name)
	assert.Equal(t, "0 30 3 * * *", jobs[0].Spec)
	assert.Equal(t, worker.JobOutboxRelay, jobs[1].Name)
	assert.False(t, jobs[1].Scheduled)
	assert.Nil(t, jobs[1].LastRun)

	s.Start()
	for _, st := range s.Jobs() {
		assert.True(t, st.Scheduled)
	}
}

func TestScheduler_Register(t *testing.T) {
	s := worker.NewScheduler(clock.NewRealClock(), config.NewTestConfig())
	noop := func(context.Context) (any, error) { return nil, nil }

	require.NoError(t, s.Register("noop", "0 * * * * *", noop))
	assert.Error(t, s.Register("noop", "0 * * * * *", noop))
	assert.Error(t, s.Register("bad", "not a spec", noop))
}
