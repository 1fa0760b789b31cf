//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/repository"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"
	repositorymock "github.com/B1gB4dB4ng/HotelApp/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jobNow = time.Date(2024, 6, 20, 3, 0, 0, 0, time.UTC)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"booking_id":"b1"}`)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	want := sqlc.CreateNotificationJobParams{
		Kind:    "booking_confirmed",
		Topic:   "booking.confirmed",
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: jobNow, Valid: true},
		Status:  shared.NotificationStatusQueued,
	}
	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, want).Return(nil)

	assert.NoError(t, repo.CreateJob(ctx, mockDB, "booking_confirmed", "booking.confirmed", payload, jobNow))
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows mapped to jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		rows := []sqlc.NotificationJobs{
			{ID: uuid.New(), Kind: "booking_confirmed", Topic: "booking.confirmed", Payload: []byte("{}"), RunAt: pgtype.Timestamptz{Time: jobNow, Valid: true}, Attempts: 2},
		}
		want := sqlc.ClaimDueNotificationJobsParams{RunAt: pgtype.Timestamptz{Time: jobNow, Valid: true}, Limit: 50}
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, want).Return(rows, nil)

		jobs, err := repo.ClaimDue(ctx, mockDB, jobNow, 50)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.NotificationJob{
			ID:       rows[0].ID,
			Kind:     "booking_confirmed",
			Topic:    "booking.confirmed",
			Payload:  []byte("{}"),
			RunAt:    jobNow,
			Attempts: 2,
		}, jobs[0])
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("connection reset"))

		jobs, err := repo.ClaimDue(ctx, mockDB, jobNow, 50)

		assertRepoErr(t, err, true, infra.KindDBFailure)
		assert.Nil(t, jobs)
	})
}

func TestNotificationRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()
	next := jobNow.Add(30 * time.Second)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	want := sqlc.MarkNotificationJobFailedParams{
		ID:        jobID,
		Status:    shared.NotificationStatusQueued,
		LastError: pgtype.Text{String: "broker unavailable", Valid: true},
		RunAt:     pgtype.Timestamptz{Time: next, Valid: true},
	}
	mockQueries.EXPECT().MarkNotificationJobFailed(ctx, mockDB, want).Return(nil)
	mockQueries.EXPECT().MarkNotificationJobSent(ctx, mockDB, jobID).Return(errors.New("connection reset"))

	assert.NoError(t, repo.MarkFailed(ctx, mockDB, jobID, shared.NotificationStatusQueued, "broker unavailable", next))
	assertRepoErr(t, repo.MarkSent(ctx, mockDB, jobID), true, infra.KindDBFailure)
}
