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
	repositorymock "github.com/B1gB4dB4ng/HotelApp/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key, userID := uuid.New(), uuid.New()
	expiresAt := time.Date(2024, 6, 21, 3, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expected      bool
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: key created", affected: 1, expected: true},
		{name: "success: key already exists", affected: 0, expected: false},
		{
			name:          "error: database error occurs",
			queryErr:      errors.New("connection reset"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			want := sqlc.TryInsertIdempotencyKeyParams{
				Key:         key,
				UserID:      userID,
				Endpoint:    "POST /api/bookings",
				RequestHash: "abc123",
				ExpiresAt:   pgtype.Timestamptz{Time: expiresAt, Valid: true},
			}
			mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, mockDB, want).Return(tc.affected, tc.queryErr)

			inserted, err := repo.TryInsert(ctx, mockDB, key, userID, "POST /api/bookings", "abc123", expiresAt)

			assertRepoErr(t, err, tc.expectedError, tc.expectKind)
			assert.Equal(t, tc.expected, inserted)
		})
	}
}

func TestIdempotencyRepository_ClaimExpired(t *testing.T) {
	ctx := context.Background()
	key, userID := uuid.New(), uuid.New()
	expiresAt := time.Date(2024, 6, 21, 3, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "success: expired key taken over", affected: 1, expected: true},
		{name: "success: another request claimed it first", affected: 0, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, "POST /api/payments", arg.Endpoint)
					assert.Equal(t, expiresAt, arg.ExpiresAt.Time)
					return tc.affected, nil
				})

			claimed, err := repo.ClaimExpired(ctx, mockDB, key, userID, "POST /api/payments", "def456", expiresAt)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, claimed)
		})
	}
}

func TestIdempotencyRepository_Complete(t *testing.T) {
	ctx := context.Background()
	key, userID, resultID := uuid.New(), uuid.New(), uuid.New()

	t.Run("success: result id recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

		want := sqlc.UpdateIdempotencyKeyCompletedParams{
			Key:      key,
			UserID:   userID,
			ResultID: pgtype.UUID{Bytes: resultID, Valid: true},
		}
		mockQueries.EXPECT().UpdateIdempotencyKeyCompleted(ctx, mockDB, want).Return(nil)

		assert.NoError(t, repo.Complete(ctx, mockDB, key, userID, resultID))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateIdempotencyKeyCompleted(ctx, mockDB, gomock.Any()).Return(errors.New("connection reset"))

		assertRepoErr(t, repo.Complete(ctx, mockDB, key, userID, resultID), true, infra.KindDBFailure)
	})
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	before := time.Date(2024, 6, 20, 3, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

	mockQueries.EXPECT().
		DeleteExpiredIdempotencyKeys(ctx, mockDB, pgtype.Timestamptz{Time: before, Valid: true}).
		Return(int64(7), nil)

	count, err := repo.DeleteExpired(ctx, mockDB, before)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
