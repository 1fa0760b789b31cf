//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/readstore"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"
	readstoremock "github.com/B1gB4dB4ng/HotelApp/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyReadStore_Get(t *testing.T) {
	ctx := context.Background()
	key, userID, resultID := uuid.New(), uuid.New(), uuid.New()
	expiresAt := time.Date(2024, 6, 21, 3, 0, 0, 0, time.UTC)
	params := sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}

	t.Run("success: completed record with result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		tx := &mockDBTX{}
		store := readstore.NewIdempotencyReadStore(mockQueries)

		row := sqlc.IdempotencyKeys{
			Key:         key,
			UserID:      userID,
			Endpoint:    "POST /api/bookings",
			RequestHash: "abc123",
			Status:      "completed",
			ResultID:    pgtype.UUID{Bytes: resultID, Valid: true},
			ExpiresAt:   pgtype.Timestamptz{Time: expiresAt, Valid: true},
		}
		mockQueries.EXPECT().GetIdempotencyKey(ctx, tx, params).Return(row, nil)

		rec, err := store.Get(ctx, tx, key, userID)

		require.NoError(t, err)
		assert.Equal(t, &shared.IdempotencyRecord{
			Key:         key,
			UserID:      userID,
			Endpoint:    "POST /api/bookings",
			Status:      "completed",
			RequestHash: "abc123",
			ResultID:    &resultID,
			ExpiresAt:   expiresAt,
		}, rec)
	})

	t.Run("error: key unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		tx := &mockDBTX{}
		store := readstore.NewIdempotencyReadStore(mockQueries)

		mockQueries.EXPECT().GetIdempotencyKey(ctx, tx, params).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		rec, err := store.Get(ctx, tx, key, userID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, rec)
	})
}
