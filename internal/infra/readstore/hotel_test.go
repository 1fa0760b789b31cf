//go:build unit

package readstore_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/readstore"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	readstoremock "github.com/B1gB4dB4ng/HotelApp/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHotelReadStore_FindRating(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	t.Run("success: average decoded from numeric", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockHotelReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewHotelReadStore(mockQueries, mockDB)

		row := sqlc.GetHotelRatingRow{
			ID:               hotelID,
			Name:             "Harbor View",
			AverageRating:    pgtype.Numeric{Int: big.NewInt(425), Exp: -2, Valid: true},
			ConfirmedReviews: 2,
		}
		mockQueries.EXPECT().GetHotelRating(ctx, mockDB, hotelID).Return(row, nil)

		view, err := store.FindRating(ctx, hotelID)

		require.NoError(t, err)
		require.NotNil(t, view.AverageRating)
		assert.InDelta(t, 4.25, *view.AverageRating, 1e-9)
		assert.Equal(t, "Harbor View", view.Name)
		assert.Equal(t, int64(2), view.ConfirmedReviews)
	})

	t.Run("success: hotel without confirmed reviews has no average", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockHotelReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewHotelReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetHotelRating(ctx, mockDB, hotelID).
			Return(sqlc.GetHotelRatingRow{ID: hotelID, Name: "Harbor View"}, nil)

		view, err := store.FindRating(ctx, hotelID)

		require.NoError(t, err)
		assert.Nil(t, view.AverageRating)
		assert.Zero(t, view.ConfirmedReviews)
	})

	t.Run("error: hotel not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockHotelReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewHotelReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetHotelRating(ctx, mockDB, hotelID).Return(sqlc.GetHotelRatingRow{}, pgx.ErrNoRows)

		view, err := store.FindRating(ctx, hotelID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

func TestHotelReadStore_Exists(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockHotelReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewHotelReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().HotelExists(ctx, mockDB, hotelID).Return(true, nil)

	ok, err := store.Exists(ctx, hotelID)

	require.NoError(t, err)
	assert.True(t, ok)
}
