//go:build unit

package repository_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/repository"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	repositorymock "github.com/B1gB4dB4ng/HotelApp/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHotelRatingRepository_Recompute(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()

	hundredths := func(v int64) *int64 { return &v }

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockHotelRatingQueries, sqlc.DBTX)
		expected      *int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: average of confirmed ratings",
			setupMock: func(mock *repositorymock.MockHotelRatingQueries, tx sqlc.DBTX) {
				mock.EXPECT().ListConfirmedRatings(ctx, tx, hotelID).Return([]int32{45, 40}, nil)
				want := sqlc.UpdateHotelAverageRatingParams{
					ID:            hotelID,
					AverageRating: pgtype.Numeric{Int: big.NewInt(425), Exp: -2, Valid: true},
				}
				mock.EXPECT().UpdateHotelAverageRating(ctx, tx, want).Return(int64(1), nil)
			},
			expected: hundredths(425),
		},
		{
			name: "success: average rounds half up",
			setupMock: func(mock *repositorymock.MockHotelRatingQueries, tx sqlc.DBTX) {
				// 13.0 / 3 = 4.333..
				mock.EXPECT().ListConfirmedRatings(ctx, tx, hotelID).Return([]int32{50, 40, 40}, nil)
				mock.EXPECT().UpdateHotelAverageRating(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expected: hundredths(433),
		},
		{
			name: "success: no confirmed reviews clears the average",
			setupMock: func(mock *repositorymock.MockHotelRatingQueries, tx sqlc.DBTX) {
				mock.EXPECT().ListConfirmedRatings(ctx, tx, hotelID).Return(nil, nil)
				want := sqlc.UpdateHotelAverageRatingParams{
					ID:            hotelID,
					AverageRating: pgtype.Numeric{Valid: false},
				}
				mock.EXPECT().UpdateHotelAverageRating(ctx, tx, want).Return(int64(1), nil)
			},
			expected: nil,
		},
		{
			name: "error: stored rating out of range",
			setupMock: func(mock *repositorymock.MockHotelRatingQueries, tx sqlc.DBTX) {
				mock.EXPECT().ListConfirmedRatings(ctx, tx, hotelID).Return([]int32{45, 70}, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: hotel not found",
			setupMock: func(mock *repositorymock.MockHotelRatingQueries, tx sqlc.DBTX) {
				mock.EXPECT().ListConfirmedRatings(ctx, tx, hotelID).Return([]int32{45}, nil)
				mock.EXPECT().UpdateHotelAverageRating(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: listing fails",
			setupMock: func(mock *repositorymock.MockHotelRatingQueries, tx sqlc.DBTX) {
				mock.EXPECT().ListConfirmedRatings(ctx, tx, hotelID).Return(nil, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockHotelRatingQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewHotelRatingRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			avg, err := repo.Recompute(ctx, mockDB, hotelID)

			assertRepoErr(t, err, tc.expectedError, tc.expectKind)
			if tc.expectedError {
				assert.Nil(t, avg)
				return
			}
			if tc.expected == nil {
				assert.Nil(t, avg)
				return
			}
			require.NotNil(t, avg)
			assert.Equal(t, *tc.expected, *avg)
		})
	}
}
