package repository

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelRatingQueries interface {
	ListConfirmedRatings(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]int32, error)
	UpdateHotelAverageRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHotelAverageRatingParams) (int64, error)
}

type HotelRatingRepository struct {
	queries HotelRatingQueries
	db      sqlc.DBTX
}

func NewHotelRatingRepository(queries HotelRatingQueries, db sqlc.DBTX) *HotelRatingRepository {
	return &HotelRatingRepository{
		queries: queries,
		db:      db,
	}
}

// Recompute reads the confirmed ratings inside tx so the stored average
// reflects the review change made in the same transaction.
func (r *HotelRatingRepository) Recompute(ctx context.Context, tx sqlc.DBTX, hotelID uuid.UUID) (*int64, error) {
	tenths, err := r.queries.ListConfirmedRatings(ctx, tx, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed ratings", err)
	}

	ratings := make([]review.Rating, 0, len(tenths))
	for _, t := range tenths {
		rating, rerr := review.NewRating(int(t))
		if rerr != nil {
			return nil, infra.WrapRepoErr("stored rating out of range", rerr)
		}
		ratings = append(ratings, rating)
	}
	avg := review.Average(ratings)

	params := sqlc.UpdateHotelAverageRatingParams{
		ID:            hotelID,
		AverageRating: pgconv.NumericFromHundredths(avg),
	}
	affected, err := r.queries.UpdateHotelAverageRating(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update hotel average rating", err)
	}
	if affected == 0 {
		return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return avg, nil
}
