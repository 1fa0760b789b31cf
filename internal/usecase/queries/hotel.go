package queries

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"

	"github.com/google/uuid"
)

type HotelReadStore interface {
	FindRating(ctx context.Context, hotelID uuid.UUID) (*HotelRatingView, error)
}

type HotelQueries interface {
	GetRating(ctx context.Context, hotelID uuid.UUID) (*HotelRatingView, error)
}

type hotelQueriesImpl struct {
	repo HotelReadStore
}

func NewHotelQueries(repo HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{repo: repo}
}

func (q *hotelQueriesImpl) GetRating(ctx context.Context, hotelID uuid.UUID) (*HotelRatingView, error) {
	v, err := q.repo.FindRating(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrHotelNotFound
		}
		return nil, err
	}
	return v, nil
}
