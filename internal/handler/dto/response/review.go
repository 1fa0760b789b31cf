package response

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	HotelID   uuid.UUID `json:"hotel_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	var res ReviewResponse
	copyFields(&res, v)
	res.Rating = float64(v.RatingTenths) / 10
	return &res
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(items))
	for i, it := range items {
		res[i] = FromReviewView(it)
	}
	return res
}

// AverageRating is null while the hotel has no confirmed reviews.
type HotelRatingResponse struct {
	HotelID          uuid.UUID `json:"hotel_id"`
	Name             string    `json:"name"`
	AverageRating    *float64  `json:"average_rating"`
	ConfirmedReviews int64     `json:"confirmed_reviews"`
}

func FromHotelRatingView(v *queries.HotelRatingView) *HotelRatingResponse {
	var res HotelRatingResponse
	copyFields(&res, v)
	return &res
}
