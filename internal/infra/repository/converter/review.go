package converter

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:           r.ID(),
		UserID:       r.UserID(),
		HotelID:      r.HotelID(),
		BookingID:    r.BookingID(),
		RatingTenths: int32(r.Rating().Tenths()),
		Comment:      pgconv.StringPtrToPgtype(r.Comment().Text()),
		Status:       r.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:           r.ID(),
		RatingTenths: int32(r.Rating().Tenths()),
		Comment:      pgconv.StringPtrToPgtype(r.Comment().Text()),
		Status:       r.Status().String(),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
