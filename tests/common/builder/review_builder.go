//go:build unit || e2e

package builder

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	HotelID   uuid.UUID
	BookingID uuid.UUID
	Rating    float64
	Comment   *string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Date(2024, 6, 20, 3, 0, 0, 0, time.UTC)
	comment := "Quiet room, friendly staff."
	return &ReviewBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		HotelID:   uuid.New(),
		BookingID: uuid.New(),
		Rating:    4.5,
		Comment:   &comment,
		Status:    string(review.StatusPending),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) tenths() int32 {
	rating, err := review.RatingFromFloat(r.Rating)
	if err != nil {
		return int32(r.Rating * 10)
	}
	return int32(rating.Tenths())
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	rating, err := review.RatingFromFloat(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	status, err := review.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return review.Reconstruct(r.ID, r.UserID, r.HotelID, r.BookingID, rating, comment, status, r.CreatedAt, r.UpdatedAt), nil
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:           r.ID,
		UserID:       r.UserID,
		HotelID:      r.HotelID,
		BookingID:    r.BookingID,
		RatingTenths: r.tenths(),
		Comment:      r.Comment,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           r.ID,
		UserID:       r.UserID,
		HotelID:      r.HotelID,
		BookingID:    r.BookingID,
		RatingTenths: r.tenths(),
		Comment:      r.Comment,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:           r.ID,
		UserID:       r.UserID,
		HotelID:      r.HotelID,
		BookingID:    r.BookingID,
		RatingTenths: r.tenths(),
		Comment:      pgconv.StringPtrToPgtype(r.Comment),
		Status:       r.Status,
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt),
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithUserID(id uuid.UUID) *ReviewBuilder {
	r.UserID = id
	return r
}

func (r *ReviewBuilder) WithHotelID(id uuid.UUID) *ReviewBuilder {
	r.HotelID = id
	return r
}

func (r *ReviewBuilder) WithBookingID(id uuid.UUID) *ReviewBuilder {
	r.BookingID = id
	return r
}

func (r *ReviewBuilder) WithRating(rating float64) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = &comment
	return r
}

func (r *ReviewBuilder) WithoutComment() *ReviewBuilder {
	r.Comment = nil
	return r
}

func (r *ReviewBuilder) WithStatus(status review.Status) *ReviewBuilder {
	r.Status = string(status)
	return r
}
