package queries

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"

	"github.com/google/uuid"
)

// ReviewFilter narrows a review listing. Rating is the raw query value and is
// parsed here so malformed input is reported as invalid input.
type ReviewFilter struct {
	HotelID   *uuid.UUID
	UserID    *uuid.UUID
	BookingID *uuid.UUID
	Status    *string
	Rating    *string
	Limit     int
}

// ReviewListParams is a validated ReviewFilter.
type ReviewListParams struct {
	HotelID      *uuid.UUID
	UserID       *uuid.UUID
	BookingID    *uuid.UUID
	Status       *string
	RatingTenths *int32
	Limit        int32
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	List(ctx context.Context, params ReviewListParams) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	List(ctx context.Context, filter ReviewFilter) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) List(ctx context.Context, filter ReviewFilter) ([]*ReviewView, error) {
	params := ReviewListParams{
		HotelID:   filter.HotelID,
		UserID:    filter.UserID,
		BookingID: filter.BookingID,
		Status:    filter.Status,
		Limit:     int32(ValidateLimit(filter.Limit)),
	}
	if filter.Status != nil {
		if _, err := review.ParseStatus(*filter.Status); err != nil {
			return nil, err
		}
	}
	if filter.Rating != nil {
		rating, err := review.ParseRating(*filter.Rating)
		if err != nil {
			return nil, err
		}
		tenths := int32(rating.Tenths())
		params.RatingTenths = &tenths
	}

	rows, err := q.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoMatches
	}
	return rows, nil
}
