package readstore

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	GetReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
	GetReviewByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Reviews, error)
	ListReviews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsParams) ([]sqlc.Reviews, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReview(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by id", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByBooking(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by booking", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) List(ctx context.Context, params queries.ReviewListParams) ([]*queries.ReviewView, error) {
	arg := sqlc.ListReviewsParams{
		HotelID:      pgconv.UUIDPtrToPgtype(params.HotelID),
		UserID:       pgconv.UUIDPtrToPgtype(params.UserID),
		BookingID:    pgconv.UUIDPtrToPgtype(params.BookingID),
		Status:       pgconv.StringPtrToPgtype(params.Status),
		RatingTenths: pgconv.Int32PtrToPgtype(params.RatingTenths),
		Limit:        params.Limit,
	}

	rows, err := r.queries.ListReviews(ctx, r.db, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}

	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(row)
	}
	return result, nil
}

func toReviewView(row sqlc.Reviews) *queries.ReviewView {
	return &queries.ReviewView{
		ID:           row.ID,
		UserID:       row.UserID,
		HotelID:      row.HotelID,
		BookingID:    row.BookingID,
		RatingTenths: row.RatingTenths,
		Comment:      pgconv.StringPtrFromPgtype(row.Comment),
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
