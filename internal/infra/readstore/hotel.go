package readstore

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelReadQueries interface {
	HotelExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	GetHotelRating(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHotelRatingRow, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelReadQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.HotelExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hotel existence", err)
	}
	return ok, nil
}

func (r *HotelReadStore) FindRating(ctx context.Context, hotelID uuid.UUID) (*queries.HotelRatingView, error) {
	row, err := r.queries.GetHotelRating(ctx, r.db, hotelID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel rating", err)
	}
	avg, err := pgconv.Float64PtrFromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode hotel average rating", err)
	}
	return &queries.HotelRatingView{
		HotelID:          row.ID,
		Name:             row.Name,
		AverageRating:    avg,
		ConfirmedReviews: row.ConfirmedReviews,
	}, nil
}
