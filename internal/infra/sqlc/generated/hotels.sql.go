// Bindings for queries/hotels.sql.

package generated

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getHotelRating = `-- name: GetHotelRating :one
SELECT h.id, h.name, h.average_rating,
       (SELECT count(*) FROM reviews r WHERE r.hotel_id = h.id AND r.status = 'confirmed')::bigint AS confirmed_reviews
FROM hotels h
WHERE h.id = $1
`

type GetHotelRatingRow struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	AverageRating    pgtype.Numeric `json:"average_rating"`
	ConfirmedReviews int64          `json:"confirmed_reviews"`
}

func (q *Queries) GetHotelRating(ctx context.Context, db DBTX, id uuid.UUID) (GetHotelRatingRow, error) {
	row := db.QueryRow(ctx, getHotelRating, id)
	var i GetHotelRatingRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.AverageRating,
		&i.ConfirmedReviews,
	)
	return i, err
}

const hotelExists = `-- name: HotelExists :one
SELECT EXISTS (
    SELECT 1 FROM hotels WHERE id = $1
)
`

func (q *Queries) HotelExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	row := db.QueryRow(ctx, hotelExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const updateHotelAverageRating = `-- name: UpdateHotelAverageRating :execrows
UPDATE hotels
SET average_rating = $2, updated_at = now()
WHERE id = $1
`

type UpdateHotelAverageRatingParams struct {
	ID            uuid.UUID      `json:"id"`
	AverageRating pgtype.Numeric `json:"average_rating"`
}

func (q *Queries) UpdateHotelAverageRating(ctx context.Context, db DBTX, arg UpdateHotelAverageRatingParams) (int64, error) {
	result, err := db.Exec(ctx, updateHotelAverageRating, arg.ID, arg.AverageRating)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
