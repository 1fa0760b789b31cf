// Bindings for queries/reviews.sql.

package generated

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReview = `-- name: CreateReview :one
INSERT INTO reviews (
    id, user_id, hotel_id, booking_id, rating_tenths, comment, status, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9
)
RETURNING id, user_id, hotel_id, booking_id, rating_tenths, comment, status, created_at, updated_at
`

type CreateReviewParams struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	HotelID      uuid.UUID          `json:"hotel_id"`
	BookingID    uuid.UUID          `json:"booking_id"`
	RatingTenths int32              `json:"rating_tenths"`
	Comment      pgtype.Text        `json:"comment"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) (Reviews, error) {
	row := db.QueryRow(ctx, createReview,
		arg.ID,
		arg.UserID,
		arg.HotelID,
		arg.BookingID,
		arg.RatingTenths,
		arg.Comment,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Reviews
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.HotelID,
		&i.BookingID,
		&i.RatingTenths,
		&i.Comment,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReview = `-- name: GetReview :one
SELECT id, user_id, hotel_id, booking_id, rating_tenths, comment, status, created_at, updated_at
FROM reviews
WHERE id = $1
`

func (q *Queries) GetReview(ctx context.Context, db DBTX, id uuid.UUID) (Reviews, error) {
	row := db.QueryRow(ctx, getReview, id)
	var i Reviews
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.HotelID,
		&i.BookingID,
		&i.RatingTenths,
		&i.Comment,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReviewByBooking = `-- name: GetReviewByBooking :one
SELECT id, user_id, hotel_id, booking_id, rating_tenths, comment, status, created_at, updated_at
FROM reviews
WHERE booking_id = $1
`

func (q *Queries) GetReviewByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (Reviews, error) {
	row := db.QueryRow(ctx, getReviewByBooking, bookingID)
	var i Reviews
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.HotelID,
		&i.BookingID,
		&i.RatingTenths,
		&i.Comment,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listConfirmedRatings = `-- name: ListConfirmedRatings :many
SELECT rating_tenths
FROM reviews
WHERE hotel_id = $1 AND status = 'confirmed'
`

func (q *Queries) ListConfirmedRatings(ctx context.Context, db DBTX, hotelID uuid.UUID) ([]int32, error) {
	rows, err := db.Query(ctx, listConfirmedRatings, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int32
	for rows.Next() {
		var rating_tenths int32
		if err := rows.Scan(&rating_tenths); err != nil {
			return nil, err
		}
		items = append(items, rating_tenths)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listReviews = `-- name: ListReviews :many
SELECT id, user_id, hotel_id, booking_id, rating_tenths, comment, status, created_at, updated_at
FROM reviews
WHERE ($1::uuid IS NULL OR hotel_id = $1)
  AND ($2::uuid IS NULL OR user_id = $2)
  AND ($3::uuid IS NULL OR booking_id = $3)
  AND (
        ($4::text IS NULL AND status <> 'deleted')
     OR status = $4
  )
  AND ($5::int IS NULL OR rating_tenths = $5)
ORDER BY created_at DESC, id DESC
LIMIT $6
`

type ListReviewsParams struct {
	HotelID      pgtype.UUID `json:"hotel_id"`
	UserID       pgtype.UUID `json:"user_id"`
	BookingID    pgtype.UUID `json:"booking_id"`
	Status       pgtype.Text `json:"status"`
	RatingTenths pgtype.Int4 `json:"rating_tenths"`
	Limit        int32       `json:"limit"`
}

func (q *Queries) ListReviews(ctx context.Context, db DBTX, arg ListReviewsParams) ([]Reviews, error) {
	rows, err := db.Query(ctx, listReviews,
		arg.HotelID,
		arg.UserID,
		arg.BookingID,
		arg.Status,
		arg.RatingTenths,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reviews
	for rows.Next() {
		var i Reviews
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.HotelID,
			&i.BookingID,
			&i.RatingTenths,
			&i.Comment,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateReview = `-- name: UpdateReview :execrows
UPDATE reviews
SET rating_tenths = $2,
    comment = $3,
    status = $4,
    updated_at = $5
WHERE id = $1
`

type UpdateReviewParams struct {
	ID           uuid.UUID          `json:"id"`
	RatingTenths int32              `json:"rating_tenths"`
	Comment      pgtype.Text        `json:"comment"`
	Status       string             `json:"status"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	result, err := db.Exec(ctx, updateReview,
		arg.ID,
		arg.RatingTenths,
		arg.Comment,
		arg.Status,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
