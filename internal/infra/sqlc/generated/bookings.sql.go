// Bindings for queries/bookings.sql.

package generated

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
    id, user_id, hotel_id, room_id, check_in, check_out,
    lifecycle_state, active_state, total_cost_cents, cancel_reason, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
)
RETURNING id, user_id, hotel_id, room_id, check_in, check_out, lifecycle_state, active_state, total_cost_cents, cancel_reason, created_at, updated_at
`

type CreateBookingParams struct {
	ID             uuid.UUID          `json:"id"`
	UserID         uuid.UUID          `json:"user_id"`
	HotelID        uuid.UUID          `json:"hotel_id"`
	RoomID         uuid.UUID          `json:"room_id"`
	CheckIn        pgtype.Date        `json:"check_in"`
	CheckOut       pgtype.Date        `json:"check_out"`
	LifecycleState string             `json:"lifecycle_state"`
	ActiveState    string             `json:"active_state"`
	TotalCostCents int64              `json:"total_cost_cents"`
	CancelReason   pgtype.Text        `json:"cancel_reason"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.UserID,
		arg.HotelID,
		arg.RoomID,
		arg.CheckIn,
		arg.CheckOut,
		arg.LifecycleState,
		arg.ActiveState,
		arg.TotalCostCents,
		arg.CancelReason,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.HotelID,
		&i.RoomID,
		&i.CheckIn,
		&i.CheckOut,
		&i.LifecycleState,
		&i.ActiveState,
		&i.TotalCostCents,
		&i.CancelReason,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBooking = `-- name: GetBooking :one
SELECT id, user_id, hotel_id, room_id, check_in, check_out, lifecycle_state, active_state, total_cost_cents, cancel_reason, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBooking, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.HotelID,
		&i.RoomID,
		&i.CheckIn,
		&i.CheckOut,
		&i.LifecycleState,
		&i.ActiveState,
		&i.TotalCostCents,
		&i.CancelReason,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listBookings = `-- name: ListBookings :many
SELECT id, user_id, hotel_id, room_id, check_in, check_out, lifecycle_state, active_state, total_cost_cents, cancel_reason, created_at, updated_at
FROM bookings
WHERE ($1::uuid IS NULL OR user_id = $1)
  AND ($2::uuid IS NULL OR hotel_id = $2)
  AND ($3::uuid IS NULL OR room_id = $3)
  AND ($4::uuid IS NULL OR id = $4)
  AND (
        ($5::text IS NULL AND active_state <> 'deleted')
     OR active_state = $5
  )
  AND ($6::text IS NULL OR lifecycle_state = $6)
ORDER BY created_at DESC, id DESC
LIMIT $7
`

type ListBookingsParams struct {
	UserID         pgtype.UUID `json:"user_id"`
	HotelID        pgtype.UUID `json:"hotel_id"`
	RoomID         pgtype.UUID `json:"room_id"`
	ID             pgtype.UUID `json:"id"`
	ActiveState    pgtype.Text `json:"active_state"`
	LifecycleState pgtype.Text `json:"lifecycle_state"`
	Limit          int32       `json:"limit"`
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listBookings,
		arg.UserID,
		arg.HotelID,
		arg.RoomID,
		arg.ID,
		arg.ActiveState,
		arg.LifecycleState,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		var i Bookings
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.HotelID,
			&i.RoomID,
			&i.CheckIn,
			&i.CheckOut,
			&i.LifecycleState,
			&i.ActiveState,
			&i.TotalCostCents,
			&i.CancelReason,
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

const listLiveStaysForRoom = `-- name: ListLiveStaysForRoom :many
SELECT check_in, check_out
FROM bookings
WHERE room_id = $1
  AND active_state = 'active'
  AND lifecycle_state <> 'cancelled'
  AND ($2::uuid IS NULL OR id <> $2)
ORDER BY check_in
`

type ListLiveStaysForRoomParams struct {
	RoomID    uuid.UUID   `json:"room_id"`
	ExcludeID pgtype.UUID `json:"exclude_id"`
}

type ListLiveStaysForRoomRow struct {
	CheckIn  pgtype.Date `json:"check_in"`
	CheckOut pgtype.Date `json:"check_out"`
}

func (q *Queries) ListLiveStaysForRoom(ctx context.Context, db DBTX, arg ListLiveStaysForRoomParams) ([]ListLiveStaysForRoomRow, error) {
	rows, err := db.Query(ctx, listLiveStaysForRoom, arg.RoomID, arg.ExcludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListLiveStaysForRoomRow
	for rows.Next() {
		var i ListLiveStaysForRoomRow
		if err := rows.Scan(&i.CheckIn, &i.CheckOut); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRoomsWithExpiredStays = `-- name: ListRoomsWithExpiredStays :many
SELECT DISTINCT room_id
FROM bookings
WHERE check_out < $1
ORDER BY room_id
`

func (q *Queries) ListRoomsWithExpiredStays(ctx context.Context, db DBTX, checkOut pgtype.Date) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listRoomsWithExpiredStays, checkOut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var room_id uuid.UUID
		if err := rows.Scan(&room_id); err != nil {
			return nil, err
		}
		items = append(items, room_id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateBooking = `-- name: UpdateBooking :execrows
UPDATE bookings
SET check_in = $2,
    check_out = $3,
    lifecycle_state = $4,
    active_state = $5,
    total_cost_cents = $6,
    cancel_reason = $7,
    updated_at = $8
WHERE id = $1
`

type UpdateBookingParams struct {
	ID             uuid.UUID          `json:"id"`
	CheckIn        pgtype.Date        `json:"check_in"`
	CheckOut       pgtype.Date        `json:"check_out"`
	LifecycleState string             `json:"lifecycle_state"`
	ActiveState    string             `json:"active_state"`
	TotalCostCents int64              `json:"total_cost_cents"`
	CancelReason   pgtype.Text        `json:"cancel_reason"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.CheckIn,
		arg.CheckOut,
		arg.LifecycleState,
		arg.ActiveState,
		arg.TotalCostCents,
		arg.CancelReason,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
