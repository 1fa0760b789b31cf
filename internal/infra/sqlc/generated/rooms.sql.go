// Bindings for queries/rooms.sql.

package generated

import (
	"context"

	"github.com/google/uuid"
)

const getRoom = `-- name: GetRoom :one
SELECT id, hotel_id, number, price_per_night_cents, active_state, occupancy_state, created_at, updated_at
FROM rooms
WHERE id = $1
`

func (q *Queries) GetRoom(ctx context.Context, db DBTX, id uuid.UUID) (Rooms, error) {
	row := db.QueryRow(ctx, getRoom, id)
	var i Rooms
	err := row.Scan(
		&i.ID,
		&i.HotelID,
		&i.Number,
		&i.PricePerNightCents,
		&i.ActiveState,
		&i.OccupancyState,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const lockRoom = `-- name: LockRoom :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::uuid::text, 0))
`

func (q *Queries) LockRoom(ctx context.Context, db DBTX, roomID uuid.UUID) error {
	_, err := db.Exec(ctx, lockRoom, roomID)
	return err
}

const updateRoomOccupancy = `-- name: UpdateRoomOccupancy :execrows
UPDATE rooms
SET occupancy_state = $2, updated_at = now()
WHERE id = $1
`

type UpdateRoomOccupancyParams struct {
	ID             uuid.UUID `json:"id"`
	OccupancyState string    `json:"occupancy_state"`
}

func (q *Queries) UpdateRoomOccupancy(ctx context.Context, db DBTX, arg UpdateRoomOccupancyParams) (int64, error) {
	result, err := db.Exec(ctx, updateRoomOccupancy, arg.ID, arg.OccupancyState)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
