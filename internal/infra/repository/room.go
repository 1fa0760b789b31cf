package repository

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	LockRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) error
	UpdateRoomOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomOccupancyParams) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

// Lock blocks until no other transaction holds the room. The lock is released on commit or rollback.
func (r *RoomRepository) Lock(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) error {
	if err := r.queries.LockRoom(ctx, tx, roomID); err != nil {
		return infra.WrapRepoErr("failed to lock room", err)
	}
	return nil
}

func (r *RoomRepository) UpdateOccupancy(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, state room.OccupancyState) error {
	params := sqlc.UpdateRoomOccupancyParams{
		ID:             roomID,
		OccupancyState: state.String(),
	}
	affected, err := r.queries.UpdateRoomOccupancy(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update room occupancy", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
