//go:build unit || e2e

package builder

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID             uuid.UUID
	HotelID        uuid.UUID
	Number         string
	PriceCents     int64
	ActiveState    string
	OccupancyState string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:             uuid.New(),
		HotelID:        uuid.New(),
		Number:         "101",
		PriceCents:     15000,
		ActiveState:    string(common.ActiveStateActive),
		OccupancyState: string(room.OccupancyAvailable),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.Reconstruct(
		r.ID, r.HotelID,
		common.MustMoney(r.PriceCents),
		common.ActiveState(r.ActiveState),
		room.OccupancyState(r.OccupancyState),
	)
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		Number:             r.Number,
		PricePerNightCents: r.PriceCents,
		ActiveState:        r.ActiveState,
		OccupancyState:     r.OccupancyState,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		Number:             r.Number,
		PricePerNightCents: r.PriceCents,
		ActiveState:        r.ActiveState,
		OccupancyState:     r.OccupancyState,
	}
}

func (r *RoomBuilder) BuildInfra() sqlc.Rooms {
	now := time.Now()
	return sqlc.Rooms{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		Number:             r.Number,
		PricePerNightCents: r.PriceCents,
		ActiveState:        r.ActiveState,
		OccupancyState:     r.OccupancyState,
		CreatedAt:          pgconv.TimeToPgtype(now),
		UpdatedAt:          pgconv.TimeToPgtype(now),
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithHotelID(id uuid.UUID) *RoomBuilder {
	r.HotelID = id
	return r
}

func (r *RoomBuilder) WithPriceCents(cents int64) *RoomBuilder {
	r.PriceCents = cents
	return r
}

func (r *RoomBuilder) AsReserved() *RoomBuilder {
	r.OccupancyState = string(room.OccupancyReserved)
	return r
}

func (r *RoomBuilder) AsInactive() *RoomBuilder {
	r.ActiveState = string(common.ActiveStateInactive)
	return r
}
