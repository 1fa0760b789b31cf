package room

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"

	"github.com/google/uuid"
)

type Room struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	pricePerNight common.Money
	activeState   common.ActiveState
	occupancy     OccupancyState
}

func Reconstruct(id, hotelID uuid.UUID, pricePerNight common.Money, activeState common.ActiveState, occupancy OccupancyState) *Room {
	return &Room{
		id:            id,
		hotelID:       hotelID,
		pricePerNight: pricePerNight,
		activeState:   activeState,
		occupancy:     occupancy,
	}
}

func (r *Room) ID() uuid.UUID                   { return r.id }
func (r *Room) HotelID() uuid.UUID              { return r.hotelID }
func (r *Room) PricePerNight() common.Money     { return r.pricePerNight }
func (r *Room) ActiveState() common.ActiveState { return r.activeState }
func (r *Room) Occupancy() OccupancyState       { return r.occupancy }

func (r *Room) IsBookable() bool {
	return r.activeState == common.ActiveStateActive
}

func (r *Room) BelongsTo(hotelID uuid.UUID) bool {
	return r.hotelID == hotelID
}

// DecideRelease decides whether an expired stay lets the room go back to
// available. Running it again after a release yields SkipAlreadyAvailable.
func (r *Room) DecideRelease(coveredToday bool) ReleaseDecision {
	switch {
	case !r.IsBookable():
		return SkipInactive
	case coveredToday:
		return SkipOccupied
	case r.occupancy == OccupancyAvailable:
		return SkipAlreadyAvailable
	default:
		return Release
	}
}

