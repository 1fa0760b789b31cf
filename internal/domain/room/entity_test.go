//go:build unit

package room_test

import (
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoom_DecideRelease(t *testing.T) {
	testCases := []struct {
		name         string
		active       common.ActiveState
		occupancy    room.OccupancyState
		coveredToday bool
		want         room.ReleaseDecision
	}{
		{name: "reserved room with expired stay is released", active: common.ActiveStateActive, occupancy: room.OccupancyReserved, want: room.Release},
		{name: "unavailable room with expired stay is released", active: common.ActiveStateActive, occupancy: room.OccupancyUnavailable, want: room.Release},
		{name: "deactivated room is left alone", active: common.ActiveStateInactive, occupancy: room.OccupancyReserved, want: room.SkipInactive},
		{name: "deleted room is left alone", active: common.ActiveStateDeleted, occupancy: room.OccupancyReserved, want: room.SkipInactive},
		{name: "room with a stay covering today stays reserved", active: common.ActiveStateActive, occupancy: room.OccupancyReserved, coveredToday: true, want: room.SkipOccupied},
		{name: "already available room is not toggled", active: common.ActiveStateActive, occupancy: room.OccupancyAvailable, want: room.SkipAlreadyAvailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := room.Reconstruct(uuid.New(), uuid.New(), common.MustMoney(10000), tc.active, tc.occupancy)
			assert.Equal(t, tc.want, r.DecideRelease(tc.coveredToday))
		})
	}

	t.Run("second decision after release is a no-op", func(t *testing.T) {
		roomID, hotelID := uuid.New(), uuid.New()
		before := room.Reconstruct(roomID, hotelID, common.MustMoney(10000), common.ActiveStateActive, room.OccupancyReserved)
		assert.Equal(t, room.Release, before.DecideRelease(false))
		after := room.Reconstruct(roomID, hotelID, common.MustMoney(10000), common.ActiveStateActive, room.OccupancyAvailable)
		assert.Equal(t, room.SkipAlreadyAvailable, after.DecideRelease(false))
	})
}

func TestParseOccupancy(t *testing.T) {
	s, err := room.ParseOccupancy("reserved")
	assert.NoError(t, err)
	assert.Equal(t, room.OccupancyReserved, s)

	_, err = room.ParseOccupancy("occupied")
	assert.ErrorIs(t, err, room.ErrInvalidOccupancy)
}
