//go:build unit

package booking_test

import (
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateAvailability(t *testing.T) {
	open := room.Reconstruct(uuid.New(), uuid.New(), common.MustMoney(10000), common.ActiveStateActive, room.OccupancyAvailable)
	closed := room.Reconstruct(uuid.New(), uuid.New(), common.MustMoney(10000), common.ActiveStateInactive, room.OccupancyAvailable)

	cases := []struct {
		name  string
		room  *room.Room
		live  [][2]string
		errIs error
	}{
		{name: "empty calendar", room: open},
		{name: "adjacent stays do not block", room: open, live: [][2]string{{"2025-06-05", "2025-06-10"}, {"2025-06-12", "2025-06-15"}}},
		{name: "overlapping stay blocks", room: open, live: [][2]string{{"2025-06-11", "2025-06-13"}}, errIs: booking.ErrRoomUnavailable},
		{name: "inactive room", room: closed, errIs: booking.ErrRoomNotBookable},
		{name: "missing room", room: nil, errIs: booking.ErrRoomNotBookable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			live := make([]booking.StayPeriod, 0, len(tc.live))
			for _, l := range tc.live {
				live = append(live, period(t, l[0], l[1]))
			}

			err := booking.EvaluateAvailability(tc.room, period(t, "2025-06-10", "2025-06-12"), live)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrConflict))
		})
	}
}

func TestAnyCovers(t *testing.T) {
	stays := []booking.StayPeriod{period(t, "2025-06-10", "2025-06-12")}
	assert.True(t, booking.AnyCovers(stays, date("2025-06-11")))
	assert.False(t, booking.AnyCovers(stays, date("2025-06-12")))
	assert.False(t, booking.AnyCovers(nil, date("2025-06-11")))
}
