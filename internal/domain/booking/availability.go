package booking

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
)

// EvaluateAvailability checks a requested stay against the live stays already
// holding the room. A nil room is treated as not bookable.
func EvaluateAvailability(r *room.Room, period StayPeriod, live []StayPeriod) error {
	if period.Nights() <= 0 {
		return ErrInvalidRange
	}
	if r == nil || !r.IsBookable() {
		return ErrRoomNotBookable
	}
	for _, other := range live {
		if period.Overlaps(other) {
			return ErrRoomUnavailable
		}
	}
	return nil
}

// AnyCovers reports whether one of the stays includes day.
func AnyCovers(stays []StayPeriod, day time.Time) bool {
	for _, s := range stays {
		if s.Covers(day) {
			return true
		}
	}
	return false
}
