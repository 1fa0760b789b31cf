package review

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"

	"github.com/google/uuid"
)

// CheckEligibility gates a review on ownership, hotel, a confirmed lifecycle
// and a check-out strictly before today.
func CheckEligibility(b *booking.Booking, userID, hotelID uuid.UUID, today time.Time) error {
	if !b.IsOwnedBy(userID) {
		return ErrNotBookingOwner
	}
	if b.HotelID() != hotelID {
		return ErrHotelMismatch
	}
	if b.Lifecycle() != booking.LifecycleConfirmed {
		return ErrBookingNotSettled
	}
	if !b.Period().EndedBefore(today) {
		return ErrStayNotFinished
	}
	return nil
}
