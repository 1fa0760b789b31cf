package booking

import "github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

var (
	ErrInvalidRange     = errs.Define("check-out must be after check-in", errs.ErrInvalidInput)
	ErrInvalidDate      = errs.Define("dates must use the YYYY-MM-DD format", errs.ErrInvalidInput)
	ErrInvalidLifecycle = errs.Define("invalid lifecycle state", errs.ErrInvalidInput)
	ErrDeleteViaCancel  = errs.Define("active state deleted is only reachable by cancelling the booking", errs.ErrInvalidInput)
	ErrRoomNotInHotel   = errs.Define("room does not belong to hotel", errs.ErrInvalidInput)

	ErrBookingNotFound = errs.Define("booking not found", errs.ErrNotFound)
	ErrHotelNotFound   = errs.Define("hotel not found", errs.ErrNotFound)
	ErrRoomNotFound    = errs.Define("room not found", errs.ErrNotFound)
	ErrAlreadyDeleted  = errs.Define("booking already deleted", errs.ErrNotFound)

	ErrInvalidTransition = errs.Define("lifecycle transition not allowed", errs.ErrConflict)
	ErrConfirmByPayment  = errs.Define("bookings are confirmed only by settling a payment", errs.ErrConflict)
	ErrRoomUnavailable   = errs.Define("room is already booked for the requested dates", errs.ErrConflict)
	ErrRoomNotBookable   = errs.Define("room is not open for booking", errs.ErrConflict)
	ErrCostLocked        = errs.Define("dates of a confirmed booking cannot change", errs.ErrConflict)
)
