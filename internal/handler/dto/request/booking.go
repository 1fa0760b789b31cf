package request

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

// UserID defaults to the authenticated user.
type CreateBookingRequest struct {
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	HotelID      uuid.UUID  `json:"hotel_id" binding:"required"`
	RoomID       uuid.UUID  `json:"room_id" binding:"required"`
	CheckInDate  string     `json:"check_in_date" binding:"required"`
	CheckOutDate string     `json:"check_out_date" binding:"required"`
}

func (r CreateBookingRequest) ToInput(actor user.Actor) (commands.CreateBookingInput, error) {
	checkIn, err := booking.ParseDate(r.CheckInDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := booking.ParseDate(r.CheckOutDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	userID := actor.ID
	if r.UserID != nil {
		userID = *r.UserID
	}

	return commands.CreateBookingInput{
		UserID:   userID,
		HotelID:  r.HotelID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// UpdateBookingRequest serves both PATCH and PUT; absent fields keep their value.
type UpdateBookingRequest struct {
	CheckInDate    *string `json:"check_in_date,omitempty"`
	CheckOutDate   *string `json:"check_out_date,omitempty"`
	LifecycleState *string `json:"lifecycle_state,omitempty"`
	ActiveState    *string `json:"active_state,omitempty"`
}

func (r UpdateBookingRequest) ToInput() (commands.UpdateBookingInput, error) {
	checkIn, err := optionalDate(r.CheckInDate)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}
	checkOut, err := optionalDate(r.CheckOutDate)
	if err != nil {
		return commands.UpdateBookingInput{}, err
	}

	return commands.UpdateBookingInput{
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		LifecycleState: r.LifecycleState,
		ActiveState:    r.ActiveState,
	}, nil
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

type BookingListQuery struct {
	UserID         string `form:"user_id"`
	HotelID        string `form:"hotel_id"`
	RoomID         string `form:"room_id"`
	BookingID      string `form:"booking_id"`
	ActiveState    string `form:"active_state"`
	LifecycleState string `form:"lifecycle_state"`
	Limit          string `form:"limit"`
}

func (q BookingListQuery) ToFilter() (queries.BookingFilter, error) {
	var (
		f   queries.BookingFilter
		err error
	)
	if f.UserID, err = optionalID(q.UserID); err != nil {
		return f, err
	}
	if f.HotelID, err = optionalID(q.HotelID); err != nil {
		return f, err
	}
	if f.RoomID, err = optionalID(q.RoomID); err != nil {
		return f, err
	}
	if f.BookingID, err = optionalID(q.BookingID); err != nil {
		return f, err
	}
	if f.Limit, err = parseLimit(q.Limit); err != nil {
		return f, err
	}
	f.ActiveState = optionalString(q.ActiveState)
	f.LifecycleState = optionalString(q.LifecycleState)
	return f, nil
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

func (q AvailabilityQuery) Dates() (time.Time, time.Time, error) {
	checkIn, err := booking.ParseDate(q.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := booking.ParseDate(q.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := booking.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
