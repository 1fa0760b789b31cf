package queries

import (
	"context"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	ReasonInvalidRange    = "invalid_range"
	ReasonRoomNotBookable = "room_not_bookable"
	ReasonOverlap         = "overlapping_booking"
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type AvailabilityQueries interface {
	IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	Check(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	rooms    RoomReadStore
	bookings BookingReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, bookings BookingReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, bookings: bookings}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	v, err := q.Check(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return v.Available, nil
}

// Check never reads the room occupancy cache. Only live bookings decide.
func (q *availabilityQueriesImpl) Check(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error) {
	view := &AvailabilityView{
		RoomID:   roomID,
		CheckIn:  booking.DateOf(checkIn).Format(booking.DateLayout),
		CheckOut: booking.DateOf(checkOut).Format(booking.DateLayout),
	}

	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		view.Reason = ReasonInvalidRange
		return view, nil
	}

	rv, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			view.Reason = ReasonRoomNotBookable
			return view, nil
		}
		return nil, err
	}

	stays, err := q.bookings.LiveStaysForRoom(ctx, roomID, nil)
	if err != nil {
		return nil, err
	}

	err = booking.EvaluateAvailability(roomFromView(rv), period, staysToPeriods(stays))
	switch {
	case err == nil:
		view.Available = true
	case errs.Is(err, booking.ErrRoomUnavailable):
		view.Reason = ReasonOverlap
	case errs.Is(err, booking.ErrRoomNotBookable):
		view.Reason = ReasonRoomNotBookable
	case errs.Is(err, booking.ErrInvalidRange):
		view.Reason = ReasonInvalidRange
	default:
		return nil, err
	}
	return view, nil
}

// Stored rows violating the closed variants are treated as not bookable.
func roomFromView(v *RoomView) *room.Room {
	price, err := common.NewMoney(v.PricePerNightCents)
	if err != nil {
		return nil
	}
	active, err := common.ParseActiveState(v.ActiveState)
	if err != nil {
		return nil
	}
	occupancy, err := room.ParseOccupancy(v.OccupancyState)
	if err != nil {
		return nil
	}
	return room.Reconstruct(v.ID, v.HotelID, price, active, occupancy)
}

func staysToPeriods(stays []StayView) []booking.StayPeriod {
	periods := make([]booking.StayPeriod, 0, len(stays))
	for _, s := range stays {
		p, err := booking.NewStayPeriod(s.CheckIn, s.CheckOut)
		if err != nil {
			continue
		}
		periods = append(periods, p)
	}
	return periods
}
