package commands

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"
)

// Snapshots are rebuilt into aggregates here so that closed variants are
// re-validated on every read instead of trusting stored strings.

func roomFromSnapshot(s *shared.RoomSnapshot) (*room.Room, error) {
	price, err := common.NewMoney(s.PricePerNightCents)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "room price"), ErrCorruptRecord)
	}
	active, err := common.ParseActiveState(s.ActiveState)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "room active state"), ErrCorruptRecord)
	}
	occupancy, err := room.ParseOccupancy(s.OccupancyState)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "room occupancy"), ErrCorruptRecord)
	}
	return room.Reconstruct(s.ID, s.HotelID, price, active, occupancy), nil
}

func bookingFromSnapshot(s *shared.BookingSnapshot) (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(s.CheckIn, s.CheckOut)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "booking period"), ErrCorruptRecord)
	}
	lifecycle, err := booking.ParseLifecycle(s.LifecycleState)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "booking lifecycle"), ErrCorruptRecord)
	}
	active, err := common.ParseActiveState(s.ActiveState)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "booking active state"), ErrCorruptRecord)
	}
	total, err := common.NewMoney(s.TotalCostCents)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "booking total"), ErrCorruptRecord)
	}
	return booking.Reconstruct(
		s.ID, s.UserID, s.HotelID, s.RoomID,
		period, lifecycle, active, total,
		s.CancelReason, s.CreatedAt, s.UpdatedAt,
	), nil
}

func staysFromSnapshots(stays []shared.StaySnapshot) ([]booking.StayPeriod, error) {
	periods := make([]booking.StayPeriod, len(stays))
	for i, s := range stays {
		p, err := booking.NewStayPeriod(s.CheckIn, s.CheckOut)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "stored stay"), ErrCorruptRecord)
		}
		periods[i] = p
	}
	return periods, nil
}

func reviewFromSnapshot(s *shared.ReviewSnapshot) (*review.Review, error) {
	rating, err := review.NewRating(int(s.RatingTenths))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "review rating"), ErrCorruptRecord)
	}
	comment, err := review.NewComment(s.Comment)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "review comment"), ErrCorruptRecord)
	}
	status, err := review.ParseStatus(s.Status)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "review status"), ErrCorruptRecord)
	}
	return review.Reconstruct(s.ID, s.UserID, s.HotelID, s.BookingID, rating, comment, status, s.CreatedAt, s.UpdatedAt), nil
}
