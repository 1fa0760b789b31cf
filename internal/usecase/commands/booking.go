package commands

import (
	"context"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/patch"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	UserID   uuid.UUID
	HotelID  uuid.UUID
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

// UpdateBookingInput is a partial update. The state fields are reserved for
// privileged actors.
type UpdateBookingInput struct {
	CheckIn        *time.Time
	CheckOut       *time.Time
	LifecycleState *string
	ActiveState    *string
}

func (in UpdateBookingInput) touchesState() bool {
	return in.LifecycleState != nil || in.ActiveState != nil
}

type BookingResult struct {
	BookingID uuid.UUID
	Replayed  bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput, actor user.Actor, idempotencyKey *uuid.UUID) (*BookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason *string) error
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, in UpdateBookingInput) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) BookingCommands {
	return &bookingUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   cfg.Worker.Location(),
	}
}

// bookingFingerprint is what an Idempotency-Key is bound to.
type bookingFingerprint struct {
	UserID   uuid.UUID `json:"user_id"`
	HotelID  uuid.UUID `json:"hotel_id"`
	RoomID   uuid.UUID `json:"room_id"`
	CheckIn  string    `json:"check_in"`
	CheckOut string    `json:"check_out"`
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput, actor user.Actor, idempotencyKey *uuid.UUID) (*BookingResult, error) {
	period, err := booking.NewStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := actor.RequireAccess(in.UserID); err != nil {
		return nil, err
	}

	req, err := newIdempotencyRequest(idempotencyKey, actor.ID, endpointCreateBooking, bookingFingerprint{
		UserID:   in.UserID,
		HotelID:  in.HotelID,
		RoomID:   in.RoomID,
		CheckIn:  period.CheckIn().Format(booking.DateLayout),
		CheckOut: period.CheckOut().Format(booking.DateLayout),
	})
	if err != nil {
		return nil, err
	}

	var result BookingResult
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		result = BookingResult{}

		replay, err := beginIdempotent(ctx, tx, req, now)
		if err != nil {
			return err
		}
		if replay != nil {
			result = BookingResult{BookingID: *replay, Replayed: true}
			return nil
		}

		if err := requireUser(ctx, tx.Reads(), in.UserID); err != nil {
			return err
		}
		if err := requireHotel(ctx, tx.Reads(), in.HotelID); err != nil {
			return err
		}
		r, err := loadRoom(ctx, tx.Reads(), in.RoomID)
		if err != nil {
			return err
		}
		if !r.BelongsTo(in.HotelID) {
			return booking.ErrRoomNotInHotel
		}

		if err := tx.Rooms().Lock(ctx, tx.DB(), r.ID()); err != nil {
			return err
		}
		if err := checkAvailability(ctx, tx.Reads(), r, period, nil); err != nil {
			return err
		}

		b, err := booking.NewBooking(in.UserID, in.HotelID, in.RoomID, period, r.PricePerNight(), now)
		if err != nil {
			return err
		}
		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			return translateRepoErr(err, nil, booking.ErrRoomUnavailable)
		}

		if err := tx.Rooms().UpdateOccupancy(ctx, tx.DB(), r.ID(), room.OccupancyReserved); err != nil {
			return err
		}
		if err := completeIdempotent(ctx, tx, req, id); err != nil {
			return err
		}

		result.BookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelBooking cancels and soft deletes the booking, then frees the room when
// no other live stay covers today. A repeat cancel is NotFound, not Conflict:
// the deleted booking reads as booking.ErrBookingNotFound, and
// booking.ErrAlreadyDeleted from the entity is NotFound-class as well, so the
// endpoint answers only 404 or 403.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason *string) error {
	return uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		b, err := loadLiveRecord(ctx, tx.Reads(), bookingID)
		if err != nil {
			return err
		}
		if err := actor.RequireAccess(b.UserID()); err != nil {
			return err
		}

		if err := tx.Rooms().Lock(ctx, tx.DB(), b.RoomID()); err != nil {
			return err
		}
		if err := b.Cancel(reason, now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return translateRepoErr(err, booking.ErrBookingNotFound, nil)
		}
		return uc.releaseIfIdle(ctx, tx, b.RoomID(), now)
	})
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, in UpdateBookingInput) error {
	if in.touchesState() {
		if err := actor.RequirePrivileged(); err != nil {
			return err
		}
	}

	nextLifecycle, err := patch.Parse(in.LifecycleState, booking.ParseLifecycle)
	if err != nil {
		return err
	}
	nextActive, err := patch.Parse(in.ActiveState, common.ParseActiveState)
	if err != nil {
		return err
	}

	return uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		b, err := loadLiveRecord(ctx, tx.Reads(), bookingID)
		if err != nil {
			return err
		}
		if err := actor.RequireAccess(b.UserID()); err != nil {
			return err
		}

		wasLive := b.IsLive()
		current := b.Period()
		period, err := booking.NewStayPeriod(
			patch.Coalesce(in.CheckIn, current.CheckIn()),
			patch.Coalesce(in.CheckOut, current.CheckOut()),
		)
		if err != nil {
			return err
		}
		datesChanged := !period.Equal(current)

		var r *room.Room
		lockRoom := func() error {
			if r != nil {
				return nil
			}
			loaded, err := loadRoom(ctx, tx.Reads(), b.RoomID())
			if err != nil {
				return err
			}
			if err := tx.Rooms().Lock(ctx, tx.DB(), loaded.ID()); err != nil {
				return err
			}
			r = loaded
			return nil
		}

		if datesChanged {
			if err := lockRoom(); err != nil {
				return err
			}
			if err := b.Reschedule(period, r.PricePerNight(), now); err != nil {
				return err
			}
		}
		if nextLifecycle != nil {
			if err := b.ApplyManualTransition(*nextLifecycle, now); err != nil {
				return err
			}
		}
		if nextActive != nil {
			if err := b.SetActiveState(*nextActive, now); err != nil {
				return err
			}
		}

		// A booking that holds the room on new dates, or holds it again after
		// being switched off, must clear the overlap check against the others.
		if b.IsLive() && (datesChanged || !wasLive) {
			if err := lockRoom(); err != nil {
				return err
			}
			self := b.ID()
			if err := checkAvailability(ctx, tx.Reads(), r, b.Period(), &self); err != nil {
				return err
			}
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return translateRepoErr(err, booking.ErrBookingNotFound, booking.ErrRoomUnavailable)
		}

		switch {
		case b.IsLive() && !wasLive:
			return tx.Rooms().UpdateOccupancy(ctx, tx.DB(), b.RoomID(), room.OccupancyReserved)
		case wasLive && !b.IsLive():
			if err := lockRoom(); err != nil {
				return err
			}
			return uc.releaseIfIdle(ctx, tx, b.RoomID(), now)
		}
		return nil
	})
}

// releaseIfIdle flips the room back to available unless a live stay still
// covers today. The caller must hold the room lock.
func (uc *bookingUseCaseImpl) releaseIfIdle(ctx context.Context, tx shared.Tx, roomID uuid.UUID, now time.Time) error {
	r, err := loadRoom(ctx, tx.Reads(), roomID)
	if err != nil {
		return err
	}
	if r.Occupancy() == room.OccupancyAvailable {
		return nil
	}

	snaps, err := tx.Reads().LiveStaysForRoom(ctx, roomID, nil)
	if err != nil {
		return err
	}
	stays, err := staysFromSnapshots(snaps)
	if err != nil {
		return err
	}
	if booking.AnyCovers(stays, booking.Today(now, uc.loc)) {
		return nil
	}
	return tx.Rooms().UpdateOccupancy(ctx, tx.DB(), roomID, room.OccupancyAvailable)
}

func requireUser(ctx context.Context, reads shared.CommandReads, id uuid.UUID) error {
	ok, err := reads.UserExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return user.ErrUserNotFound
	}
	return nil
}

func requireHotel(ctx context.Context, reads shared.CommandReads, id uuid.UUID) error {
	ok, err := reads.HotelExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return booking.ErrHotelNotFound
	}
	return nil
}

func loadRoom(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*room.Room, error) {
	snap, err := reads.RoomByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, booking.ErrRoomNotFound, nil)
	}
	return roomFromSnapshot(snap)
}

func loadBooking(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*booking.Booking, error) {
	snap, err := reads.BookingByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, booking.ErrBookingNotFound, nil)
	}
	return bookingFromSnapshot(snap)
}

// loadLiveRecord loads a booking that has not been soft-deleted.
func loadLiveRecord(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*booking.Booking, error) {
	b, err := loadBooking(ctx, reads, id)
	if err != nil {
		return nil, err
	}
	if b.IsDeleted() {
		return nil, booking.ErrBookingNotFound
	}
	return b, nil
}

func checkAvailability(ctx context.Context, reads shared.CommandReads, r *room.Room, period booking.StayPeriod, exclude *uuid.UUID) error {
	snaps, err := reads.LiveStaysForRoom(ctx, r.ID(), exclude)
	if err != nil {
		return err
	}
	live, err := staysFromSnapshots(snaps)
	if err != nil {
		return err
	}
	return booking.EvaluateAvailability(r, period, live)
}
