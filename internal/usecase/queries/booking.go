package queries

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"

	"github.com/google/uuid"
)

// BookingFilter narrows a booking listing. A nil ActiveState hides deleted bookings.
type BookingFilter struct {
	UserID         *uuid.UUID
	HotelID        *uuid.UUID
	RoomID         *uuid.UUID
	BookingID      *uuid.UUID
	ActiveState    *string
	LifecycleState *string
	Limit          int
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	LiveStaysForRoom(ctx context.Context, roomID uuid.UUID, excludeBookingID *uuid.UUID) ([]StayView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor user.Actor, filter BookingFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	if err := actor.RequireAccess(b.UserID); err != nil {
		return nil, err
	}
	// soft-deleted bookings stay visible to admins only
	if b.ActiveState == common.ActiveStateDeleted.String() && !actor.IsPrivileged() {
		return nil, booking.ErrBookingNotFound
	}
	return b, nil
}

// List scopes non-privileged actors to their own bookings; asking for another user is forbidden.
func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, filter BookingFilter) ([]*BookingView, error) {
	if !actor.IsPrivileged() {
		if filter.UserID == nil {
			id := actor.ID
			filter.UserID = &id
		} else if *filter.UserID != actor.ID {
			return nil, user.ErrNotOwner
		}
	}
	if filter.ActiveState != nil {
		if _, err := common.ParseActiveState(*filter.ActiveState); err != nil {
			return nil, err
		}
	}
	if filter.LifecycleState != nil {
		if _, err := booking.ParseLifecycle(*filter.LifecycleState); err != nil {
			return nil, err
		}
	}
	filter.Limit = ValidateLimit(filter.Limit)

	rows, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoMatches
	}
	return rows, nil
}
