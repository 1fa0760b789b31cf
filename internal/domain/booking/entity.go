package booking

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"

	"github.com/google/uuid"
)

type Booking struct {
	id           uuid.UUID
	userID       uuid.UUID
	hotelID      uuid.UUID
	roomID       uuid.UUID
	period       StayPeriod
	lifecycle    LifecycleState
	activeState  common.ActiveState
	totalCost    common.Money
	cancelReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBooking prices the stay as nightly rate times nights and starts it as
// pending and active.
func NewBooking(userID, hotelID, roomID uuid.UUID, period StayPeriod, nightly common.Money, now time.Time) (*Booking, error) {
	nights := period.Nights()
	if nights <= 0 {
		return nil, ErrInvalidRange
	}

	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		hotelID:     hotelID,
		roomID:      roomID,
		period:      period,
		lifecycle:   LifecyclePending,
		activeState: common.ActiveStateActive,
		totalCost:   nightly.Times(nights),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, userID, hotelID, roomID uuid.UUID,
	period StayPeriod,
	lifecycle LifecycleState,
	activeState common.ActiveState,
	totalCost common.Money,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		hotelID:      hotelID,
		roomID:       roomID,
		period:       period,
		lifecycle:    lifecycle,
		activeState:  activeState,
		totalCost:    totalCost,
		cancelReason: cancelReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) UserID() uuid.UUID               { return b.userID }
func (b *Booking) HotelID() uuid.UUID              { return b.hotelID }
func (b *Booking) RoomID() uuid.UUID               { return b.roomID }
func (b *Booking) Period() StayPeriod              { return b.period }
func (b *Booking) Lifecycle() LifecycleState       { return b.lifecycle }
func (b *Booking) ActiveState() common.ActiveState { return b.activeState }
func (b *Booking) TotalCost() common.Money         { return b.totalCost }
func (b *Booking) CancelReason() *string           { return b.cancelReason }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }

// IsLive reports whether the booking still holds its room.
func (b *Booking) IsLive() bool {
	return b.activeState == common.ActiveStateActive && b.lifecycle != LifecycleCancelled
}

func (b *Booking) IsDeleted() bool {
	return b.activeState == common.ActiveStateDeleted
}

func (b *Booking) TransitionTo(next LifecycleState, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidLifecycle
	}
	if b.lifecycle == next {
		return nil
	}
	if !b.lifecycle.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.lifecycle = next
	b.updatedAt = now
	return nil
}

// ApplyManualTransition is the admin edit path. It never confirms; only
// Confirm, called when a payment settles, does.
func (b *Booking) ApplyManualTransition(next LifecycleState, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidLifecycle
	}
	if b.lifecycle == next {
		return nil
	}
	if next == LifecycleConfirmed {
		return ErrConfirmByPayment
	}
	if !b.lifecycle.CanManuallyTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.lifecycle = next
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) error {
	if b.IsDeleted() {
		return ErrBookingNotFound
	}
	if b.lifecycle == LifecycleConfirmed {
		return ErrInvalidTransition
	}
	return b.TransitionTo(LifecycleConfirmed, now)
}

// Cancel soft-deletes the booking and records the optional reason.
func (b *Booking) Cancel(reason *string, now time.Time) error {
	if b.IsDeleted() {
		return ErrAlreadyDeleted
	}
	b.lifecycle = LifecycleCancelled
	b.activeState = common.ActiveStateDeleted
	if reason != nil {
		b.cancelReason = reason
	}
	b.updatedAt = now
	return nil
}

// Reschedule moves a pending booking and reprices it. Confirmed stays keep
// their dates because their total has already been paid.
func (b *Booking) Reschedule(period StayPeriod, nightly common.Money, now time.Time) error {
	if b.lifecycle != LifecyclePending {
		return ErrCostLocked
	}
	nights := period.Nights()
	if nights <= 0 {
		return ErrInvalidRange
	}
	b.period = period
	b.totalCost = nightly.Times(nights)
	b.updatedAt = now
	return nil
}

func (b *Booking) SetActiveState(state common.ActiveState, now time.Time) error {
	if !state.IsValid() {
		return common.ErrInvalidActiveState
	}
	if state == common.ActiveStateDeleted {
		return ErrDeleteViaCancel
	}
	if b.IsDeleted() {
		return ErrAlreadyDeleted
	}
	b.activeState = state
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}
