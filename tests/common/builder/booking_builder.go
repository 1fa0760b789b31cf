//go:build unit || e2e

package builder

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	HotelID        uuid.UUID
	RoomID         uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	LifecycleState string
	ActiveState    string
	NightlyCents   int64
	CancelReason   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBookingBuilder defaults to a pending two-night stay at 150.00 a night.
func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		HotelID:        uuid.New(),
		RoomID:         uuid.New(),
		CheckIn:        Date(2024, 6, 10),
		CheckOut:       Date(2024, 6, 12),
		LifecycleState: string(booking.LifecyclePending),
		ActiveState:    string(common.ActiveStateActive),
		NightlyCents:   15000,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Date is a calendar date at UTC midnight.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) nights() int64 {
	return int64(b.CheckOut.Sub(b.CheckIn) / (24 * time.Hour))
}

func (b *BookingBuilder) TotalCents() int64 {
	return b.NightlyCents * b.nights()
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	lifecycle, err := booking.ParseLifecycle(b.LifecycleState)
	if err != nil {
		return nil, err
	}
	active, err := common.ParseActiveState(b.ActiveState)
	if err != nil {
		return nil, err
	}
	total, err := common.NewMoney(b.TotalCents())
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		b.ID, b.UserID, b.HotelID, b.RoomID,
		period, lifecycle, active, total,
		b.CancelReason, b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:             b.ID,
		UserID:         b.UserID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		LifecycleState: b.LifecycleState,
		ActiveState:    b.ActiveState,
		TotalCostCents: b.TotalCents(),
		CancelReason:   b.CancelReason,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             b.ID,
		UserID:         b.UserID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		LifecycleState: b.LifecycleState,
		ActiveState:    b.ActiveState,
		TotalCostCents: b.TotalCents(),
		CancelReason:   b.CancelReason,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:             b.ID,
		UserID:         b.UserID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		CheckIn:        pgconv.DateToPgtype(b.CheckIn),
		CheckOut:       pgconv.DateToPgtype(b.CheckOut),
		LifecycleState: b.LifecycleState,
		ActiveState:    b.ActiveState,
		TotalCostCents: b.TotalCents(),
		CancelReason:   pgconv.StringPtrToPgtype(b.CancelReason),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BookingBuilder) BuildStay() shared.StaySnapshot {
	return shared.StaySnapshot{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithHotelID(id uuid.UUID) *BookingBuilder {
	b.HotelID = id
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithNightlyCents(cents int64) *BookingBuilder {
	b.NightlyCents = cents
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.LifecycleState = string(booking.LifecycleConfirmed)
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.LifecycleState = string(booking.LifecycleCancelled)
	b.ActiveState = string(common.ActiveStateDeleted)
	return b
}

func (b *BookingBuilder) AsInactive() *BookingBuilder {
	b.ActiveState = string(common.ActiveStateInactive)
	return b
}
