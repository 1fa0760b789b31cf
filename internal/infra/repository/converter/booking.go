package converter

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:             b.ID(),
		UserID:         b.UserID(),
		HotelID:        b.HotelID(),
		RoomID:         b.RoomID(),
		CheckIn:        pgconv.DateToPgtype(b.Period().CheckIn()),
		CheckOut:       pgconv.DateToPgtype(b.Period().CheckOut()),
		LifecycleState: b.Lifecycle().String(),
		ActiveState:    b.ActiveState().String(),
		TotalCostCents: b.TotalCost().Cents(),
		CancelReason:   pgconv.StringPtrToPgtype(b.CancelReason()),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:             b.ID(),
		CheckIn:        pgconv.DateToPgtype(b.Period().CheckIn()),
		CheckOut:       pgconv.DateToPgtype(b.Period().CheckOut()),
		LifecycleState: b.Lifecycle().String(),
		ActiveState:    b.ActiveState().String(),
		TotalCostCents: b.TotalCost().Cents(),
		CancelReason:   pgconv.StringPtrToPgtype(b.CancelReason()),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}
