package response

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	HotelID        uuid.UUID `json:"hotel_id"`
	RoomID         uuid.UUID `json:"room_id"`
	CheckInDate    string    `json:"check_in_date"`
	CheckOutDate   string    `json:"check_out_date"`
	LifecycleState string    `json:"lifecycle_state"`
	ActiveState    string    `json:"active_state"`
	TotalCost      string    `json:"total_cost"`
	CancelReason   *string   `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	copyFields(&res, v)
	res.CheckInDate = v.CheckIn.Format(booking.DateLayout)
	res.CheckOutDate = v.CheckOut.Format(booking.DateLayout)
	res.TotalCost = formatCents(v.TotalCostCents)
	return &res
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	var res AvailabilityResponse
	copyFields(&res, v)
	return &res
}

// the schema rejects negative amounts
func formatCents(cents int64) string {
	m, err := common.NewMoney(cents)
	if err != nil {
		return common.MustMoney(0).String()
	}
	return m.String()
}
