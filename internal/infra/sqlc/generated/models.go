package generated

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID             uuid.UUID          `json:"id"`
	UserID         uuid.UUID          `json:"user_id"`
	HotelID        uuid.UUID          `json:"hotel_id"`
	RoomID         uuid.UUID          `json:"room_id"`
	CheckIn        pgtype.Date        `json:"check_in"`
	CheckOut       pgtype.Date        `json:"check_out"`
	LifecycleState string             `json:"lifecycle_state"`
	ActiveState    string             `json:"active_state"`
	TotalCostCents int64              `json:"total_cost_cents"`
	CancelReason   pgtype.Text        `json:"cancel_reason"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Hotels struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	AverageRating pgtype.Numeric     `json:"average_rating"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type IdempotencyKeys struct {
	Key         uuid.UUID          `json:"key"`
	UserID      uuid.UUID          `json:"user_id"`
	Endpoint    string             `json:"endpoint"`
	RequestHash string             `json:"request_hash"`
	Status      string             `json:"status"`
	ResultID    pgtype.UUID        `json:"result_id"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Attempts  int32              `json:"attempts"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Payments struct {
	ID          uuid.UUID          `json:"id"`
	BookingID   uuid.UUID          `json:"booking_id"`
	UserID      uuid.UUID          `json:"user_id"`
	AmountCents int64              `json:"amount_cents"`
	Status      string             `json:"status"`
	PaidAt      pgtype.Timestamptz `json:"paid_at"`
	CardLast4   string             `json:"card_last4"`
	CardBrand   string             `json:"card_brand"`
	CardHolder  string             `json:"card_holder"`
	CardExpiry  string             `json:"card_expiry"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Reviews struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	HotelID      uuid.UUID          `json:"hotel_id"`
	BookingID    uuid.UUID          `json:"booking_id"`
	RatingTenths int32              `json:"rating_tenths"`
	Comment      pgtype.Text        `json:"comment"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Rooms struct {
	ID                 uuid.UUID          `json:"id"`
	HotelID            uuid.UUID          `json:"hotel_id"`
	Number             string             `json:"number"`
	PricePerNightCents int64              `json:"price_per_night_cents"`
	ActiveState        string             `json:"active_state"`
	OccupancyState     string             `json:"occupancy_state"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

type Users struct {
	ID        uuid.UUID          `json:"id"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	IsActive  bool               `json:"is_active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
