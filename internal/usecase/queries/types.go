package queries

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrNoMatches = errs.Define("no matches", errs.ErrNotFound)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	HotelID        uuid.UUID `json:"hotel_id"`
	RoomID         uuid.UUID `json:"room_id"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	LifecycleState string    `json:"lifecycle_state"`
	ActiveState    string    `json:"active_state"`
	TotalCostCents int64     `json:"total_cost_cents"`
	CancelReason   *string   `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type StayView struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// RoomView is the room as seen by availability checks
type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	Number             string    `json:"number"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	ActiveState        string    `json:"active_state"`
	OccupancyState     string    `json:"occupancy_state"`
}

// PaymentView represents read-optimized payment data
type PaymentView struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   uuid.UUID  `json:"booking_id"`
	UserID      uuid.UUID  `json:"user_id"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CardLast4   string     `json:"card_last4"`
	CardBrand   string     `json:"card_brand"`
	CardHolder  string     `json:"card_holder"`
	CardExpiry  string     `json:"card_expiry"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ReceiptView joins a payment with what a printed receipt shows
type ReceiptView struct {
	PaymentView
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	HotelName  string    `json:"hotel_name"`
	RoomNumber string    `json:"room_number"`
	UserEmail  string    `json:"user_email"`
}

// ReviewView represents read-optimized review data
type ReviewView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	HotelID      uuid.UUID `json:"hotel_id"`
	BookingID    uuid.UUID `json:"booking_id"`
	RatingTenths int32     `json:"rating_tenths"`
	Comment      *string   `json:"comment,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HotelRatingView carries the denormalized average; nil means no confirmed reviews
type HotelRatingView struct {
	HotelID          uuid.UUID `json:"hotel_id"`
	Name             string    `json:"name"`
	AverageRating    *float64  `json:"average_rating"`
	ConfirmedReviews int64     `json:"confirmed_reviews"`
}

// AvailabilityView is the answer of the availability checker for one range
type AvailabilityView struct {
	RoomID    uuid.UUID `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
