package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side views.

type RoomSnapshot struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	Number             string
	PricePerNightCents int64
	ActiveState        string
	OccupancyState     string
}

type BookingSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	HotelID        uuid.UUID
	RoomID         uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	LifecycleState string
	ActiveState    string
	TotalCostCents int64
	CancelReason   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type StaySnapshot struct {
	CheckIn  time.Time
	CheckOut time.Time
}

type PaymentSnapshot struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Status      string
	PaidAt      *time.Time
	CreatedAt   time.Time
}

type ReviewSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	HotelID      uuid.UUID
	BookingID    uuid.UUID
	RatingTenths int32
	Comment      *string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	Status      string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)
