package shared

import (
	"context"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Same as Within at SERIALIZABLE isolation, for check-then-act sequences
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Payments() PaymentRepository
	Reviews() ReviewRepository
	HotelRatings() HotelRatingRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	HotelExists(ctx context.Context, id uuid.UUID) (bool, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	LiveStaysForRoom(ctx context.Context, roomID uuid.UUID, excludeBookingID *uuid.UUID) ([]StaySnapshot, error)
	RoomsWithExpiredStays(ctx context.Context, today time.Time) ([]uuid.UUID, error)
	PaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*PaymentSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ReviewByBooking(ctx context.Context, bookingID uuid.UUID) (*ReviewSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type RoomRepository interface {
	// Lock holds a transaction-scoped advisory lock keyed by room id.
	Lock(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) error
	UpdateOccupancy(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, state room.OccupancyState) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (uuid.UUID, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
}

type HotelRatingRepository interface {
	// Recompute stores the confirmed-review average in hundredths and returns it (nil when none).
	Recompute(ctx context.Context, tx sqlc.DBTX, hotelID uuid.UUID) (*int64, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, resultID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, before time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, runAt time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status, lastError string, nextRunAt time.Time) error
}
