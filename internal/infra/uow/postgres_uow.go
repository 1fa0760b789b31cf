package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra/readstore"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/repository"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("concurrent update conflict, retries exhausted")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable closes check-then-act windows; conflicts surface as 40001 and are retried
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				// the driver error stays in the log; callers only see a Conflict
				return errs.Mark(errMaxRetriesExceeded, errs.ErrConflict)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errs.Mark(errMaxRetriesExceeded, errs.ErrConflict)
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	roomRepo         shared.RoomRepository
	paymentRepo      shared.PaymentRepository
	reviewRepo       shared.ReviewRepository
	hotelRatingRepo  shared.HotelRatingRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.uow.q, t.dbtx)
	}
	return t.roomRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.uow.q, t.dbtx)
	}
	return t.reviewRepo
}

func (t *pgTx) HotelRatings() shared.HotelRatingRepository {
	if t.hotelRatingRepo == nil {
		t.hotelRatingRepo = repository.NewHotelRatingRepository(t.uow.q, t.dbtx)
	}
	return t.hotelRatingRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	userStore        *readstore.UserReadStore
	hotelStore       *readstore.HotelReadStore
	roomStore        *readstore.RoomReadStore
	bookingStore     *readstore.BookingReadStore
	paymentStore     *readstore.PaymentReadStore
	reviewStore      *readstore.ReviewReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) hotels() *readstore.HotelReadStore {
	if r.hotelStore == nil {
		r.hotelStore = readstore.NewHotelReadStore(r.uow.q, r.dbtx)
	}
	return r.hotelStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) reviews() *readstore.ReviewReadStore {
	if r.reviewStore == nil {
		r.reviewStore = readstore.NewReviewReadStore(r.uow.q, r.dbtx)
	}
	return r.reviewStore
}

func (r *commandReads) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.users().Exists(ctx, id)
}

func (r *commandReads) HotelExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.hotels().Exists(ctx, id)
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.uow.q, r.dbtx)
	}

	rm, err := r.roomStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.RoomSnapshot{
		ID:                 rm.ID,
		HotelID:            rm.HotelID,
		Number:             rm.Number,
		PricePerNightCents: rm.PricePerNightCents,
		ActiveState:        rm.ActiveState,
		OccupancyState:     rm.OccupancyState,
	}
	return snapshot, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, err := r.bookings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.BookingSnapshot{
		ID:             b.ID,
		UserID:         b.UserID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		LifecycleState: b.LifecycleState,
		ActiveState:    b.ActiveState,
		TotalCostCents: b.TotalCostCents,
		CancelReason:   b.CancelReason,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) LiveStaysForRoom(ctx context.Context, roomID uuid.UUID, excludeBookingID *uuid.UUID) ([]shared.StaySnapshot, error) {
	stays, err := r.bookings().LiveStaysForRoom(ctx, roomID, excludeBookingID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]shared.StaySnapshot, len(stays))
	for i, s := range stays {
		snapshots[i] = shared.StaySnapshot{CheckIn: s.CheckIn, CheckOut: s.CheckOut}
	}
	return snapshots, nil
}

func (r *commandReads) RoomsWithExpiredStays(ctx context.Context, today time.Time) ([]uuid.UUID, error) {
	return r.bookings().RoomsWithExpiredStays(ctx, today)
}

func (r *commandReads) PaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.uow.q, r.dbtx)
	}

	p, err := r.paymentStore.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.PaymentSnapshot{
		ID:          p.ID,
		BookingID:   p.BookingID,
		UserID:      p.UserID,
		AmountCents: p.AmountCents,
		Status:      p.Status,
		PaidAt:      p.PaidAt,
		CreatedAt:   p.CreatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	rv, err := r.reviews().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReviewSnapshot(rv.ID, rv.UserID, rv.HotelID, rv.BookingID, rv.RatingTenths, rv.Comment, rv.Status, rv.CreatedAt, rv.UpdatedAt), nil
}

func (r *commandReads) ReviewByBooking(ctx context.Context, bookingID uuid.UUID) (*shared.ReviewSnapshot, error) {
	rv, err := r.reviews().FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return toReviewSnapshot(rv.ID, rv.UserID, rv.HotelID, rv.BookingID, rv.RatingTenths, rv.Comment, rv.Status, rv.CreatedAt, rv.UpdatedAt), nil
}

func toReviewSnapshot(id, userID, hotelID, bookingID uuid.UUID, ratingTenths int32, comment *string, status string, createdAt, updatedAt time.Time) *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:           id,
		UserID:       userID,
		HotelID:      hotelID,
		BookingID:    bookingID,
		RatingTenths: ratingTenths,
		Comment:      comment,
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}

	return r.idempotencyStore.Get(ctx, r.dbtx, key, userID)
}
