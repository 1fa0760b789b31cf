//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Catalog rows (users, hotels, rooms) belong to external tooling, so tests insert them directly.

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO hotels (id, name) VALUES ($1, $2)", hotelID, name)
	require.NoError(t, err)
	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, number string, pricePerNightCents int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, hotel_id, number, price_per_night_cents) VALUES ($1, $2, $3, $4)",
		roomID, hotelID, number, pricePerNightCents)
	require.NoError(t, err)
	return roomID
}

// CreateTestBooking inserts a booking row directly, for states the API cannot produce
// in a test's timeline (e.g. stays that already ended).
func CreateTestBooking(t *testing.T, db DBLike, userID, hotelID, roomID uuid.UUID, checkIn, checkOut time.Time, lifecycle string, totalCents int64) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, user_id, hotel_id, room_id, check_in, check_out, lifecycle_state, total_cost_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bookingID, userID, hotelID, roomID, checkIn, checkOut, lifecycle, totalCents)
	require.NoError(t, err)
	return bookingID
}

func SetRoomOccupancy(t *testing.T, db DBLike, roomID uuid.UUID, state string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE rooms SET occupancy_state = $2 WHERE id = $1", roomID, state)
	require.NoError(t, err)
}

func RoomOccupancy(t *testing.T, db DBLike, roomID uuid.UUID) string {
	t.Helper()

	var state string
	err := db.QueryRow(context.Background(), "SELECT occupancy_state FROM rooms WHERE id = $1", roomID).Scan(&state)
	require.NoError(t, err)
	return state
}

func CountLiveBookings(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM bookings
		WHERE room_id = $1 AND active_state = 'active' AND lifecycle_state <> 'cancelled'`, roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

func HotelAverage(t *testing.T, db DBLike, hotelID uuid.UUID) *float64 {
	t.Helper()

	var avg *float64
	err := db.QueryRow(context.Background(), "SELECT average_rating::float8 FROM hotels WHERE id = $1", hotelID).Scan(&avg)
	require.NoError(t, err)
	return avg
}

func CountNotificationJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return errs.New("build truncate statement")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
