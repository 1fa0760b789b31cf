package readstore

import (
	"context"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.Bookings, error)
	ListLiveStaysForRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLiveStaysForRoomParams) ([]sqlc.ListLiveStaysForRoomRow, error)
	ListRoomsWithExpiredStays(ctx context.Context, db sqlc.DBTX, checkOut pgtype.Date) ([]uuid.UUID, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsParams{
		UserID:         pgconv.UUIDPtrToPgtype(filter.UserID),
		HotelID:        pgconv.UUIDPtrToPgtype(filter.HotelID),
		RoomID:         pgconv.UUIDPtrToPgtype(filter.RoomID),
		ID:             pgconv.UUIDPtrToPgtype(filter.BookingID),
		ActiveState:    pgconv.StringPtrToPgtype(filter.ActiveState),
		LifecycleState: pgconv.StringPtrToPgtype(filter.LifecycleState),
		Limit:          int32(filter.Limit),
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result, nil
}

// LiveStaysForRoom returns stays of active, non-cancelled bookings. excludeBookingID
// lets a booking being rescheduled ignore its own stay.
func (r *BookingReadStore) LiveStaysForRoom(ctx context.Context, roomID uuid.UUID, excludeBookingID *uuid.UUID) ([]queries.StayView, error) {
	params := sqlc.ListLiveStaysForRoomParams{
		RoomID:    roomID,
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeBookingID),
	}

	rows, err := r.queries.ListLiveStaysForRoom(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live stays for room", err)
	}

	stays := make([]queries.StayView, len(rows))
	for i, row := range rows {
		stays[i] = queries.StayView{
			CheckIn:  pgconv.DateFromPgtype(row.CheckIn),
			CheckOut: pgconv.DateFromPgtype(row.CheckOut),
		}
	}
	return stays, nil
}

// RoomsWithExpiredStays lists rooms having any booking that checked out before today,
// whatever its lifecycle state.
func (r *BookingReadStore) RoomsWithExpiredStays(ctx context.Context, today time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListRoomsWithExpiredStays(ctx, r.db, pgconv.DateToPgtype(today))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms with expired stays", err)
	}
	return ids, nil
}

func toBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:             row.ID,
		UserID:         row.UserID,
		HotelID:        row.HotelID,
		RoomID:         row.RoomID,
		CheckIn:        pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:       pgconv.DateFromPgtype(row.CheckOut),
		LifecycleState: row.LifecycleState,
		ActiveState:    row.ActiveState,
		TotalCostCents: row.TotalCostCents,
		CancelReason:   pgconv.StringPtrFromPgtype(row.CancelReason),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
