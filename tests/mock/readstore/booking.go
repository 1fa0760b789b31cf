// Test doubles for internal/infra/readstore/booking.go in gomock form.

// Package readstoremock holds gomock doubles for use case tests.
package readstoremock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	pgtype "github.com/jackc/pgx/v5/pgtype"
	gomock "go.uber.org/mock/gomock"
)

// MockBookingReadQueries is a mock of BookingReadQueries interface.
type MockBookingReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingReadQueriesMockRecorder
	isgomock struct{}
}

// MockBookingReadQueriesMockRecorder is the mock recorder for MockBookingReadQueries.
type MockBookingReadQueriesMockRecorder struct {
	mock *MockBookingReadQueries
}

// NewMockBookingReadQueries creates a new mock instance.
func NewMockBookingReadQueries(ctrl *gomock.Controller) *MockBookingReadQueries {
	mock := &MockBookingReadQueries{ctrl: ctrl}
	mock.recorder = &MockBookingReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingReadQueries) EXPECT() *MockBookingReadQueriesMockRecorder {
	return m.recorder
}

// GetBooking mocks base method.
func (m *MockBookingReadQueries) GetBooking(ctx context.Context, db generated.DBTX, id uuid.UUID) (generated.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBooking", ctx, db, id)
	ret0, _ := ret[0].(generated.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBooking indicates an expected call of GetBooking.
func (mr *MockBookingReadQueriesMockRecorder) GetBooking(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBooking", reflect.TypeOf((*MockBookingReadQueries)(nil).GetBooking), ctx, db, id)
}

// ListBookings mocks base method.
func (m *MockBookingReadQueries) ListBookings(ctx context.Context, db generated.DBTX, arg generated.ListBookingsParams) ([]generated.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBookings", ctx, db, arg)
	ret0, _ := ret[0].([]generated.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBookings indicates an expected call of ListBookings.
func (mr *MockBookingReadQueriesMockRecorder) ListBookings(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBookings", reflect.TypeOf((*MockBookingReadQueries)(nil).ListBookings), ctx, db, arg)
}

// ListLiveStaysForRoom mocks base method.
func (m *MockBookingReadQueries) ListLiveStaysForRoom(ctx context.Context, db generated.DBTX, arg generated.ListLiveStaysForRoomParams) ([]generated.ListLiveStaysForRoomRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListLiveStaysForRoom", ctx, db, arg)
	ret0, _ := ret[0].([]generated.ListLiveStaysForRoomRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListLiveStaysForRoom indicates an expected call of ListLiveStaysForRoom.
func (mr *MockBookingReadQueriesMockRecorder) ListLiveStaysForRoom(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListLiveStaysForRoom", reflect.TypeOf((*MockBookingReadQueries)(nil).ListLiveStaysForRoom), ctx, db, arg)
}

// ListRoomsWithExpiredStays mocks base method.
func (m *MockBookingReadQueries) ListRoomsWithExpiredStays(ctx context.Context, db generated.DBTX, checkOut pgtype.Date) ([]uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRoomsWithExpiredStays", ctx, db, checkOut)
	ret0, _ := ret[0].([]uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRoomsWithExpiredStays indicates an expected call of ListRoomsWithExpiredStays.
func (mr *MockBookingReadQueriesMockRecorder) ListRoomsWithExpiredStays(ctx, db, checkOut any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRoomsWithExpiredStays", reflect.TypeOf((*MockBookingReadQueries)(nil).ListRoomsWithExpiredStays), ctx, db, checkOut)
}
