// Test doubles for internal/infra/repository/booking.go in gomock form.

// Package repositorymock holds gomock doubles for use case tests.
package repositorymock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	gomock "go.uber.org/mock/gomock"
)

// MockBookingWriteQueries is a mock of BookingWriteQueries interface.
type MockBookingWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingWriteQueriesMockRecorder
	isgomock struct{}
}

// MockBookingWriteQueriesMockRecorder is the mock recorder for MockBookingWriteQueries.
type MockBookingWriteQueriesMockRecorder struct {
	mock *MockBookingWriteQueries
}

// NewMockBookingWriteQueries creates a new mock instance.
func NewMockBookingWriteQueries(ctrl *gomock.Controller) *MockBookingWriteQueries {
	mock := &MockBookingWriteQueries{ctrl: ctrl}
	mock.recorder = &MockBookingWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingWriteQueries) EXPECT() *MockBookingWriteQueriesMockRecorder {
	return m.recorder
}

// CreateBooking mocks base method.
func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db generated.DBTX, arg generated.CreateBookingParams) (generated.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBooking", ctx, db, arg)
	ret0, _ := ret[0].(generated.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateBooking indicates an expected call of CreateBooking.
func (mr *MockBookingWriteQueriesMockRecorder) CreateBooking(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBooking", reflect.TypeOf((*MockBookingWriteQueries)(nil).CreateBooking), ctx, db, arg)
}

// UpdateBooking mocks base method.
func (m *MockBookingWriteQueries) UpdateBooking(ctx context.Context, db generated.DBTX, arg generated.UpdateBookingParams) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBooking", ctx, db, arg)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateBooking indicates an expected call of UpdateBooking.
func (mr *MockBookingWriteQueriesMockRecorder) UpdateBooking(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBooking", reflect.TypeOf((*MockBookingWriteQueries)(nil).UpdateBooking), ctx, db, arg)
}
