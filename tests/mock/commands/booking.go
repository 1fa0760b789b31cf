// Test doubles for internal/usecase/commands/booking.go in gomock form.

// Package commandsmock holds gomock doubles for use case tests.
package commandsmock

import (
	context "context"
	reflect "reflect"

	user "github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	commands "github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockBookingCommands is a mock of BookingCommands interface.
type MockBookingCommands struct {
	ctrl     *gomock.Controller
	recorder *MockBookingCommandsMockRecorder
	isgomock struct{}
}

// MockBookingCommandsMockRecorder is the mock recorder for MockBookingCommands.
type MockBookingCommandsMockRecorder struct {
	mock *MockBookingCommands
}

// NewMockBookingCommands creates a new mock instance.
func NewMockBookingCommands(ctrl *gomock.Controller) *MockBookingCommands {
	mock := &MockBookingCommands{ctrl: ctrl}
	mock.recorder = &MockBookingCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingCommands) EXPECT() *MockBookingCommandsMockRecorder {
	return m.recorder
}

// CreateBooking mocks base method.
func (m *MockBookingCommands) CreateBooking(ctx context.Context, in commands.CreateBookingInput, actor user.Actor, idempotencyKey *uuid.UUID) (*commands.BookingResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBooking", ctx, in, actor, idempotencyKey)
	ret0, _ := ret[0].(*commands.BookingResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateBooking indicates an expected call of CreateBooking.
func (mr *MockBookingCommandsMockRecorder) CreateBooking(ctx, in, actor, idempotencyKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBooking", reflect.TypeOf((*MockBookingCommands)(nil).CreateBooking), ctx, in, actor, idempotencyKey)
}

// CancelBooking mocks base method.
func (m *MockBookingCommands) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason *string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelBooking", ctx, bookingID, actor, reason)
	ret0, _ := ret[0].(error)
	return ret0
}

// CancelBooking indicates an expected call of CancelBooking.
func (mr *MockBookingCommandsMockRecorder) CancelBooking(ctx, bookingID, actor, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelBooking", reflect.TypeOf((*MockBookingCommands)(nil).CancelBooking), ctx, bookingID, actor, reason)
}

// UpdateBooking mocks base method.
func (m *MockBookingCommands) UpdateBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, in commands.UpdateBookingInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBooking", ctx, bookingID, actor, in)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateBooking indicates an expected call of UpdateBooking.
func (mr *MockBookingCommandsMockRecorder) UpdateBooking(ctx, bookingID, actor, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBooking", reflect.TypeOf((*MockBookingCommands)(nil).UpdateBooking), ctx, bookingID, actor, in)
}
