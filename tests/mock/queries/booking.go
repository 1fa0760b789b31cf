// Test doubles for internal/usecase/queries/booking.go in gomock form.

package queriesmock

import (
	context "context"
	reflect "reflect"

	user "github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	queries "github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockBookingReadStore is a mock of BookingReadStore interface.
type MockBookingReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockBookingReadStoreMockRecorder
	isgomock struct{}
}

// MockBookingReadStoreMockRecorder is the mock recorder for MockBookingReadStore.
type MockBookingReadStoreMockRecorder struct {
	mock *MockBookingReadStore
}

// NewMockBookingReadStore creates a new mock instance.
func NewMockBookingReadStore(ctrl *gomock.Controller) *MockBookingReadStore {
	mock := &MockBookingReadStore{ctrl: ctrl}
	mock.recorder = &MockBookingReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingReadStore) EXPECT() *MockBookingReadStoreMockRecorder {
	return m.recorder
}

// FindByID mocks base method.
func (m *MockBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockBookingReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockBookingReadStore)(nil).FindByID), ctx, id)
}

// List mocks base method.
func (m *MockBookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockBookingReadStoreMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockBookingReadStore)(nil).List), ctx, filter)
}

// LiveStaysForRoom mocks base method.
func (m *MockBookingReadStore) LiveStaysForRoom(ctx context.Context, roomID uuid.UUID, excludeBookingID *uuid.UUID) ([]queries.StayView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LiveStaysForRoom", ctx, roomID, excludeBookingID)
	ret0, _ := ret[0].([]queries.StayView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LiveStaysForRoom indicates an expected call of LiveStaysForRoom.
func (mr *MockBookingReadStoreMockRecorder) LiveStaysForRoom(ctx, roomID, excludeBookingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LiveStaysForRoom", reflect.TypeOf((*MockBookingReadStore)(nil).LiveStaysForRoom), ctx, roomID, excludeBookingID)
}

// MockBookingQueries is a mock of BookingQueries interface.
type MockBookingQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingQueriesMockRecorder
	isgomock struct{}
}

// MockBookingQueriesMockRecorder is the mock recorder for MockBookingQueries.
type MockBookingQueriesMockRecorder struct {
	mock *MockBookingQueries
}

// NewMockBookingQueries creates a new mock instance.
func NewMockBookingQueries(ctrl *gomock.Controller) *MockBookingQueries {
	mock := &MockBookingQueries{ctrl: ctrl}
	mock.recorder = &MockBookingQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingQueries) EXPECT() *MockBookingQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockBookingQueries) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, actor, id)
	ret0, _ := ret[0].(*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockBookingQueriesMockRecorder) GetByID(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockBookingQueries)(nil).GetByID), ctx, actor, id)
}

// List mocks base method.
func (m *MockBookingQueries) List(ctx context.Context, actor user.Actor, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, actor, filter)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockBookingQueriesMockRecorder) List(ctx, actor, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockBookingQueries)(nil).List), ctx, actor, filter)
}
