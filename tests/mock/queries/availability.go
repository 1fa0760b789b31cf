// Test doubles for internal/usecase/queries/availability.go in gomock form.

// Package queriesmock holds gomock doubles for use case tests.
package queriesmock

import (
	context "context"
	reflect "reflect"
	time "time"

	queries "github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockRoomReadStore is a mock of RoomReadStore interface.
type MockRoomReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockRoomReadStoreMockRecorder
	isgomock struct{}
}

// MockRoomReadStoreMockRecorder is the mock recorder for MockRoomReadStore.
type MockRoomReadStoreMockRecorder struct {
	mock *MockRoomReadStore
}

// NewMockRoomReadStore creates a new mock instance.
func NewMockRoomReadStore(ctrl *gomock.Controller) *MockRoomReadStore {
	mock := &MockRoomReadStore{ctrl: ctrl}
	mock.recorder = &MockRoomReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoomReadStore) EXPECT() *MockRoomReadStoreMockRecorder {
	return m.recorder
}

// FindByID mocks base method.
func (m *MockRoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.RoomView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockRoomReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockRoomReadStore)(nil).FindByID), ctx, id)
}

// MockAvailabilityQueries is a mock of AvailabilityQueries interface.
type MockAvailabilityQueries struct {
	ctrl     *gomock.Controller
	recorder *MockAvailabilityQueriesMockRecorder
	isgomock struct{}
}

// MockAvailabilityQueriesMockRecorder is the mock recorder for MockAvailabilityQueries.
type MockAvailabilityQueriesMockRecorder struct {
	mock *MockAvailabilityQueries
}

// NewMockAvailabilityQueries creates a new mock instance.
func NewMockAvailabilityQueries(ctrl *gomock.Controller) *MockAvailabilityQueries {
	mock := &MockAvailabilityQueries{ctrl: ctrl}
	mock.recorder = &MockAvailabilityQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAvailabilityQueries) EXPECT() *MockAvailabilityQueriesMockRecorder {
	return m.recorder
}

// IsAvailable mocks base method.
func (m *MockAvailabilityQueries) IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn time.Time, checkOut time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsAvailable", ctx, roomID, checkIn, checkOut)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsAvailable indicates an expected call of IsAvailable.
func (mr *MockAvailabilityQueriesMockRecorder) IsAvailable(ctx, roomID, checkIn, checkOut any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsAvailable", reflect.TypeOf((*MockAvailabilityQueries)(nil).IsAvailable), ctx, roomID, checkIn, checkOut)
}

// Check mocks base method.
func (m *MockAvailabilityQueries) Check(ctx context.Context, roomID uuid.UUID, checkIn time.Time, checkOut time.Time) (*queries.AvailabilityView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Check", ctx, roomID, checkIn, checkOut)
	ret0, _ := ret[0].(*queries.AvailabilityView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Check indicates an expected call of Check.
func (mr *MockAvailabilityQueriesMockRecorder) Check(ctx, roomID, checkIn, checkOut any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockAvailabilityQueries)(nil).Check), ctx, roomID, checkIn, checkOut)
}
