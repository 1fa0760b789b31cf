// Test doubles for internal/infra/repository/room.go in gomock form.

package repositorymock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockRoomWriteQueries is a mock of RoomWriteQueries interface.
type MockRoomWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockRoomWriteQueriesMockRecorder
	isgomock struct{}
}

// MockRoomWriteQueriesMockRecorder is the mock recorder for MockRoomWriteQueries.
type MockRoomWriteQueriesMockRecorder struct {
	mock *MockRoomWriteQueries
}

// NewMockRoomWriteQueries creates a new mock instance.
func NewMockRoomWriteQueries(ctrl *gomock.Controller) *MockRoomWriteQueries {
	mock := &MockRoomWriteQueries{ctrl: ctrl}
	mock.recorder = &MockRoomWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoomWriteQueries) EXPECT() *MockRoomWriteQueriesMockRecorder {
	return m.recorder
}

// LockRoom mocks base method.
func (m *MockRoomWriteQueries) LockRoom(ctx context.Context, db generated.DBTX, roomID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LockRoom", ctx, db, roomID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LockRoom indicates an expected call of LockRoom.
func (mr *MockRoomWriteQueriesMockRecorder) LockRoom(ctx, db, roomID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LockRoom", reflect.TypeOf((*MockRoomWriteQueries)(nil).LockRoom), ctx, db, roomID)
}

// UpdateRoomOccupancy mocks base method.
func (m *MockRoomWriteQueries) UpdateRoomOccupancy(ctx context.Context, db generated.DBTX, arg generated.UpdateRoomOccupancyParams) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateRoomOccupancy", ctx, db, arg)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateRoomOccupancy indicates an expected call of UpdateRoomOccupancy.
func (mr *MockRoomWriteQueriesMockRecorder) UpdateRoomOccupancy(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateRoomOccupancy", reflect.TypeOf((*MockRoomWriteQueries)(nil).UpdateRoomOccupancy), ctx, db, arg)
}
