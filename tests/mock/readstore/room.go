// Test doubles for internal/infra/readstore/room.go in gomock form.

package readstoremock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockRoomReadQueries is a mock of RoomReadQueries interface.
type MockRoomReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockRoomReadQueriesMockRecorder
	isgomock struct{}
}

// MockRoomReadQueriesMockRecorder is the mock recorder for MockRoomReadQueries.
type MockRoomReadQueriesMockRecorder struct {
	mock *MockRoomReadQueries
}

// NewMockRoomReadQueries creates a new mock instance.
func NewMockRoomReadQueries(ctrl *gomock.Controller) *MockRoomReadQueries {
	mock := &MockRoomReadQueries{ctrl: ctrl}
	mock.recorder = &MockRoomReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoomReadQueries) EXPECT() *MockRoomReadQueriesMockRecorder {
	return m.recorder
}

// GetRoom mocks base method.
func (m *MockRoomReadQueries) GetRoom(ctx context.Context, db generated.DBTX, id uuid.UUID) (generated.Rooms, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRoom", ctx, db, id)
	ret0, _ := ret[0].(generated.Rooms)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRoom indicates an expected call of GetRoom.
func (mr *MockRoomReadQueriesMockRecorder) GetRoom(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRoom", reflect.TypeOf((*MockRoomReadQueries)(nil).GetRoom), ctx, db, id)
}
