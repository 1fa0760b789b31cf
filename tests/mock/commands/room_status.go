// Test doubles for internal/usecase/commands/room_status.go in gomock form.

package commandsmock

import (
	context "context"
	reflect "reflect"

	commands "github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	gomock "go.uber.org/mock/gomock"
)

// MockRoomStatusCommands is a mock of RoomStatusCommands interface.
type MockRoomStatusCommands struct {
	ctrl     *gomock.Controller
	recorder *MockRoomStatusCommandsMockRecorder
	isgomock struct{}
}

// MockRoomStatusCommandsMockRecorder is the mock recorder for MockRoomStatusCommands.
type MockRoomStatusCommandsMockRecorder struct {
	mock *MockRoomStatusCommands
}

// NewMockRoomStatusCommands creates a new mock instance.
func NewMockRoomStatusCommands(ctrl *gomock.Controller) *MockRoomStatusCommands {
	mock := &MockRoomStatusCommands{ctrl: ctrl}
	mock.recorder = &MockRoomStatusCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoomStatusCommands) EXPECT() *MockRoomStatusCommandsMockRecorder {
	return m.recorder
}

// ReconcileExpired mocks base method.
func (m *MockRoomStatusCommands) ReconcileExpired(ctx context.Context) (commands.ReconcileReport, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReconcileExpired", ctx)
	ret0, _ := ret[0].(commands.ReconcileReport)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReconcileExpired indicates an expected call of ReconcileExpired.
func (mr *MockRoomStatusCommandsMockRecorder) ReconcileExpired(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReconcileExpired", reflect.TypeOf((*MockRoomStatusCommands)(nil).ReconcileExpired), ctx)
}
