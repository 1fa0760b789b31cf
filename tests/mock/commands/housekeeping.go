// Test doubles for internal/usecase/commands/housekeeping.go in gomock form.

package commandsmock

import (
	context "context"
	reflect "reflect"

	commands "github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	gomock "go.uber.org/mock/gomock"
)

// MockHousekeepingCommands is a mock of HousekeepingCommands interface.
type MockHousekeepingCommands struct {
	ctrl     *gomock.Controller
	recorder *MockHousekeepingCommandsMockRecorder
	isgomock struct{}
}

// MockHousekeepingCommandsMockRecorder is the mock recorder for MockHousekeepingCommands.
type MockHousekeepingCommandsMockRecorder struct {
	mock *MockHousekeepingCommands
}

// NewMockHousekeepingCommands creates a new mock instance.
func NewMockHousekeepingCommands(ctrl *gomock.Controller) *MockHousekeepingCommands {
	mock := &MockHousekeepingCommands{ctrl: ctrl}
	mock.recorder = &MockHousekeepingCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHousekeepingCommands) EXPECT() *MockHousekeepingCommandsMockRecorder {
	return m.recorder
}

// RelayNotifications mocks base method.
func (m *MockHousekeepingCommands) RelayNotifications(ctx context.Context) (commands.RelayReport, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RelayNotifications", ctx)
	ret0, _ := ret[0].(commands.RelayReport)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RelayNotifications indicates an expected call of RelayNotifications.
func (mr *MockHousekeepingCommandsMockRecorder) RelayNotifications(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RelayNotifications", reflect.TypeOf((*MockHousekeepingCommands)(nil).RelayNotifications), ctx)
}

// PurgeIdempotencyKeys mocks base method.
func (m *MockHousekeepingCommands) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeIdempotencyKeys", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PurgeIdempotencyKeys indicates an expected call of PurgeIdempotencyKeys.
func (mr *MockHousekeepingCommandsMockRecorder) PurgeIdempotencyKeys(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeIdempotencyKeys", reflect.TypeOf((*MockHousekeepingCommands)(nil).PurgeIdempotencyKeys), ctx)
}
