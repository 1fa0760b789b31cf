// Test doubles for internal/usecase/commands/payment.go in gomock form.

package commandsmock

import (
	context "context"
	reflect "reflect"

	user "github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	commands "github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockPaymentCommands is a mock of PaymentCommands interface.
type MockPaymentCommands struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentCommandsMockRecorder
	isgomock struct{}
}

// MockPaymentCommandsMockRecorder is the mock recorder for MockPaymentCommands.
type MockPaymentCommandsMockRecorder struct {
	mock *MockPaymentCommands
}

// NewMockPaymentCommands creates a new mock instance.
func NewMockPaymentCommands(ctrl *gomock.Controller) *MockPaymentCommands {
	mock := &MockPaymentCommands{ctrl: ctrl}
	mock.recorder = &MockPaymentCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentCommands) EXPECT() *MockPaymentCommandsMockRecorder {
	return m.recorder
}

// Pay mocks base method.
func (m *MockPaymentCommands) Pay(ctx context.Context, in commands.PayInput, actor user.Actor, idempotencyKey *uuid.UUID) (*commands.PayResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pay", ctx, in, actor, idempotencyKey)
	ret0, _ := ret[0].(*commands.PayResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Pay indicates an expected call of Pay.
func (mr *MockPaymentCommandsMockRecorder) Pay(ctx, in, actor, idempotencyKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pay", reflect.TypeOf((*MockPaymentCommands)(nil).Pay), ctx, in, actor, idempotencyKey)
}
