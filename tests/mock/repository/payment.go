// Test doubles for internal/infra/repository/payment.go in gomock form.

package repositorymock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	gomock "go.uber.org/mock/gomock"
)

// MockPaymentWriteQueries is a mock of PaymentWriteQueries interface.
type MockPaymentWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentWriteQueriesMockRecorder
	isgomock struct{}
}

// MockPaymentWriteQueriesMockRecorder is the mock recorder for MockPaymentWriteQueries.
type MockPaymentWriteQueriesMockRecorder struct {
	mock *MockPaymentWriteQueries
}

// NewMockPaymentWriteQueries creates a new mock instance.
func NewMockPaymentWriteQueries(ctrl *gomock.Controller) *MockPaymentWriteQueries {
	mock := &MockPaymentWriteQueries{ctrl: ctrl}
	mock.recorder = &MockPaymentWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentWriteQueries) EXPECT() *MockPaymentWriteQueriesMockRecorder {
	return m.recorder
}

// CreatePayment mocks base method.
func (m *MockPaymentWriteQueries) CreatePayment(ctx context.Context, db generated.DBTX, arg generated.CreatePaymentParams) (generated.Payments, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePayment", ctx, db, arg)
	ret0, _ := ret[0].(generated.Payments)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePayment indicates an expected call of CreatePayment.
func (mr *MockPaymentWriteQueriesMockRecorder) CreatePayment(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePayment", reflect.TypeOf((*MockPaymentWriteQueries)(nil).CreatePayment), ctx, db, arg)
}
