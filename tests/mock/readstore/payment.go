// Test doubles for internal/infra/readstore/payment.go in gomock form.

package readstoremock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockPaymentReadQueries is a mock of PaymentReadQueries interface.
type MockPaymentReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentReadQueriesMockRecorder
	isgomock struct{}
}

// MockPaymentReadQueriesMockRecorder is the mock recorder for MockPaymentReadQueries.
type MockPaymentReadQueriesMockRecorder struct {
	mock *MockPaymentReadQueries
}

// NewMockPaymentReadQueries creates a new mock instance.
func NewMockPaymentReadQueries(ctrl *gomock.Controller) *MockPaymentReadQueries {
	mock := &MockPaymentReadQueries{ctrl: ctrl}
	mock.recorder = &MockPaymentReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentReadQueries) EXPECT() *MockPaymentReadQueriesMockRecorder {
	return m.recorder
}

// GetPayment mocks base method.
func (m *MockPaymentReadQueries) GetPayment(ctx context.Context, db generated.DBTX, id uuid.UUID) (generated.Payments, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPayment", ctx, db, id)
	ret0, _ := ret[0].(generated.Payments)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPayment indicates an expected call of GetPayment.
func (mr *MockPaymentReadQueriesMockRecorder) GetPayment(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPayment", reflect.TypeOf((*MockPaymentReadQueries)(nil).GetPayment), ctx, db, id)
}

// GetPaymentByBooking mocks base method.
func (m *MockPaymentReadQueries) GetPaymentByBooking(ctx context.Context, db generated.DBTX, bookingID uuid.UUID) (generated.Payments, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPaymentByBooking", ctx, db, bookingID)
	ret0, _ := ret[0].(generated.Payments)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPaymentByBooking indicates an expected call of GetPaymentByBooking.
func (mr *MockPaymentReadQueriesMockRecorder) GetPaymentByBooking(ctx, db, bookingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPaymentByBooking", reflect.TypeOf((*MockPaymentReadQueries)(nil).GetPaymentByBooking), ctx, db, bookingID)
}

// ListPayments mocks base method.
func (m *MockPaymentReadQueries) ListPayments(ctx context.Context, db generated.DBTX, arg generated.ListPaymentsParams) ([]generated.Payments, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPayments", ctx, db, arg)
	ret0, _ := ret[0].([]generated.Payments)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPayments indicates an expected call of ListPayments.
func (mr *MockPaymentReadQueriesMockRecorder) ListPayments(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPayments", reflect.TypeOf((*MockPaymentReadQueries)(nil).ListPayments), ctx, db, arg)
}

// GetPaymentReceipt mocks base method.
func (m *MockPaymentReadQueries) GetPaymentReceipt(ctx context.Context, db generated.DBTX, id uuid.UUID) (generated.GetPaymentReceiptRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPaymentReceipt", ctx, db, id)
	ret0, _ := ret[0].(generated.GetPaymentReceiptRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPaymentReceipt indicates an expected call of GetPaymentReceipt.
func (mr *MockPaymentReadQueriesMockRecorder) GetPaymentReceipt(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPaymentReceipt", reflect.TypeOf((*MockPaymentReadQueries)(nil).GetPaymentReceipt), ctx, db, id)
}
