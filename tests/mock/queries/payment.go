// Test doubles for internal/usecase/queries/payment.go in gomock form.

package queriesmock

import (
	context "context"
	reflect "reflect"

	user "github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	queries "github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockPaymentReadStore is a mock of PaymentReadStore interface.
type MockPaymentReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentReadStoreMockRecorder
	isgomock struct{}
}

// MockPaymentReadStoreMockRecorder is the mock recorder for MockPaymentReadStore.
type MockPaymentReadStoreMockRecorder struct {
	mock *MockPaymentReadStore
}

// NewMockPaymentReadStore creates a new mock instance.
func NewMockPaymentReadStore(ctrl *gomock.Controller) *MockPaymentReadStore {
	mock := &MockPaymentReadStore{ctrl: ctrl}
	mock.recorder = &MockPaymentReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentReadStore) EXPECT() *MockPaymentReadStoreMockRecorder {
	return m.recorder
}

// FindByID mocks base method.
func (m *MockPaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.PaymentView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockPaymentReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockPaymentReadStore)(nil).FindByID), ctx, id)
}

// List mocks base method.
func (m *MockPaymentReadStore) List(ctx context.Context, filter queries.PaymentFilter) ([]*queries.PaymentView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*queries.PaymentView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockPaymentReadStoreMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockPaymentReadStore)(nil).List), ctx, filter)
}

// FindReceipt mocks base method.
func (m *MockPaymentReadStore) FindReceipt(ctx context.Context, id uuid.UUID) (*queries.ReceiptView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindReceipt", ctx, id)
	ret0, _ := ret[0].(*queries.ReceiptView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindReceipt indicates an expected call of FindReceipt.
func (mr *MockPaymentReadStoreMockRecorder) FindReceipt(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindReceipt", reflect.TypeOf((*MockPaymentReadStore)(nil).FindReceipt), ctx, id)
}

// MockPaymentQueries is a mock of PaymentQueries interface.
type MockPaymentQueries struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentQueriesMockRecorder
	isgomock struct{}
}

// MockPaymentQueriesMockRecorder is the mock recorder for MockPaymentQueries.
type MockPaymentQueriesMockRecorder struct {
	mock *MockPaymentQueries
}

// NewMockPaymentQueries creates a new mock instance.
func NewMockPaymentQueries(ctrl *gomock.Controller) *MockPaymentQueries {
	mock := &MockPaymentQueries{ctrl: ctrl}
	mock.recorder = &MockPaymentQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentQueries) EXPECT() *MockPaymentQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockPaymentQueries) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.PaymentView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, actor, id)
	ret0, _ := ret[0].(*queries.PaymentView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPaymentQueriesMockRecorder) GetByID(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPaymentQueries)(nil).GetByID), ctx, actor, id)
}

// List mocks base method.
func (m *MockPaymentQueries) List(ctx context.Context, actor user.Actor, filter queries.PaymentFilter) ([]*queries.PaymentView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, actor, filter)
	ret0, _ := ret[0].([]*queries.PaymentView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockPaymentQueriesMockRecorder) List(ctx, actor, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockPaymentQueries)(nil).List), ctx, actor, filter)
}

// GetReceipt mocks base method.
func (m *MockPaymentQueries) GetReceipt(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.ReceiptView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetReceipt", ctx, actor, id)
	ret0, _ := ret[0].(*queries.ReceiptView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetReceipt indicates an expected call of GetReceipt.
func (mr *MockPaymentQueriesMockRecorder) GetReceipt(ctx, actor, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetReceipt", reflect.TypeOf((*MockPaymentQueries)(nil).GetReceipt), ctx, actor, id)
}
