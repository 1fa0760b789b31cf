// Test doubles for internal/infra/readstore/idempotency.go in gomock form.

package readstoremock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	gomock "go.uber.org/mock/gomock"
)

// MockIdempotencyReadQueries is a mock of IdempotencyReadQueries interface.
type MockIdempotencyReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyReadQueriesMockRecorder
	isgomock struct{}
}

// MockIdempotencyReadQueriesMockRecorder is the mock recorder for MockIdempotencyReadQueries.
type MockIdempotencyReadQueriesMockRecorder struct {
	mock *MockIdempotencyReadQueries
}

// NewMockIdempotencyReadQueries creates a new mock instance.
func NewMockIdempotencyReadQueries(ctrl *gomock.Controller) *MockIdempotencyReadQueries {
	mock := &MockIdempotencyReadQueries{ctrl: ctrl}
	mock.recorder = &MockIdempotencyReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIdempotencyReadQueries) EXPECT() *MockIdempotencyReadQueriesMockRecorder {
	return m.recorder
}

// GetIdempotencyKey mocks base method.
func (m *MockIdempotencyReadQueries) GetIdempotencyKey(ctx context.Context, db generated.DBTX, arg generated.GetIdempotencyKeyParams) (generated.IdempotencyKeys, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIdempotencyKey", ctx, db, arg)
	ret0, _ := ret[0].(generated.IdempotencyKeys)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIdempotencyKey indicates an expected call of GetIdempotencyKey.
func (mr *MockIdempotencyReadQueriesMockRecorder) GetIdempotencyKey(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIdempotencyKey", reflect.TypeOf((*MockIdempotencyReadQueries)(nil).GetIdempotencyKey), ctx, db, arg)
}
