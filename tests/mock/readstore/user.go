// Test doubles for internal/infra/readstore/user.go in gomock form.

package readstoremock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockUserReadQueries is a mock of UserReadQueries interface.
type MockUserReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockUserReadQueriesMockRecorder
	isgomock struct{}
}

// MockUserReadQueriesMockRecorder is the mock recorder for MockUserReadQueries.
type MockUserReadQueriesMockRecorder struct {
	mock *MockUserReadQueries
}

// NewMockUserReadQueries creates a new mock instance.
func NewMockUserReadQueries(ctrl *gomock.Controller) *MockUserReadQueries {
	mock := &MockUserReadQueries{ctrl: ctrl}
	mock.recorder = &MockUserReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserReadQueries) EXPECT() *MockUserReadQueriesMockRecorder {
	return m.recorder
}

// UserExists mocks base method.
func (m *MockUserReadQueries) UserExists(ctx context.Context, db generated.DBTX, id uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserExists", ctx, db, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserExists indicates an expected call of UserExists.
func (mr *MockUserReadQueriesMockRecorder) UserExists(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserExists", reflect.TypeOf((*MockUserReadQueries)(nil).UserExists), ctx, db, id)
}
