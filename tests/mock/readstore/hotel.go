// Test doubles for internal/infra/readstore/hotel.go in gomock form.

package readstoremock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockHotelReadQueries is a mock of HotelReadQueries interface.
type MockHotelReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockHotelReadQueriesMockRecorder
	isgomock struct{}
}

// MockHotelReadQueriesMockRecorder is the mock recorder for MockHotelReadQueries.
type MockHotelReadQueriesMockRecorder struct {
	mock *MockHotelReadQueries
}

// NewMockHotelReadQueries creates a new mock instance.
func NewMockHotelReadQueries(ctrl *gomock.Controller) *MockHotelReadQueries {
	mock := &MockHotelReadQueries{ctrl: ctrl}
	mock.recorder = &MockHotelReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHotelReadQueries) EXPECT() *MockHotelReadQueriesMockRecorder {
	return m.recorder
}

// HotelExists mocks base method.
func (m *MockHotelReadQueries) HotelExists(ctx context.Context, db generated.DBTX, id uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HotelExists", ctx, db, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HotelExists indicates an expected call of HotelExists.
func (mr *MockHotelReadQueriesMockRecorder) HotelExists(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HotelExists", reflect.TypeOf((*MockHotelReadQueries)(nil).HotelExists), ctx, db, id)
}

// GetHotelRating mocks base method.
func (m *MockHotelReadQueries) GetHotelRating(ctx context.Context, db generated.DBTX, id uuid.UUID) (generated.GetHotelRatingRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHotelRating", ctx, db, id)
	ret0, _ := ret[0].(generated.GetHotelRatingRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHotelRating indicates an expected call of GetHotelRating.
func (mr *MockHotelReadQueriesMockRecorder) GetHotelRating(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHotelRating", reflect.TypeOf((*MockHotelReadQueries)(nil).GetHotelRating), ctx, db, id)
}
