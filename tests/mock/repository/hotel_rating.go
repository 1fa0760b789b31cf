// Test doubles for internal/infra/repository/hotel_rating.go in gomock form.

package repositorymock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockHotelRatingQueries is a mock of HotelRatingQueries interface.
type MockHotelRatingQueries struct {
	ctrl     *gomock.Controller
	recorder *MockHotelRatingQueriesMockRecorder
	isgomock struct{}
}

// MockHotelRatingQueriesMockRecorder is the mock recorder for MockHotelRatingQueries.
type MockHotelRatingQueriesMockRecorder struct {
	mock *MockHotelRatingQueries
}

// NewMockHotelRatingQueries creates a new mock instance.
func NewMockHotelRatingQueries(ctrl *gomock.Controller) *MockHotelRatingQueries {
	mock := &MockHotelRatingQueries{ctrl: ctrl}
	mock.recorder = &MockHotelRatingQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHotelRatingQueries) EXPECT() *MockHotelRatingQueriesMockRecorder {
	return m.recorder
}

// ListConfirmedRatings mocks base method.
func (m *MockHotelRatingQueries) ListConfirmedRatings(ctx context.Context, db generated.DBTX, hotelID uuid.UUID) ([]int32, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListConfirmedRatings", ctx, db, hotelID)
	ret0, _ := ret[0].([]int32)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListConfirmedRatings indicates an expected call of ListConfirmedRatings.
func (mr *MockHotelRatingQueriesMockRecorder) ListConfirmedRatings(ctx, db, hotelID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListConfirmedRatings", reflect.TypeOf((*MockHotelRatingQueries)(nil).ListConfirmedRatings), ctx, db, hotelID)
}

// UpdateHotelAverageRating mocks base method.
func (m *MockHotelRatingQueries) UpdateHotelAverageRating(ctx context.Context, db generated.DBTX, arg generated.UpdateHotelAverageRatingParams) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateHotelAverageRating", ctx, db, arg)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateHotelAverageRating indicates an expected call of UpdateHotelAverageRating.
func (mr *MockHotelRatingQueriesMockRecorder) UpdateHotelAverageRating(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateHotelAverageRating", reflect.TypeOf((*MockHotelRatingQueries)(nil).UpdateHotelAverageRating), ctx, db, arg)
}
