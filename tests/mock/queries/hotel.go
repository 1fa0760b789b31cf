// Test doubles for internal/usecase/queries/hotel.go in gomock form.

package queriesmock

import (
	context "context"
	reflect "reflect"

	queries "github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockHotelReadStore is a mock of HotelReadStore interface.
type MockHotelReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockHotelReadStoreMockRecorder
	isgomock struct{}
}

// MockHotelReadStoreMockRecorder is the mock recorder for MockHotelReadStore.
type MockHotelReadStoreMockRecorder struct {
	mock *MockHotelReadStore
}

// NewMockHotelReadStore creates a new mock instance.
func NewMockHotelReadStore(ctrl *gomock.Controller) *MockHotelReadStore {
	mock := &MockHotelReadStore{ctrl: ctrl}
	mock.recorder = &MockHotelReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHotelReadStore) EXPECT() *MockHotelReadStoreMockRecorder {
	return m.recorder
}

// FindRating mocks base method.
func (m *MockHotelReadStore) FindRating(ctx context.Context, hotelID uuid.UUID) (*queries.HotelRatingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindRating", ctx, hotelID)
	ret0, _ := ret[0].(*queries.HotelRatingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindRating indicates an expected call of FindRating.
func (mr *MockHotelReadStoreMockRecorder) FindRating(ctx, hotelID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindRating", reflect.TypeOf((*MockHotelReadStore)(nil).FindRating), ctx, hotelID)
}

// MockHotelQueries is a mock of HotelQueries interface.
type MockHotelQueries struct {
	ctrl     *gomock.Controller
	recorder *MockHotelQueriesMockRecorder
	isgomock struct{}
}

// MockHotelQueriesMockRecorder is the mock recorder for MockHotelQueries.
type MockHotelQueriesMockRecorder struct {
	mock *MockHotelQueries
}

// NewMockHotelQueries creates a new mock instance.
func NewMockHotelQueries(ctrl *gomock.Controller) *MockHotelQueries {
	mock := &MockHotelQueries{ctrl: ctrl}
	mock.recorder = &MockHotelQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHotelQueries) EXPECT() *MockHotelQueriesMockRecorder {
	return m.recorder
}

// GetRating mocks base method.
func (m *MockHotelQueries) GetRating(ctx context.Context, hotelID uuid.UUID) (*queries.HotelRatingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRating", ctx, hotelID)
	ret0, _ := ret[0].(*queries.HotelRatingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRating indicates an expected call of GetRating.
func (mr *MockHotelQueriesMockRecorder) GetRating(ctx, hotelID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRating", reflect.TypeOf((*MockHotelQueries)(nil).GetRating), ctx, hotelID)
}
