// Test doubles for internal/infra/readstore/review.go in gomock form.

package readstoremock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockReviewReadQueries is a mock of ReviewReadQueries interface.
type MockReviewReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewReadQueriesMockRecorder
	isgomock struct{}
}

// MockReviewReadQueriesMockRecorder is the mock recorder for MockReviewReadQueries.
type MockReviewReadQueriesMockRecorder struct {
	mock *MockReviewReadQueries
}

// NewMockReviewReadQueries creates a new mock instance.
func NewMockReviewReadQueries(ctrl *gomock.Controller) *MockReviewReadQueries {
	mock := &MockReviewReadQueries{ctrl: ctrl}
	mock.recorder = &MockReviewReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewReadQueries) EXPECT() *MockReviewReadQueriesMockRecorder {
	return m.recorder
}

// GetReview mocks base method.
func (m *MockReviewReadQueries) GetReview(ctx context.Context, db generated.DBTX, id uuid.UUID) (generated.Reviews, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetReview", ctx, db, id)
	ret0, _ := ret[0].(generated.Reviews)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetReview indicates an expected call of GetReview.
func (mr *MockReviewReadQueriesMockRecorder) GetReview(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetReview", reflect.TypeOf((*MockReviewReadQueries)(nil).GetReview), ctx, db, id)
}

// GetReviewByBooking mocks base method.
func (m *MockReviewReadQueries) GetReviewByBooking(ctx context.Context, db generated.DBTX, bookingID uuid.UUID) (generated.Reviews, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetReviewByBooking", ctx, db, bookingID)
	ret0, _ := ret[0].(generated.Reviews)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetReviewByBooking indicates an expected call of GetReviewByBooking.
func (mr *MockReviewReadQueriesMockRecorder) GetReviewByBooking(ctx, db, bookingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetReviewByBooking", reflect.TypeOf((*MockReviewReadQueries)(nil).GetReviewByBooking), ctx, db, bookingID)
}

// ListReviews mocks base method.
func (m *MockReviewReadQueries) ListReviews(ctx context.Context, db generated.DBTX, arg generated.ListReviewsParams) ([]generated.Reviews, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListReviews", ctx, db, arg)
	ret0, _ := ret[0].([]generated.Reviews)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListReviews indicates an expected call of ListReviews.
func (mr *MockReviewReadQueriesMockRecorder) ListReviews(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListReviews", reflect.TypeOf((*MockReviewReadQueries)(nil).ListReviews), ctx, db, arg)
}
