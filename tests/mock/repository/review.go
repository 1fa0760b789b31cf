// Test doubles for internal/infra/repository/review.go in gomock form.

package repositorymock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	gomock "go.uber.org/mock/gomock"
)

// MockReviewWriteQueries is a mock of ReviewWriteQueries interface.
type MockReviewWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewWriteQueriesMockRecorder
	isgomock struct{}
}

// MockReviewWriteQueriesMockRecorder is the mock recorder for MockReviewWriteQueries.
type MockReviewWriteQueriesMockRecorder struct {
	mock *MockReviewWriteQueries
}

// NewMockReviewWriteQueries creates a new mock instance.
func NewMockReviewWriteQueries(ctrl *gomock.Controller) *MockReviewWriteQueries {
	mock := &MockReviewWriteQueries{ctrl: ctrl}
	mock.recorder = &MockReviewWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewWriteQueries) EXPECT() *MockReviewWriteQueriesMockRecorder {
	return m.recorder
}

// CreateReview mocks base method.
func (m *MockReviewWriteQueries) CreateReview(ctx context.Context, db generated.DBTX, arg generated.CreateReviewParams) (generated.Reviews, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReview", ctx, db, arg)
	ret0, _ := ret[0].(generated.Reviews)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateReview indicates an expected call of CreateReview.
func (mr *MockReviewWriteQueriesMockRecorder) CreateReview(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReview", reflect.TypeOf((*MockReviewWriteQueries)(nil).CreateReview), ctx, db, arg)
}

// UpdateReview mocks base method.
func (m *MockReviewWriteQueries) UpdateReview(ctx context.Context, db generated.DBTX, arg generated.UpdateReviewParams) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateReview", ctx, db, arg)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateReview indicates an expected call of UpdateReview.
func (mr *MockReviewWriteQueriesMockRecorder) UpdateReview(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateReview", reflect.TypeOf((*MockReviewWriteQueries)(nil).UpdateReview), ctx, db, arg)
}
