// Test doubles for internal/usecase/queries/review.go in gomock form.

package queriesmock

import (
	context "context"
	reflect "reflect"

	queries "github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockReviewReadStore is a mock of ReviewReadStore interface.
type MockReviewReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockReviewReadStoreMockRecorder
	isgomock struct{}
}

// MockReviewReadStoreMockRecorder is the mock recorder for MockReviewReadStore.
type MockReviewReadStoreMockRecorder struct {
	mock *MockReviewReadStore
}

// NewMockReviewReadStore creates a new mock instance.
func NewMockReviewReadStore(ctrl *gomock.Controller) *MockReviewReadStore {
	mock := &MockReviewReadStore{ctrl: ctrl}
	mock.recorder = &MockReviewReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewReadStore) EXPECT() *MockReviewReadStoreMockRecorder {
	return m.recorder
}

// FindByID mocks base method.
func (m *MockReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.ReviewView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockReviewReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockReviewReadStore)(nil).FindByID), ctx, id)
}

// List mocks base method.
func (m *MockReviewReadStore) List(ctx context.Context, params queries.ReviewListParams) ([]*queries.ReviewView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, params)
	ret0, _ := ret[0].([]*queries.ReviewView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockReviewReadStoreMockRecorder) List(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockReviewReadStore)(nil).List), ctx, params)
}

// MockReviewQueries is a mock of ReviewQueries interface.
type MockReviewQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewQueriesMockRecorder
	isgomock struct{}
}

// MockReviewQueriesMockRecorder is the mock recorder for MockReviewQueries.
type MockReviewQueriesMockRecorder struct {
	mock *MockReviewQueries
}

// NewMockReviewQueries creates a new mock instance.
func NewMockReviewQueries(ctrl *gomock.Controller) *MockReviewQueries {
	mock := &MockReviewQueries{ctrl: ctrl}
	mock.recorder = &MockReviewQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewQueries) EXPECT() *MockReviewQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockReviewQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*queries.ReviewView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockReviewQueriesMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockReviewQueries)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockReviewQueries) List(ctx context.Context, filter queries.ReviewFilter) ([]*queries.ReviewView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*queries.ReviewView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockReviewQueriesMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockReviewQueries)(nil).List), ctx, filter)
}
