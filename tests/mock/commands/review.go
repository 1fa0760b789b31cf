// Test doubles for internal/usecase/commands/review.go in gomock form.

package commandsmock

import (
	context "context"
	reflect "reflect"

	user "github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	commands "github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockReviewCommands is a mock of ReviewCommands interface.
type MockReviewCommands struct {
	ctrl     *gomock.Controller
	recorder *MockReviewCommandsMockRecorder
	isgomock struct{}
}

// MockReviewCommandsMockRecorder is the mock recorder for MockReviewCommands.
type MockReviewCommandsMockRecorder struct {
	mock *MockReviewCommands
}

// NewMockReviewCommands creates a new mock instance.
func NewMockReviewCommands(ctrl *gomock.Controller) *MockReviewCommands {
	mock := &MockReviewCommands{ctrl: ctrl}
	mock.recorder = &MockReviewCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewCommands) EXPECT() *MockReviewCommandsMockRecorder {
	return m.recorder
}

// SubmitReview mocks base method.
func (m *MockReviewCommands) SubmitReview(ctx context.Context, in commands.SubmitReviewInput, actor user.Actor) (*commands.SubmitReviewResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitReview", ctx, in, actor)
	ret0, _ := ret[0].(*commands.SubmitReviewResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubmitReview indicates an expected call of SubmitReview.
func (mr *MockReviewCommandsMockRecorder) SubmitReview(ctx, in, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitReview", reflect.TypeOf((*MockReviewCommands)(nil).SubmitReview), ctx, in, actor)
}

// EditReview mocks base method.
func (m *MockReviewCommands) EditReview(ctx context.Context, reviewID uuid.UUID, actor user.Actor, in commands.EditReviewInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EditReview", ctx, reviewID, actor, in)
	ret0, _ := ret[0].(error)
	return ret0
}

// EditReview indicates an expected call of EditReview.
func (mr *MockReviewCommandsMockRecorder) EditReview(ctx, reviewID, actor, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EditReview", reflect.TypeOf((*MockReviewCommands)(nil).EditReview), ctx, reviewID, actor, in)
}

// DeleteReview mocks base method.
func (m *MockReviewCommands) DeleteReview(ctx context.Context, reviewID uuid.UUID, actor user.Actor) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteReview", ctx, reviewID, actor)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteReview indicates an expected call of DeleteReview.
func (mr *MockReviewCommandsMockRecorder) DeleteReview(ctx, reviewID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteReview", reflect.TypeOf((*MockReviewCommands)(nil).DeleteReview), ctx, reviewID, actor)
}

// RecomputeAverage mocks base method.
func (m *MockReviewCommands) RecomputeAverage(ctx context.Context, hotelID uuid.UUID) (*int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecomputeAverage", ctx, hotelID)
	ret0, _ := ret[0].(*int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecomputeAverage indicates an expected call of RecomputeAverage.
func (mr *MockReviewCommandsMockRecorder) RecomputeAverage(ctx, hotelID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecomputeAverage", reflect.TypeOf((*MockReviewCommands)(nil).RecomputeAverage), ctx, hotelID)
}
