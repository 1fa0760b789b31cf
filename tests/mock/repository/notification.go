// Test doubles for internal/infra/repository/notification.go in gomock form.

package repositorymock

import (
	context "context"
	reflect "reflect"

	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockNotificationWriteQueries is a mock of NotificationWriteQueries interface.
type MockNotificationWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationWriteQueriesMockRecorder
	isgomock struct{}
}

// MockNotificationWriteQueriesMockRecorder is the mock recorder for MockNotificationWriteQueries.
type MockNotificationWriteQueriesMockRecorder struct {
	mock *MockNotificationWriteQueries
}

// NewMockNotificationWriteQueries creates a new mock instance.
func NewMockNotificationWriteQueries(ctrl *gomock.Controller) *MockNotificationWriteQueries {
	mock := &MockNotificationWriteQueries{ctrl: ctrl}
	mock.recorder = &MockNotificationWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotificationWriteQueries) EXPECT() *MockNotificationWriteQueriesMockRecorder {
	return m.recorder
}

// CreateNotificationJob mocks base method.
func (m *MockNotificationWriteQueries) CreateNotificationJob(ctx context.Context, db generated.DBTX, arg generated.CreateNotificationJobParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateNotificationJob", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateNotificationJob indicates an expected call of CreateNotificationJob.
func (mr *MockNotificationWriteQueriesMockRecorder) CreateNotificationJob(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateNotificationJob", reflect.TypeOf((*MockNotificationWriteQueries)(nil).CreateNotificationJob), ctx, db, arg)
}

// ClaimDueNotificationJobs mocks base method.
func (m *MockNotificationWriteQueries) ClaimDueNotificationJobs(ctx context.Context, db generated.DBTX, arg generated.ClaimDueNotificationJobsParams) ([]generated.NotificationJobs, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimDueNotificationJobs", ctx, db, arg)
	ret0, _ := ret[0].([]generated.NotificationJobs)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimDueNotificationJobs indicates an expected call of ClaimDueNotificationJobs.
func (mr *MockNotificationWriteQueriesMockRecorder) ClaimDueNotificationJobs(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimDueNotificationJobs", reflect.TypeOf((*MockNotificationWriteQueries)(nil).ClaimDueNotificationJobs), ctx, db, arg)
}

// MarkNotificationJobSent mocks base method.
func (m *MockNotificationWriteQueries) MarkNotificationJobSent(ctx context.Context, db generated.DBTX, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkNotificationJobSent", ctx, db, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkNotificationJobSent indicates an expected call of MarkNotificationJobSent.
func (mr *MockNotificationWriteQueriesMockRecorder) MarkNotificationJobSent(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkNotificationJobSent", reflect.TypeOf((*MockNotificationWriteQueries)(nil).MarkNotificationJobSent), ctx, db, id)
}

// MarkNotificationJobFailed mocks base method.
func (m *MockNotificationWriteQueries) MarkNotificationJobFailed(ctx context.Context, db generated.DBTX, arg generated.MarkNotificationJobFailedParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkNotificationJobFailed", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkNotificationJobFailed indicates an expected call of MarkNotificationJobFailed.
func (mr *MockNotificationWriteQueriesMockRecorder) MarkNotificationJobFailed(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkNotificationJobFailed", reflect.TypeOf((*MockNotificationWriteQueries)(nil).MarkNotificationJobFailed), ctx, db, arg)
}
