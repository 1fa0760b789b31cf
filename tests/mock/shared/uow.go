// Test doubles for internal/usecase/shared/uow.go in gomock form.

package sharedmock

import (
	context "context"
	reflect "reflect"
	time "time"

	booking "github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	payment "github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	review "github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	room "github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	generated "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	shared "github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockUnitOfWork is a mock of UnitOfWork interface.
type MockUnitOfWork struct {
	ctrl     *gomock.Controller
	recorder *MockUnitOfWorkMockRecorder
	isgomock struct{}
}

// MockUnitOfWorkMockRecorder is the mock recorder for MockUnitOfWork.
type MockUnitOfWorkMockRecorder struct {
	mock *MockUnitOfWork
}

// NewMockUnitOfWork creates a new mock instance.
func NewMockUnitOfWork(ctrl *gomock.Controller) *MockUnitOfWork {
	mock := &MockUnitOfWork{ctrl: ctrl}
	mock.recorder = &MockUnitOfWorkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUnitOfWork) EXPECT() *MockUnitOfWorkMockRecorder {
	return m.recorder
}

// Within mocks base method.
func (m *MockUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Within", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Within indicates an expected call of Within.
func (mr *MockUnitOfWorkMockRecorder) Within(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Within", reflect.TypeOf((*MockUnitOfWork)(nil).Within), ctx, fn)
}

// WithinSerializable mocks base method.
func (m *MockUnitOfWork) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithinSerializable", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithinSerializable indicates an expected call of WithinSerializable.
func (mr *MockUnitOfWorkMockRecorder) WithinSerializable(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithinSerializable", reflect.TypeOf((*MockUnitOfWork)(nil).WithinSerializable), ctx, fn)
}

// WithinReadOnly mocks base method.
func (m *MockUnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db generated.DBTX) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithinReadOnly", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithinReadOnly indicates an expected call of WithinReadOnly.
func (mr *MockUnitOfWorkMockRecorder) WithinReadOnly(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithinReadOnly", reflect.TypeOf((*MockUnitOfWork)(nil).WithinReadOnly), ctx, fn)
}

// WithDB mocks base method.
func (m *MockUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db generated.DBTX) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithDB", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithDB indicates an expected call of WithDB.
func (mr *MockUnitOfWorkMockRecorder) WithDB(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithDB", reflect.TypeOf((*MockUnitOfWork)(nil).WithDB), ctx, fn)
}

// CommandReads mocks base method.
func (m *MockUnitOfWork) CommandReads() shared.CommandReads {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CommandReads")
	ret0, _ := ret[0].(shared.CommandReads)
	return ret0
}

// CommandReads indicates an expected call of CommandReads.
func (mr *MockUnitOfWorkMockRecorder) CommandReads() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CommandReads", reflect.TypeOf((*MockUnitOfWork)(nil).CommandReads))
}

// MockTx is a mock of Tx interface.
type MockTx struct {
	ctrl     *gomock.Controller
	recorder *MockTxMockRecorder
	isgomock struct{}
}

// MockTxMockRecorder is the mock recorder for MockTx.
type MockTxMockRecorder struct {
	mock *MockTx
}

// NewMockTx creates a new mock instance.
func NewMockTx(ctrl *gomock.Controller) *MockTx {
	mock := &MockTx{ctrl: ctrl}
	mock.recorder = &MockTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTx) EXPECT() *MockTxMockRecorder {
	return m.recorder
}

// Bookings mocks base method.
func (m *MockTx) Bookings() shared.BookingRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Bookings")
	ret0, _ := ret[0].(shared.BookingRepository)
	return ret0
}

// Bookings indicates an expected call of Bookings.
func (mr *MockTxMockRecorder) Bookings() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Bookings", reflect.TypeOf((*MockTx)(nil).Bookings))
}

// Rooms mocks base method.
func (m *MockTx) Rooms() shared.RoomRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rooms")
	ret0, _ := ret[0].(shared.RoomRepository)
	return ret0
}

// Rooms indicates an expected call of Rooms.
func (mr *MockTxMockRecorder) Rooms() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rooms", reflect.TypeOf((*MockTx)(nil).Rooms))
}

// Payments mocks base method.
func (m *MockTx) Payments() shared.PaymentRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Payments")
	ret0, _ := ret[0].(shared.PaymentRepository)
	return ret0
}

// Payments indicates an expected call of Payments.
func (mr *MockTxMockRecorder) Payments() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Payments", reflect.TypeOf((*MockTx)(nil).Payments))
}

// Reviews mocks base method.
func (m *MockTx) Reviews() shared.ReviewRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reviews")
	ret0, _ := ret[0].(shared.ReviewRepository)
	return ret0
}

// Reviews indicates an expected call of Reviews.
func (mr *MockTxMockRecorder) Reviews() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reviews", reflect.TypeOf((*MockTx)(nil).Reviews))
}

// HotelRatings mocks base method.
func (m *MockTx) HotelRatings() shared.HotelRatingRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HotelRatings")
	ret0, _ := ret[0].(shared.HotelRatingRepository)
	return ret0
}

// HotelRatings indicates an expected call of HotelRatings.
func (mr *MockTxMockRecorder) HotelRatings() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HotelRatings", reflect.TypeOf((*MockTx)(nil).HotelRatings))
}

// Idempotency mocks base method.
func (m *MockTx) Idempotency() shared.IdempotencyRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Idempotency")
	ret0, _ := ret[0].(shared.IdempotencyRepository)
	return ret0
}

// Idempotency indicates an expected call of Idempotency.
func (mr *MockTxMockRecorder) Idempotency() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Idempotency", reflect.TypeOf((*MockTx)(nil).Idempotency))
}

// Notifications mocks base method.
func (m *MockTx) Notifications() shared.NotificationRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Notifications")
	ret0, _ := ret[0].(shared.NotificationRepository)
	return ret0
}

// Notifications indicates an expected call of Notifications.
func (mr *MockTxMockRecorder) Notifications() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Notifications", reflect.TypeOf((*MockTx)(nil).Notifications))
}

// Reads mocks base method.
func (m *MockTx) Reads() shared.CommandReads {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reads")
	ret0, _ := ret[0].(shared.CommandReads)
	return ret0
}

// Reads indicates an expected call of Reads.
func (mr *MockTxMockRecorder) Reads() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reads", reflect.TypeOf((*MockTx)(nil).Reads))
}

// DB mocks base method.
func (m *MockTx) DB() generated.DBTX {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(generated.DBTX)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockTxMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockTx)(nil).DB))
}

// MockCommandReads is a mock of CommandReads interface.
type MockCommandReads struct {
	ctrl     *gomock.Controller
	recorder *MockCommandReadsMockRecorder
	isgomock struct{}
}

// MockCommandReadsMockRecorder is the mock recorder for MockCommandReads.
type MockCommandReadsMockRecorder struct {
	mock *MockCommandReads
}

// NewMockCommandReads creates a new mock instance.
func NewMockCommandReads(ctrl *gomock.Controller) *MockCommandReads {
	mock := &MockCommandReads{ctrl: ctrl}
	mock.recorder = &MockCommandReadsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommandReads) EXPECT() *MockCommandReadsMockRecorder {
	return m.recorder
}

// UserExists mocks base method.
func (m *MockCommandReads) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserExists", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserExists indicates an expected call of UserExists.
func (mr *MockCommandReadsMockRecorder) UserExists(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserExists", reflect.TypeOf((*MockCommandReads)(nil).UserExists), ctx, id)
}

// HotelExists mocks base method.
func (m *MockCommandReads) HotelExists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HotelExists", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HotelExists indicates an expected call of HotelExists.
func (mr *MockCommandReadsMockRecorder) HotelExists(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HotelExists", reflect.TypeOf((*MockCommandReads)(nil).HotelExists), ctx, id)
}

// RoomByID mocks base method.
func (m *MockCommandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RoomByID", ctx, id)
	ret0, _ := ret[0].(*shared.RoomSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RoomByID indicates an expected call of RoomByID.
func (mr *MockCommandReadsMockRecorder) RoomByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RoomByID", reflect.TypeOf((*MockCommandReads)(nil).RoomByID), ctx, id)
}

// BookingByID mocks base method.
func (m *MockCommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BookingByID", ctx, id)
	ret0, _ := ret[0].(*shared.BookingSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BookingByID indicates an expected call of BookingByID.
func (mr *MockCommandReadsMockRecorder) BookingByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BookingByID", reflect.TypeOf((*MockCommandReads)(nil).BookingByID), ctx, id)
}

// LiveStaysForRoom mocks base method.
func (m *MockCommandReads) LiveStaysForRoom(ctx context.Context, roomID uuid.UUID, excludeBookingID *uuid.UUID) ([]shared.StaySnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LiveStaysForRoom", ctx, roomID, excludeBookingID)
	ret0, _ := ret[0].([]shared.StaySnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LiveStaysForRoom indicates an expected call of LiveStaysForRoom.
func (mr *MockCommandReadsMockRecorder) LiveStaysForRoom(ctx, roomID, excludeBookingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LiveStaysForRoom", reflect.TypeOf((*MockCommandReads)(nil).LiveStaysForRoom), ctx, roomID, excludeBookingID)
}

// RoomsWithExpiredStays mocks base method.
func (m *MockCommandReads) RoomsWithExpiredStays(ctx context.Context, today time.Time) ([]uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RoomsWithExpiredStays", ctx, today)
	ret0, _ := ret[0].([]uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RoomsWithExpiredStays indicates an expected call of RoomsWithExpiredStays.
func (mr *MockCommandReadsMockRecorder) RoomsWithExpiredStays(ctx, today any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RoomsWithExpiredStays", reflect.TypeOf((*MockCommandReads)(nil).RoomsWithExpiredStays), ctx, today)
}

// PaymentByBooking mocks base method.
func (m *MockCommandReads) PaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PaymentByBooking", ctx, bookingID)
	ret0, _ := ret[0].(*shared.PaymentSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PaymentByBooking indicates an expected call of PaymentByBooking.
func (mr *MockCommandReadsMockRecorder) PaymentByBooking(ctx, bookingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PaymentByBooking", reflect.TypeOf((*MockCommandReads)(nil).PaymentByBooking), ctx, bookingID)
}

// ReviewByID mocks base method.
func (m *MockCommandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReviewByID", ctx, id)
	ret0, _ := ret[0].(*shared.ReviewSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReviewByID indicates an expected call of ReviewByID.
func (mr *MockCommandReadsMockRecorder) ReviewByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReviewByID", reflect.TypeOf((*MockCommandReads)(nil).ReviewByID), ctx, id)
}

// ReviewByBooking mocks base method.
func (m *MockCommandReads) ReviewByBooking(ctx context.Context, bookingID uuid.UUID) (*shared.ReviewSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReviewByBooking", ctx, bookingID)
	ret0, _ := ret[0].(*shared.ReviewSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReviewByBooking indicates an expected call of ReviewByBooking.
func (mr *MockCommandReadsMockRecorder) ReviewByBooking(ctx, bookingID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReviewByBooking", reflect.TypeOf((*MockCommandReads)(nil).ReviewByBooking), ctx, bookingID)
}

// IdempotencyByKey mocks base method.
func (m *MockCommandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IdempotencyByKey", ctx, key, userID)
	ret0, _ := ret[0].(*shared.IdempotencyRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IdempotencyByKey indicates an expected call of IdempotencyByKey.
func (mr *MockCommandReadsMockRecorder) IdempotencyByKey(ctx, key, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IdempotencyByKey", reflect.TypeOf((*MockCommandReads)(nil).IdempotencyByKey), ctx, key, userID)
}

// MockBookingRepository is a mock of BookingRepository interface.
type MockBookingRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBookingRepositoryMockRecorder
	isgomock struct{}
}

// MockBookingRepositoryMockRecorder is the mock recorder for MockBookingRepository.
type MockBookingRepositoryMockRecorder struct {
	mock *MockBookingRepository
}

// NewMockBookingRepository creates a new mock instance.
func NewMockBookingRepository(ctrl *gomock.Controller) *MockBookingRepository {
	mock := &MockBookingRepository{ctrl: ctrl}
	mock.recorder = &MockBookingRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingRepository) EXPECT() *MockBookingRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockBookingRepository) Create(ctx context.Context, tx generated.DBTX, b *booking.Booking) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, b)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockBookingRepositoryMockRecorder) Create(ctx, tx, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBookingRepository)(nil).Create), ctx, tx, b)
}

// Update mocks base method.
func (m *MockBookingRepository) Update(ctx context.Context, tx generated.DBTX, b *booking.Booking) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, tx, b)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockBookingRepositoryMockRecorder) Update(ctx, tx, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockBookingRepository)(nil).Update), ctx, tx, b)
}

// MockRoomRepository is a mock of RoomRepository interface.
type MockRoomRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRoomRepositoryMockRecorder
	isgomock struct{}
}

// MockRoomRepositoryMockRecorder is the mock recorder for MockRoomRepository.
type MockRoomRepositoryMockRecorder struct {
	mock *MockRoomRepository
}

// NewMockRoomRepository creates a new mock instance.
func NewMockRoomRepository(ctrl *gomock.Controller) *MockRoomRepository {
	mock := &MockRoomRepository{ctrl: ctrl}
	mock.recorder = &MockRoomRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoomRepository) EXPECT() *MockRoomRepositoryMockRecorder {
	return m.recorder
}

// Lock mocks base method.
func (m *MockRoomRepository) Lock(ctx context.Context, tx generated.DBTX, roomID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Lock", ctx, tx, roomID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Lock indicates an expected call of Lock.
func (mr *MockRoomRepositoryMockRecorder) Lock(ctx, tx, roomID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lock", reflect.TypeOf((*MockRoomRepository)(nil).Lock), ctx, tx, roomID)
}

// UpdateOccupancy mocks base method.
func (m *MockRoomRepository) UpdateOccupancy(ctx context.Context, tx generated.DBTX, roomID uuid.UUID, state room.OccupancyState) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateOccupancy", ctx, tx, roomID, state)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateOccupancy indicates an expected call of UpdateOccupancy.
func (mr *MockRoomRepositoryMockRecorder) UpdateOccupancy(ctx, tx, roomID, state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateOccupancy", reflect.TypeOf((*MockRoomRepository)(nil).UpdateOccupancy), ctx, tx, roomID, state)
}

// MockPaymentRepository is a mock of PaymentRepository interface.
type MockPaymentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentRepositoryMockRecorder
	isgomock struct{}
}

// MockPaymentRepositoryMockRecorder is the mock recorder for MockPaymentRepository.
type MockPaymentRepositoryMockRecorder struct {
	mock *MockPaymentRepository
}

// NewMockPaymentRepository creates a new mock instance.
func NewMockPaymentRepository(ctrl *gomock.Controller) *MockPaymentRepository {
	mock := &MockPaymentRepository{ctrl: ctrl}
	mock.recorder = &MockPaymentRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentRepository) EXPECT() *MockPaymentRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockPaymentRepository) Create(ctx context.Context, tx generated.DBTX, p *payment.Payment) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, p)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockPaymentRepositoryMockRecorder) Create(ctx, tx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPaymentRepository)(nil).Create), ctx, tx, p)
}

// MockReviewRepository is a mock of ReviewRepository interface.
type MockReviewRepository struct {
	ctrl     *gomock.Controller
	recorder *MockReviewRepositoryMockRecorder
	isgomock struct{}
}

// MockReviewRepositoryMockRecorder is the mock recorder for MockReviewRepository.
type MockReviewRepositoryMockRecorder struct {
	mock *MockReviewRepository
}

// NewMockReviewRepository creates a new mock instance.
func NewMockReviewRepository(ctrl *gomock.Controller) *MockReviewRepository {
	mock := &MockReviewRepository{ctrl: ctrl}
	mock.recorder = &MockReviewRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewRepository) EXPECT() *MockReviewRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockReviewRepository) Create(ctx context.Context, tx generated.DBTX, rev *review.Review) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, rev)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockReviewRepositoryMockRecorder) Create(ctx, tx, rev any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockReviewRepository)(nil).Create), ctx, tx, rev)
}

// Update mocks base method.
func (m *MockReviewRepository) Update(ctx context.Context, tx generated.DBTX, rev *review.Review) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, tx, rev)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockReviewRepositoryMockRecorder) Update(ctx, tx, rev any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockReviewRepository)(nil).Update), ctx, tx, rev)
}

// MockHotelRatingRepository is a mock of HotelRatingRepository interface.
type MockHotelRatingRepository struct {
	ctrl     *gomock.Controller
	recorder *MockHotelRatingRepositoryMockRecorder
	isgomock struct{}
}

// MockHotelRatingRepositoryMockRecorder is the mock recorder for MockHotelRatingRepository.
type MockHotelRatingRepositoryMockRecorder struct {
	mock *MockHotelRatingRepository
}

// NewMockHotelRatingRepository creates a new mock instance.
func NewMockHotelRatingRepository(ctrl *gomock.Controller) *MockHotelRatingRepository {
	mock := &MockHotelRatingRepository{ctrl: ctrl}
	mock.recorder = &MockHotelRatingRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHotelRatingRepository) EXPECT() *MockHotelRatingRepositoryMockRecorder {
	return m.recorder
}

// Recompute mocks base method.
func (m *MockHotelRatingRepository) Recompute(ctx context.Context, tx generated.DBTX, hotelID uuid.UUID) (*int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Recompute", ctx, tx, hotelID)
	ret0, _ := ret[0].(*int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Recompute indicates an expected call of Recompute.
func (mr *MockHotelRatingRepositoryMockRecorder) Recompute(ctx, tx, hotelID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Recompute", reflect.TypeOf((*MockHotelRatingRepository)(nil).Recompute), ctx, tx, hotelID)
}

// MockIdempotencyRepository is a mock of IdempotencyRepository interface.
type MockIdempotencyRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyRepositoryMockRecorder
	isgomock struct{}
}

// MockIdempotencyRepositoryMockRecorder is the mock recorder for MockIdempotencyRepository.
type MockIdempotencyRepositoryMockRecorder struct {
	mock *MockIdempotencyRepository
}

// NewMockIdempotencyRepository creates a new mock instance.
func NewMockIdempotencyRepository(ctrl *gomock.Controller) *MockIdempotencyRepository {
	mock := &MockIdempotencyRepository{ctrl: ctrl}
	mock.recorder = &MockIdempotencyRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIdempotencyRepository) EXPECT() *MockIdempotencyRepositoryMockRecorder {
	return m.recorder
}

// TryInsert mocks base method.
func (m *MockIdempotencyRepository) TryInsert(ctx context.Context, tx generated.DBTX, key uuid.UUID, userID uuid.UUID, endpoint string, requestHash string, expiresAt time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TryInsert", ctx, tx, key, userID, endpoint, requestHash, expiresAt)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TryInsert indicates an expected call of TryInsert.
func (mr *MockIdempotencyRepositoryMockRecorder) TryInsert(ctx, tx, key, userID, endpoint, requestHash, expiresAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TryInsert", reflect.TypeOf((*MockIdempotencyRepository)(nil).TryInsert), ctx, tx, key, userID, endpoint, requestHash, expiresAt)
}

// ClaimExpired mocks base method.
func (m *MockIdempotencyRepository) ClaimExpired(ctx context.Context, tx generated.DBTX, key uuid.UUID, userID uuid.UUID, endpoint string, requestHash string, expiresAt time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimExpired", ctx, tx, key, userID, endpoint, requestHash, expiresAt)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimExpired indicates an expected call of ClaimExpired.
func (mr *MockIdempotencyRepositoryMockRecorder) ClaimExpired(ctx, tx, key, userID, endpoint, requestHash, expiresAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimExpired", reflect.TypeOf((*MockIdempotencyRepository)(nil).ClaimExpired), ctx, tx, key, userID, endpoint, requestHash, expiresAt)
}

// Complete mocks base method.
func (m *MockIdempotencyRepository) Complete(ctx context.Context, tx generated.DBTX, key uuid.UUID, userID uuid.UUID, resultID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Complete", ctx, tx, key, userID, resultID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Complete indicates an expected call of Complete.
func (mr *MockIdempotencyRepositoryMockRecorder) Complete(ctx, tx, key, userID, resultID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Complete", reflect.TypeOf((*MockIdempotencyRepository)(nil).Complete), ctx, tx, key, userID, resultID)
}

// DeleteExpired mocks base method.
func (m *MockIdempotencyRepository) DeleteExpired(ctx context.Context, tx generated.DBTX, before time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpired", ctx, tx, before)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteExpired indicates an expected call of DeleteExpired.
func (mr *MockIdempotencyRepositoryMockRecorder) DeleteExpired(ctx, tx, before any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpired", reflect.TypeOf((*MockIdempotencyRepository)(nil).DeleteExpired), ctx, tx, before)
}

// MockNotificationRepository is a mock of NotificationRepository interface.
type MockNotificationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationRepositoryMockRecorder
	isgomock struct{}
}

// MockNotificationRepositoryMockRecorder is the mock recorder for MockNotificationRepository.
type MockNotificationRepositoryMockRecorder struct {
	mock *MockNotificationRepository
}

// NewMockNotificationRepository creates a new mock instance.
func NewMockNotificationRepository(ctrl *gomock.Controller) *MockNotificationRepository {
	mock := &MockNotificationRepository{ctrl: ctrl}
	mock.recorder = &MockNotificationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotificationRepository) EXPECT() *MockNotificationRepositoryMockRecorder {
	return m.recorder
}

// CreateJob mocks base method.
func (m *MockNotificationRepository) CreateJob(ctx context.Context, tx generated.DBTX, kind string, topic string, payload []byte, runAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateJob", ctx, tx, kind, topic, payload, runAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateJob indicates an expected call of CreateJob.
func (mr *MockNotificationRepositoryMockRecorder) CreateJob(ctx, tx, kind, topic, payload, runAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateJob", reflect.TypeOf((*MockNotificationRepository)(nil).CreateJob), ctx, tx, kind, topic, payload, runAt)
}

// ClaimDue mocks base method.
func (m *MockNotificationRepository) ClaimDue(ctx context.Context, tx generated.DBTX, runAt time.Time, limit int32) ([]shared.NotificationJob, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimDue", ctx, tx, runAt, limit)
	ret0, _ := ret[0].([]shared.NotificationJob)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimDue indicates an expected call of ClaimDue.
func (mr *MockNotificationRepositoryMockRecorder) ClaimDue(ctx, tx, runAt, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimDue", reflect.TypeOf((*MockNotificationRepository)(nil).ClaimDue), ctx, tx, runAt, limit)
}

// MarkSent mocks base method.
func (m *MockNotificationRepository) MarkSent(ctx context.Context, tx generated.DBTX, jobID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkSent", ctx, tx, jobID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkSent indicates an expected call of MarkSent.
func (mr *MockNotificationRepositoryMockRecorder) MarkSent(ctx, tx, jobID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkSent", reflect.TypeOf((*MockNotificationRepository)(nil).MarkSent), ctx, tx, jobID)
}

// MarkFailed mocks base method.
func (m *MockNotificationRepository) MarkFailed(ctx context.Context, tx generated.DBTX, jobID uuid.UUID, status string, lastError string, nextRunAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkFailed", ctx, tx, jobID, status, lastError, nextRunAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkFailed indicates an expected call of MarkFailed.
func (mr *MockNotificationRepositoryMockRecorder) MarkFailed(ctx, tx, jobID, status, lastError, nextRunAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkFailed", reflect.TypeOf((*MockNotificationRepository)(nil).MarkFailed), ctx, tx, jobID, status, lastError, nextRunAt)
}
