//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"
	sharedmock "github.com/B1gB4dB4ng/HotelApp/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// now is noon in the hotel zone (Asia/Tokyo), so today is 2024-06-20.
var now = time.Date(2024, 6, 20, 3, 0, 0, 0, time.UTC)

type harness struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	rooms         *sharedmock.MockRoomRepository
	payments      *sharedmock.MockPaymentRepository
	reviews       *sharedmock.MockReviewRepository
	ratings       *sharedmock.MockHotelRatingRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
	cfg           config.Config
}

// newHarness wires a unit of work whose transactions run fn directly
// against mocked repositories.
func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		rooms:         sharedmock.NewMockRoomRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		ratings:       sharedmock.NewMockHotelRatingRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(now),
		cfg:           config.NewTestConfig(),
	}

	runTx := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, h.tx)
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runTx).AnyTimes()
	h.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runTx).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Rooms().Return(h.rooms).AnyTimes()
	h.tx.EXPECT().Payments().Return(h.payments).AnyTimes()
	h.tx.EXPECT().Reviews().Return(h.reviews).AnyTimes()
	h.tx.EXPECT().HotelRatings().Return(h.ratings).AnyTimes()
	h.tx.EXPECT().Idempotency().Return(h.idempotency).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()

	return h
}

func guest(id uuid.UUID) user.Actor {
	return user.NewActor(id, user.RoleGuest)
}

func admin() user.Actor {
	return user.NewActor(uuid.New(), user.RoleAdmin)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}
