//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func payInput(b *builder.BookingBuilder) commands.PayInput {
	return commands.PayInput{
		BookingID:  b.ID,
		PayerID:    b.UserID,
		Amount:     common.MustMoney(b.TotalCents()),
		CardNumber: builder.VisaCardNumber,
		CardHolder: "Ada Lovelace",
		CardExpiry: "12/30",
		CardCVV:    "123",
	}
}

func TestPaymentCommands_Pay(t *testing.T) {
	ctx := context.Background()

	t.Run("success: settles, confirms and queues the event", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()
		paymentID := uuid.New()

		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)
		h.reads.EXPECT().PaymentByBooking(ctx, b.ID).Return(nil, notFound("payment not found"))
		h.payments.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, p *payment.Payment) (uuid.UUID, error) {
				assert.Equal(t, payment.StatusCompleted, p.Status())
				assert.Equal(t, int64(30000), p.Amount().Cents())
				assert.Equal(t, "4242", p.Card().Last4)
				require.NotNil(t, p.PaidAt())
				assert.Equal(t, now, *p.PaidAt())
				return paymentID, nil
			})
		h.bookings.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, got *booking.Booking) error {
				assert.Equal(t, booking.LifecycleConfirmed, got.Lifecycle())
				return nil
			})
		h.notifications.EXPECT().CreateJob(ctx, gomock.Any(), commands.NotificationKindBookingConfirmed, "booking.confirmed", gomock.Any(), now).
			DoAndReturn(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) error {
				var event commands.BookingConfirmedEvent
				require.NoError(t, json.Unmarshal(payload, &event))
				assert.Equal(t, b.ID, event.BookingID)
				assert.Equal(t, paymentID, event.PaymentID)
				assert.Equal(t, "2024-06-10", event.CheckIn)
				assert.Equal(t, "2024-06-12", event.CheckOut)
				assert.Equal(t, int64(30000), event.AmountCents)
				return nil
			})

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		result, err := uc.Pay(ctx, payInput(b), guest(b.UserID), nil)

		require.NoError(t, err)
		assert.Equal(t, paymentID, result.PaymentID)
		assert.Equal(t, b.ID, result.BookingID)
		assert.False(t, result.Replayed)
	})

	t.Run("error: payer is not the authenticated user", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, payInput(b), guest(uuid.New()), nil)

		assert.ErrorIs(t, err, payment.ErrPayerMismatch)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: payer does not own the booking", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()
		in := payInput(b)
		in.PayerID = uuid.New()
		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, in, guest(in.PayerID), nil)

		assert.ErrorIs(t, err, payment.ErrPayerMismatch)
	})

	t.Run("error: booking missing", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()
		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(nil, notFound("booking not found"))

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, payInput(b), guest(b.UserID), nil)

		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	t.Run("error: booking already has a payment", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()
		existing := builder.NewPaymentBuilder().WithBookingID(b.ID).WithUserID(b.UserID)
		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)
		h.reads.EXPECT().PaymentByBooking(ctx, b.ID).Return(existing.BuildSnapshot(), nil)

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, payInput(b), guest(b.UserID), nil)

		assert.ErrorIs(t, err, payment.ErrAlreadyPaid)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("error: cancelled booking cannot be paid", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.LifecycleState = string(booking.LifecycleCancelled)
		})
		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)
		h.reads.EXPECT().PaymentByBooking(ctx, b.ID).Return(nil, notFound("payment not found"))

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, payInput(b), guest(b.UserID), nil)

		assert.ErrorIs(t, err, payment.ErrBookingCancelled)
	})

	t.Run("error: amount differs from the booking total", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()
		in := payInput(b)
		in.Amount = common.MustMoney(b.TotalCents() + 1)
		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)
		h.reads.EXPECT().PaymentByBooking(ctx, b.ID).Return(nil, notFound("payment not found"))

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, in, guest(b.UserID), nil)

		assert.ErrorIs(t, err, payment.ErrAmountMismatch)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})

	t.Run("error: card expired last month", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()
		in := payInput(b)
		in.CardExpiry = "05/24"
		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)
		h.reads.EXPECT().PaymentByBooking(ctx, b.ID).Return(nil, notFound("payment not found"))

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, in, guest(b.UserID), nil)

		assert.ErrorIs(t, err, payment.ErrCardExpired)
		assert.True(t, errs.Is(err, payment.ErrInvalidInstrument))
	})

	t.Run("error: card number fails the checksum", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()
		in := payInput(b)
		in.CardNumber = "4242 4242 4242 4241"
		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)
		h.reads.EXPECT().PaymentByBooking(ctx, b.ID).Return(nil, notFound("payment not found"))

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, in, guest(b.UserID), nil)

		assert.ErrorIs(t, err, payment.ErrCardNumber)
	})

	t.Run("error: concurrent payment wins the unique index", func(t *testing.T) {
		h := newHarness(t)
		b := builder.NewBookingBuilder()
		unique := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		h.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)
		h.reads.EXPECT().PaymentByBooking(ctx, b.ID).Return(nil, notFound("payment not found"))
		h.payments.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create payment", unique))

		uc := commands.NewPaymentUseCase(h.uow, h.clock, h.cfg)
		_, err := uc.Pay(ctx, payInput(b), guest(b.UserID), nil)

		assert.ErrorIs(t, err, payment.ErrAlreadyPaid)
	})

	t.Run("success: replay with the same key returns the first payment", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		key := uuid.New()
		paymentID := uuid.New()

		// The first attempt stores the request hash the retry is compared to.
		var storedHash string
		first := newHarness(t)
		first.idempotency.EXPECT().TryInsert(ctx, gomock.Any(), key, b.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, requestHash string, _ time.Time) (bool, error) {
				storedHash = requestHash
				return true, nil
			})
		first.reads.EXPECT().BookingByID(ctx, b.ID).Return(b.BuildSnapshot(), nil)
		first.reads.EXPECT().PaymentByBooking(ctx, b.ID).Return(nil, notFound("payment not found"))
		first.payments.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(paymentID, nil)
		first.bookings.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)
		first.notifications.EXPECT().CreateJob(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		first.idempotency.EXPECT().Complete(ctx, gomock.Any(), key, b.UserID, paymentID).Return(nil)

		_, err := commands.NewPaymentUseCase(first.uow, first.clock, first.cfg).Pay(ctx, payInput(b), guest(b.UserID), &key)
		require.NoError(t, err)

		// A retry that only differs in the CVV is the same request.
		retry := payInput(b)
		retry.CardCVV = "999"
		second := newHarness(t)
		second.idempotency.EXPECT().TryInsert(ctx, gomock.Any(), key, b.UserID, gomock.Any(), storedHash, gomock.Any()).Return(false, nil)
		second.reads.EXPECT().IdempotencyByKey(ctx, key, b.UserID).Return(&shared.IdempotencyRecord{
			Key:         key,
			UserID:      b.UserID,
			Endpoint:    "POST /api/payments",
			Status:      shared.IdempotencyStatusCompleted,
			RequestHash: storedHash,
			ResultID:    &paymentID,
			ExpiresAt:   now.Add(time.Hour),
		}, nil)

		result, err := commands.NewPaymentUseCase(second.uow, second.clock, second.cfg).Pay(ctx, retry, guest(b.UserID), &key)

		require.NoError(t, err)
		assert.Equal(t, paymentID, result.PaymentID)
		assert.Equal(t, b.ID, result.BookingID)
		assert.True(t, result.Replayed)
	})
}
