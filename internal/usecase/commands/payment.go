package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

const NotificationKindBookingConfirmed = "booking.confirmed"

type PayInput struct {
	BookingID  uuid.UUID
	PayerID    uuid.UUID
	Amount     common.Money
	CardNumber string
	CardHolder string
	CardExpiry string
	CardCVV    string
}

type PayResult struct {
	PaymentID uuid.UUID
	BookingID uuid.UUID
	Replayed  bool
}

// BookingConfirmedEvent is the outbox payload published once a booking is paid.
type BookingConfirmedEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	PaymentID   uuid.UUID `json:"payment_id"`
	UserID      uuid.UUID `json:"user_id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	RoomID      uuid.UUID `json:"room_id"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	AmountCents int64     `json:"amount_cents"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type PaymentCommands interface {
	Pay(ctx context.Context, in PayInput, actor user.Actor, idempotencyKey *uuid.UUID) (*PayResult, error)
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
	topic string
}

func NewPaymentUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   cfg.Worker.Location(),
		topic: cfg.AMQP.BookingConfirmedQueue,
	}
}

// paymentFingerprint binds an Idempotency-Key without keeping card secrets.
type paymentFingerprint struct {
	BookingID   uuid.UUID `json:"booking_id"`
	PayerID     uuid.UUID `json:"payer_id"`
	AmountCents int64     `json:"amount_cents"`
	CardTail    string    `json:"card_tail"`
	CardExpiry  string    `json:"card_expiry"`
}

func fingerprintPayment(in PayInput) paymentFingerprint {
	tail := in.CardNumber
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return paymentFingerprint{
		BookingID:   in.BookingID,
		PayerID:     in.PayerID,
		AmountCents: in.Amount.Cents(),
		CardTail:    tail,
		CardExpiry:  in.CardExpiry,
	}
}

func (uc *paymentUseCaseImpl) Pay(ctx context.Context, in PayInput, actor user.Actor, idempotencyKey *uuid.UUID) (*PayResult, error) {
	if in.PayerID != actor.ID && !actor.IsPrivileged() {
		return nil, payment.ErrPayerMismatch
	}

	req, err := newIdempotencyRequest(idempotencyKey, actor.ID, endpointPay, fingerprintPayment(in))
	if err != nil {
		return nil, err
	}

	var result PayResult
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		result = PayResult{BookingID: in.BookingID}

		replay, err := beginIdempotent(ctx, tx, req, now)
		if err != nil {
			return err
		}
		if replay != nil {
			result.PaymentID = *replay
			result.Replayed = true
			return nil
		}

		b, err := loadLiveRecord(ctx, tx.Reads(), in.BookingID)
		if err != nil {
			return err
		}
		if !b.IsOwnedBy(in.PayerID) {
			return payment.ErrPayerMismatch
		}

		_, err = tx.Reads().PaymentByBooking(ctx, b.ID())
		switch {
		case err == nil:
			return payment.ErrAlreadyPaid
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}
		if b.Lifecycle() == booking.LifecycleCancelled {
			return payment.ErrBookingCancelled
		}

		if err := payment.MatchAmount(in.Amount, b.TotalCost()); err != nil {
			return err
		}
		inst, err := payment.NewInstrument(in.CardNumber, in.CardHolder, in.CardExpiry, in.CardCVV, booking.Today(now, uc.loc))
		if err != nil {
			return err
		}
		p, err := payment.Settle(b.ID(), in.PayerID, in.Amount, b.TotalCost(), inst, now)
		if err != nil {
			return err
		}

		paymentID, err := tx.Payments().Create(ctx, tx.DB(), p)
		if err != nil {
			return translateRepoErr(err, nil, payment.ErrAlreadyPaid)
		}

		if err := b.Confirm(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return translateRepoErr(err, booking.ErrBookingNotFound, nil)
		}

		payload, err := json.Marshal(BookingConfirmedEvent{
			BookingID:   b.ID(),
			PaymentID:   paymentID,
			UserID:      b.UserID(),
			HotelID:     b.HotelID(),
			RoomID:      b.RoomID(),
			CheckIn:     b.Period().CheckIn().Format(booking.DateLayout),
			CheckOut:    b.Period().CheckOut().Format(booking.DateLayout),
			AmountCents: p.Amount().Cents(),
			ConfirmedAt: now,
		})
		if err != nil {
			return errs.Wrap(err, "encode booking confirmed event")
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), NotificationKindBookingConfirmed, uc.topic, payload, now); err != nil {
			return err
		}

		if err := completeIdempotent(ctx, tx, req, paymentID); err != nil {
			return err
		}
		result.PaymentID = paymentID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
