package payment

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"

	"github.com/google/uuid"
)

type Payment struct {
	id        uuid.UUID
	bookingID uuid.UUID
	userID    uuid.UUID
	amount    common.Money
	status    Status
	paidAt    *time.Time
	card      CardSummary
	createdAt time.Time
}

// MatchAmount requires the exact booking total. There is no partial payment
// and no tolerance for overpayment.
func MatchAmount(amount, due common.Money) error {
	if !amount.Equal(due) {
		return ErrAmountMismatch
	}
	return nil
}

// Settle records a completed payment for a booking whose total is due.
func Settle(bookingID, userID uuid.UUID, amount, due common.Money, inst Instrument, now time.Time) (*Payment, error) {
	if err := MatchAmount(amount, due); err != nil {
		return nil, err
	}
	paidAt := now
	return &Payment{
		id:        uuid.New(),
		bookingID: bookingID,
		userID:    userID,
		amount:    amount,
		status:    StatusCompleted,
		paidAt:    &paidAt,
		card:      inst.Summary(),
		createdAt: now,
	}, nil
}

func Reconstruct(
	id, bookingID, userID uuid.UUID,
	amount common.Money,
	status Status,
	paidAt *time.Time,
	card CardSummary,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		amount:    amount,
		status:    status,
		paidAt:    paidAt,
		card:      card,
		createdAt: createdAt,
	}
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) BookingID() uuid.UUID { return p.bookingID }
func (p *Payment) UserID() uuid.UUID    { return p.userID }
func (p *Payment) Amount() common.Money { return p.amount }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) PaidAt() *time.Time   { return p.paidAt }
func (p *Payment) Card() CardSummary    { return p.card }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

