package request

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

type CardRequest struct {
	Number string `json:"number" binding:"required"`
	Holder string `json:"holder" binding:"required,max=100"`
	Expiry string `json:"expiry" binding:"required"`
	CVV    string `json:"cvv" binding:"required"`
}

// Amount is a decimal string such as "300.00". PayerID defaults to the authenticated user.
type CreatePaymentRequest struct {
	BookingID uuid.UUID   `json:"booking_id" binding:"required"`
	PayerID   *uuid.UUID  `json:"payer_id,omitempty"`
	Amount    string      `json:"amount" binding:"required"`
	Card      CardRequest `json:"card"`
}

func (r CreatePaymentRequest) ToInput(actor user.Actor) (commands.PayInput, error) {
	amount, err := common.ParseMoney(r.Amount)
	if err != nil {
		return commands.PayInput{}, err
	}

	payerID := actor.ID
	if r.PayerID != nil {
		payerID = *r.PayerID
	}

	return commands.PayInput{
		BookingID:  r.BookingID,
		PayerID:    payerID,
		Amount:     amount,
		CardNumber: r.Card.Number,
		CardHolder: r.Card.Holder,
		CardExpiry: r.Card.Expiry,
		CardCVV:    r.Card.CVV,
	}, nil
}

type PaymentListQuery struct {
	UserID    string `form:"user_id"`
	BookingID string `form:"booking_id"`
	Status    string `form:"status"`
	Limit     string `form:"limit"`
}

func (q PaymentListQuery) ToFilter() (queries.PaymentFilter, error) {
	var (
		f   queries.PaymentFilter
		err error
	)
	if f.UserID, err = optionalID(q.UserID); err != nil {
		return f, err
	}
	if f.BookingID, err = optionalID(q.BookingID); err != nil {
		return f, err
	}
	if f.Limit, err = parseLimit(q.Limit); err != nil {
		return f, err
	}
	f.Status = optionalString(q.Status)
	return f, nil
}
