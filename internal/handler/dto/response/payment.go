package response

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

type CardResponse struct {
	Last4  string `json:"last4"`
	Brand  string `json:"brand"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
}

type PaymentResponse struct {
	ID        uuid.UUID    `json:"id"`
	BookingID uuid.UUID    `json:"booking_id"`
	UserID    uuid.UUID    `json:"user_id"`
	Amount    string       `json:"amount"`
	Status    string       `json:"status"`
	PaidAt    *time.Time   `json:"paid_at,omitempty"`
	Card      CardResponse `json:"card"`
	CreatedAt time.Time    `json:"created_at"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	var res PaymentResponse
	copyFields(&res, v)
	res.Amount = formatCents(v.AmountCents)
	res.Card = CardResponse{
		Last4:  v.CardLast4,
		Brand:  v.CardBrand,
		Holder: v.CardHolder,
		Expiry: v.CardExpiry,
	}
	return &res
}

func FromPaymentList(items []*queries.PaymentView) []*PaymentResponse {
	res := make([]*PaymentResponse, len(items))
	for i, it := range items {
		res[i] = FromPaymentView(it)
	}
	return res
}
