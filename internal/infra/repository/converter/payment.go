package converter

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
)

// Only the card summary is persisted. Full numbers and CVVs never reach the store.
func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	card := p.Card()
	return sqlc.CreatePaymentParams{
		ID:          p.ID(),
		BookingID:   p.BookingID(),
		UserID:      p.UserID(),
		AmountCents: p.Amount().Cents(),
		Status:      p.Status().String(),
		PaidAt:      pgconv.TimePtrToPgtype(p.PaidAt()),
		CardLast4:   card.Last4,
		CardBrand:   string(card.Brand),
		CardHolder:  card.Holder,
		CardExpiry:  card.Expiry,
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
	}
}
