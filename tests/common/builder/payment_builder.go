//go:build unit || e2e

package builder

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/common"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

// Test card numbers that pass the Luhn check.
const (
	VisaCardNumber       = "4242 4242 4242 4242"
	MastercardCardNumber = "5555-5555-5555-4444"
)

type PaymentBuilder struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Status      string
	PaidAt      *time.Time
	CardNumber  string
	CardHolder  string
	CardExpiry  string
	CardCVV     string
	CreatedAt   time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	return &PaymentBuilder{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		UserID:      uuid.New(),
		AmountCents: 30000,
		Status:      string(payment.StatusCompleted),
		PaidAt:      &now,
		CardNumber:  VisaCardNumber,
		CardHolder:  "Ada Lovelace",
		CardExpiry:  "12/30",
		CardCVV:     "123",
		CreatedAt:   now,
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PaymentBuilder) BuildInstrument() (payment.Instrument, error) {
	return payment.NewInstrument(p.CardNumber, p.CardHolder, p.CardExpiry, p.CardCVV, p.CreatedAt)
}

func (p *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	inst, err := p.BuildInstrument()
	if err != nil {
		return nil, err
	}
	amount, err := common.NewMoney(p.AmountCents)
	if err != nil {
		return nil, err
	}
	return payment.Settle(p.BookingID, p.UserID, amount, amount, inst, p.CreatedAt)
}

func (p *PaymentBuilder) BuildSnapshot() *shared.PaymentSnapshot {
	return &shared.PaymentSnapshot{
		ID:          p.ID,
		BookingID:   p.BookingID,
		UserID:      p.UserID,
		AmountCents: p.AmountCents,
		Status:      p.Status,
		PaidAt:      p.PaidAt,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:          p.ID,
		BookingID:   p.BookingID,
		UserID:      p.UserID,
		AmountCents: p.AmountCents,
		Status:      p.Status,
		PaidAt:      p.PaidAt,
		CardLast4:   p.last4(),
		CardBrand:   string(payment.BrandVisa),
		CardHolder:  p.CardHolder,
		CardExpiry:  p.CardExpiry,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PaymentBuilder) BuildReceipt() *queries.ReceiptView {
	return &queries.ReceiptView{
		PaymentView: *p.BuildView(),
		CheckIn:     Date(2024, 6, 10),
		CheckOut:    Date(2024, 6, 12),
		HotelName:   "Harbor View",
		RoomNumber:  "101",
		UserEmail:   "guest@example.com",
	}
}

func (p *PaymentBuilder) BuildInfra() sqlc.Payments {
	return sqlc.Payments{
		ID:          p.ID,
		BookingID:   p.BookingID,
		UserID:      p.UserID,
		AmountCents: p.AmountCents,
		Status:      p.Status,
		PaidAt:      pgconv.TimePtrToPgtype(p.PaidAt),
		CardLast4:   p.last4(),
		CardBrand:   string(payment.BrandVisa),
		CardHolder:  p.CardHolder,
		CardExpiry:  p.CardExpiry,
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt),
	}
}

func (p *PaymentBuilder) last4() string {
	n := p.CardNumber
	if len(n) < 4 {
		return n
	}
	return n[len(n)-4:]
}

// Fluent builder methods
func (p *PaymentBuilder) WithBookingID(id uuid.UUID) *PaymentBuilder {
	p.BookingID = id
	return p
}

func (p *PaymentBuilder) WithUserID(id uuid.UUID) *PaymentBuilder {
	p.UserID = id
	return p
}

func (p *PaymentBuilder) WithAmountCents(cents int64) *PaymentBuilder {
	p.AmountCents = cents
	return p
}

func (p *PaymentBuilder) WithStatus(status payment.Status) *PaymentBuilder {
	p.Status = string(status)
	return p
}
