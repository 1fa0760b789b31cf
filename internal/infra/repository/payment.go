package repository

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/repository/converter"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payments, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (uuid.UUID, error) {
	row, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return row.ID, nil
}
