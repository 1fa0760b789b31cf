package readstore

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/pgconv"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	GetPayment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	GetPaymentByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.Payments, error)
	ListPayments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPaymentsParams) ([]sqlc.Payments, error)
	GetPaymentReceipt(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPaymentReceiptRow, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPayment(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment by id", err)
	}
	return toPaymentView(row), nil
}

func (r *PaymentReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByBooking(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment by booking", err)
	}
	return toPaymentView(row), nil
}

func (r *PaymentReadStore) List(ctx context.Context, filter queries.PaymentFilter) ([]*queries.PaymentView, error) {
	params := sqlc.ListPaymentsParams{
		UserID:    pgconv.UUIDPtrToPgtype(filter.UserID),
		BookingID: pgconv.UUIDPtrToPgtype(filter.BookingID),
		Status:    pgconv.StringPtrToPgtype(filter.Status),
		Limit:     int32(filter.Limit),
	}

	rows, err := r.queries.ListPayments(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	result := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		result[i] = toPaymentView(row)
	}
	return result, nil
}

func (r *PaymentReadStore) FindReceipt(ctx context.Context, id uuid.UUID) (*queries.ReceiptView, error) {
	row, err := r.queries.GetPaymentReceipt(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment receipt", err)
	}
	return &queries.ReceiptView{
		PaymentView: queries.PaymentView{
			ID:          row.ID,
			BookingID:   row.BookingID,
			UserID:      row.UserID,
			AmountCents: row.AmountCents,
			Status:      row.Status,
			PaidAt:      pgconv.TimePtrFromPgtype(row.PaidAt),
			CardLast4:   row.CardLast4,
			CardBrand:   row.CardBrand,
			CardHolder:  row.CardHolder,
			CardExpiry:  row.CardExpiry,
		},
		CheckIn:    pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:   pgconv.DateFromPgtype(row.CheckOut),
		HotelName:  row.HotelName,
		RoomNumber: row.RoomNumber,
		UserEmail:  row.UserEmail,
	}, nil
}

func toPaymentView(row sqlc.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		ID:          row.ID,
		BookingID:   row.BookingID,
		UserID:      row.UserID,
		AmountCents: row.AmountCents,
		Status:      row.Status,
		PaidAt:      pgconv.TimePtrFromPgtype(row.PaidAt),
		CardLast4:   row.CardLast4,
		CardBrand:   row.CardBrand,
		CardHolder:  row.CardHolder,
		CardExpiry:  row.CardExpiry,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
