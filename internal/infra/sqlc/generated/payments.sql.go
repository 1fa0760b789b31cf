// Bindings for queries/payments.sql.

package generated

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPayment = `-- name: CreatePayment :one
INSERT INTO payments (
    id, booking_id, user_id, amount_cents, status, paid_at,
    card_last4, card_brand, card_holder, card_expiry, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
)
RETURNING id, booking_id, user_id, amount_cents, status, paid_at, card_last4, card_brand, card_holder, card_expiry, created_at
`

type CreatePaymentParams struct {
	ID          uuid.UUID          `json:"id"`
	BookingID   uuid.UUID          `json:"booking_id"`
	UserID      uuid.UUID          `json:"user_id"`
	AmountCents int64              `json:"amount_cents"`
	Status      string             `json:"status"`
	PaidAt      pgtype.Timestamptz `json:"paid_at"`
	CardLast4   string             `json:"card_last4"`
	CardBrand   string             `json:"card_brand"`
	CardHolder  string             `json:"card_holder"`
	CardExpiry  string             `json:"card_expiry"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) (Payments, error) {
	row := db.QueryRow(ctx, createPayment,
		arg.ID,
		arg.BookingID,
		arg.UserID,
		arg.AmountCents,
		arg.Status,
		arg.PaidAt,
		arg.CardLast4,
		arg.CardBrand,
		arg.CardHolder,
		arg.CardExpiry,
		arg.CreatedAt,
	)
	var i Payments
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.UserID,
		&i.AmountCents,
		&i.Status,
		&i.PaidAt,
		&i.CardLast4,
		&i.CardBrand,
		&i.CardHolder,
		&i.CardExpiry,
		&i.CreatedAt,
	)
	return i, err
}

const getPayment = `-- name: GetPayment :one
SELECT id, booking_id, user_id, amount_cents, status, paid_at, card_last4, card_brand, card_holder, card_expiry, created_at
FROM payments
WHERE id = $1
`

func (q *Queries) GetPayment(ctx context.Context, db DBTX, id uuid.UUID) (Payments, error) {
	row := db.QueryRow(ctx, getPayment, id)
	var i Payments
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.UserID,
		&i.AmountCents,
		&i.Status,
		&i.PaidAt,
		&i.CardLast4,
		&i.CardBrand,
		&i.CardHolder,
		&i.CardExpiry,
		&i.CreatedAt,
	)
	return i, err
}

const getPaymentByBooking = `-- name: GetPaymentByBooking :one
SELECT id, booking_id, user_id, amount_cents, status, paid_at, card_last4, card_brand, card_holder, card_expiry, created_at
FROM payments
WHERE booking_id = $1
`

func (q *Queries) GetPaymentByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (Payments, error) {
	row := db.QueryRow(ctx, getPaymentByBooking, bookingID)
	var i Payments
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.UserID,
		&i.AmountCents,
		&i.Status,
		&i.PaidAt,
		&i.CardLast4,
		&i.CardBrand,
		&i.CardHolder,
		&i.CardExpiry,
		&i.CreatedAt,
	)
	return i, err
}

const getPaymentReceipt = `-- name: GetPaymentReceipt :one
SELECT p.id, p.booking_id, p.user_id, p.amount_cents, p.status, p.paid_at,
       p.card_last4, p.card_brand, p.card_holder, p.card_expiry,
       b.check_in, b.check_out, h.name AS hotel_name, r.number AS room_number, u.email AS user_email
FROM payments p
JOIN bookings b ON b.id = p.booking_id
JOIN hotels h ON h.id = b.hotel_id
JOIN rooms r ON r.id = b.room_id
JOIN users u ON u.id = p.user_id
WHERE p.id = $1
`

type GetPaymentReceiptRow struct {
	ID          uuid.UUID          `json:"id"`
	BookingID   uuid.UUID          `json:"booking_id"`
	UserID      uuid.UUID          `json:"user_id"`
	AmountCents int64              `json:"amount_cents"`
	Status      string             `json:"status"`
	PaidAt      pgtype.Timestamptz `json:"paid_at"`
	CardLast4   string             `json:"card_last4"`
	CardBrand   string             `json:"card_brand"`
	CardHolder  string             `json:"card_holder"`
	CardExpiry  string             `json:"card_expiry"`
	CheckIn     pgtype.Date        `json:"check_in"`
	CheckOut    pgtype.Date        `json:"check_out"`
	HotelName   string             `json:"hotel_name"`
	RoomNumber  string             `json:"room_number"`
	UserEmail   string             `json:"user_email"`
}

func (q *Queries) GetPaymentReceipt(ctx context.Context, db DBTX, id uuid.UUID) (GetPaymentReceiptRow, error) {
	row := db.QueryRow(ctx, getPaymentReceipt, id)
	var i GetPaymentReceiptRow
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.UserID,
		&i.AmountCents,
		&i.Status,
		&i.PaidAt,
		&i.CardLast4,
		&i.CardBrand,
		&i.CardHolder,
		&i.CardExpiry,
		&i.CheckIn,
		&i.CheckOut,
		&i.HotelName,
		&i.RoomNumber,
		&i.UserEmail,
	)
	return i, err
}

const listPayments = `-- name: ListPayments :many
SELECT id, booking_id, user_id, amount_cents, status, paid_at, card_last4, card_brand, card_holder, card_expiry, created_at
FROM payments
WHERE ($1::uuid IS NULL OR user_id = $1)
  AND ($2::uuid IS NULL OR booking_id = $2)
  AND ($3::text IS NULL OR status = $3)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListPaymentsParams struct {
	UserID    pgtype.UUID `json:"user_id"`
	BookingID pgtype.UUID `json:"booking_id"`
	Status    pgtype.Text `json:"status"`
	Limit     int32       `json:"limit"`
}

func (q *Queries) ListPayments(ctx context.Context, db DBTX, arg ListPaymentsParams) ([]Payments, error) {
	rows, err := db.Query(ctx, listPayments,
		arg.UserID,
		arg.BookingID,
		arg.Status,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payments
	for rows.Next() {
		var i Payments
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.UserID,
			&i.AmountCents,
			&i.Status,
			&i.PaidAt,
			&i.CardLast4,
			&i.CardBrand,
			&i.CardHolder,
			&i.CardExpiry,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
