package queries

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReceiptUnavailable = errs.Define("receipt is only available for completed payments", errs.ErrConflict)

type PaymentFilter struct {
	UserID    *uuid.UUID
	BookingID *uuid.UUID
	Status    *string
	Limit     int
}

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	List(ctx context.Context, filter PaymentFilter) ([]*PaymentView, error)
	FindReceipt(ctx context.Context, id uuid.UUID) (*ReceiptView, error)
}

type PaymentQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*PaymentView, error)
	List(ctx context.Context, actor user.Actor, filter PaymentFilter) ([]*PaymentView, error)
	GetReceipt(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReceiptView, error)
}

type paymentQueriesImpl struct {
	repo PaymentReadStore
}

func NewPaymentQueries(repo PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*PaymentView, error) {
	p, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}
	if err := actor.RequireAccess(p.UserID); err != nil {
		return nil, err
	}
	return p, nil
}

func (q *paymentQueriesImpl) List(ctx context.Context, actor user.Actor, filter PaymentFilter) ([]*PaymentView, error) {
	if !actor.IsPrivileged() {
		if filter.UserID == nil {
			id := actor.ID
			filter.UserID = &id
		} else if *filter.UserID != actor.ID {
			return nil, user.ErrNotOwner
		}
	}
	if filter.Status != nil {
		if _, err := payment.ParseStatus(*filter.Status); err != nil {
			return nil, err
		}
	}
	filter.Limit = ValidateLimit(filter.Limit)

	rows, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoMatches
	}
	return rows, nil
}

func (q *paymentQueriesImpl) GetReceipt(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReceiptView, error) {
	r, err := q.repo.FindReceipt(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}
	if err := actor.RequireAccess(r.UserID); err != nil {
		return nil, err
	}
	if r.Status != payment.StatusCompleted.String() {
		return nil, ErrReceiptUnavailable
	}
	return r, nil
}
