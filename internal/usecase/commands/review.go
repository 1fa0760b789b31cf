package commands

import (
	"context"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/review"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/patch"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitReviewInput struct {
	UserID    uuid.UUID
	HotelID   uuid.UUID
	BookingID uuid.UUID
	Rating    float64
	Comment   *string
}

// EditReviewInput leaves nil fields untouched. An empty comment clears it.
type EditReviewInput struct {
	Rating  *float64
	Comment *string
	Status  *string
}

type SubmitReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	SubmitReview(ctx context.Context, in SubmitReviewInput, actor user.Actor) (*SubmitReviewResult, error)
	EditReview(ctx context.Context, reviewID uuid.UUID, actor user.Actor, in EditReviewInput) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actor user.Actor) error
	RecomputeAverage(ctx context.Context, hotelID uuid.UUID) (*int64, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) ReviewCommands {
	return &reviewUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   cfg.Worker.Location(),
	}
}

func (uc *reviewUseCaseImpl) SubmitReview(ctx context.Context, in SubmitReviewInput, actor user.Actor) (*SubmitReviewResult, error) {
	if err := actor.RequireAccess(in.UserID); err != nil {
		return nil, err
	}
	rating, err := review.RatingFromFloat(in.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(in.Comment)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		if err := requireUser(ctx, tx.Reads(), in.UserID); err != nil {
			return err
		}
		if err := requireHotel(ctx, tx.Reads(), in.HotelID); err != nil {
			return err
		}
		b, err := loadBooking(ctx, tx.Reads(), in.BookingID)
		if err != nil {
			return err
		}
		if err := review.CheckEligibility(b, in.UserID, in.HotelID, booking.Today(now, uc.loc)); err != nil {
			return err
		}

		_, err = tx.Reads().ReviewByBooking(ctx, in.BookingID)
		switch {
		case err == nil:
			return review.ErrReviewAlreadyExists
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		rev := review.NewReview(uuid.Nil, in.UserID, in.HotelID, in.BookingID, rating, comment, now)
		id, err := tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			return translateRepoErr(err, nil, review.ErrReviewAlreadyExists)
		}
		createdID = id

		_, err = tx.HotelRatings().Recompute(ctx, tx.DB(), in.HotelID)
		return translateRepoErr(err, booking.ErrHotelNotFound, nil)
	})
	if err != nil {
		return nil, err
	}
	return &SubmitReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) EditReview(ctx context.Context, reviewID uuid.UUID, actor user.Actor, in EditReviewInput) error {
	edit, err := parseEdit(in)
	if err != nil {
		return err
	}

	return uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := loadReview(ctx, tx.Reads(), reviewID)
		if err != nil {
			return err
		}
		if err := actor.RequireAccess(rev.UserID()); err != nil {
			return err
		}

		recompute, err := rev.ApplyEdit(edit, actor.IsPrivileged(), uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Update(ctx, tx.DB(), rev); err != nil {
			return translateRepoErr(err, review.ErrReviewNotFound, nil)
		}
		if !recompute {
			return nil
		}
		_, err = tx.HotelRatings().Recompute(ctx, tx.DB(), rev.HotelID())
		return translateRepoErr(err, booking.ErrHotelNotFound, nil)
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actor user.Actor) error {
	if err := actor.RequirePrivileged(); err != nil {
		return err
	}

	return uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := loadReview(ctx, tx.Reads(), reviewID)
		if err != nil {
			return err
		}
		wasConfirmed, err := rev.Delete(uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Update(ctx, tx.DB(), rev); err != nil {
			return translateRepoErr(err, review.ErrReviewNotFound, nil)
		}
		if !wasConfirmed {
			return nil
		}
		_, err = tx.HotelRatings().Recompute(ctx, tx.DB(), rev.HotelID())
		return translateRepoErr(err, booking.ErrHotelNotFound, nil)
	})
}

func (uc *reviewUseCaseImpl) RecomputeAverage(ctx context.Context, hotelID uuid.UUID) (*int64, error) {
	var avg *int64
	err := uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		avg, err = tx.HotelRatings().Recompute(ctx, tx.DB(), hotelID)
		return translateRepoErr(err, booking.ErrHotelNotFound, nil)
	})
	if err != nil {
		return nil, err
	}
	return avg, nil
}

func parseEdit(in EditReviewInput) (review.Edit, error) {
	var e review.Edit
	if in.Rating != nil {
		r, err := review.RatingFromFloat(*in.Rating)
		if err != nil {
			return review.Edit{}, err
		}
		e.Rating = &r
	}
	if in.Comment != nil {
		c, err := review.NewComment(in.Comment)
		if err != nil {
			return review.Edit{}, err
		}
		e.Comment = &c
	}
	status, err := patch.Parse(in.Status, review.ParseStatus)
	if err != nil {
		return review.Edit{}, err
	}
	e.Status = status
	return e, nil
}

func loadReview(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*review.Review, error) {
	snap, err := reads.ReviewByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, review.ErrReviewNotFound, nil)
	}
	return reviewFromSnapshot(snap)
}
