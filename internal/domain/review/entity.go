package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	hotelID   uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	comment   Comment
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewReview starts every review as pending; moderation confirms it.
func NewReview(id, userID, hotelID, bookingID uuid.UUID, rating Rating, comment Comment, now time.Time) *Review {
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		userID:    userID,
		hotelID:   hotelID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(id, userID, hotelID, bookingID uuid.UUID, rating Rating, comment Comment, status Status, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		hotelID:   hotelID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) HotelID() uuid.UUID   { return r.hotelID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) Status() Status       { return r.status }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

func (r *Review) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

type Edit struct {
	Rating  *Rating
	Comment *Comment
	Status  *Status
}

// ApplyEdit applies a partial edit and reports whether the hotel's average
// has to be recomputed. Edits by non-privileged actors put the review back
// into moderation.
func (r *Review) ApplyEdit(e Edit, privileged bool, now time.Time) (bool, error) {
	if r.status == StatusDeleted {
		return false, ErrReviewDeleted
	}
	if !privileged {
		if e.Status != nil {
			return false, ErrStatusReserved
		}
		if r.status != StatusPending {
			return false, ErrNotEditable
		}
	}

	wasConfirmed := r.IsConfirmed()
	ratingChanged := e.Rating != nil && *e.Rating != r.rating

	if e.Status != nil && *e.Status != r.status {
		if !e.Status.IsValid() {
			return false, ErrInvalidStatus
		}
		if !r.status.CanTransitionTo(*e.Status) {
			return false, ErrInvalidTransition
		}
		r.status = *e.Status
	}
	if e.Rating != nil {
		r.rating = *e.Rating
	}
	if e.Comment != nil {
		r.comment = *e.Comment
	}
	if !privileged {
		r.status = StatusPending
	}
	r.updatedAt = now

	isConfirmed := r.IsConfirmed()
	return wasConfirmed != isConfirmed || (isConfirmed && ratingChanged), nil
}

// Delete soft-deletes the review and reports whether it was counted in the
// average.
func (r *Review) Delete(now time.Time) (bool, error) {
	if r.status == StatusDeleted {
		return false, ErrReviewDeleted
	}
	wasConfirmed := r.IsConfirmed()
	r.status = StatusDeleted
	r.updatedAt = now
	return wasConfirmed, nil
}
