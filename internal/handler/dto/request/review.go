package request

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"github.com/google/uuid"
)

// UserID defaults to the authenticated user. Range and step of Rating are
// checked by the review rules, not by binding.
type CreateReviewRequest struct {
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	HotelID   uuid.UUID  `json:"hotel_id" binding:"required"`
	BookingID uuid.UUID  `json:"booking_id" binding:"required"`
	Rating    *float64   `json:"rating" binding:"required"`
	Comment   *string    `json:"comment,omitempty"`
}

func (r CreateReviewRequest) ToInput(actor user.Actor) commands.SubmitReviewInput {
	userID := actor.ID
	if r.UserID != nil {
		userID = *r.UserID
	}
	return commands.SubmitReviewInput{
		UserID:    userID,
		HotelID:   r.HotelID,
		BookingID: r.BookingID,
		Rating:    *r.Rating,
		Comment:   r.Comment,
	}
}

type UpdateReviewRequest struct {
	Rating  *float64 `json:"rating,omitempty"`
	Comment *string  `json:"comment,omitempty"`
	Status  *string  `json:"status,omitempty"`
}

func (r UpdateReviewRequest) ToInput() commands.EditReviewInput {
	return commands.EditReviewInput{
		Rating:  r.Rating,
		Comment: r.Comment,
		Status:  r.Status,
	}
}

// Rating stays raw so that malformed values are reported by the query layer.
type ReviewListQuery struct {
	HotelID   string `form:"hotel_id"`
	UserID    string `form:"user_id"`
	BookingID string `form:"booking_id"`
	Status    string `form:"status"`
	Rating    string `form:"rating"`
	Limit     string `form:"limit"`
}

func (q ReviewListQuery) ToFilter() (queries.ReviewFilter, error) {
	var (
		f   queries.ReviewFilter
		err error
	)
	if f.HotelID, err = optionalID(q.HotelID); err != nil {
		return f, err
	}
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
	f.Rating = optionalString(q.Rating)
	return f, nil
}
