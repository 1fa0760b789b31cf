package review

import "github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

var (
	ErrInvalidRating       = errs.Define("rating must be between 1.0 and 5.0", errs.ErrInvalidInput)
	ErrInvalidRatingFormat = errs.Define("invalid rating format", errs.ErrInvalidInput)
	ErrRatingStep          = errs.Define("rating must be in 0.1 steps", errs.ErrInvalidInput)
	ErrCommentTooLong      = errs.Define("comment exceeds maximum length", errs.ErrInvalidInput)
	ErrInvalidStatus       = errs.Define("invalid review status", errs.ErrInvalidInput)
	ErrHotelMismatch       = errs.Define("booking does not belong to the given hotel", errs.ErrInvalidInput)
	ErrReviewDeleted       = errs.Define("review is deleted", errs.ErrInvalidInput)

	ErrReviewNotFound  = errs.Define("review not found", errs.ErrNotFound)
	ErrNotEditable     = errs.Define("only pending reviews can be edited", errs.ErrForbidden)
	ErrStatusReserved  = errs.Define("only administrators can change review status", errs.ErrForbidden)
	ErrNotBookingOwner = errs.Define("booking does not belong to the reviewer", errs.ErrForbidden)

	ErrStayNotFinished   = errs.Define("stay has not ended yet", errs.ErrNotEligible)
	ErrBookingNotSettled = errs.Define("only confirmed bookings can be reviewed", errs.ErrNotEligible)

	ErrReviewAlreadyExists = errs.Define("review already exists for this booking", errs.ErrConflict)
	ErrInvalidTransition   = errs.Define("review status transition not allowed", errs.ErrConflict)
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusDeleted   Status = "deleted"
)

var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusDeleted},
	StatusConfirmed: {StatusPending, StatusRejected, StatusDeleted},
	StatusRejected:  {StatusPending, StatusConfirmed, StatusDeleted},
	StatusDeleted:   {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
