package common

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
)

var ErrInvalidActiveState = errs.Define("invalid active state", errs.ErrInvalidInput)

// ActiveState is the soft-delete flag shared by rooms and bookings.
type ActiveState string

const (
	ActiveStateActive   ActiveState = "active"
	ActiveStateInactive ActiveState = "inactive"
	ActiveStateDeleted  ActiveState = "deleted"
)

func (s ActiveState) String() string {
	return string(s)
}

func (s ActiveState) IsValid() bool {
	switch s {
	case ActiveStateActive, ActiveStateInactive, ActiveStateDeleted:
		return true
	default:
		return false
	}
}

func ParseActiveState(s string) (ActiveState, error) {
	state := ActiveState(s)
	if !state.IsValid() {
		return "", ErrInvalidActiveState
	}
	return state, nil
}
