package room

import "github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

var ErrInvalidOccupancy = errs.Define("invalid occupancy state", errs.ErrInvalidInput)

// OccupancyState is a cache of booking activity. Availability decisions are
// always made from bookings, never from this value.
type OccupancyState string

const (
	OccupancyAvailable   OccupancyState = "available"
	OccupancyReserved    OccupancyState = "reserved"
	OccupancyUnavailable OccupancyState = "unavailable"
)

func (s OccupancyState) String() string {
	return string(s)
}

func (s OccupancyState) IsValid() bool {
	switch s {
	case OccupancyAvailable, OccupancyReserved, OccupancyUnavailable:
		return true
	default:
		return false
	}
}

func ParseOccupancy(s string) (OccupancyState, error) {
	state := OccupancyState(s)
	if !state.IsValid() {
		return "", ErrInvalidOccupancy
	}
	return state, nil
}

// ReleaseDecision is the outcome of checking one room during reconciliation.
type ReleaseDecision int

const (
	Release ReleaseDecision = iota
	SkipInactive
	SkipOccupied
	SkipAlreadyAvailable
)

func (d ReleaseDecision) String() string {
	switch d {
	case Release:
		return "release"
	case SkipInactive:
		return "skip_inactive"
	case SkipOccupied:
		return "skip_occupied"
	case SkipAlreadyAvailable:
		return "skip_already_available"
	default:
		return "unknown"
	}
}
