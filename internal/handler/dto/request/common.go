package request

import (
	"strconv"
	"strings"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidID    = errs.Define("invalid id", errs.ErrInvalidInput)
	ErrInvalidLimit = errs.Define("limit must be a positive integer", errs.ErrInvalidInput)
)

func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// optionalID treats an absent query value as no filter.
func optionalID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := ParseID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// zero lets the query layer apply its default
func parseLimit(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}
