package user

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
)

var (
	ErrInvalidRole = errs.Define("invalid role", errs.ErrInvalidInput)
	ErrNotOwner    = errs.Define("actor does not own the resource", errs.ErrForbidden)
	ErrNotAdmin    = errs.Define("operation requires a privileged actor", errs.ErrForbidden)

	ErrUserNotFound = errs.Define("user not found", errs.ErrNotFound)
)
