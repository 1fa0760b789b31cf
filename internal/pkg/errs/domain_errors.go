package errs

import "errors"

// Error taxonomy shared by every use case. Domain errors are marked with one
// of these so that the HTTP layer can map them without knowing the domain.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotEligible  = errors.New("not eligible")
)

// Kind returns the taxonomy name of err, or "" when err carries no mark.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrNotFound):
		return "NotFound"
	case Is(err, ErrForbidden):
		return "Forbidden"
	case Is(err, ErrConflict):
		return "Conflict"
	case Is(err, ErrNotEligible):
		return "NotEligible"
	case Is(err, ErrInvalidInput):
		return "InvalidInput"
	default:
		return ""
	}
}

// Define creates a domain error marked with a taxonomy sentinel.
func Define(msg string, kind error) error {
	return Mark(New(msg), kind)
}
