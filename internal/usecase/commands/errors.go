package commands

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
)

var (
	ErrIdempotencyKeyReused = errs.Define("idempotency key was already used for a different request", errs.ErrConflict)
	ErrIdempotencyInFlight  = errs.Define("a request with this idempotency key is still in progress", errs.ErrConflict)
	ErrCorruptRecord        = errs.New("stored record violates domain constraints")
)

// translateRepoErr maps persistence kinds onto domain errors. notFound is
// returned for KindNotFound, conflict for unique and exclusion violations.
// Any other error passes through untouched.
func translateRepoErr(err error, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case conflict != nil && (infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindConflict)):
		return conflict
	default:
		return err
	}
}
