package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

const IdempotencyTTL = 24 * time.Hour

const (
	endpointCreateBooking = "POST /api/bookings"
	endpointPay           = "POST /api/payments"
)

type idempotencyRequest struct {
	key      uuid.UUID
	userID   uuid.UUID
	endpoint string
	hash     string
}

// newIdempotencyRequest returns nil when no key was supplied.
func newIdempotencyRequest(key *uuid.UUID, userID uuid.UUID, endpoint string, body any) (*idempotencyRequest, error) {
	if key == nil {
		return nil, nil
	}
	hash, err := requestHash(body)
	if err != nil {
		return nil, err
	}
	return &idempotencyRequest{key: *key, userID: userID, endpoint: endpoint, hash: hash}, nil
}

func requestHash(body any) (string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// beginIdempotent claims req inside tx. It returns the earlier result id when
// the same request already completed; nil means the caller must run the operation.
func beginIdempotent(ctx context.Context, tx shared.Tx, req *idempotencyRequest, now time.Time) (*uuid.UUID, error) {
	if req == nil {
		return nil, nil
	}

	expiresAt := now.Add(IdempotencyTTL)
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), req.key, req.userID, req.endpoint, req.hash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	rec, err := tx.Reads().IdempotencyByKey(ctx, req.key, req.userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// purged between insert and read
			return nil, ErrIdempotencyInFlight
		}
		return nil, err
	}

	if !rec.ExpiresAt.After(now) {
		claimed, cerr := tx.Idempotency().ClaimExpired(ctx, tx.DB(), req.key, req.userID, req.endpoint, req.hash, expiresAt)
		if cerr != nil {
			return nil, cerr
		}
		if claimed {
			return nil, nil
		}
		return nil, ErrIdempotencyInFlight
	}

	if rec.Endpoint != req.endpoint || rec.RequestHash != req.hash {
		return nil, ErrIdempotencyKeyReused
	}
	if rec.Status == shared.IdempotencyStatusCompleted && rec.ResultID != nil {
		return rec.ResultID, nil
	}
	return nil, ErrIdempotencyInFlight
}

func completeIdempotent(ctx context.Context, tx shared.Tx, req *idempotencyRequest, resultID uuid.UUID) error {
	if req == nil {
		return nil
	}
	return tx.Idempotency().Complete(ctx, tx.DB(), req.key, req.userID, resultID)
}
