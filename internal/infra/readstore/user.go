package readstore

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	sqlc "github.com/B1gB4dB4ng/HotelApp/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	UserExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

// Exists reports whether an active user with id is registered.
func (r *UserReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.UserExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return ok, nil
}
