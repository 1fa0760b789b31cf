// Bindings for queries/users.sql.

package generated

import (
	"context"

	"github.com/google/uuid"
)

const userExists = `-- name: UserExists :one
SELECT EXISTS (
    SELECT 1 FROM users WHERE id = $1 AND is_active = true
)
`

func (q *Queries) UserExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	row := db.QueryRow(ctx, userExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
