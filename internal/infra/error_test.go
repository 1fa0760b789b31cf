//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "anything else", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
		{name: "nil error with kind", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kind...)
			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
		})
	}

	t.Run("pg error stays in the chain", func(t *testing.T) {
		err := infra.WrapRepoErr("op failed", &pgconn.PgError{Code: "40001"})
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "40001", pgErr.Code)
	})
}
