//go:build unit

package repository_test

import (
	"context"
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func assertRepoErr(t *testing.T, err error, expectedError bool, kind infra.RepositoryErrorKind) {
	t.Helper()
	if !expectedError {
		assert.NoError(t, err)
		return
	}
	require.Error(t, err)
	if kind != "" {
		assert.True(t, infra.IsKind(err, kind), "expected kind [%v] but got [%T] (%v)", kind, err, err)
	}
}
