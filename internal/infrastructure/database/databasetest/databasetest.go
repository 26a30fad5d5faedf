// Package databasetest provides a migrated Postgres pool for repository
// integration tests. Tests are skipped unless TEST_POSTGRES_DSN is set.
package databasetest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/database"
)

const EnvDSN = "TEST_POSTGRES_DSN"

// Pool migrates the test database, empties every table and returns a pool
// closed at the end of the test.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s not set; skipping Postgres integration test", EnvDSN)
	}
	require.NoError(t, database.MigrateUp(dsn))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE users, partnerships, partner_invitations CASCADE`)
	require.NoError(t, err)
	return pool
}

// CreateUser inserts a bare account and returns its id.
func CreateUser(t *testing.T, pool *pgxpool.Pool, username string) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (username, email, password_hash, display_name, created_at, updated_at)
		VALUES ($1, $1 || '@example.com', 'x', $1, now(), now())
		RETURNING id::text
	`, username).Scan(&id)
	require.NoError(t, err)
	return id
}
