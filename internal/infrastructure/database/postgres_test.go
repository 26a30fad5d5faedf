package database

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	cases := map[string]string{
		"":                                     "",
		"  postgres://u:p@h:5432/db  ":         "postgres://u:p@h:5432/db",
		"postgresql+asyncpg://u:p@h:5432/db":   "postgresql://u:p@h:5432/db",
		"postgres+asyncpg://u:p@h/db":          "postgres://u:p@h/db",
		"postgresql+pgx://u@h/db?sslmode=off":  "postgresql://u@h/db?sslmode=off",
		"postgres+pgx://u@h/db":                "postgres://u@h/db",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDSN(in), in)
	}
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", migrateURL("postgres://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/db", migrateURL("postgresql+asyncpg://u@h/db"))
}

func TestMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFS, "migrations/*.down.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)
	assert.Equal(t, len(ups), len(downs))
}

func TestUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	name, ok := UniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "users_email_key", name)

	_, ok = UniqueViolation(errors.New("boom"))
	assert.False(t, ok)

	assert.True(t, ForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
}
