// Package databasetest provides migrated throwaway databases for tests.
package databasetest

import (
	"context"
	"os"
	"testing"

	"github.com/fekuna/omnipos-storeorders/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns a migrated in-memory sqlite database closed at test end.
func NewSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, &database.Config{
		Driver: database.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(ctx, db))
	return db
}

// NewPostgres connects using the TEST_POSTGRES_* variables and migrates
// a clean schema. The test is skipped when TEST_POSTGRES_HOST is unset.
func NewPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	host := os.Getenv("TEST_POSTGRES_HOST")
	if host == "" {
		t.Skip("TEST_POSTGRES_HOST not set, skipping postgres test")
	}

	ctx := context.Background()
	db, err := database.Open(ctx, &database.Config{
		Driver:   database.DriverPostgres,
		Host:     host,
		Port:     envOr("TEST_POSTGRES_PORT", "5432"),
		User:     envOr("TEST_POSTGRES_USER", "postgres"),
		Password: envOr("TEST_POSTGRES_PASSWORD", "postgres"),
		DBName:   envOr("TEST_POSTGRES_DB", "store_orders_test"),
		SSLMode:  "disable",
	})
	require.NoError(t, err)

	require.NoError(t, database.Down(ctx, db))
	require.NoError(t, database.Migrate(ctx, db))
	t.Cleanup(func() {
		_ = database.Down(ctx, db)
		_ = db.Close()
	})
	return db
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
