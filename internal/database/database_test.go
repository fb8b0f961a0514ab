package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-storeorders/internal/database"
	"github.com/fekuna/omnipos-storeorders/internal/database/databasetest"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var tables = []string{"stores", "products", "store_stocks", "orders", "order_items"}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := database.Open(context.Background(), &database.Config{Driver: "oracle"})
	require.Error(t, err)
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := database.Open(context.Background(), &database.Config{Driver: database.DriverSQLite})
	require.Error(t, err)
}

func TestMigrateCreatesTables(t *testing.T) {
	db := databasetest.NewSQLite(t)
	ctx := context.Background()

	for _, table := range tables {
		var count int
		err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table)
		require.NoError(t, err, "table %s", table)
		require.Zero(t, count)
	}

	version, dirty, err := database.Version(ctx, db)
	require.NoError(t, err)
	require.EqualValues(t, 1, version)
	require.False(t, dirty)
}

func TestMigrateIsNoOpOnSecondCall(t *testing.T) {
	db := databasetest.NewSQLite(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO products (name) VALUES (?)", "Kept")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, db))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM products"))
	require.Equal(t, 1, count)
}

func TestMigrateRejectsForeignSchema(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, &database.Config{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, "CREATE TABLE stores (code TEXT PRIMARY KEY)")
	require.NoError(t, err)

	require.Error(t, database.Migrate(ctx, db))
}

func TestDownDropsTables(t *testing.T) {
	db := databasetest.NewSQLite(t)
	ctx := context.Background()

	require.NoError(t, database.Down(ctx, db))

	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM orders")
	require.Error(t, err)

	require.NoError(t, database.Migrate(ctx, db))
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM orders"))
}

func TestForeignKeysEnforced(t *testing.T) {
	db := databasetest.NewSQLite(t)

	_, err := db.ExecContext(context.Background(),
		"INSERT INTO store_stocks (store_id, product_id, quantity) VALUES (?, ?, ?)", 99, 99, 1)
	require.Error(t, err)
}

func TestInsertReturningID(t *testing.T) {
	db := databasetest.NewSQLite(t)
	ctx := context.Background()

	query := `INSERT INTO products (name) VALUES (:name) RETURNING id`
	first, err := database.InsertReturningID(ctx, db, query, map[string]interface{}{"name": "A"})
	require.NoError(t, err)
	second, err := database.InsertReturningID(ctx, db, query, map[string]interface{}{"name": "B"})
	require.NoError(t, err)

	require.Positive(t, first)
	require.Greater(t, second, first)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := databasetest.NewSQLite(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := database.WithTx(ctx, db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO products (name) VALUES (?)", "Ghost"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM products"))
	require.Zero(t, count)
}

func TestWithTxCommits(t *testing.T) {
	db := databasetest.NewSQLite(t)
	ctx := context.Background()

	err := database.WithTx(ctx, db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO products (name) VALUES (?)", "Real")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM products"))
	require.Equal(t, 1, count)
}
