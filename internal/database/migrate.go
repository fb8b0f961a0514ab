package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate creates the schema if it is missing. Calling it on an up-to-date
// database is a no-op; tables left behind by something else make it fail.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	return withMigrator(ctx, db, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return nil
	})
}

// Down drops every table Migrate created.
func Down(ctx context.Context, db *sqlx.DB) error {
	return withMigrator(ctx, db, func(m *migrate.Migrate) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to revert migrations: %w", err)
		}
		return nil
	})
}

// Version reports the applied schema version and whether it is dirty.
func Version(ctx context.Context, db *sqlx.DB) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := withMigrator(ctx, db, func(m *migrate.Migrate) error {
		var err error
		version, dirty, err = m.Version()
		return err
	})
	return version, dirty, err
}

// withMigrator never calls m.Close: the drivers close the *sql.DB they
// were handed, and db belongs to the caller.
func withMigrator(ctx context.Context, db *sqlx.DB, fn func(m *migrate.Migrate) error) error {
	var (
		dir        string
		driverName string
		driver     migratedb.Driver
	)

	switch db.DriverName() {
	case pgxDriverName:
		conn, err := db.Conn(ctx)
		if err != nil {
			return fmt.Errorf("failed to acquire migration connection: %w", err)
		}
		defer conn.Close()

		driver, err = pgmigrate.WithConnection(ctx, conn, &pgmigrate.Config{})
		if err != nil {
			return fmt.Errorf("failed to create database driver: %w", err)
		}
		dir, driverName = "migrations/postgres", "postgres"
	case sqliteDriverName:
		var err error
		driver, err = sqlitemigrate.WithInstance(db.DB, &sqlitemigrate.Config{})
		if err != nil {
			return fmt.Errorf("failed to create database driver: %w", err)
		}
		dir, driverName = "migrations/sqlite", "sqlite"
	default:
		return fmt.Errorf("no migrations for driver %q", db.DriverName())
	}

	sourceDriver, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, driverName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	return fn(m)
}
