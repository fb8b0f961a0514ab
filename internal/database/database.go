package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Registers the pure-Go "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	pgxDriverName    = "pgx"
	sqliteDriverName = "sqlite"
)

func init() {
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

type Config struct {
	Driver string

	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// Path is the sqlite database file, or ":memory:".
	Path string
}

// Open connects to the configured engine and verifies the connection.
// The caller owns the returned handle and must Close it.
func Open(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return openPostgres(ctx, cfg)
	case DriverSQLite:
		return openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(pgxDriverName, postgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return db, nil
}

// postgresDSN builds a keyword/value connection string with every value
// single-quoted, so a password may hold spaces or quotes or be empty.
func postgresDSN(cfg *Config) string {
	pairs := []struct{ key, value string }{
		{"host", cfg.Host},
		{"port", cfg.Port},
		{"user", cfg.User},
		{"password", cfg.Password},
		{"dbname", cfg.DBName},
		{"sslmode", cfg.SSLMode},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"="+quoteDSNValue(p.value))
	}
	return strings.Join(parts, " ")
}

var dsnValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(v string) string {
	return "'" + dsnValueEscaper.Replace(v) + "'"
}

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"

// sqliteDSN appends the connection pragmas, keeping any query string
// already present on path.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}

func openSQLite(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := sqlx.Open(sqliteDriverName, sqliteDSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// One connection: ":memory:" is per connection, and pragmas stay applied.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	var fk int
	if err := db.GetContext(ctx, &fk, "PRAGMA foreign_keys"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	if fk != 1 {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite foreign keys are not enabled")
	}
	return db, nil
}

// WithTx runs fn inside one transaction. Any error from fn rolls back
// everything fn wrote.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// InsertReturningID executes a named INSERT ... RETURNING id and yields the
// engine-assigned id. e may be a *sqlx.DB or a *sqlx.Tx.
func InsertReturningID(ctx context.Context, e sqlx.ExtContext, query string, arg interface{}) (int64, error) {
	bound, args, err := e.BindNamed(query, arg)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := e.QueryRowxContext(ctx, bound, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
