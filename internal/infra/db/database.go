package db

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"rsvp-service/internal/pkg/config"
	"rsvp-service/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the migrator
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Connect builds the connection pool. The pool is the only shared mutable
// resource in the process; max connections comes from configuration.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}
	poolCfg.MaxConns = cfg.MaxConnections

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// Migrate applies the embedded schema migrations. golang-migrate takes a
// Postgres advisory lock, so concurrent instances are safe.
func Migrate(ctx context.Context, databaseURL string) error {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return errs.Wrap(err, "failed to open migration connection")
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			slog.Warn("failed to close migration connection", "error", closeErr)
		}
	}()

	if err := sqlDB.PingContext(ctx); err != nil {
		return errs.Wrap(err, "failed to ping database")
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return errs.Wrap(err, "failed to create migration driver")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errs.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errs.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errs.Wrap(err, "failed to apply migrations")
	}

	return nil
}
