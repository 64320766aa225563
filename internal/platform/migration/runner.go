// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Package migration applies versioned SQL migrations at process startup.
//
// The dashboard API refuses to serve traffic against a schema it does not
// recognize, so RunUp is called from main before the HTTP server binds.
// Migrations live as paired .up.sql/.down.sql files under data/migrations
// and are executed through golang-migrate.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers the "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp brings the content-store schema up to the latest version.
// It accepts any libpq-style DSN (postgres:// or postgresql://) and the
// filesystem path holding the migration files. A dirty schema aborts
// startup; golang-migrate cannot safely decide which half of a failed
// migration ran.
func RunUp(dsn string, dir string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+dir, pgx5URL(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer closeMigrator(migrator, logger)

	migrator.Log = &slogBridge{logger: logger}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration: schema is dirty at version %d, resolve manually before restarting", version)
	}

	logger.Info("migration_started", slog.Int("current_version", int(version)))

	switch err := migrator.Up(); {
	case err == nil:
		applied, _, _ := migrator.Version()
		logger.Info("migration_applied",
			slog.Int("from_version", int(version)),
			slog.Int("to_version", int(applied)),
		)
		return nil
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("migration_schema_current")
		return nil
	default:
		return fmt.Errorf("migration: up failed: %w", err)
	}
}

func closeMigrator(migrator *migrate.Migrate, logger *slog.Logger) {
	srcErr, dbErr := migrator.Close()
	if srcErr != nil {
		logger.Error("migration_source_close_failed", slog.Any("error", srcErr))
	}
	if dbErr != nil {
		logger.Error("migration_db_close_failed", slog.Any("error", dbErr))
	}
}

// pgx5URL rewrites a postgres DSN to the pgx5:// scheme that the
// golang-migrate pgx/v5 driver registers under.
func pgx5URL(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// slogBridge satisfies migrate.Logger on top of slog.
type slogBridge struct {
	logger  *slog.Logger
	verbose bool
}

func (b *slogBridge) Printf(format string, args ...any) {
	b.logger.Debug(fmt.Sprintf(format, args...))
}

func (b *slogBridge) Verbose() bool {
	return b.verbose
}
