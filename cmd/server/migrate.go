package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/forgetting-curve/api/internal/api"
)

// slogGooseLogger forwards goose output to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// migrateUp applies all pending migrations at startup.
func migrateUp(db *sql.DB, migrationsDir string, logger *slog.Logger) error {
	goose.SetLogger(&slogGooseLogger{logger: logger.With("component", "migrations")})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied", "dir", migrationsDir)
	return nil
}

// newSchemaResetter returns the destructive reset used by the maintenance
// endpoint: roll every migration back, then apply them all again.
func newSchemaResetter(db *sql.DB, migrationsDir string, logger *slog.Logger) api.SchemaResetter {
	return func(ctx context.Context) error {
		logger.Warn("resetting database schema", "dir", migrationsDir)

		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("failed to set migration dialect: %w", err)
		}

		if err := goose.ResetContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to roll back migrations: %w", err)
		}

		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("failed to reapply migrations: %w", err)
		}

		logger.Info("database schema reset complete")
		return nil
	}
}
