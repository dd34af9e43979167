package migration

import (
	"context"

	"edna/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{version: "1.0.0"}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createAttemptsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create quiz_attempts table")
	}
	if err := r.createResultsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create quiz_results table")
	}
	if err := r.createFlagsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create user_flags table")
	}
	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}
	return nil
}

func (r *MigrationRunner) createAttemptsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS quiz_attempts (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			phase VARCHAR(32) NOT NULL,
			layer INTEGER NOT NULL DEFAULT 0,
			question_index INTEGER NOT NULL DEFAULT 0,
			core_type VARCHAR(32) NOT NULL DEFAULT '',
			answers JSONB NOT NULL DEFAULT '{}',
			started_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createResultsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS quiz_results (
			id UUID PRIMARY KEY,
			attempt_id UUID NOT NULL REFERENCES quiz_attempts(id),
			user_id VARCHAR(255) NOT NULL,
			core_type VARCHAR(32) NOT NULL,
			subtype VARCHAR(64) NOT NULL,
			mirror_score INTEGER NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (attempt_id)
		)
	`)
	return err
}

func (r *MigrationRunner) createFlagsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user_flags (
			key VARCHAR(255) PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_quiz_attempts_user ON quiz_attempts(user_id, updated_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_results_core_type ON quiz_results(core_type)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
