// Package localstore is the offline storage adapter: a single sqlite file
// implementing the same ports as the Postgres adapters so the CLI and the
// server can run with no database and no network. The assessment stays
// fully usable offline; the local result is the canonical one.
package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"edna/domain/core"
	"edna/domain/session"
	"edna/models"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store bundles the sqlite-backed repositories
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the sqlite file and ensures the schema exists
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping local store: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quiz_attempts (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			phase TEXT NOT NULL,
			layer INTEGER NOT NULL DEFAULT 0,
			question_index INTEGER NOT NULL DEFAULT 0,
			core_type TEXT NOT NULL DEFAULT '',
			answers TEXT NOT NULL DEFAULT '{}',
			started_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_results (
			id TEXT PRIMARY KEY,
			attempt_id TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			core_type TEXT NOT NULL,
			subtype TEXT NOT NULL,
			mirror_score INTEGER NOT NULL,
			payload TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_flags (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create local schema: %w", err)
		}
	}
	return nil
}

// Attempts narrows the store to the attempt repository port
func (s *Store) Attempts() *AttemptStore {
	return &AttemptStore{store: s}
}

// Results narrows the store to the result repository port
func (s *Store) Results() *ResultStore {
	return &ResultStore{store: s}
}

// AttemptStore is the attempt-repository view over the sqlite file
type AttemptStore struct {
	store *Store
}

// Create inserts a new attempt row
func (s *AttemptStore) Create(ctx context.Context, sess session.Session) error {
	row, err := models.AttemptFromSession(sess)
	if err != nil {
		return fmt.Errorf("failed to encode attempt: %w", err)
	}
	_, err = s.store.db.ExecContext(ctx, `INSERT INTO quiz_attempts
		(id, user_id, phase, layer, question_index, core_type, answers, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.UserID, row.Phase, row.Layer, row.QuestionIndex,
		row.CoreType, string(row.AnswersJSON), row.StartedAt, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// Get retrieves an attempt by its ID
func (s *AttemptStore) Get(ctx context.Context, id core.AttemptID) (session.Session, error) {
	var row models.QuizAttempt
	var answers string
	err := s.store.db.QueryRowContext(ctx, `SELECT id, user_id, phase, layer, question_index, core_type, answers, started_at, updated_at
		FROM quiz_attempts WHERE id = ?`, id.String()).Scan(
		&row.ID, &row.UserID, &row.Phase, &row.Layer, &row.QuestionIndex,
		&row.CoreType, &answers, &row.StartedAt, &row.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return session.Session{}, core.NewNotFoundError("attempt", id.String())
		}
		return session.Session{}, fmt.Errorf("failed to get attempt: %w", err)
	}
	row.AnswersJSON = []byte(answers)
	return row.Session()
}

// Update overwrites the stored attempt
func (s *AttemptStore) Update(ctx context.Context, sess session.Session) error {
	row, err := models.AttemptFromSession(sess)
	if err != nil {
		return fmt.Errorf("failed to encode attempt: %w", err)
	}
	result, err := s.store.db.ExecContext(ctx, `UPDATE quiz_attempts SET
		phase = ?, layer = ?, question_index = ?, core_type = ?, answers = ?, updated_at = ?
		WHERE id = ?`,
		row.Phase, row.Layer, row.QuestionIndex, row.CoreType, string(row.AnswersJSON), row.UpdatedAt, row.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attempt: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return core.NewNotFoundError("attempt", row.ID)
	}
	return nil
}

// ListByUser returns a user's attempts, newest first
func (s *AttemptStore) ListByUser(ctx context.Context, userID core.UserID, limit int) ([]session.Session, error) {
	rows, err := s.store.db.QueryContext(ctx, `SELECT id, user_id, phase, layer, question_index, core_type, answers, started_at, updated_at
		FROM quiz_attempts WHERE user_id = ? ORDER BY updated_at DESC LIMIT ?`, userID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var row models.QuizAttempt
		var answers string
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.Phase, &row.Layer, &row.QuestionIndex,
			&row.CoreType, &answers, &row.StartedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		row.AnswersJSON = []byte(answers)
		sess, err := row.Session()
		if err != nil {
			return nil, fmt.Errorf("failed to decode attempt %s: %w", row.ID, err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// ResultStore is the result-repository view over the sqlite file
type ResultStore struct {
	store *Store
}

// Save persists a scored result
func (s *ResultStore) Save(ctx context.Context, res models.StoredResult) error {
	_, err := s.store.db.ExecContext(ctx, `INSERT INTO quiz_results
		(id, attempt_id, user_id, core_type, subtype, mirror_score, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.AttemptID, res.UserID, res.CoreType, res.Subtype,
		res.MirrorScore, string(res.PayloadJSON), res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// GetByAttempt retrieves the result for one attempt
func (s *ResultStore) GetByAttempt(ctx context.Context, attemptID core.AttemptID) (models.StoredResult, error) {
	var res models.StoredResult
	var payload string
	err := s.store.db.QueryRowContext(ctx, `SELECT id, attempt_id, user_id, core_type, subtype, mirror_score, payload, created_at
		FROM quiz_results WHERE attempt_id = ?`, attemptID.String()).Scan(
		&res.ID, &res.AttemptID, &res.UserID, &res.CoreType, &res.Subtype,
		&res.MirrorScore, &payload, &res.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.StoredResult{}, core.NewNotFoundError("result", attemptID.String())
		}
		return models.StoredResult{}, fmt.Errorf("failed to get result: %w", err)
	}
	res.PayloadJSON = []byte(payload)
	return res, nil
}

// ListByUser returns a user's results, newest first
func (s *ResultStore) ListByUser(ctx context.Context, userID core.UserID) ([]models.StoredResult, error) {
	return s.queryResults(ctx, `SELECT id, attempt_id, user_id, core_type, subtype, mirror_score, payload, created_at
		FROM quiz_results WHERE user_id = ? ORDER BY created_at DESC`, userID.String())
}

// ListAll returns every stored result
func (s *ResultStore) ListAll(ctx context.Context) ([]models.StoredResult, error) {
	return s.queryResults(ctx, `SELECT id, attempt_id, user_id, core_type, subtype, mirror_score, payload, created_at
		FROM quiz_results ORDER BY created_at DESC`)
}

// Replace overwrites the payload and denormalized columns of a result row
func (s *ResultStore) Replace(ctx context.Context, res models.StoredResult) error {
	result, err := s.store.db.ExecContext(ctx, `UPDATE quiz_results SET
		core_type = ?, subtype = ?, mirror_score = ?, payload = ? WHERE id = ?`,
		res.CoreType, res.Subtype, res.MirrorScore, string(res.PayloadJSON), res.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to replace result: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return core.NewNotFoundError("result", res.ID)
	}
	return nil
}

func (s *ResultStore) queryResults(ctx context.Context, query string, args ...interface{}) ([]models.StoredResult, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []models.StoredResult
	for rows.Next() {
		var res models.StoredResult
		var payload string
		if err := rows.Scan(
			&res.ID, &res.AttemptID, &res.UserID, &res.CoreType, &res.Subtype,
			&res.MirrorScore, &payload, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		res.PayloadJSON = []byte(payload)
		results = append(results, res)
	}
	return results, rows.Err()
}

// Flag get/set implements the KeyValueStore port

func (s *Store) GetFlag(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM user_flags WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get flag %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) SetFlag(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO user_flags (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set flag %s: %w", key, err)
	}
	return nil
}

// Flags adapts the store to the KeyValueStore port
func (s *Store) Flags() *FlagStore {
	return &FlagStore{store: s}
}

// FlagStore narrows Store to the KeyValueStore interface
type FlagStore struct {
	store *Store
}

func (f *FlagStore) Get(ctx context.Context, key string) (string, bool, error) {
	return f.store.GetFlag(ctx, key)
}

func (f *FlagStore) Set(ctx context.Context, key, value string) error {
	return f.store.SetFlag(ctx, key, value)
}
