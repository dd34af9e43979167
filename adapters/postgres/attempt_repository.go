package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"edna/domain/core"
	"edna/domain/session"
	"edna/models"
	"edna/ports"

	"github.com/jmoiron/sqlx"
)

// attemptRepository implements the AttemptRepository interface
type attemptRepository struct {
	db *sqlx.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *sqlx.DB) ports.AttemptRepository {
	return &attemptRepository{db: db}
}

// Create inserts a new attempt row
func (r *attemptRepository) Create(ctx context.Context, s session.Session) error {
	row, err := models.AttemptFromSession(s)
	if err != nil {
		return fmt.Errorf("failed to encode attempt: %w", err)
	}

	query := `INSERT INTO quiz_attempts (
		id, user_id, phase, layer, question_index, core_type, answers, started_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.UserID, row.Phase, row.Layer, row.QuestionIndex,
		row.CoreType, row.AnswersJSON, row.StartedAt, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// Get retrieves an attempt by its ID
func (r *attemptRepository) Get(ctx context.Context, id core.AttemptID) (session.Session, error) {
	query := `SELECT id, user_id, phase, layer, question_index, core_type, answers, started_at, updated_at
		FROM quiz_attempts WHERE id = $1`

	var row models.QuizAttempt
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&row.ID, &row.UserID, &row.Phase, &row.Layer, &row.QuestionIndex,
		&row.CoreType, &row.AnswersJSON, &row.StartedAt, &row.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return session.Session{}, core.NewNotFoundError("attempt", id.String())
		}
		return session.Session{}, fmt.Errorf("failed to get attempt: %w", err)
	}
	return row.Session()
}

// Update overwrites the stored attempt with the given session value
func (r *attemptRepository) Update(ctx context.Context, s session.Session) error {
	row, err := models.AttemptFromSession(s)
	if err != nil {
		return fmt.Errorf("failed to encode attempt: %w", err)
	}

	query := `UPDATE quiz_attempts SET
		phase = $2, layer = $3, question_index = $4, core_type = $5, answers = $6, updated_at = $7
	WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		row.ID, row.Phase, row.Layer, row.QuestionIndex, row.CoreType, row.AnswersJSON, row.UpdatedAt,
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
func (r *attemptRepository) ListByUser(ctx context.Context, userID core.UserID, limit int) ([]session.Session, error) {
	query := `SELECT id, user_id, phase, layer, question_index, core_type, answers, started_at, updated_at
		FROM quiz_attempts
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var row models.QuizAttempt
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.Phase, &row.Layer, &row.QuestionIndex,
			&row.CoreType, &row.AnswersJSON, &row.StartedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		s, err := row.Session()
		if err != nil {
			return nil, fmt.Errorf("failed to decode attempt %s: %w", row.ID, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
