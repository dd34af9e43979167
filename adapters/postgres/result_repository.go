package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"edna/domain/core"
	"edna/models"
	"edna/ports"

	"github.com/jmoiron/sqlx"
)

// resultRepository implements the ResultRepository interface
type resultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *sqlx.DB) ports.ResultRepository {
	return &resultRepository{db: db}
}

const resultColumns = `id, attempt_id, user_id, core_type, subtype, mirror_score, payload, created_at`

// Save persists a scored result
func (r *resultRepository) Save(ctx context.Context, res models.StoredResult) error {
	query := `INSERT INTO quiz_results (` + resultColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.AttemptID, res.UserID, res.CoreType, res.Subtype,
		res.MirrorScore, res.PayloadJSON, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// GetByAttempt retrieves the result for one attempt
func (r *resultRepository) GetByAttempt(ctx context.Context, attemptID core.AttemptID) (models.StoredResult, error) {
	query := `SELECT ` + resultColumns + ` FROM quiz_results WHERE attempt_id = $1`

	var res models.StoredResult
	err := r.db.QueryRowContext(ctx, query, attemptID.String()).Scan(
		&res.ID, &res.AttemptID, &res.UserID, &res.CoreType, &res.Subtype,
		&res.MirrorScore, &res.PayloadJSON, &res.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.StoredResult{}, core.NewNotFoundError("result", attemptID.String())
		}
		return models.StoredResult{}, fmt.Errorf("failed to get result: %w", err)
	}
	return res, nil
}

// ListByUser returns a user's results, newest first
func (r *resultRepository) ListByUser(ctx context.Context, userID core.UserID) ([]models.StoredResult, error) {
	query := `SELECT ` + resultColumns + ` FROM quiz_results
		WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryResults(ctx, query, userID.String())
}

// ListAll returns every stored result
func (r *resultRepository) ListAll(ctx context.Context) ([]models.StoredResult, error) {
	query := `SELECT ` + resultColumns + ` FROM quiz_results ORDER BY created_at DESC`
	return r.queryResults(ctx, query)
}

// Replace overwrites the payload and denormalized columns of a result row
func (r *resultRepository) Replace(ctx context.Context, res models.StoredResult) error {
	query := `UPDATE quiz_results SET
		core_type = $2, subtype = $3, mirror_score = $4, payload = $5
	WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		res.ID, res.CoreType, res.Subtype, res.MirrorScore, res.PayloadJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to replace result: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return core.NewNotFoundError("result", res.ID)
	}
	return nil
}

func (r *resultRepository) queryResults(ctx context.Context, query string, args ...interface{}) ([]models.StoredResult, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []models.StoredResult
	for rows.Next() {
		var res models.StoredResult
		if err := rows.Scan(
			&res.ID, &res.AttemptID, &res.UserID, &res.CoreType, &res.Subtype,
			&res.MirrorScore, &res.PayloadJSON, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
