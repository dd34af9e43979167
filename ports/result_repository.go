package ports

import (
	"context"

	"edna/domain/core"
	"edna/models"
)

// ResultRepository defines storage for scored results
type ResultRepository interface {
	// Save persists a scored result
	Save(ctx context.Context, r models.StoredResult) error

	// GetByAttempt retrieves the result for one attempt
	GetByAttempt(ctx context.Context, attemptID core.AttemptID) (models.StoredResult, error)

	// ListByUser returns a user's results, newest first
	ListByUser(ctx context.Context, userID core.UserID) ([]models.StoredResult, error)

	// ListAll returns every stored result; used by cohort analytics and
	// batch rescore
	ListAll(ctx context.Context) ([]models.StoredResult, error)

	// Replace overwrites the payload of an existing result row
	Replace(ctx context.Context, r models.StoredResult) error
}
