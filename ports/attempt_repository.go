package ports

import (
	"context"

	"edna/domain/core"
	"edna/domain/session"
)

// AttemptRepository defines storage for in-flight and finished quiz sessions
type AttemptRepository interface {
	// Create persists a freshly started session
	Create(ctx context.Context, s session.Session) error

	// Get retrieves a session by attempt ID
	Get(ctx context.Context, id core.AttemptID) (session.Session, error)

	// Update overwrites the stored session with the given value
	Update(ctx context.Context, s session.Session) error

	// ListByUser returns a user's sessions, newest first, up to limit
	ListByUser(ctx context.Context, userID core.UserID, limit int) ([]session.Session, error)
}
