package app

import (
	"context"
	"testing"
	"time"

	"edna/domain/core"
	"edna/domain/profile"
	"edna/domain/session"
	"edna/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedAttempt(t *testing.T, attempts *memAttempts, id core.AttemptID, answers profile.AnswerMap) session.Session {
	t.Helper()
	sess := session.Session{
		ID:      id,
		UserID:  core.UserID("user-" + id.String()),
		Answers: answers,
	}
	require.NoError(t, attempts.Create(context.Background(), sess))
	return sess
}

func storedResultFor(t *testing.T, results *memResults, sess session.Session) models.StoredResult {
	t.Helper()
	row, err := models.NewStoredResult(sess.ID, sess.UserID, profile.Score(sess.Answers))
	require.NoError(t, err)
	require.NoError(t, results.Save(context.Background(), row))
	return row
}

func TestRescoreUnchanged(t *testing.T) {
	attempts := newMemAttempts()
	results := &memResults{}
	ctx := context.Background()

	sess := storedAttempt(t, attempts, "a1", profile.AnswerMap{"L1_Q1": "map_it"})
	storedResultFor(t, results, sess)

	svc := NewRescoreService(attempts, results, 4)
	report, err := svc.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, Report{Total: 1, Unchanged: 1}, report)
}

func TestRescoreUpdatesStalePayload(t *testing.T) {
	attempts := newMemAttempts()
	results := &memResults{}
	ctx := context.Background()

	sess := storedAttempt(t, attempts, "a1", profile.AnswerMap{"L1_Q1": "map_it"})
	row := storedResultFor(t, results, sess)

	// Simulate a result scored under an older bank by storing a payload
	// computed from different answers.
	stale, err := models.NewStoredResult(sess.ID, sess.UserID, profile.Score(nil))
	require.NoError(t, err)
	stale.ID = row.ID
	stale.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, results.Replace(ctx, stale))

	svc := NewRescoreService(attempts, results, 4)
	report, err := svc.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, Report{Total: 1, Updated: 1}, report)

	replaced, err := results.GetByAttempt(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, replaced.ID, "row identity must survive the rescore")
	assert.Equal(t, stale.CreatedAt, replaced.CreatedAt)
	assert.Equal(t, row.PayloadJSON, replaced.PayloadJSON)
}

func TestRescoreMissingAttempt(t *testing.T) {
	attempts := newMemAttempts()
	results := &memResults{}
	ctx := context.Background()

	orphan, err := models.NewStoredResult("gone", "user-gone", profile.Score(nil))
	require.NoError(t, err)
	require.NoError(t, results.Save(ctx, orphan))

	svc := NewRescoreService(attempts, results, 4)
	report, err := svc.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, Report{Total: 1, Failed: 1}, report)
}

func TestRescoreCancelled(t *testing.T) {
	attempts := newMemAttempts()
	results := &memResults{}

	sess := storedAttempt(t, attempts, "a1", profile.AnswerMap{"L1_Q1": "map_it"})
	storedResultFor(t, results, sess)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewRescoreService(attempts, results, 1)
	report, err := svc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Total)
}

func TestRescoreMixedCohort(t *testing.T) {
	attempts := newMemAttempts()
	results := &memResults{}
	ctx := context.Background()

	fresh := storedAttempt(t, attempts, "a1", profile.AnswerMap{"L1_Q1": "map_it"})
	storedResultFor(t, results, fresh)

	staleSess := storedAttempt(t, attempts, "a2", profile.AnswerMap{"L1_Q1": "flowing"})
	staleRow, err := models.NewStoredResult(staleSess.ID, staleSess.UserID, profile.Score(nil))
	require.NoError(t, err)
	require.NoError(t, results.Save(ctx, staleRow))

	orphan, err := models.NewStoredResult("gone", "user-gone", profile.Score(nil))
	require.NoError(t, err)
	require.NoError(t, results.Save(ctx, orphan))

	svc := NewRescoreService(attempts, results, 2)
	report, err := svc.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, Report{Total: 3, Unchanged: 1, Updated: 1, Failed: 1}, report)
}
