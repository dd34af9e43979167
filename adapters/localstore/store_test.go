package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"edna/domain/core"
	"edna/domain/profile"
	"edna/domain/session"
	"edna/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "edna.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAttemptLifecycle(t *testing.T) {
	store := openTestStore(t)
	attempts := store.Attempts()
	ctx := context.Background()

	sess := session.New("user-1")
	require.NoError(t, attempts.Create(ctx, sess))

	got, err := attempts.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, session.PhaseOnboarding, got.State.Phase)

	next, err := got.Begin()
	require.NoError(t, err)
	next, err = next.EnterLayer()
	require.NoError(t, err)
	next, err = next.Answer("L1_Q1", "map_it")
	require.NoError(t, err)
	require.NoError(t, attempts.Update(ctx, next))

	got, err = attempts.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.State.QuestionIndex)
	assert.Equal(t, "map_it", got.Answers["L1_Q1"])
}

func TestAttemptNotFound(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Attempts().Get(ctx, "missing")
	assert.True(t, core.IsNotFoundError(err))

	err = store.Attempts().Update(ctx, session.New("user-1"))
	assert.True(t, core.IsNotFoundError(err))
}

func TestAttemptListByUser(t *testing.T) {
	store := openTestStore(t)
	attempts := store.Attempts()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, attempts.Create(ctx, session.New("user-1")))
	}
	require.NoError(t, attempts.Create(ctx, session.New("user-2")))

	mine, err := attempts.ListByUser(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	capped, err := attempts.ListByUser(ctx, "user-1", 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestResultLifecycle(t *testing.T) {
	store := openTestStore(t)
	results := store.Results()
	ctx := context.Background()

	res := profile.Score(profile.AnswerMap{"L1_Q1": "map_it"})
	row, err := models.NewStoredResult("attempt-1", "user-1", res)
	require.NoError(t, err)
	require.NoError(t, results.Save(ctx, row))

	got, err := results.GetByAttempt(ctx, "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, row.ID, got.ID)
	assert.Equal(t, row.CoreType, got.CoreType)
	assert.Equal(t, row.PayloadJSON, got.PayloadJSON)

	back, err := got.Result()
	require.NoError(t, err)
	assert.Equal(t, res.CoreIdentity.Type, back.CoreIdentity.Type)

	replacement := got
	replacement.CoreType = "alchemist"
	require.NoError(t, results.Replace(ctx, replacement))

	got, err = results.GetByAttempt(ctx, "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, "alchemist", got.CoreType)
}

func TestResultNotFound(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Results().GetByAttempt(ctx, "missing")
	assert.True(t, core.IsNotFoundError(err))

	err = store.Results().Replace(ctx, models.StoredResult{ID: "missing"})
	assert.True(t, core.IsNotFoundError(err))
}

func TestResultListAll(t *testing.T) {
	store := openTestStore(t)
	results := store.Results()
	ctx := context.Background()

	for i, user := range []core.UserID{"user-1", "user-1", "user-2"} {
		row, err := models.NewStoredResult(core.AttemptID("attempt-"+user.String()+string(rune('a'+i))), user, profile.Score(nil))
		require.NoError(t, err)
		require.NoError(t, results.Save(ctx, row))
	}

	all, err := results.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := results.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestFlags(t *testing.T) {
	store := openTestStore(t)
	flags := store.Flags()
	ctx := context.Background()

	_, found, err := flags.Get(ctx, "onboarding_seen:user-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, flags.Set(ctx, "onboarding_seen:user-1", "true"))
	value, found, err := flags.Get(ctx, "onboarding_seen:user-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)

	// Upsert overwrites.
	require.NoError(t, flags.Set(ctx, "onboarding_seen:user-1", "false"))
	value, _, err = flags.Get(ctx, "onboarding_seen:user-1")
	require.NoError(t, err)
	assert.Equal(t, "false", value)
}
