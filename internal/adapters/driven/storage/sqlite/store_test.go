package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() }) //nolint:errcheck
	return store
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "owner_credentials", `{"accessToken":"abc"}`))

	value, found, err := store.Get(ctx, "owner_credentials")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"accessToken":"abc"}`, value)
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", "old"))
	require.NoError(t, store.Set(ctx, "k", "new"))

	value, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestRemoveAbsentKeyIsNotAnError(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Remove(context.Background(), "never-set"))
}

func TestMultiSetIsTransactional(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	pairs := map[string]string{
		"session_token": "abc",
		"refresh_token": "xyz",
	}
	require.NoError(t, store.MultiSet(ctx, pairs))

	got, err := store.MultiGet(ctx, []string{"session_token", "refresh_token", "missing"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "abc", got[0].Value)
	assert.Equal(t, "xyz", got[1].Value)
	assert.False(t, got[2].Found)
}

func TestMultiRemove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.MultiSet(ctx, map[string]string{"a": "1", "b": "2", "c": "3"}))
	require.NoError(t, store.MultiRemove(ctx, []string{"a", "c"}))

	_, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
	_, found, err = store.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestDataSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "owner_credentials", "record"))
	require.NoError(t, first.Close())

	// Reopening also re-runs migrations; applied versions must be skipped.
	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close() //nolint:errcheck

	value, found, err := second.Get(ctx, "owner_credentials")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "record", value)
}
