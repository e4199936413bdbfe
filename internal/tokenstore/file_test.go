package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens")

	store, err := NewFileStore(path, "hunter2")
	require.NoError(t, err)

	access, err := store.Access(ctx)
	require.NoError(t, err)
	assert.Empty(t, access, "empty store should yield no access token")

	require.NoError(t, store.Save(ctx, "acc-1", "ref-1"))

	access, err = store.Access(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", access)

	refresh, err := store.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", refresh)
}

func TestFileStoreClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens")

	store, err := NewFileStore(path, "hunter2")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "acc", "ref"))

	require.NoError(t, store.Clear(ctx))
	// Clearing an already-empty store must not fail.
	require.NoError(t, store.Clear(ctx))

	access, err := store.Access(ctx)
	require.NoError(t, err)
	assert.Empty(t, access)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens")

	store, err := NewFileStore(path, "correct")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "acc", "ref"))

	other, err := NewFileStore(path, "wrong")
	require.NoError(t, err)
	_, err = other.Access(ctx)
	assert.Error(t, err)
}

func TestFileStoreFileIsNotPlaintext(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens")

	store, err := NewFileStore(path, "hunter2")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "very-secret-access-token", "ref"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "very-secret-access-token")
}

func TestMemoryStoreFailSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.FailSave = os.ErrPermission

	assert.Error(t, store.Save(ctx, "a", "r"))

	access, _ := store.Access(ctx)
	assert.Empty(t, access)

	// Failure is one-shot; the next save succeeds.
	require.NoError(t, store.Save(ctx, "a", "r"))
	access, _ = store.Access(ctx)
	assert.Equal(t, "a", access)
}
