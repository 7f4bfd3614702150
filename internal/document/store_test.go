package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_ReadWrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	store := NewFileStore()
	text, err := store.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "old", text)

	require.NoError(t, store.Write(ctx, path, "new"))

	text, err = store.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "new", text)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_ReadMissing(t *testing.T) {
	_, err := NewFileStore().Read(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "notes.md")
	err := NewFileStore().Write(ctx, path, "text")
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(map[string]string{"a.md": "hello"})

	text, err := store.Read(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = store.Read(ctx, "b.md")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, store.Write(ctx, "a.md", "bye"))
	text, _ = store.Read(ctx, "a.md")
	assert.Equal(t, "bye", text)
	assert.Equal(t, 1, store.Writes())

	store.WriteErr = errors.New("disk full")
	assert.EqualError(t, store.Write(ctx, "a.md", "lost"), "disk full")
	text, _ = store.Read(ctx, "a.md")
	assert.Equal(t, "bye", text)
	assert.Equal(t, 1, store.Writes())
}
