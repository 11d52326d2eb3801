package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestFileGetMissingKey(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "prefs.json"))

	_, err := store.Get("portfolio-theme")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileSetPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	first := NewFile(path)
	require.NoError(t, first.Set("portfolio-theme", "light"))

	second := NewFile(path)
	value, err := second.Get("portfolio-theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "1.0"`)
}

func TestFileCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFile(path)
	_, err := store.Get("portfolio-theme")

	var storageErr *apperrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "decode", storageErr.Op)

	// Writing repairs the document.
	require.NoError(t, store.Set("portfolio-theme", "dark"))
	value, err := store.Get("portfolio-theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	reloaded, err := NewFile(path).Get("portfolio-theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", reloaded)
}

func TestFileSetFailsWhenParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := NewFile(filepath.Join(blocker, "prefs.json"))
	err := store.Set("portfolio-theme", "dark")

	var storageErr *apperrors.StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	_, err := store.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("k", "v"))
	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}
