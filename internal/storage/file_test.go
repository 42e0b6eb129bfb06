package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Read(KeyTasks)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write(KeyTasks, []byte(`[{"id":"TASK-1"}]`)))

	b, ok, err := s.Read(KeyTasks)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"TASK-1"}]`, string(b))
}

func TestFileStore_DeleteRemovesFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(KeyTasks, []byte(`[]`)))
	require.NoError(t, s.Delete(KeyTasks))

	// Deleting has to remove the persisted representation, not leave an
	// empty value behind.
	_, statErr := os.Stat(filepath.Join(dir, "hris_ar_tasks.json"))
	assert.True(t, os.IsNotExist(statErr))

	_, ok, err := s.Read(KeyTasks)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	assert.NoError(t, s.Delete(KeyTasks))
}

func TestFileStore_WriteOverwrites(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(KeyPrefs, []byte(`{"a":1}`)))
	require.NoError(t, s.Write(KeyPrefs, []byte(`{"a":2}`)))

	b, ok, err := s.Read(KeyPrefs)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":2}`, string(b))
}

func TestFileStore_KeyPathSanitizesColons(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(KeyHistory, []byte(`[]`)))

	_, statErr := os.Stat(filepath.Join(dir, "hris_ar_history.json"))
	assert.NoError(t, statErr)
}

func TestMemStore_HasDistinguishesDeleteFromEmpty(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.Write(KeyTasks, []byte(`[]`)))
	assert.True(t, s.Has(KeyTasks))

	require.NoError(t, s.Delete(KeyTasks))
	assert.False(t, s.Has(KeyTasks))
}
