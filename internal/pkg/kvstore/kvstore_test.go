package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SetGetRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("employees", []byte(`[{"id":"1"}]`)))

	got, err := store.Get("employees")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))
}

func TestLocalStore_GetMissingKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("employees")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestLocalStore_SetOverwritesValue(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("employees_version", []byte("v0.9.0")))
	require.NoError(t, store.Set("employees_version", []byte("v1.0.0")))

	got, err := store.Get("employees_version")
	assert.NoError(t, err)
	assert.Equal(t, "v1.0.0", string(got))
}

func TestLocalStore_SetLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("authUser", []byte(`{"identity":"a@b.com"}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "authUser", entries[0].Name())
}

func TestLocalStore_DeleteIsIdempotent(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("authUser", []byte("{}")))
	assert.NoError(t, store.Delete("authUser"))
	assert.NoError(t, store.Delete("authUser"))

	exists, err := store.Exists("authUser")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStore_RejectsTraversalKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(filepath.Join(dir, "data"))
	require.NoError(t, err)

	assert.Error(t, store.Set("../escape", []byte("x")))
	_, err = store.Get("../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalStore_CreatesBaseDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
