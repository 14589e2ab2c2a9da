package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreOpen(t *testing.T) {
	dir := t.TempDir()
	content := []byte("hello dataset bytes")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), content, 0o644))

	store := NewLocalStore(dir)
	blob, err := store.Open(context.Background(), "blob.bin")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(len(content)), blob.Size())

	data, err := ReadAll(context.Background(), blob)
	require.NoError(t, err)
	assert.Equal(t, content, data)

	p := make([]byte, 5)
	n, err := blob.ReadAt(p, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("datas"), p)
}

func TestLocalStoreMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "missing.bin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound) || os.IsNotExist(err))
}

func TestLocalStoreBareName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abs.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	// Empty root resolves names as given, including absolute paths.
	store := NewLocalStore("")
	blob, err := store.Open(context.Background(), path)
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(3), blob.Size())
}
