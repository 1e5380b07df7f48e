package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_ReadDirAndIsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img", "Arpin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "Arpin", "a.jpg"), []byte("x"), 0o644))

	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, "local", store.Backend())
	imgDir := path.Join(store.Root(), "img")

	ok, err := store.IsDir(ctx, imgDir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsDir(ctx, path.Join(imgDir, "Arpin", "a.jpg"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.IsDir(ctx, path.Join(imgDir, "Arpin", "a.jpg", "sub"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.IsDir(ctx, path.Join(imgDir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	entries, err := store.ReadDir(ctx, imgDir)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "Arpin", IsDir: true}}, entries)

	_, err = store.ReadDir(ctx, path.Join(imgDir, "missing"))
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestObjectPrefix(t *testing.T) {
	assert.Equal(t, "public/img/", objectPrefix("public/img"))
	assert.Equal(t, "public/img/", objectPrefix("/public/img/"))
	assert.Equal(t, "", objectPrefix("/"))
}
