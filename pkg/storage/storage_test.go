package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads", 0)
	require.NoError(t, err)

	saved, err := store.Save("defects", "photo.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(saved.StoredName, "defects/"))
	assert.True(t, strings.HasSuffix(saved.StoredName, ".jpg"))
	assert.Equal(t, "/uploads/"+saved.StoredName, saved.URL)
	assert.Equal(t, int64(len("image-bytes")), saved.Size)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(saved.StoredName)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Delete(saved.StoredName))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(saved.StoredName)))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 4)
	require.NoError(t, err)

	_, err = store.Save("defects", "big.bin", strings.NewReader("too large"))
	assert.Error(t, err)
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 0)
	require.NoError(t, err)

	assert.NoError(t, store.Delete("defects/does-not-exist.jpg"))
}

func TestDeleteRejectsPathTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 0)
	require.NoError(t, err)

	assert.Error(t, store.Delete("../outside.txt"))
}

func TestSanitizeSegment(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", 0)
	require.NoError(t, err)

	saved, err := store.Save("../Weird Dir!", "doc.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(saved.StoredName, "weirddir/"))
}
