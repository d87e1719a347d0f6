package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-hrdesk/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := storage.NewLocalStore(dir)

	path, n, err := store.Save(context.Background(), "offer-letter.pdf", strings.NewReader("hello"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "offer-letter.pdf"), path)
	assert.Equal(t, int64(5), n)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalStore_Save_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewLocalStore(dir)

	path, _, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "passwd"), path)

	path, _, err = store.Save(context.Background(), `C:\Users\hr\id.png`, strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "id.png"), path)
}

func TestLocalStore_Save_RejectsEmptyName(t *testing.T) {
	store := storage.NewLocalStore(t.TempDir())

	for _, name := range []string{"", "  ", "/", "..", "dir/.."} {
		_, _, err := store.Save(context.Background(), name, strings.NewReader("x"))
		assert.ErrorIs(t, err, storage.ErrInvalidFileName, name)
	}
}

func TestLocalStore_Save_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := storage.NewLocalStore(t.TempDir()).Save(ctx, "a.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "Ravi_Kumar", storage.SafeFileName(" Ravi Kumar "))
	assert.Equal(t, "a_b_c", storage.SafeFileName("a/b\\c"))
	assert.Equal(t, "2024-03", storage.SafeFileName("2024-03"))
	assert.Equal(t, "unknown", storage.SafeFileName("  "))
}

func TestLocalStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewLocalStore(dir)

	path, _, err := store.Save(context.Background(), "contract.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(context.Background(), path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(context.Background(), path), "already gone")
	assert.ErrorIs(t, store.Remove(context.Background(), filepath.Join(t.TempDir(), "other.pdf")), storage.ErrInvalidFileName)
}
