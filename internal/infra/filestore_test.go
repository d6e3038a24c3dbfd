package infra_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roteiro/internal/infra"
)

func TestFileBlobStoreAbsentKey(t *testing.T) {
	store, err := infra.NewFileBlobStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get(context.Background(), "never_written")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBlobStorePutGetDelete(t *testing.T) {
	store, err := infra.NewFileBlobStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "viagemChecklist", []byte(`[{"id":"1"}]`)))

	raw, ok, err := store.Get(ctx, "viagemChecklist")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), raw)

	require.NoError(t, store.Delete(ctx, "viagemChecklist"))
	_, ok, err = store.Get(ctx, "viagemChecklist")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBlobStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := infra.NewFileBlobStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestFileBlobStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := infra.NewFileBlobStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "../escape", []byte("x")))

	raw, ok, err := store.Get(ctx, "../escape")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("x"), raw)

	// The file stayed inside the storage directory.
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMemoryBlobStoreIsolatesValues(t *testing.T) {
	store := infra.NewMemoryBlobStore()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'X'

	raw, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("original"), raw)

	raw[0] = 'Y'
	again, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestMemoryBlobStoreDelete(t *testing.T) {
	store := infra.NewMemoryBlobStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
