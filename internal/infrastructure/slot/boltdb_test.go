package slot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGet(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "nested", "slots.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, found, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Put("state", []byte(`{"a":1}`)))
	require.NoError(t, store.Put("state", []byte(`{"a":2}`)))

	value, found, err := store.Get("state")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"a":2}`, string(value))

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	require.NoError(t, store.Delete("state"))
	require.NoError(t, store.Delete("state"))
	_, found, err = store.Get("state")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClosedStoreErrors(t *testing.T) {
	var store *Store
	_, _, err := store.Get("x")
	assert.Error(t, err)
	assert.Error(t, store.Put("x", nil))
	assert.NoError(t, store.Close())
}
