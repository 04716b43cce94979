package secrets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	// absent key reads as empty, not as an error
	key, err := store.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "", key)

	require.NoError(t, store.SetAPIKey("sk-test-123"))

	key, err = store.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", key)

	require.NoError(t, store.ClearAPIKey())

	key, err = store.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "", key)

	// clearing twice is fine
	require.NoError(t, store.ClearAPIKey())
}

func TestFileStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.SetAPIKey("first"))
	require.NoError(t, store.SetAPIKey("second"))

	key, err := store.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "second", key)
}
