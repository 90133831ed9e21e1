package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stack4devs/stack4devs/internal/adapters/storage/storagetest"
)

func openTemp(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "nested", "stack4devs.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, openTemp(t))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack4devs.db")
	ctx := context.Background()

	store, err := Open(path, time.Second)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "currentUser", "alice"))
	require.NoError(t, store.Close())

	reopened, err := Open(path, time.Second)
	require.NoError(t, err)
	defer reopened.Close()

	var user string
	found, err := reopened.Get(ctx, "currentUser", &user)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", user)
}

func TestStore_Closed(t *testing.T) {
	store := openTemp(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, err := store.Get(context.Background(), "users", &[]string{})
	require.ErrorIs(t, err, ErrStoreClosed)
	assert.Error(t, store.Check(context.Background()))
}

func TestStore_Check(t *testing.T) {
	store := openTemp(t)

	assert.Equal(t, "store", store.Name())
	assert.NoError(t, store.Check(context.Background()))
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ", time.Second)
	assert.Error(t, err)
}
