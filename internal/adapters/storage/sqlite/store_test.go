package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/stack4devs/stack4devs/internal/adapters/storage/storagetest"
	"github.com/stack4devs/stack4devs/internal/domain"
)

func openTemp(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "stack4devs.sqlite"), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, openTemp(t))
}

func TestStore_UpsertKeepsSingleRow(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "settings", domain.DefaultSettings()))
	require.NoError(t, store.Set(ctx, "settings", domain.Settings{Theme: domain.ThemeDark, AIPreference: domain.AIPreferenceAI}))

	var count int64
	require.NoError(t, store.db.Model(&entry{}).Where("entry_key = ?", "settings").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStore_Check(t *testing.T) {
	store := openTemp(t)

	assert.NoError(t, store.Check(context.Background()))
}

func TestStore_ConcurrentWritersOnDistinctKeys(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			return store.Set(ctx, fmt.Sprintf("favorites_u%d", i), domain.NewFavorites())
		})
	}

	require.NoError(t, g.Wait())

	var count int64
	require.NoError(t, store.db.Model(&entry{}).Where("entry_key LIKE ?", "favorites_u%").Count(&count).Error)
	assert.Equal(t, int64(8), count)
}

func TestStore_ScalarRoundTrip(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "n", 7))

	var n int
	found, err := store.Get(ctx, "n", &n)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, n)
}
