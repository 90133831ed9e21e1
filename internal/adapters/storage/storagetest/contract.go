// Package storagetest holds the behavior every ports.Store must share.
package storagetest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// Run exercises store against the key/value contract.
func Run(t *testing.T, store ports.Store) {
	t.Helper()

	ctx := context.Background()

	t.Run("missing key reports not found", func(t *testing.T) {
		var users []domain.User
		found, err := store.Get(ctx, "users-missing", &users)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, users)
	})

	t.Run("set then get round trips JSON", func(t *testing.T) {
		want := domain.Settings{Theme: domain.ThemeDark, AIPreference: domain.AIPreferenceHybrid}
		require.NoError(t, store.Set(ctx, "settings", want))

		var got domain.Settings
		found, err := store.Get(ctx, "settings", &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
	})

	t.Run("numeric scalar round trips", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "scalar", 7))

		var got int
		found, err := store.Get(ctx, "scalar", &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 7, got)
	})

	t.Run("set replaces", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "currentUser", "alice"))
		require.NoError(t, store.Set(ctx, "currentUser", "bob"))

		var got string
		_, err := store.Get(ctx, "currentUser", &got)

		require.NoError(t, err)
		assert.Equal(t, "bob", got)
	})

	t.Run("remove deletes and tolerates absent keys", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "favorites_alice", domain.NewFavorites()))
		require.NoError(t, store.Remove(ctx, "favorites_alice"))
		require.NoError(t, store.Remove(ctx, "favorites_alice"))

		var fav domain.Favorites
		found, err := store.Get(ctx, "favorites_alice", &fav)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("stored value is a copy", func(t *testing.T) {
		cases := []domain.CommunityCase{{ID: "community-1", Tools: []string{"figma"}}}
		require.NoError(t, store.Set(ctx, "communityCases", cases))
		cases[0].Tools[0] = "mutated"

		var got []domain.CommunityCase
		_, err := store.Get(ctx, "communityCases", &got)

		require.NoError(t, err)
		assert.Equal(t, []string{"figma"}, got[0].Tools)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)

			go func() {
				defer wg.Done()
				assert.NoError(t, store.Set(ctx, "counter", i))
			}()
		}

		wg.Wait()

		var n int
		found, err := store.Get(ctx, "counter", &n)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := store.Set(cancelled, "settings", domain.DefaultSettings())
		assert.Error(t, err)
	})
}
