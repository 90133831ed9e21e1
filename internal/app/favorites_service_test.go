package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stack4devs/stack4devs/internal/domain"
)

func TestFavoritesService_RequiresUser(t *testing.T) {
	store, accounts := newMemoryAccounts()
	favs := NewFavoritesService(store, accounts, nil)

	_, err := favs.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = favs.AddTool(context.Background(), domain.Tool{Name: "Ghost"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestFavoritesService_Tools(t *testing.T) {
	ctx := context.Background()
	store, accounts := newMemoryAccounts()
	signIn(t, accounts, "ada")
	favs := NewFavoritesService(store, accounts, nil)

	fav, err := favs.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NewFavorites(), fav)

	_, err = favs.AddTool(ctx, domain.Tool{Name: "Ghost", Purpose: "Blog"})
	require.NoError(t, err)

	fav, err = favs.AddTool(ctx, domain.Tool{Name: "Ghost", Purpose: "Other"})
	require.NoError(t, err)
	require.Len(t, fav.Tools, 1)
	assert.Equal(t, "Blog", fav.Tools[0].Purpose)

	fav, err = favs.RemoveTool(ctx, "Ghost")
	require.NoError(t, err)
	assert.Empty(t, fav.Tools)
	assert.NotNil(t, fav.Tools)

	_, err = favs.AddTool(ctx, domain.Tool{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFavoritesService_Stacks(t *testing.T) {
	ctx := context.Background()
	store, accounts := newMemoryAccounts()
	signIn(t, accounts, "ada")
	favs := NewFavoritesService(store, accounts, nil)

	_, err := favs.AddStack(ctx, domain.Stack{ID: "blog-free"})
	require.NoError(t, err)

	fav, err := favs.AddStack(ctx, domain.Stack{ID: "blog-free"})
	require.NoError(t, err)
	assert.Len(t, fav.Stacks, 1)

	fav, err = favs.RemoveStack(ctx, "missing")
	require.NoError(t, err)
	assert.Len(t, fav.Stacks, 1)

	fav, err = favs.RemoveStack(ctx, "blog-free")
	require.NoError(t, err)
	assert.Empty(t, fav.Stacks)

	_, err = favs.AddStack(ctx, domain.Stack{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFavoritesService_PerUser(t *testing.T) {
	ctx := context.Background()
	store, accounts := newMemoryAccounts()
	favs := NewFavoritesService(store, accounts, nil)

	signIn(t, accounts, "ada")
	_, err := favs.AddTool(ctx, domain.Tool{Name: "Ghost"})
	require.NoError(t, err)

	signIn(t, accounts, "bob")
	fav, err := favs.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, fav.Tools)

	var stored domain.Favorites
	found, err := store.Get(ctx, "favorites_ada", &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, stored.Tools, 1)
}
