package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// FavoritesService keeps the signed-in user's saved tools and stacks.
type FavoritesService struct {
	store    ports.Store
	accounts *AccountService
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewFavoritesService creates a FavoritesService.
func NewFavoritesService(store ports.Store, accounts *AccountService, logger *slog.Logger) *FavoritesService {
	return &FavoritesService{
		store:    store,
		accounts: accounts,
		logger:   loggerOrDefault(logger, "app.FavoritesService"),
	}
}

func favoritesKey(username string) string {
	return keyFavoritesPrefix + username
}

// Get returns the signed-in user's favorites.
func (s *FavoritesService) Get(ctx context.Context) (domain.Favorites, error) {
	user, err := s.accounts.RequireUser(ctx)
	if err != nil {
		return domain.Favorites{}, err
	}

	return s.read(ctx, user)
}

func (s *FavoritesService) read(ctx context.Context, user string) (domain.Favorites, error) {
	fav, err := load(ctx, s.store, favoritesKey(user), domain.NewFavorites())
	if err != nil {
		return domain.Favorites{}, err
	}

	if fav.Tools == nil {
		fav.Tools = []domain.Tool{}
	}

	if fav.Stacks == nil {
		fav.Stacks = []domain.Stack{}
	}

	return fav, nil
}

// update applies mutate to the user's favorites and saves them when
// mutate reports a change.
func (s *FavoritesService) update(ctx context.Context, mutate func(*domain.Favorites) bool) (domain.Favorites, error) {
	user, err := s.accounts.RequireUser(ctx)
	if err != nil {
		return domain.Favorites{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fav, err := s.read(ctx, user)
	if err != nil {
		return domain.Favorites{}, err
	}

	if !mutate(&fav) {
		return fav, nil
	}

	if err := s.store.Set(ctx, favoritesKey(user), fav); err != nil {
		return domain.Favorites{}, fmt.Errorf("saving favorites: %w", err)
	}

	s.logger.DebugContext(ctx, "favorites saved",
		slog.String("user", user),
		slog.Int("tools", len(fav.Tools)),
		slog.Int("stacks", len(fav.Stacks)),
	)

	return fav, nil
}

// AddTool saves tool unless a tool with the same name is already saved.
func (s *FavoritesService) AddTool(ctx context.Context, tool domain.Tool) (domain.Favorites, error) {
	if tool.Name == "" {
		return domain.Favorites{}, domain.NewValidationError("name", "is required")
	}

	return s.update(ctx, func(f *domain.Favorites) bool { return f.AddTool(tool) })
}

// RemoveTool drops saved tools named name.
func (s *FavoritesService) RemoveTool(ctx context.Context, name string) (domain.Favorites, error) {
	return s.update(ctx, func(f *domain.Favorites) bool {
		before := len(f.Tools)
		f.RemoveTool(name)

		return len(f.Tools) != before
	})
}

// AddStack saves stack unless a stack with the same id is already saved.
func (s *FavoritesService) AddStack(ctx context.Context, stack domain.Stack) (domain.Favorites, error) {
	if stack.ID == "" {
		return domain.Favorites{}, domain.NewValidationError("id", "is required")
	}

	return s.update(ctx, func(f *domain.Favorites) bool { return f.AddStack(stack) })
}

// RemoveStack drops saved stacks with the given id.
func (s *FavoritesService) RemoveStack(ctx context.Context, id string) (domain.Favorites, error) {
	return s.update(ctx, func(f *domain.Favorites) bool {
		before := len(f.Stacks)
		f.RemoveStack(id)

		return len(f.Stacks) != before
	})
}
