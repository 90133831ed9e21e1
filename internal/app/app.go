// Package app contains the use-case services. They combine the pure rules
// in domain with the catalog, the profile store and feature flags, all
// reached through ports.
//
// The store holds a single local profile. Every read-modify-write of a key
// happens under the owning service's mutex, so concurrent requests against
// one process never lose updates.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stack4devs/stack4devs/internal/ports"
)

// Profile store keys.
const (
	keyUsers           = "users"
	keyCurrentUser     = "currentUser"
	keySettings        = "settings"
	keyCommunityCases  = "communityCases"
	keyFavoritesPrefix = "favorites_"
)

// Metric event labels.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventLiked   = "liked"
	EventViewed  = "viewed"
	EventShared  = "shared"
)

type noopMetrics struct{}

func (noopMetrics) RecordRecommendation(string) {}
func (noopMetrics) RecordCommunityEvent(string) {}

func metricsOrNoop(m ports.DomainMetrics) ports.DomainMetrics {
	if m == nil {
		return noopMetrics{}
	}

	return m
}

func loggerOrDefault(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}

	return l.With(slog.String("component", component))
}

// load reads key into a T, returning fallback when the key is absent.
func load[T any](ctx context.Context, store ports.Store, key string, fallback T) (T, error) {
	var v T

	found, err := store.Get(ctx, key, &v)
	if err != nil {
		return fallback, fmt.Errorf("reading %s: %w", key, err)
	}

	if !found {
		return fallback, nil
	}

	return v, nil
}
