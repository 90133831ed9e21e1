package ports

import (
	"context"
)

// Store is the local key/value persistence the application keeps its state
// in. Keys are opaque strings and values are JSON documents.
//
// Example usage in application layer:
//
//	var users []domain.User
//	found, err := store.Get(ctx, "users", &users)
type Store interface {
	// Get decodes the value at key into dst.
	// It reports false with a nil error when the key is absent.
	Get(ctx context.Context, key string, dst any) (bool, error)

	// Set encodes value as JSON and stores it at key, replacing any prior value.
	Set(ctx context.Context, key string, value any) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
