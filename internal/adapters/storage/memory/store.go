// Package memory implements the key/value store in process memory.
// Values are kept JSON-encoded so callers never share state with the store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store is a map guarded by a RWMutex.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get decodes the value at key into dst.
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}

	return true, nil
}

// Set stores value at key as JSON.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()

	return nil
}

// Remove deletes key.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store" }

// Check always succeeds.
func (s *Store) Check(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }
