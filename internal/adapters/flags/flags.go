// Package flags evaluates feature flags from the features section of the
// service configuration.
package flags

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// Static is a ports.FeatureFlags backed by an in-memory koanf tree. Flag
// names are dotted paths, e.g. "community.auto_approve".
type Static struct {
	mu sync.RWMutex
	k  *koanf.Koanf
}

var _ ports.FeatureFlags = (*Static)(nil)

// New loads features, which may be nested maps or dotted keys.
func New(features map[string]any) (*Static, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(features, "."), nil); err != nil {
		return nil, fmt.Errorf("loading feature flags: %w", err)
	}

	return &Static{k: k}, nil
}

// Set overrides a flag at runtime.
func (s *Static) Set(flag string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.k.Set(flag, value)
}

func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.k.Exists(flag) {
		return defaultValue
	}

	return s.k.Bool(flag)
}

func (s *Static) GetString(_ context.Context, flag string, defaultValue string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.k.Exists(flag) {
		return defaultValue
	}

	return s.k.String(flag)
}

func (s *Static) GetInt(_ context.Context, flag string, defaultValue int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.k.Exists(flag) {
		return defaultValue
	}

	return s.k.Int(flag)
}

// GetJSON decodes the flag's value, whatever its shape, into target.
func (s *Static) GetJSON(_ context.Context, flag string, target any) error {
	s.mu.RLock()
	value := s.k.Get(flag)
	exists := s.k.Exists(flag)
	s.mu.RUnlock()

	if !exists {
		return domain.NewNotFoundError("feature flag", flag)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding flag %s: %w", flag, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decoding flag %s: %w", flag, err)
	}

	return nil
}
