package ports

import (
	"context"
)

// FeatureFlags defines the contract for feature flag evaluation.
// The application checks flags without knowing where they are configured.
//
// Example usage:
//
//	approved := flags.IsEnabled(ctx, "community.auto_approve", false)
type FeatureFlags interface {
	// IsEnabled checks if a boolean feature flag is enabled.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool

	// GetString retrieves a string feature flag value.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	GetString(ctx context.Context, flag string, defaultValue string) string

	// GetInt retrieves an integer feature flag value.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	GetInt(ctx context.Context, flag string, defaultValue int) int

	// GetJSON retrieves a JSON feature flag value and unmarshals into target.
	// Returns domain.ErrNotFound if the flag doesn't exist.
	GetJSON(ctx context.Context, flag string, target any) error
}
