package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrUnauthorized,
		ErrForbidden,
		ErrUnavailable,
		ErrEmptyCatalog,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "stack",
			id:          "saas-100",
			expectedMsg: `stack with id "saas-100" not found`,
		},
		{
			name:        "with entity only",
			entity:      "community case",
			expectedMsg: "community case not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("user", "Username already exists")
	assert.Equal(t, "user conflict: Username already exists", err.Error())
	require.ErrorIs(t, err, ErrConflict)

	err = NewConflictErrorWithDetails("user", "Username already exists", "alice")
	assert.Equal(t, "user conflict: Username already exists (alice)", err.Error())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "alice", conflict.Details)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "budget",
			message:     "must be one of the offered amounts",
			expectedMsg: "validation failed for budget: must be one of the offered amounts",
		},
		{
			name:        "without field",
			message:     "select at least one tool",
			expectedMsg: "validation failed: select at least one tool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
		})
	}
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("Invalid username or password")

	assert.Equal(t, "Invalid username or password", err.Error())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "unauthorized", (&UnauthorizedError{}).Error())
}

func TestForbiddenError(t *testing.T) {
	err := NewForbiddenError("update case", "only the author may edit")
	assert.Equal(t, `operation "update case" forbidden: only the author may edit`, err.Error())
	require.ErrorIs(t, err, ErrForbidden)

	assert.Equal(t, `operation "delete" forbidden`, NewForbiddenError("delete", "").Error())
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("catalog", "connection refused")
	assert.Equal(t, `service "catalog" unavailable: connection refused`, err.Error())
	require.ErrorIs(t, err, ErrUnavailable)

	assert.Equal(t, `service "store" unavailable`, NewUnavailableError("store", "").Error())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsNotFound typed", NewNotFoundError("tool", "figma"), IsNotFound, true},
		{"IsNotFound wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound other", ErrConflict, IsNotFound, false},
		{"IsNotFound nil", nil, IsNotFound, false},

		{"IsConflict typed", NewConflictError("user", "exists"), IsConflict, true},
		{"IsConflict other", ErrNotFound, IsConflict, false},

		{"IsValidation typed", NewValidationError("title", "required"), IsValidation, true},
		{"IsValidation other", ErrNotFound, IsValidation, false},

		{"IsUnauthorized typed", NewUnauthorizedError("sign in"), IsUnauthorized, true},
		{"IsUnauthorized wrapped", fmt.Errorf("login: %w", ErrUnauthorized), IsUnauthorized, true},
		{"IsUnauthorized forbidden", ErrForbidden, IsUnauthorized, false},

		{"IsForbidden typed", NewForbiddenError("update", "not author"), IsForbidden, true},
		{"IsForbidden other", ErrUnauthorized, IsForbidden, false},

		{"IsUnavailable typed", NewUnavailableError("catalog", "timeout"), IsUnavailable, true},
		{"IsUnavailable nil", nil, IsUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	original := NewNotFoundError("use case", "launch-saas")
	wrapped := fmt.Errorf("explore: %w", fmt.Errorf("catalog: %w", original))

	assert.True(t, IsNotFound(wrapped))

	var notFound *NotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "launch-saas", notFound.ID)
}
