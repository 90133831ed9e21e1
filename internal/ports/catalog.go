// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter on anything that may block
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
package ports

import (
	"github.com/stack4devs/stack4devs/internal/domain"
)

// Catalog is the read-only dataset the recommender works over.
// It is loaded once at startup and never mutated afterwards, so every
// method is safe for concurrent use and callers must not modify results.
type Catalog interface {
	// Stacks returns a copy of every stack in authored order. Nested tool
	// slices are shared with the catalog and must be treated as read-only.
	Stacks() []domain.Stack

	// StackByID returns domain.ErrNotFound for unknown ids.
	StackByID(id string) (domain.Stack, error)

	// Tools returns the tool directory.
	Tools() []domain.DirectoryTool

	// ToolByID returns domain.ErrNotFound for unknown ids.
	ToolByID(id string) (domain.DirectoryTool, error)

	// UseCases returns the curated use cases.
	UseCases() []domain.UseCase

	// UseCaseByID returns domain.ErrNotFound for unknown ids.
	UseCaseByID(id string) (domain.UseCase, error)
}

// CatalogDocuments is the raw content a catalog source produces before
// it is indexed.
type CatalogDocuments struct {
	Stacks   []domain.Stack
	Tools    []domain.DirectoryTool
	UseCases []domain.UseCase
}
