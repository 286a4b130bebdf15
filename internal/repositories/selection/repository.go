// Package selection persists per-category item selections
package selection

//go:generate mockgen -destination=mock/mock_repository.go -package=selectionmock github.com/KirkDiggler/netherite-checklist/internal/repositories/selection Repository

import (
	"context"

	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
)

// Repository stores one selection mapping per category. Categories never
// share storage: writing or clearing one leaves the other untouched.
type Repository interface {
	// Save replaces the whole mapping stored for the category
	// Returns errors.InvalidArgument for an unknown category
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load returns the stored mapping, empty when nothing usable is stored
	// Returns errors.InvalidArgument for an unknown category
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Reset deletes the mapping stored for the category
	// Returns errors.InvalidArgument for an unknown category
	// Returns errors.Internal for storage failures
	Reset(ctx context.Context, input ResetInput) (*ResetOutput, error)
}

// SaveInput defines the input for saving a category's selections
type SaveInput struct {
	Category   loadout.Category
	Selections loadout.Selections
}

// SaveOutput defines the output for saving a category's selections
type SaveOutput struct {
	ItemCount int
}

// LoadInput defines the input for loading a category's selections
type LoadInput struct {
	Category loadout.Category
}

// LoadOutput defines the output for loading a category's selections.
// Selections is never nil.
type LoadOutput struct {
	Selections loadout.Selections
}

// ResetInput defines the input for clearing a category's selections
type ResetInput struct {
	Category loadout.Category
}

// ResetOutput defines the output for clearing a category's selections
type ResetOutput struct {
	Existed bool
}
