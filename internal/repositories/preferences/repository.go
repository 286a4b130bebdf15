// Package preferences persists the global, category-independent flags
package preferences

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock github.com/KirkDiggler/netherite-checklist/internal/repositories/preferences Repository

import (
	"context"

	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
)

// Preferences are the flags shared by both categories
type Preferences struct {
	ThornsEnabled bool
	Theme         loadout.Theme
}

// Repository reads and writes the global flags
type Repository interface {
	// Get returns the stored flags. Missing values fall back to thorns off
	// and the dark theme.
	Get(ctx context.Context) (*GetOutput, error)

	// SetThornsEnabled stores the thorns flag
	SetThornsEnabled(ctx context.Context, input SetThornsEnabledInput) error

	// SetTheme stores the theme
	SetTheme(ctx context.Context, input SetThemeInput) error
}

// GetOutput defines the output for reading the flags
type GetOutput struct {
	Preferences Preferences
}

// SetThornsEnabledInput defines the input for storing the thorns flag
type SetThornsEnabledInput struct {
	Enabled bool
}

// SetThemeInput defines the input for storing the theme
type SetThemeInput struct {
	Theme loadout.Theme
}
