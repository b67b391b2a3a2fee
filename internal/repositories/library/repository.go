// Package library provides persistence for a player's composed content:
// powers, techniques, and items built from parts.
package library

//go:generate mockgen -destination=mock/mock_repository.go -package=librarymock github.com/arcforge/codex-api/internal/repositories/library Repository

import (
	"context"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// Repository defines the interface for library persistence. Each player owns
// one library; entries are addressed by owner and entry ID.
type Repository interface {
	// GetLibrary retrieves a player's full library. A player with no saved
	// content gets an empty library, not an error.
	GetLibrary(ctx context.Context, input GetLibraryInput) (*GetLibraryOutput, error)

	// UpsertPower creates or replaces a power in the owner's library
	UpsertPower(ctx context.Context, input UpsertPowerInput) (*UpsertPowerOutput, error)

	// UpsertTechnique creates or replaces a technique
	UpsertTechnique(ctx context.Context, input UpsertTechniqueInput) (*UpsertTechniqueOutput, error)

	// UpsertItem creates or replaces an item
	UpsertItem(ctx context.Context, input UpsertItemInput) (*UpsertItemOutput, error)

	// DeleteEntry removes one entry from the owner's library
	// Returns errors.NotFound if the entry doesn't exist
	DeleteEntry(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error)
}

// EntryKind names the library sub-collections
type EntryKind string

// Entry kinds
const (
	EntryPower     EntryKind = "powers"
	EntryTechnique EntryKind = "techniques"
	EntryItem      EntryKind = "items"
)

// GetLibraryInput defines the input for fetching a library
type GetLibraryInput struct {
	PlayerID string
}

// GetLibraryOutput defines the output for fetching a library
type GetLibraryOutput struct {
	Library *arclight.Library
}

// UpsertPowerInput defines the input for saving a power
type UpsertPowerInput struct {
	PlayerID string
	Power    *arclight.Power
}

// UpsertPowerOutput defines the output for saving a power
type UpsertPowerOutput struct {
	Power *arclight.Power
}

// UpsertTechniqueInput defines the input for saving a technique
type UpsertTechniqueInput struct {
	PlayerID  string
	Technique *arclight.Technique
}

// UpsertTechniqueOutput defines the output for saving a technique
type UpsertTechniqueOutput struct {
	Technique *arclight.Technique
}

// UpsertItemInput defines the input for saving an item
type UpsertItemInput struct {
	PlayerID string
	Item     *arclight.Item
}

// UpsertItemOutput defines the output for saving an item
type UpsertItemOutput struct {
	Item *arclight.Item
}

// DeleteEntryInput defines the input for deleting a library entry
type DeleteEntryInput struct {
	PlayerID string
	Kind     EntryKind
	EntryID  string
}

// DeleteEntryOutput defines the output for deleting a library entry
type DeleteEntryOutput struct{}
