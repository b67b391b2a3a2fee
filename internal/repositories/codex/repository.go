// Package codex provides persistence for the shared reference database: the
// part definition tables, stock equipment, and rule overrides every player
// reads but only operators write.
package codex

//go:generate mockgen -destination=mock/mock_repository.go -package=codexmock github.com/arcforge/codex-api/internal/repositories/codex Repository

import (
	"context"

	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/rules"
)

// Repository defines the interface for codex persistence. The codex is read
// on nearly every request and written rarely, so reads go through a versioned
// snapshot that implementations may cache.
type Repository interface {
	// GetSnapshot returns the current codex tables. Implementations may serve
	// a cached copy as long as it matches the stored version.
	GetSnapshot(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error)

	// Seed replaces the codex tables wholesale and bumps the version. Used by
	// the seed command and by tests.
	Seed(ctx context.Context, input SeedInput) (*SeedOutput, error)
}

// Snapshot is one immutable view of the codex. Callers must not mutate it;
// the same copy may be served to concurrent readers.
type Snapshot struct {
	Version        int64
	PowerParts     []arclight.Part
	TechniqueParts []arclight.Part
	ItemProperties []arclight.Part
	Equipment      []arclight.Item
	Rules          *rules.GameRules
}

// GetSnapshotInput defines the input for reading the codex
type GetSnapshotInput struct{}

// GetSnapshotOutput defines the output for reading the codex
type GetSnapshotOutput struct {
	Snapshot *Snapshot
}

// SeedInput defines the input for replacing the codex tables
type SeedInput struct {
	PowerParts     []arclight.Part
	TechniqueParts []arclight.Part
	ItemProperties []arclight.Part
	Equipment      []arclight.Item
	Rules          *rules.GameRules
}

// SeedOutput defines the output for replacing the codex tables
type SeedOutput struct {
	Version int64
}
