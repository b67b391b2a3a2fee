// Package rollsession provides short-lived persistence for check and defense
// rolls, grouped by the character that rolled and a free-form context such as
// "skill:stealth" or "encounter_7".
package rollsession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rollsessionmock github.com/arcforge/codex-api/internal/repositories/rollsession Repository

// RollSession groups the rolls a character has made in one context. Sessions
// expire; a check result is table-talk, not sheet state.
type RollSession struct {
	// Character that owns these rolls
	CharacterID string

	// Context for grouping related rolls (e.g., "skill:stealth")
	Context string

	Rolls []RollRecord

	CreatedAt time.Time
	ExpiresAt time.Time
}

// RollRecord is a single resolved roll
type RollRecord struct {
	RollID string

	// Dice notation that was rolled (e.g., "1d20+5")
	Notation string

	// Individual die values
	Dice []int32

	// Final result after the modifier
	Total int32

	// Modifier applied on top of the dice
	Modifier int32

	// Human-readable description of the roll
	Description string
}

// Repository defines the interface for roll session persistence
type Repository interface {
	// Create stores a new session with a TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session; expired sessions read as NotFound
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// AddRolls appends rolls to an existing session, keeping its TTL
	// Returns errors.NotFound if the session is gone or expired
	AddRolls(ctx context.Context, input AddRollsInput) (*AddRollsOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput contains parameters for creating a roll session
type CreateInput struct {
	CharacterID string
	Context     string
	Rolls       []RollRecord
	TTL         time.Duration
}

// CreateOutput contains the result of creating a roll session
type CreateOutput struct {
	Session *RollSession
}

// GetInput contains parameters for retrieving a roll session
type GetInput struct {
	CharacterID string
	Context     string
}

// GetOutput contains the result of retrieving a roll session
type GetOutput struct {
	Session *RollSession
}

// AddRollsInput contains parameters for appending rolls
type AddRollsInput struct {
	CharacterID string
	Context     string
	Rolls       []RollRecord
}

// AddRollsOutput contains the updated session
type AddRollsOutput struct {
	Session *RollSession
}

// DeleteInput contains parameters for deleting a roll session
type DeleteInput struct {
	CharacterID string
	Context     string
}

// DeleteOutput contains the result of deleting a roll session
type DeleteOutput struct {
	RollsDeleted int32
}
