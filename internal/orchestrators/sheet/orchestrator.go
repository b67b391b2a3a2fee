// Package sheet implements the character sheet orchestrator: loading a
// persisted character, enriching its references, deriving its stats and
// budgets, and saving edits back through the cleaning layer.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/arcforge/codex-api/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"

	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/pkg/idgen"
	"github.com/arcforge/codex-api/internal/repositories/character"
	"github.com/arcforge/codex-api/internal/repositories/codex"
	"github.com/arcforge/codex-api/internal/repositories/library"
	"github.com/arcforge/codex-api/internal/rules"
	"github.com/arcforge/codex-api/internal/services/conversion"
)

// Service defines the interface for character sheet operations
type Service interface {
	// GetSheet loads a character and returns the full display view:
	// normalized character, enriched references, derived stats, and budgets
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)

	// SaveCharacter persists an edited character through the cleaning layer.
	// A character without an ID is created; one with an ID is updated.
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)

	// ListCharacters lists a player's characters
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// DeleteCharacter removes a character
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// AdjustResources applies health/energy deltas, clamped to [0, max]
	AdjustResources(ctx context.Context, input *AdjustResourcesInput) (*AdjustResourcesOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	CharacterRepo character.Repository
	LibraryRepo   library.Repository
	CodexRepo     codex.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.LibraryRepo == nil {
		vb.RequiredField("LibraryRepo")
	}
	if c.CodexRepo == nil {
		vb.RequiredField("CodexRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	libraryRepo   library.Repository
	codexRepo     codex.Repository
	idGen         idgen.Generator
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		libraryRepo:   cfg.LibraryRepo,
		codexRepo:     cfg.CodexRepo,
		idGen:         cfg.IDGenerator,
	}, nil
}

// Budgets are the level-derived spending pools shown alongside the sheet
type Budgets struct {
	AbilityPoints    int `json:"abilityPoints"`
	SkillPoints      int `json:"skillPoints"`
	HealthEnergyPool int `json:"healthEnergyPool"`
	TrainingPoints   int `json:"trainingPoints"`
	FeatPoints       int `json:"featPoints"`
	Proficiency      int `json:"proficiency"`
	ArmamentCeiling  int `json:"armamentCeiling"`
	Currency         int `json:"currency"`
}

// GetSheetInput identifies the character to load
type GetSheetInput struct {
	CharacterID string
}

// GetSheetOutput is the full display view of a character
type GetSheetOutput struct {
	Character    *arclight.Character
	Enriched     *conversion.EnrichedCharacter
	Stats        rules.DerivedStats
	SkillBonuses map[string]int
	Budgets      Budgets
	Progression  rules.ArchetypeProgression
}

// SaveCharacterInput carries the edited character
type SaveCharacterInput struct {
	Character *arclight.Character
}

// SaveCharacterOutput reports the persisted record
type SaveCharacterOutput struct {
	CharacterID string
	Created     bool
}

// ListCharactersInput identifies the player
type ListCharactersInput struct {
	PlayerID string
}

// CharacterSummary is one row of a player's character list
type CharacterSummary struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Kind      arclight.EntityKind `json:"kind"`
	Level     int                 `json:"level"`
	Archetype arclight.Archetype  `json:"archetype,omitempty"`
}

// ListCharactersOutput carries the summaries
type ListCharactersOutput struct {
	Characters []CharacterSummary
}

// DeleteCharacterInput identifies the character to remove
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the output for deleting a character
type DeleteCharacterOutput struct{}

// AdjustResourcesInput carries health/energy deltas
type AdjustResourcesInput struct {
	CharacterID string
	HealthDelta int
	EnergyDelta int
}

// AdjustResourcesOutput reports the clamped resource state
type AdjustResourcesOutput struct {
	CurrentHealth int
	MaxHealth     int
	CurrentEnergy int
	MaxEnergy     int
}

func (o *orchestrator) GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	charOut, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := conversion.ToCharacter(charOut.CharacterData)

	snap, err := o.codexSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	lib := arclight.Library{}
	if char.PlayerID != "" {
		libOut, err := o.libraryRepo.GetLibrary(ctx, library.GetLibraryInput{PlayerID: char.PlayerID})
		if err != nil {
			return nil, err
		}
		lib = *libOut.Library
	}

	// Enrichment writes resolved armor values onto the character, so it must
	// run before stat derivation
	enriched := conversion.EnrichCharacter(char, lib, conversion.CodexTables{
		Equipment:      snap.Equipment,
		PowerParts:     snap.PowerParts,
		TechniqueParts: snap.TechniqueParts,
		ItemProperties: snap.ItemProperties,
	})

	stats := rules.CalculateAllStats(char, snap.Rules)

	slog.DebugContext(ctx, "assembled character sheet",
		"character_id", char.ID,
		"level", char.Level,
		"codex_version", snap.Version)

	return &GetSheetOutput{
		Character:    char,
		Enriched:     enriched,
		Stats:        stats,
		SkillBonuses: rules.SkillBonuses(char),
		Budgets:      o.budgets(char, snap.Rules),
		Progression:  rules.ArchetypeProgressionAt(char.Level, char.MartialProficiency, char.PowerProficiency, char.MilestoneChoices),
	}, nil
}

func (o *orchestrator) budgets(char *arclight.Character, gameRules *rules.GameRules) Budgets {
	b := Budgets{
		AbilityPoints:    rules.AbilityPoints(char.Level, gameRules),
		SkillPoints:      rules.SkillPoints(char.Level, char.Kind, gameRules),
		HealthEnergyPool: rules.HealthEnergyPool(char.Level, char.Kind, gameRules),
		Proficiency:      rules.Proficiency(char.Level, gameRules),
		ArmamentCeiling:  rules.ArmamentCostCeiling(char.MartialProficiency),
	}

	// Training scales off the power ability for casters, intelligence
	// otherwise
	trainingAbility := char.Abilities.Intelligence
	if char.PowerAbility != "" {
		trainingAbility = char.Abilities.AbilityScore(char.PowerAbility)
	}

	if char.Kind == arclight.EntityCreature {
		level := float64(char.Level)
		b.TrainingPoints = rules.CreatureTrainingPoints(level, trainingAbility, gameRules)
		b.FeatPoints = rules.CreatureFeatPoints(level, char.MartialProficiency)
		b.Currency = rules.CreatureCurrency(char.Level)
	} else {
		b.TrainingPoints = rules.PlayerTrainingPoints(char.Level, trainingAbility, gameRules)
	}

	return b
}

func (o *orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}
	if input.Character.Name == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}
	if input.Character.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	created := input.Character.ID == ""
	if created {
		input.Character.ID = o.idGen.Generate()
	}

	data := conversion.CleanForSave(input.Character)

	if created {
		if _, err := o.characterRepo.Create(ctx, character.CreateInput{CharacterData: data}); err != nil {
			return nil, err
		}
	} else {
		if _, err := o.characterRepo.Update(ctx, character.UpdateInput{CharacterData: data}); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "saved character",
		"character_id", data.ID,
		"player_id", data.PlayerID,
		"created", created)

	return &SaveCharacterOutput{CharacterID: data.ID, Created: created}, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	listOut, err := o.characterRepo.ListByPlayerID(ctx, character.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	summaries := make([]CharacterSummary, 0, len(listOut.Characters))
	for _, data := range listOut.Characters {
		char := conversion.ToCharacter(data)
		summaries = append(summaries, CharacterSummary{
			ID:        char.ID,
			Name:      char.Name,
			Kind:      char.Kind,
			Level:     char.Level,
			Archetype: char.Archetype,
		})
	}

	return &ListCharactersOutput{Characters: summaries}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	if _, err := o.characterRepo.Delete(ctx, character.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}
	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) AdjustResources(ctx context.Context, input *AdjustResourcesInput) (*AdjustResourcesOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	charOut, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := conversion.ToCharacter(charOut.CharacterData)

	snap, err := o.codexSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := rules.CalculateAllStats(char, snap.Rules)
	char.CurrentHealth = clamp(char.CurrentHealth+input.HealthDelta, 0, stats.MaxHealth)
	char.CurrentEnergy = clamp(char.CurrentEnergy+input.EnergyDelta, 0, stats.MaxEnergy)

	if _, err := o.characterRepo.Update(ctx, character.UpdateInput{CharacterData: conversion.CleanForSave(char)}); err != nil {
		return nil, err
	}

	return &AdjustResourcesOutput{
		CurrentHealth: char.CurrentHealth,
		MaxHealth:     stats.MaxHealth,
		CurrentEnergy: char.CurrentEnergy,
		MaxEnergy:     stats.MaxEnergy,
	}, nil
}

func (o *orchestrator) codexSnapshot(ctx context.Context) (*codex.Snapshot, error) {
	out, err := o.codexRepo.GetSnapshot(ctx, codex.GetSnapshotInput{})
	if err != nil {
		return nil, err
	}
	return out.Snapshot, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
