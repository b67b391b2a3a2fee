// Package builder implements the content builder orchestrator: pricing
// part compositions against the codex tables and saving the results into a
// player's library.
package builder

//go:generate mockgen -destination=mock/mock_service.go -package=buildermock github.com/arcforge/codex-api/internal/orchestrators/builder Service

import (
	"context"
	"log/slog"

	"github.com/arcforge/codex-api/internal/calculators"
	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/repositories/codex"
	"github.com/arcforge/codex-api/internal/repositories/library"
)

// Service defines the interface for builder operations
type Service interface {
	// PreviewPower prices a power composition without saving it
	PreviewPower(ctx context.Context, input *PreviewPowerInput) (*PreviewOutput, error)

	// PreviewTechnique prices a technique composition
	PreviewTechnique(ctx context.Context, input *PreviewTechniqueInput) (*PreviewOutput, error)

	// PreviewItem prices an item's property composition
	PreviewItem(ctx context.Context, input *PreviewItemInput) (*PreviewOutput, error)

	// SavePower prices and stores a power in the player's library
	SavePower(ctx context.Context, input *SavePowerInput) (*SavePowerOutput, error)

	// SaveTechnique prices and stores a technique
	SaveTechnique(ctx context.Context, input *SaveTechniqueInput) (*SaveTechniqueOutput, error)

	// SaveItem prices and stores an item
	SaveItem(ctx context.Context, input *SaveItemInput) (*SaveItemOutput, error)

	// DeleteEntry removes an entry from the player's library
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error)
}

// Config holds the dependencies for the builder orchestrator
type Config struct {
	LibraryRepo library.Repository
	CodexRepo   codex.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.LibraryRepo == nil {
		vb.RequiredField("LibraryRepo")
	}
	if c.CodexRepo == nil {
		vb.RequiredField("CodexRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	libraryRepo library.Repository
	codexRepo   codex.Repository
}

// NewOrchestrator creates a new builder orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		libraryRepo: cfg.LibraryRepo,
		codexRepo:   cfg.CodexRepo,
	}, nil
}

// PreviewPowerInput carries the composition to price
type PreviewPowerInput struct {
	Power *arclight.Power
}

// PreviewTechniqueInput carries the composition to price
type PreviewTechniqueInput struct {
	Technique *arclight.Technique
}

// PreviewItemInput carries the composition to price
type PreviewItemInput struct {
	Item *arclight.Item
}

// PreviewOutput is the priced composition with its display labels
type PreviewOutput struct {
	Cost   calculators.CostTotals
	Action string
	Damage string
}

// SavePowerInput carries the power to store
type SavePowerInput struct {
	PlayerID string
	Power    *arclight.Power
}

// SavePowerOutput reports the stored power and its cost
type SavePowerOutput struct {
	Power *arclight.Power
	Cost  calculators.CostTotals
}

// SaveTechniqueInput carries the technique to store
type SaveTechniqueInput struct {
	PlayerID  string
	Technique *arclight.Technique
}

// SaveTechniqueOutput reports the stored technique and its cost
type SaveTechniqueOutput struct {
	Technique *arclight.Technique
	Cost      calculators.CostTotals
}

// SaveItemInput carries the item to store
type SaveItemInput struct {
	PlayerID string
	Item     *arclight.Item
}

// SaveItemOutput reports the stored item and its cost
type SaveItemOutput struct {
	Item *arclight.Item
	Cost calculators.CostTotals
}

// DeleteEntryInput identifies the library entry to remove
type DeleteEntryInput struct {
	PlayerID string
	Kind     library.EntryKind
	EntryID  string
}

// DeleteEntryOutput defines the output for removing an entry
type DeleteEntryOutput struct{}

func (o *orchestrator) PreviewPower(ctx context.Context, input *PreviewPowerInput) (*PreviewOutput, error) {
	if input == nil || input.Power == nil {
		return nil, errors.InvalidArgument("power cannot be nil")
	}

	idx, err := o.partIndex(ctx, partTablePower)
	if err != nil {
		return nil, err
	}

	p := input.Power
	return &PreviewOutput{
		Cost:   calculators.PowerCost(*p, idx),
		Action: calculators.ActionLabel(p.ActionType, p.Reaction),
		Damage: calculators.DamageLabel(p.Damage, p.BonusDamage),
	}, nil
}

func (o *orchestrator) PreviewTechnique(ctx context.Context, input *PreviewTechniqueInput) (*PreviewOutput, error) {
	if input == nil || input.Technique == nil {
		return nil, errors.InvalidArgument("technique cannot be nil")
	}

	idx, err := o.partIndex(ctx, partTableTechnique)
	if err != nil {
		return nil, err
	}

	t := input.Technique
	return &PreviewOutput{
		Cost:   calculators.TechniqueCost(*t, idx),
		Action: calculators.ActionLabel(t.ActionType, t.Reaction),
		Damage: calculators.DamageLabel(t.Damage, t.BonusDamage),
	}, nil
}

func (o *orchestrator) PreviewItem(ctx context.Context, input *PreviewItemInput) (*PreviewOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}

	idx, err := o.partIndex(ctx, partTableItem)
	if err != nil {
		return nil, err
	}

	return &PreviewOutput{
		Cost:   calculators.ItemCost(*input.Item, idx),
		Damage: input.Item.Damage,
	}, nil
}

func (o *orchestrator) SavePower(ctx context.Context, input *SavePowerInput) (*SavePowerOutput, error) {
	if input == nil || input.Power == nil {
		return nil, errors.InvalidArgument("power cannot be nil")
	}

	idx, err := o.partIndex(ctx, partTablePower)
	if err != nil {
		return nil, err
	}
	cost := calculators.PowerCost(*input.Power, idx)

	out, err := o.libraryRepo.UpsertPower(ctx, library.UpsertPowerInput{
		PlayerID: input.PlayerID,
		Power:    input.Power,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "saved power to library",
		"player_id", input.PlayerID,
		"power_id", out.Power.ID,
		"energy", cost.Energy,
		"tp", cost.TrainingPointsDisplay)

	return &SavePowerOutput{Power: out.Power, Cost: cost}, nil
}

func (o *orchestrator) SaveTechnique(ctx context.Context, input *SaveTechniqueInput) (*SaveTechniqueOutput, error) {
	if input == nil || input.Technique == nil {
		return nil, errors.InvalidArgument("technique cannot be nil")
	}

	idx, err := o.partIndex(ctx, partTableTechnique)
	if err != nil {
		return nil, err
	}
	cost := calculators.TechniqueCost(*input.Technique, idx)

	out, err := o.libraryRepo.UpsertTechnique(ctx, library.UpsertTechniqueInput{
		PlayerID:  input.PlayerID,
		Technique: input.Technique,
	})
	if err != nil {
		return nil, err
	}

	return &SaveTechniqueOutput{Technique: out.Technique, Cost: cost}, nil
}

func (o *orchestrator) SaveItem(ctx context.Context, input *SaveItemInput) (*SaveItemOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}

	idx, err := o.partIndex(ctx, partTableItem)
	if err != nil {
		return nil, err
	}
	cost := calculators.ItemCost(*input.Item, idx)

	out, err := o.libraryRepo.UpsertItem(ctx, library.UpsertItemInput{
		PlayerID: input.PlayerID,
		Item:     input.Item,
	})
	if err != nil {
		return nil, err
	}

	return &SaveItemOutput{Item: out.Item, Cost: cost}, nil
}

func (o *orchestrator) DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	_, err := o.libraryRepo.DeleteEntry(ctx, library.DeleteEntryInput{
		PlayerID: input.PlayerID,
		Kind:     input.Kind,
		EntryID:  input.EntryID,
	})
	if err != nil {
		return nil, err
	}
	return &DeleteEntryOutput{}, nil
}

type partTable int

const (
	partTablePower partTable = iota
	partTableTechnique
	partTableItem
)

// partIndex builds the lookup for one of the codex part tables, with the
// builtin mechanic parts always present
func (o *orchestrator) partIndex(ctx context.Context, table partTable) (*arclight.PartIndex, error) {
	out, err := o.codexRepo.GetSnapshot(ctx, codex.GetSnapshotInput{})
	if err != nil {
		return nil, err
	}

	var defs []arclight.Part
	switch table {
	case partTablePower:
		defs = out.Snapshot.PowerParts
	case partTableTechnique:
		defs = out.Snapshot.TechniqueParts
	case partTableItem:
		defs = out.Snapshot.ItemProperties
	}

	return calculators.MechanicIndex(defs), nil
}
