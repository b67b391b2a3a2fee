package library

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/pkg/idgen"
	redisclient "github.com/arcforge/codex-api/internal/redis"
)

const (
	errPlayerIDEmpty = "player ID cannot be empty"
	errEntryIDEmpty  = "entry ID cannot be empty"
)

// libraryKey builds the hash key for one of a player's sub-collections,
// e.g. library:player_1:powers
func libraryKey(playerID string, kind EntryKind) string {
	return fmt.Sprintf("library:%s:%s", playerID, kind)
}

type redisRepository struct {
	client redisclient.Client
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis library repository.
type RedisConfig struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed library repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("lib")
	}

	return &redisRepository{
		client: cfg.Client,
		idGen:  gen,
	}, nil
}

func (r *redisRepository) GetLibrary(ctx context.Context, input GetLibraryInput) (*GetLibraryOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	lib := &arclight.Library{}

	if err := loadCollection(ctx, r.client, libraryKey(input.PlayerID, EntryPower), &lib.Powers); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, r.client, libraryKey(input.PlayerID, EntryTechnique), &lib.Techniques); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, r.client, libraryKey(input.PlayerID, EntryItem), &lib.Items); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "loaded player library",
		"player_id", input.PlayerID,
		"powers", len(lib.Powers),
		"techniques", len(lib.Techniques),
		"items", len(lib.Items))

	return &GetLibraryOutput{Library: lib}, nil
}

// loadCollection reads every entry of a hash into out. An entry that fails to
// decode is skipped and logged, not fatal; one corrupt row must not take the
// library down.
func loadCollection[T any](ctx context.Context, client redisclient.Client, key string, out *[]T) error {
	rows, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to load library collection %s", key)
	}

	for field, raw := range rows {
		var entry T
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			slog.WarnContext(ctx, "skipping corrupt library entry",
				"key", key,
				"field", field,
				"error", err.Error())
			continue
		}
		*out = append(*out, entry)
	}
	return nil
}

func (r *redisRepository) UpsertPower(ctx context.Context, input UpsertPowerInput) (*UpsertPowerOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Power == nil {
		return nil, errors.InvalidArgument("power cannot be nil")
	}
	if input.Power.Name == "" {
		return nil, errors.InvalidArgument("power name cannot be empty")
	}

	if input.Power.ID == "" {
		input.Power.ID = r.idGen.Generate()
	}
	if err := r.upsert(ctx, input.PlayerID, EntryPower, input.Power.ID, input.Power); err != nil {
		return nil, err
	}
	return &UpsertPowerOutput{Power: input.Power}, nil
}

func (r *redisRepository) UpsertTechnique(ctx context.Context, input UpsertTechniqueInput) (*UpsertTechniqueOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Technique == nil {
		return nil, errors.InvalidArgument("technique cannot be nil")
	}
	if input.Technique.Name == "" {
		return nil, errors.InvalidArgument("technique name cannot be empty")
	}

	if input.Technique.ID == "" {
		input.Technique.ID = r.idGen.Generate()
	}
	if err := r.upsert(ctx, input.PlayerID, EntryTechnique, input.Technique.ID, input.Technique); err != nil {
		return nil, err
	}
	return &UpsertTechniqueOutput{Technique: input.Technique}, nil
}

func (r *redisRepository) UpsertItem(ctx context.Context, input UpsertItemInput) (*UpsertItemOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}
	if input.Item.Name == "" {
		return nil, errors.InvalidArgument("item name cannot be empty")
	}

	if input.Item.ID == "" {
		input.Item.ID = r.idGen.Generate()
	}
	if err := r.upsert(ctx, input.PlayerID, EntryItem, input.Item.ID, input.Item); err != nil {
		return nil, err
	}
	return &UpsertItemOutput{Item: input.Item}, nil
}

func (r *redisRepository) upsert(ctx context.Context, playerID string, kind EntryKind, entryID string, entry any) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal library entry")
	}
	if err := r.client.HSet(ctx, libraryKey(playerID, kind), entryID, data).Err(); err != nil {
		return errors.Wrapf(err, "failed to save library entry")
	}
	return nil
}

func (r *redisRepository) DeleteEntry(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.EntryID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}
	switch input.Kind {
	case EntryPower, EntryTechnique, EntryItem:
	default:
		return nil, errors.InvalidArgumentf("unknown entry kind %q", input.Kind)
	}

	removed, err := r.client.HDel(ctx, libraryKey(input.PlayerID, input.Kind), input.EntryID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete library entry")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("library entry %s not found", input.EntryID)
	}
	return &DeleteEntryOutput{}, nil
}
