package codex

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/arcforge/codex-api/internal/errors"
	redisclient "github.com/arcforge/codex-api/internal/redis"
)

const (
	powerPartsKey     = "codex:power_parts"
	techniquePartsKey = "codex:technique_parts"
	itemPropertiesKey = "codex:item_properties"
	equipmentKey      = "codex:equipment"
	rulesKey          = "codex:rules"
	versionKey        = "codex:version"
)

type redisRepository struct {
	client redisclient.Client

	// cached is the last snapshot read, served while the stored version
	// still matches. Guarded by mu.
	mu     sync.RWMutex
	cached *Snapshot
}

// RedisConfig contains configuration for the Redis codex repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed codex repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) GetSnapshot(ctx context.Context, _ GetSnapshotInput) (*GetSnapshotOutput, error) {
	version, err := r.storedVersion(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	cached := r.cached
	r.mu.RUnlock()
	if cached != nil && cached.Version == version {
		return &GetSnapshotOutput{Snapshot: cached}, nil
	}

	snap := &Snapshot{Version: version}
	if err := r.loadJSON(ctx, powerPartsKey, &snap.PowerParts); err != nil {
		return nil, err
	}
	if err := r.loadJSON(ctx, techniquePartsKey, &snap.TechniqueParts); err != nil {
		return nil, err
	}
	if err := r.loadJSON(ctx, itemPropertiesKey, &snap.ItemProperties); err != nil {
		return nil, err
	}
	if err := r.loadJSON(ctx, equipmentKey, &snap.Equipment); err != nil {
		return nil, err
	}
	if err := r.loadJSON(ctx, rulesKey, &snap.Rules); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "refreshed codex snapshot",
		"version", version,
		"power_parts", len(snap.PowerParts),
		"technique_parts", len(snap.TechniqueParts),
		"equipment", len(snap.Equipment))

	r.mu.Lock()
	r.cached = snap
	r.mu.Unlock()

	return &GetSnapshotOutput{Snapshot: snap}, nil
}

func (r *redisRepository) Seed(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	pipe := r.client.TxPipeline()

	for _, table := range []struct {
		key   string
		value any
	}{
		{powerPartsKey, input.PowerParts},
		{techniquePartsKey, input.TechniqueParts},
		{itemPropertiesKey, input.ItemProperties},
		{equipmentKey, input.Equipment},
		{rulesKey, input.Rules},
	} {
		data, err := json.Marshal(table.value)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal codex table %s", table.key)
		}
		pipe.Set(ctx, table.key, data, 0)
	}

	version := pipe.Incr(ctx, versionKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to seed codex")
	}

	slog.InfoContext(ctx, "seeded codex tables", "version", version.Val())

	return &SeedOutput{Version: version.Val()}, nil
}

func (r *redisRepository) storedVersion(ctx context.Context) (int64, error) {
	version, err := r.client.Get(ctx, versionKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "failed to read codex version")
	}
	return version, nil
}

// loadJSON fills out from a whole-table JSON value. A missing key leaves the
// zero value; an unseeded codex is empty, not broken.
func (r *redisRepository) loadJSON(ctx context.Context, key string, out any) error {
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return errors.Wrapf(err, "failed to read codex table %s", key)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return errors.Wrapf(err, "failed to decode codex table %s", key)
	}
	return nil
}
