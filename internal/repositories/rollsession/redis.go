package rollsession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/pkg/clock"
	redisclient "github.com/arcforge/codex-api/internal/redis"
)

const (
	// Key pattern: roll_session:{character_id}:{context}
	sessionKeyPrefix = "roll_session:"
	defaultTTL       = 15 * time.Minute

	// Error messages
	errCharacterIDEmpty = "character ID cannot be empty"
	errContextEmpty     = "context cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for roll sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument(errContextEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	session := &RollSession{
		CharacterID: input.CharacterID,
		Context:     input.Context,
		Rolls:       input.Rolls,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(input.CharacterID, input.Context)
	if err := r.client.Set(ctx, key, sessionJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store session")
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument(errContextEmpty)
	}

	key := r.buildKey(input.CharacterID, input.Context)
	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("roll session not found")
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var session RollSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// The key TTL usually handles expiry; the timestamp check covers a
	// fixed-clock skew between writer and reader
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("roll session has expired")
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) AddRolls(ctx context.Context, input AddRollsInput) (*AddRollsOutput, error) {
	getOutput, err := r.Get(ctx, GetInput{CharacterID: input.CharacterID, Context: input.Context})
	if err != nil {
		return nil, err
	}

	session := getOutput.Session
	session.Rolls = append(session.Rolls, input.Rolls...)

	remainingTTL := session.ExpiresAt.Sub(r.clock.Now())
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(input.CharacterID, input.Context)
	if err := r.client.Set(ctx, key, sessionJSON, remainingTTL).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}

	return &AddRollsOutput{Session: session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument(errContextEmpty)
	}

	key := r.buildKey(input.CharacterID, input.Context)

	getOutput, err := r.Get(ctx, GetInput(input))

	var rollsDeleted int32
	if err == nil && getOutput.Session != nil {
		// nolint:gosec // roll count is always small
		rollsDeleted = int32(len(getOutput.Session.Rolls))
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

func (r *redisRepository) buildKey(characterID, context string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, characterID, context)
}
