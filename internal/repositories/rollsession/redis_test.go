package rollsession

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/pkg/clock"
	"github.com/arcforge/codex-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	repo, err := NewRedisRepository(&Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) testRoll(id string, total int32) RollRecord {
	return RollRecord{
		RollID:      id,
		Notation:    "1d20+5",
		Dice:        []int32{total - 5},
		Total:       total,
		Modifier:    5,
		Description: "stealth check",
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, CreateInput{
		CharacterID: "char_1",
		Context:     "skill:stealth",
		Rolls:       []RollRecord{s.testRoll("roll_1", 17)},
	})
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(defaultTTL), created.Session.ExpiresAt)

	got, err := s.repo.Get(s.ctx, GetInput{CharacterID: "char_1", Context: "skill:stealth"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 1)
	s.Equal(int32(17), got.Session.Rolls[0].Total)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, CreateInput{Context: "x"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, CreateInput{CharacterID: "char_1"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, GetInput{CharacterID: "char_1", Context: "none"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestExpiredSessionReadsAsNotFound() {
	_, err := s.repo.Create(s.ctx, CreateInput{
		CharacterID: "char_1",
		Context:     "skill:stealth",
		TTL:         5 * time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(6 * time.Minute)

	_, err = s.repo.Get(s.ctx, GetInput{CharacterID: "char_1", Context: "skill:stealth"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestAddRolls() {
	_, err := s.repo.Create(s.ctx, CreateInput{
		CharacterID: "char_1",
		Context:     "skill:stealth",
		Rolls:       []RollRecord{s.testRoll("roll_1", 17)},
	})
	s.Require().NoError(err)

	out, err := s.repo.AddRolls(s.ctx, AddRollsInput{
		CharacterID: "char_1",
		Context:     "skill:stealth",
		Rolls:       []RollRecord{s.testRoll("roll_2", 9)},
	})
	s.Require().NoError(err)
	s.Len(out.Session.Rolls, 2)

	s.Run("missing session", func() {
		_, err := s.repo.AddRolls(s.ctx, AddRollsInput{
			CharacterID: "char_2",
			Context:     "skill:stealth",
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, CreateInput{
		CharacterID: "char_1",
		Context:     "skill:stealth",
		Rolls:       []RollRecord{s.testRoll("roll_1", 17), s.testRoll("roll_2", 9)},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, DeleteInput{CharacterID: "char_1", Context: "skill:stealth"})
	s.Require().NoError(err)
	s.Equal(int32(2), out.RollsDeleted)

	_, err = s.repo.Get(s.ctx, GetInput{CharacterID: "char_1", Context: "skill:stealth"})
	s.True(errors.IsNotFound(err))
}
