package library

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/pkg/idgen"
	redisclient "github.com/arcforge/codex-api/internal/redis"
	"github.com/arcforge/codex-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	client  redisclient.Client
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.client = client
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := NewRedis(&RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewSequential("lib"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) TestEmptyLibrary() {
	out, err := s.repo.GetLibrary(s.ctx, GetLibraryInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(out.Library.Powers)
	s.Empty(out.Library.Techniques)
	s.Empty(out.Library.Items)
}

func (s *RedisRepositoryTestSuite) TestUpsertAssignsIDs() {
	out, err := s.repo.UpsertPower(s.ctx, UpsertPowerInput{
		PlayerID: "player_1",
		Power:    &arclight.Power{Name: "Flame Lance"},
	})
	s.Require().NoError(err)
	s.Equal("lib_1", out.Power.ID)

	s.Run("existing IDs are kept", func() {
		out, err := s.repo.UpsertPower(s.ctx, UpsertPowerInput{
			PlayerID: "player_1",
			Power:    &arclight.Power{ID: "pow_custom", Name: "Frost Nova"},
		})
		s.Require().NoError(err)
		s.Equal("pow_custom", out.Power.ID)
	})
}

func (s *RedisRepositoryTestSuite) TestRoundTrip() {
	power := &arclight.Power{
		Name:       "Flame Lance",
		ActionType: arclight.ActionQuick,
		Parts: []arclight.SelectedPart{
			{Part: arclight.IDRef("part_bolt"), OptionLevels: [3]int{2}},
		},
	}
	_, err := s.repo.UpsertPower(s.ctx, UpsertPowerInput{PlayerID: "player_1", Power: power})
	s.Require().NoError(err)

	_, err = s.repo.UpsertTechnique(s.ctx, UpsertTechniqueInput{
		PlayerID:  "player_1",
		Technique: &arclight.Technique{Name: "Riposte", WeaponTP: 3},
	})
	s.Require().NoError(err)

	_, err = s.repo.UpsertItem(s.ctx, UpsertItemInput{
		PlayerID: "player_1",
		Item:     &arclight.Item{Name: "Saber", Kind: arclight.ItemWeapon},
	})
	s.Require().NoError(err)

	out, err := s.repo.GetLibrary(s.ctx, GetLibraryInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Library.Powers, 1)
	s.Equal(arclight.ActionQuick, out.Library.Powers[0].ActionType)
	s.Equal([3]int{2, 0, 0}, out.Library.Powers[0].Parts[0].OptionLevels)
	s.Len(out.Library.Techniques, 1)
	s.Len(out.Library.Items, 1)
}

func (s *RedisRepositoryTestSuite) TestLibrariesAreIsolatedPerPlayer() {
	_, err := s.repo.UpsertPower(s.ctx, UpsertPowerInput{
		PlayerID: "player_1",
		Power:    &arclight.Power{Name: "Flame Lance"},
	})
	s.Require().NoError(err)

	out, err := s.repo.GetLibrary(s.ctx, GetLibraryInput{PlayerID: "player_2"})
	s.Require().NoError(err)
	s.Empty(out.Library.Powers)
}

func (s *RedisRepositoryTestSuite) TestCorruptEntryIsSkipped() {
	_, err := s.repo.UpsertPower(s.ctx, UpsertPowerInput{
		PlayerID: "player_1",
		Power:    &arclight.Power{Name: "Flame Lance"},
	})
	s.Require().NoError(err)
	s.Require().NoError(s.client.HSet(s.ctx, "library:player_1:powers", "bad", "{not json").Err())

	out, err := s.repo.GetLibrary(s.ctx, GetLibraryInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Len(out.Library.Powers, 1)
}

func (s *RedisRepositoryTestSuite) TestDeleteEntry() {
	out, err := s.repo.UpsertItem(s.ctx, UpsertItemInput{
		PlayerID: "player_1",
		Item:     &arclight.Item{Name: "Saber", Kind: arclight.ItemWeapon},
	})
	s.Require().NoError(err)

	_, err = s.repo.DeleteEntry(s.ctx, DeleteEntryInput{
		PlayerID: "player_1",
		Kind:     EntryItem,
		EntryID:  out.Item.ID,
	})
	s.Require().NoError(err)

	lib, err := s.repo.GetLibrary(s.ctx, GetLibraryInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(lib.Library.Items)

	s.Run("missing entry", func() {
		_, err := s.repo.DeleteEntry(s.ctx, DeleteEntryInput{
			PlayerID: "player_1",
			Kind:     EntryItem,
			EntryID:  "ghost",
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("unknown kind", func() {
		_, err := s.repo.DeleteEntry(s.ctx, DeleteEntryInput{
			PlayerID: "player_1",
			Kind:     "spells",
			EntryID:  "x",
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.GetLibrary(s.ctx, GetLibraryInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.UpsertPower(s.ctx, UpsertPowerInput{PlayerID: "p"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.UpsertTechnique(s.ctx, UpsertTechniqueInput{
		PlayerID:  "p",
		Technique: &arclight.Technique{},
	})
	s.True(errors.IsInvalidArgument(err))
}
