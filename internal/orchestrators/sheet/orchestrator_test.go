package sheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/pkg/idgen"
	"github.com/arcforge/codex-api/internal/repositories/character"
	charactermock "github.com/arcforge/codex-api/internal/repositories/character/mock"
	"github.com/arcforge/codex-api/internal/repositories/codex"
	codexmock "github.com/arcforge/codex-api/internal/repositories/codex/mock"
	"github.com/arcforge/codex-api/internal/repositories/library"
	librarymock "github.com/arcforge/codex-api/internal/repositories/library/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	charRepo  *charactermock.MockRepository
	libRepo   *librarymock.MockRepository
	codexRepo *codexmock.MockRepository
	svc       Service
	ctx       context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.charRepo = charactermock.NewMockRepository(s.ctrl)
	s.libRepo = librarymock.NewMockRepository(s.ctrl)
	s.codexRepo = codexmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := NewOrchestrator(&Config{
		CharacterRepo: s.charRepo,
		LibraryRepo:   s.libRepo,
		CodexRepo:     s.codexRepo,
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) storedCharacter() *arclight.CharacterData {
	return &arclight.CharacterData{
		ID:       "char_1",
		PlayerID: "player_1",
		Name:     "Vex",
		Level:    4,
		Abilities: arclight.AbilitiesData{
			Strength: 1, Vitality: 3, Agility: 2, Intelligence: 4,
		},
		PowerAbility:          arclight.AbilityIntelligence,
		PowerProficiency:      2,
		AllocatedHealthPoints: 10,
		AllocatedEnergyPoints: 6,
		Powers: []arclight.PowerRefData{
			{ID: "pow_1", Name: "Flame Lance", Innate: true},
		},
		Equipment: arclight.EquipmentData{
			Armor: arclight.ArmorDataList{{Name: "Plated Coat", Equipped: true}},
		},
		CurrentHealth: 20,
	}
}

func (s *OrchestratorTestSuite) snapshot() *codex.Snapshot {
	return &codex.Snapshot{
		Version: 1,
		Equipment: []arclight.Item{
			{ID: "cdx_coat", Name: "Plated Coat", Kind: arclight.ItemArmor, Armor: 3},
		},
	}
}

func (s *OrchestratorTestSuite) expectSheetLoads() {
	s.charRepo.EXPECT().
		Get(gomock.Any(), character.GetInput{ID: "char_1"}).
		Return(&character.GetOutput{CharacterData: s.storedCharacter()}, nil)
	s.codexRepo.EXPECT().
		GetSnapshot(gomock.Any(), gomock.Any()).
		Return(&codex.GetSnapshotOutput{Snapshot: s.snapshot()}, nil)
}

func (s *OrchestratorTestSuite) TestGetSheet() {
	s.expectSheetLoads()
	s.libRepo.EXPECT().
		GetLibrary(gomock.Any(), library.GetLibraryInput{PlayerID: "player_1"}).
		Return(&library.GetLibraryOutput{Library: &arclight.Library{
			Powers: []arclight.Power{{ID: "pow_1", Name: "Flame Lance", ActionType: arclight.ActionQuick}},
		}}, nil)

	out, err := s.svc.GetSheet(s.ctx, &GetSheetInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal("Vex", out.Character.Name)
	s.Equal(30, out.Stats.MaxHealth) // 8 + 3*4 + 10
	s.Equal(22, out.Stats.MaxEnergy) // 4*4 + 6
	s.Equal(3, out.Stats.Armor, "codex armor resolves through enrichment")

	s.Require().Len(out.Enriched.Powers, 1)
	s.False(out.Enriched.Powers[0].NotInLibrary)

	s.Equal(8, out.Budgets.AbilityPoints)
	s.Equal(12, out.Budgets.SkillPoints)
	s.Equal(54, out.Budgets.HealthEnergyPool) // 18 + 12*3
	// power ability intelligence 4: 22 + 4 + (2+4)*3
	s.Equal(44, out.Budgets.TrainingPoints)

	s.Equal(9, out.Progression.InnateThreshold)
	s.Equal(3, out.Progression.InnatePools)
}

func (s *OrchestratorTestSuite) TestGetSheetValidation() {
	_, err := s.svc.GetSheet(s.ctx, &GetSheetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetSheetNotFound() {
	s.charRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character with ID char_1 not found"))

	_, err := s.svc.GetSheet(s.ctx, &GetSheetInput{CharacterID: "char_1"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSaveCharacterCreates() {
	s.charRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.CreateInput) (*character.CreateOutput, error) {
			s.Equal("char_1", input.CharacterData.ID, "generated ID")
			s.Equal("player_1", input.CharacterData.PlayerID)
			return &character.CreateOutput{CharacterData: input.CharacterData}, nil
		})

	out, err := s.svc.SaveCharacter(s.ctx, &SaveCharacterInput{
		Character: &arclight.Character{Name: "Vex", PlayerID: "player_1", Level: 1},
	})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("char_1", out.CharacterID)
}

func (s *OrchestratorTestSuite) TestSaveCharacterUpdates() {
	s.charRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.UpdateInput) (*character.UpdateOutput, error) {
			s.Equal("char_9", input.CharacterData.ID)
			return &character.UpdateOutput{CharacterData: input.CharacterData}, nil
		})

	out, err := s.svc.SaveCharacter(s.ctx, &SaveCharacterInput{
		Character: &arclight.Character{ID: "char_9", Name: "Vex", PlayerID: "player_1", Level: 2},
	})
	s.Require().NoError(err)
	s.False(out.Created)
}

func (s *OrchestratorTestSuite) TestSaveCharacterValidation() {
	testCases := []struct {
		name string
		char *arclight.Character
	}{
		{"nil character", nil},
		{"missing name", &arclight.Character{PlayerID: "p"}},
		{"missing player", &arclight.Character{Name: "Vex"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.SaveCharacter(s.ctx, &SaveCharacterInput{Character: tc.char})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	s.charRepo.EXPECT().
		ListByPlayerID(gomock.Any(), character.ListByPlayerIDInput{PlayerID: "player_1"}).
		Return(&character.ListByPlayerIDOutput{Characters: []*arclight.CharacterData{
			s.storedCharacter(),
		}}, nil)

	out, err := s.svc.ListCharacters(s.ctx, &ListCharactersInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("char_1", out.Characters[0].ID)
	s.Equal(4, out.Characters[0].Level)
	s.Equal(arclight.EntityPlayer, out.Characters[0].Kind)
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.charRepo.EXPECT().
		Delete(gomock.Any(), character.DeleteInput{ID: "char_1"}).
		Return(&character.DeleteOutput{}, nil)

	_, err := s.svc.DeleteCharacter(s.ctx, &DeleteCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestAdjustResources() {
	s.expectSheetLoads()

	var saved *arclight.CharacterData
	s.charRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.UpdateInput) (*character.UpdateOutput, error) {
			saved = input.CharacterData
			return &character.UpdateOutput{CharacterData: input.CharacterData}, nil
		})

	out, err := s.svc.AdjustResources(s.ctx, &AdjustResourcesInput{
		CharacterID: "char_1",
		HealthDelta: -8,
		EnergyDelta: 5,
	})
	s.Require().NoError(err)

	s.Equal(12, out.CurrentHealth) // 20 - 8
	s.Equal(30, out.MaxHealth)
	s.Equal(5, out.CurrentEnergy) // 0 + 5
	s.Equal(arclight.FlexInt(12), saved.CurrentHealth)
}

func (s *OrchestratorTestSuite) TestAdjustResourcesClamps() {
	s.Run("damage past zero clamps to zero", func() {
		s.expectSheetLoads()
		s.charRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input character.UpdateInput) (*character.UpdateOutput, error) {
				return &character.UpdateOutput{CharacterData: input.CharacterData}, nil
			})

		out, err := s.svc.AdjustResources(s.ctx, &AdjustResourcesInput{
			CharacterID: "char_1",
			HealthDelta: -100,
		})
		s.Require().NoError(err)
		s.Equal(0, out.CurrentHealth)
	})

	s.Run("healing past max clamps to max", func() {
		s.expectSheetLoads()
		s.charRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input character.UpdateInput) (*character.UpdateOutput, error) {
				return &character.UpdateOutput{CharacterData: input.CharacterData}, nil
			})

		out, err := s.svc.AdjustResources(s.ctx, &AdjustResourcesInput{
			CharacterID: "char_1",
			HealthDelta: 100,
		})
		s.Require().NoError(err)
		s.Equal(30, out.CurrentHealth)
	})
}
