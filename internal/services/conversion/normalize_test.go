package conversion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func (s *NormalizeTestSuite) TestBasicFields() {
	data := &arclight.CharacterData{
		ID:       "char_1",
		PlayerID: "player_1",
		Name:     "Vex",
		Level:    3,
		Abilities: arclight.AbilitiesData{
			Strength: 1, Agility: 2,
		},
		MartialProficiency: 2,
	}

	c := ToCharacter(data)
	s.Equal("char_1", c.ID)
	s.Equal("Vex", c.Name)
	s.Equal(3, c.Level)
	s.Equal(2, c.Abilities.Agility)
	s.Equal(2, c.MartialProficiency)
	s.Equal(arclight.EntityPlayer, c.Kind, "kind defaults to player")
}

func (s *NormalizeTestSuite) TestLevelClampsToOne() {
	c := ToCharacter(&arclight.CharacterData{ID: "c", Level: 0})
	s.Equal(1, c.Level)

	c = ToCharacter(&arclight.CharacterData{ID: "c", Level: -2})
	s.Equal(1, c.Level)
}

func (s *NormalizeTestSuite) TestNilInput() {
	s.Nil(ToCharacter(nil))
}

func (s *NormalizeTestSuite) TestLegacyResourceFields() {
	s.Run("flat field wins over the nested object", func() {
		data := &arclight.CharacterData{
			ID:            "c",
			CurrentHealth: 12,
			Health:        &arclight.LegacyResource{Current: 5},
		}
		s.Equal(12, ToCharacter(data).CurrentHealth)
	})

	s.Run("nested object fills an absent flat field", func() {
		data := &arclight.CharacterData{
			ID:     "c",
			Health: &arclight.LegacyResource{Current: 5},
			Energy: &arclight.LegacyResource{Current: 9},
		}
		c := ToCharacter(data)
		s.Equal(5, c.CurrentHealth)
		s.Equal(9, c.CurrentEnergy)
	})
}

func (s *NormalizeTestSuite) TestDefenseSkillsReconciliation() {
	s.Run("defenseSkills wins when both present", func() {
		data := &arclight.CharacterData{
			ID:            "c",
			DefenseSkills: &arclight.DefenseSkillsData{Reflex: 2},
			DefenseVals:   &arclight.DefenseSkillsData{Reflex: 9, Might: 1},
		}
		c := ToCharacter(data)
		s.Equal(2, c.DefenseSkills.Reflex)
		s.Equal(0, c.DefenseSkills.Might)
	})

	s.Run("defenseVals fills in when defenseSkills is absent", func() {
		data := &arclight.CharacterData{
			ID:          "c",
			DefenseVals: &arclight.DefenseSkillsData{Might: 3},
		}
		s.Equal(3, ToCharacter(data).DefenseSkills.Might)
	})
}

func (s *NormalizeTestSuite) TestMilestoneKeysBecomeInts() {
	data := &arclight.CharacterData{
		ID: "c",
		MilestoneChoices: map[string]arclight.MilestoneChoice{
			"4":   arclight.MilestoneInnate,
			"7":   arclight.MilestoneFeat,
			"bad": arclight.MilestoneFeat,
			"-1":  arclight.MilestoneInnate,
		},
	}

	c := ToCharacter(data)
	s.Equal(map[int]arclight.MilestoneChoice{
		4: arclight.MilestoneInnate,
		7: arclight.MilestoneFeat,
	}, c.MilestoneChoices)
}

func (s *NormalizeTestSuite) TestEquipmentDropsEmptyNames() {
	data := &arclight.CharacterData{
		ID: "c",
		Equipment: arclight.EquipmentData{
			Weapons: arclight.WeaponDataList{{Name: "Saber", Equipped: true}, {Name: ""}},
			Items:   arclight.ItemDataList{{Name: "Rations"}, {Name: "Rope", Quantity: 3}},
		},
	}

	c := ToCharacter(data)
	s.Len(c.Equipment.Weapons, 1)
	s.Equal("Saber", c.Equipment.Weapons[0].Name)
	s.Equal(1, c.Equipment.Items[0].Quantity, "quantity defaults to 1")
	s.Equal(3, c.Equipment.Items[1].Quantity)
}

func (s *NormalizeTestSuite) TestFullLegacyDocumentDecodes() {
	// A representative old save: string skills, numeric strings, single-object
	// equipment, nested health, defenseVals.
	raw := `{
		"id": "char_legacy",
		"playerId": "p1",
		"name": "Old Timer",
		"level": "4",
		"abilities": {"strength": "2", "vitality": 1},
		"martialProf": 2,
		"healthPoints": "10",
		"health": {"current": 17},
		"skills": ["athletics", {"name": "stealth", "skill_val": 2, "prof": true}],
		"defenseVals": {"might": 1},
		"techniques": ["Riposte"],
		"equipment": {"weapons": {"name": "Old Blade", "equipped": true}}
	}`

	var data arclight.CharacterData
	s.Require().NoError(json.Unmarshal([]byte(raw), &data))

	c := ToCharacter(&data)
	s.Equal(4, c.Level)
	s.Equal(2, c.Abilities.Strength)
	s.Equal(10, c.AllocatedHealthPoints)
	s.Equal(17, c.CurrentHealth)
	s.Equal(1, c.DefenseSkills.Might)

	s.Require().Len(c.Skills, 2)
	s.Equal(arclight.Skill{Name: "athletics"}, c.Skills[0])
	s.True(c.Skills[1].Proficient)

	s.Require().Len(c.Techniques, 1)
	s.Equal("Riposte", c.Techniques[0].Name)

	s.Require().Len(c.Equipment.Weapons, 1)
	s.True(c.Equipment.Weapons[0].Equipped)
}

func (s *NormalizeTestSuite) TestAdvancedNotes() {
	s.Run("valid blob decodes", func() {
		c := ToCharacter(&arclight.CharacterData{ID: "c", AdvancedNotes: `{"theme":"dark"}`})
		s.Equal("dark", c.AdvancedNotes["theme"])
	})

	s.Run("corrupt blob is dropped, not fatal", func() {
		c := ToCharacter(&arclight.CharacterData{ID: "c", AdvancedNotes: `{not json`})
		s.Nil(c.AdvancedNotes)
	})
}
