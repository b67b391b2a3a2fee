package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

type CalculationsTestSuite struct {
	suite.Suite
	char *arclight.Character
}

func TestCalculationsSuite(t *testing.T) {
	suite.Run(t, new(CalculationsTestSuite))
}

func (s *CalculationsTestSuite) SetupTest() {
	s.char = &arclight.Character{
		ID:           "char_1",
		Name:         "Test Hero",
		Level:        4,
		PowerAbility: arclight.AbilityIntelligence,
		Abilities: arclight.Abilities{
			Strength: 1, Vitality: 3, Agility: 2,
			Acuity: 0, Intelligence: 4, Charisma: 1,
		},
		AllocatedHealthPoints: 10,
		AllocatedEnergyPoints: 6,
		DefenseSkills:         arclight.DefenseSkills{Reflex: 1},
		Equipment: arclight.Equipment{
			Armor: []arclight.ArmorItem{
				{Name: "Plated Coat", Equipped: true, Armor: 3},
				{Name: "Spare Mail", Equipped: false, Armor: 5},
			},
		},
	}
}

func (s *CalculationsTestSuite) TestCalculateAllStats() {
	stats := CalculateAllStats(s.char, nil)

	s.Equal(30, stats.MaxHealth) // 8 + 3*4 + 10
	s.Equal(22, stats.MaxEnergy) // 4*4 + 6
	s.Equal(8, stats.Terminal)   // ceil(30/4)
	s.Equal(7, stats.Speed)      // 6 + ceil(2/2)
	s.Equal(12, stats.Evasion)   // 10 + 2
	s.Equal(3, stats.Armor)      // equipped coat only
	s.Equal(13, stats.DefenseScores.Reflex)
	s.Equal(13, stats.DefenseScores.Fortitude)
}

func (s *CalculationsTestSuite) TestIdempotent() {
	first := CalculateAllStats(s.char, nil)
	second := CalculateAllStats(s.char, nil)
	s.Equal(first, second)
}

func (s *CalculationsTestSuite) TestNilAndZeroInputs() {
	s.Run("nil character yields the zero snapshot", func() {
		s.Equal(DerivedStats{}, CalculateAllStats(nil, nil))
	})

	s.Run("empty character never panics", func() {
		stats := CalculateAllStats(&arclight.Character{}, nil)
		s.Equal(8, stats.MaxHealth) // base only, level clamps to 1
		s.Equal(0, stats.MaxEnergy)
		s.Equal(6, stats.Speed)
		s.Equal(10, stats.DefenseScores.Might)
	})

	s.Run("level below 1 clamps", func() {
		s.char.Level = 0
		stats := CalculateAllStats(s.char, nil)
		s.Equal(8+3*1+10, stats.MaxHealth)
	})
}

func (s *CalculationsTestSuite) TestUnknownPowerAbilityReadsZero() {
	s.char.PowerAbility = "luck"
	stats := CalculateAllStats(s.char, nil)
	s.Equal(6, stats.MaxEnergy) // 0*level + allocated
}

func TestSkillBonuses(t *testing.T) {
	char := &arclight.Character{
		Abilities: arclight.Abilities{Agility: 3},
		Skills: []arclight.Skill{
			{ID: "stealth", Name: "stealth", Value: 2, Proficient: false, Ability: arclight.AbilityAgility},
			{Name: "shadowing", Value: 3, Proficient: true, Ability: arclight.AbilityAgility, BaseSkillID: "stealth"},
			{Name: "acrobatics", Value: 1, Proficient: true, Ability: arclight.AbilityAgility},
		},
	}

	bonuses := SkillBonuses(char)
	assert.Equal(t, 2, bonuses["stealth"])    // ceil(3/2), untrained
	assert.Equal(t, 4, bonuses["shadowing"])  // untrained 2 + base value 2
	assert.Equal(t, 4, bonuses["acrobatics"]) // 3 + 1

	assert.Empty(t, SkillBonuses(nil))
}
