package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

type ProgressionTestSuite struct {
	suite.Suite
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) TestAbilityPoints() {
	s.Run("flat through level 2", func() {
		s.Equal(7, AbilityPoints(1, nil))
		s.Equal(7, AbilityPoints(2, nil))
		s.Equal(7, AbilityPoints(3, nil))
	})

	s.Run("steps by one every three levels", func() {
		s.Equal(8, AbilityPoints(4, nil))
		s.Equal(8, AbilityPoints(6, nil))
		s.Equal(9, AbilityPoints(7, nil))
		s.Equal(10, AbilityPoints(10, nil))
	})

	s.Run("monotonically non-decreasing through level 30", func() {
		prev := AbilityPoints(1, nil)
		for level := 2; level <= 30; level++ {
			cur := AbilityPoints(level, nil)
			s.GreaterOrEqual(cur, prev, "level %d", level)
			s.LessOrEqual(cur-prev, 1, "level %d", level)
			prev = cur
		}
	})

	s.Run("level below 1 clamps", func() {
		s.Equal(7, AbilityPoints(0, nil))
		s.Equal(7, AbilityPoints(-3, nil))
	})

	s.Run("override supersedes the base", func() {
		base := 10
		rules := &GameRules{BaseAbilityPoints: &base}
		s.Equal(10, AbilityPoints(1, rules))
		s.Equal(11, AbilityPoints(4, rules))
	})
}

func (s *ProgressionTestSuite) TestSkillPoints() {
	testCases := []struct {
		name  string
		level int
		kind  arclight.EntityKind
		want  int
	}{
		{"character level 1", 1, arclight.EntityPlayer, 3},
		{"character level 4", 4, arclight.EntityPlayer, 12},
		{"creature level 1", 1, arclight.EntityCreature, 5},
		{"creature level 3", 3, arclight.EntityCreature, 15},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, SkillPoints(tc.level, tc.kind, nil))
		})
	}

	s.Run("legacy variant keeps the flat base", func() {
		s.Equal(5, LegacySkillPoints(1))
		s.Equal(17, LegacySkillPoints(5))
	})
}

func (s *ProgressionTestSuite) TestHealthEnergyPool() {
	s.Run("player pool", func() {
		for level := 1; level <= 20; level++ {
			s.Equal(18+12*(level-1), HealthEnergyPool(level, arclight.EntityPlayer, nil))
		}
	})

	s.Run("creature base is 26", func() {
		s.Equal(26, HealthEnergyPool(1, arclight.EntityCreature, nil))
		s.Equal(38, HealthEnergyPool(2, arclight.EntityCreature, nil))
	})
}

func (s *ProgressionTestSuite) TestProficiency() {
	testCases := []struct {
		level int
		want  int
	}{
		{1, 2}, {4, 2}, {5, 3}, {9, 3}, {10, 4}, {15, 5}, {20, 6},
	}

	for _, tc := range testCases {
		s.Equal(tc.want, Proficiency(tc.level, nil), "level %d", tc.level)
	}
}

func (s *ProgressionTestSuite) TestPlayerTrainingPoints() {
	s.Run("level 1 is base plus ability", func() {
		s.Equal(22, PlayerTrainingPoints(1, 0, nil))
		s.Equal(25, PlayerTrainingPoints(1, 3, nil))
	})

	s.Run("per-level gain scales with ability", func() {
		// 22 + 2 + (2+2)*2
		s.Equal(32, PlayerTrainingPoints(3, 2, nil))
	})
}

func (s *ProgressionTestSuite) TestCreatureTrainingPoints() {
	s.Run("level 1", func() {
		s.Equal(11, CreatureTrainingPoints(1, 2, nil))
	})

	s.Run("whole levels past 1", func() {
		// 9 + 2 + (3-1)*(1+2)
		s.Equal(17, CreatureTrainingPoints(3, 2, nil))
	})

	s.Run("sub-levels below 1 scale and round up", func() {
		s.Equal(13, CreatureTrainingPoints(0.5, 2, nil)) // ceil(11)+2
		s.Equal(6, CreatureTrainingPoints(0.25, 0, nil)) // ceil(5.5)
	})

	s.Run("zero and negative levels degrade to ability", func() {
		s.Equal(2, CreatureTrainingPoints(0, 2, nil))
	})

	s.Run("sub-level branch honors the training base override", func() {
		base := 30
		rules := &GameRules{PlayerTrainingBase: &base}
		s.Equal(17, CreatureTrainingPoints(0.5, 2, rules)) // ceil(15)+2
	})
}

func (s *ProgressionTestSuite) TestCreatureFeatPoints() {
	s.Run("level 1 rounds up the half point", func() {
		s.Equal(2, CreatureFeatPoints(1, 0))
		s.Equal(4, CreatureFeatPoints(1, 2))
	})

	s.Run("one more per whole level", func() {
		s.Equal(4, CreatureFeatPoints(3, 0)) // ceil(1.5 + 2)
	})

	s.Run("fractional level scales linearly", func() {
		s.Equal(1, CreatureFeatPoints(0.5, 0)) // ceil(0.75)
	})

	s.Run("non-positive level yields zero", func() {
		s.Equal(0, CreatureFeatPoints(0, 3))
	})
}

func (s *ProgressionTestSuite) TestCreatureCurrency() {
	s.Equal(200, CreatureCurrency(1))
	s.Equal(290, CreatureCurrency(2))
	s.Equal(421, CreatureCurrency(3))
}

func (s *ProgressionTestSuite) TestAbilityCosts() {
	s.Run("steps below 4 cost one point", func() {
		s.Equal(3, AbilityIncreaseCost(0, 3))
	})

	s.Run("steps at 4 and above cost two", func() {
		s.Equal(2, AbilityIncreaseCost(3, 4))
		s.Equal(6, AbilityIncreaseCost(3, 6))
	})

	s.Run("no cost for non-increase", func() {
		s.Equal(0, AbilityIncreaseCost(3, 3))
		s.Equal(0, AbilityIncreaseCost(4, 2))
	})

	s.Run("decrease refunds at the cheap rate", func() {
		s.Equal(2, AbilityDecreaseRefund(6, 4))
		s.Equal(0, AbilityDecreaseRefund(2, 5))
	})
}

func TestGameRulesNilSafety(t *testing.T) {
	// Every formula accepts a nil rules record.
	var rules *GameRules
	assert.Equal(t, 7, AbilityPoints(1, rules))
	assert.Equal(t, 18, HealthEnergyPool(1, arclight.EntityPlayer, rules))
	assert.Equal(t, 2, Proficiency(1, rules))
}
