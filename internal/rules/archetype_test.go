package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

type ArchetypeTestSuite struct {
	suite.Suite
}

func TestArchetypeSuite(t *testing.T) {
	suite.Run(t, new(ArchetypeTestSuite))
}

func (s *ArchetypeTestSuite) TestProgressionKindFor() {
	testCases := []struct {
		name        string
		martialProf int
		powerProf   int
		want        ProgressionKind
	}{
		{"power only", 0, 3, ProgressionPower},
		{"martial only", 2, 0, ProgressionMartial},
		{"both", 1, 1, ProgressionMixed},
		{"neither", 0, 0, ProgressionNone},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, ProgressionKindFor(tc.martialProf, tc.powerProf))
		})
	}
}

func (s *ArchetypeTestSuite) TestPurePowerProgression() {
	s.Run("below level 4", func() {
		p := ArchetypeProgressionAt(3, 0, 2, nil)
		s.Equal(ProgressionPower, p.Kind)
		s.Equal(8, p.InnateThreshold)
		s.Equal(2, p.InnatePools)
		s.Equal(16, p.InnateEnergy)
	})

	s.Run("threshold and pools step together", func() {
		p := ArchetypeProgressionAt(4, 0, 2, nil)
		s.Equal(9, p.InnateThreshold)
		s.Equal(3, p.InnatePools)
		s.Equal(27, p.InnateEnergy)

		p = ArchetypeProgressionAt(10, 0, 2, nil)
		s.Equal(11, p.InnateThreshold)
		s.Equal(5, p.InnatePools)
	})

	s.Run("no bonus feats", func() {
		p := ArchetypeProgressionAt(10, 0, 2, nil)
		s.Equal(0, p.BonusFeats)
	})
}

func (s *ArchetypeTestSuite) TestPureMartialProgression() {
	s.Run("bonus feats follow the step function", func() {
		s.Equal(2, ArchetypeProgressionAt(1, 2, 0, nil).BonusFeats)
		s.Equal(2, ArchetypeProgressionAt(3, 2, 0, nil).BonusFeats)
		s.Equal(3, ArchetypeProgressionAt(4, 2, 0, nil).BonusFeats)
		s.Equal(5, ArchetypeProgressionAt(10, 2, 0, nil).BonusFeats)
	})

	s.Run("no innate pools", func() {
		p := ArchetypeProgressionAt(10, 2, 0, nil)
		s.Equal(0, p.InnateThreshold)
		s.Equal(0, p.InnateEnergy)
	})
}

func (s *ArchetypeTestSuite) TestMixedProgression() {
	s.Run("base values before any milestone", func() {
		p := ArchetypeProgressionAt(3, 1, 1, nil)
		s.Equal(ProgressionMixed, p.Kind)
		s.Equal(6, p.InnateThreshold)
		s.Equal(1, p.InnatePools)
		s.Equal(1, p.BonusFeats)
		s.Equal(6, p.InnateEnergy)
	})

	s.Run("milestone choices apply in level order", func() {
		choices := map[int]arclight.MilestoneChoice{
			4: arclight.MilestoneInnate,
			7: arclight.MilestoneFeat,
		}
		p := ArchetypeProgressionAt(10, 1, 1, choices)
		s.Equal(7, p.InnateThreshold)
		s.Equal(2, p.InnatePools)
		s.Equal(2, p.BonusFeats)
		s.Equal(14, p.InnateEnergy)
	})

	s.Run("unresolved milestones contribute nothing", func() {
		p := ArchetypeProgressionAt(10, 1, 1, map[int]arclight.MilestoneChoice{
			4: arclight.MilestoneInnate,
		})
		s.Equal(7, p.InnateThreshold)
		s.Equal(1, p.BonusFeats)
	})

	s.Run("milestones past the level are ignored", func() {
		p := ArchetypeProgressionAt(3, 1, 1, map[int]arclight.MilestoneChoice{
			4: arclight.MilestoneInnate,
		})
		s.Equal(6, p.InnateThreshold)
	})
}

func (s *ArchetypeTestSuite) TestNoneProgressionIsZero() {
	p := ArchetypeProgressionAt(10, 0, 0, nil)
	s.Equal(ProgressionNone, p.Kind)
	s.Equal(ArchetypeProgression{Kind: ProgressionNone}, p)
}
