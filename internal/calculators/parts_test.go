package calculators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

type AggregateTestSuite struct {
	suite.Suite
	index *arclight.PartIndex
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

func (s *AggregateTestSuite) SetupTest() {
	defs := []arclight.Part{
		{
			ID:     "part_a",
			Name:   "Searing Bolt",
			BaseTP: 2,
			Options: []arclight.PartOption{
				{Description: "Extra range", TPPerLevel: 1},
			},
		},
		{
			ID:   "part_b",
			Name: "Lingering Burn",
			Options: []arclight.PartOption{
				{Description: "Extra round", TPPerLevel: 0.5},
			},
		},
		{
			ID:         "part_c",
			Name:       "Blast Shape",
			BaseEnergy: 3,
			Options: []arclight.PartOption{
				{Description: "Wider", EnergyPerLevel: 2},
				{Description: "Taller", EnergyPerLevel: 1, TPPerLevel: 0.5},
			},
		},
	}
	defs = append(defs, DefaultMechanicParts()...)
	s.index = arclight.NewPartIndex(defs)
}

func (s *AggregateTestSuite) TestTotalsSumBaseAndOptions() {
	selected := []arclight.SelectedPart{
		{Part: arclight.IDRef("part_a"), OptionLevels: [3]int{3}},
		{Part: arclight.IDRef("part_b"), OptionLevels: [3]int{2}},
	}

	totals := AggregateCosts(selected, s.index)
	s.InDelta(6.0, totals.TrainingPoints, 1e-9) // (2+3) + (0+1)
	s.Equal(6, totals.TrainingPointsDisplay)
	s.Zero(totals.Energy)
}

func (s *AggregateTestSuite) TestDisplayFloorsFractions() {
	selected := []arclight.SelectedPart{
		{Part: arclight.IDRef("part_b"), OptionLevels: [3]int{3}},
	}

	totals := AggregateCosts(selected, s.index)
	s.InDelta(1.5, totals.TrainingPoints, 1e-9)
	s.Equal(1, totals.TrainingPointsDisplay, "display truncates, never rounds up")
}

func (s *AggregateTestSuite) TestIndependentOptionLevels() {
	selected := []arclight.SelectedPart{
		{Part: arclight.IDRef("part_c"), OptionLevels: [3]int{2, 1, 0}},
	}

	totals := AggregateCosts(selected, s.index)
	s.InDelta(8.0, totals.Energy, 1e-9) // 3 + 2*2 + 1
	s.InDelta(0.5, totals.TrainingPoints, 1e-9)
}

func (s *AggregateTestSuite) TestUnknownPartContributesZero() {
	selected := []arclight.SelectedPart{
		{Part: arclight.IDRef("part_a")},
		{Part: arclight.IDRef("part_gone"), OptionLevels: [3]int{5}},
	}

	totals := AggregateCosts(selected, s.index)
	s.InDelta(2.0, totals.TrainingPoints, 1e-9)
	s.Len(totals.Breakdown, 2)
	s.Contains(totals.Breakdown[1], "unknown part")
}

func (s *AggregateTestSuite) TestNameFallbackLookup() {
	selected := []arclight.SelectedPart{
		{Part: arclight.NameRef("searing bolt")},
	}

	totals := AggregateCosts(selected, s.index)
	s.InDelta(2.0, totals.TrainingPoints, 1e-9)
}

func (s *AggregateTestSuite) TestBreakdownIsOrderedAndInformational() {
	selected := []arclight.SelectedPart{
		{Part: arclight.IDRef("part_a"), OptionLevels: [3]int{1}},
		{Part: arclight.IDRef("part_c")},
	}

	totals := AggregateCosts(selected, s.index)
	s.Equal([]string{
		"Searing Bolt: 0 EN, 3 TP",
		"Blast Shape: 3 EN, 0 TP",
	}, totals.Breakdown)
}

func (s *AggregateTestSuite) TestMechanicPartsFlowThroughAggregation() {
	power := arclight.Power{
		Name:        "Flame Lance",
		ActionType:  arclight.ActionQuick,
		Reaction:    true,
		BonusDamage: 2,
		Parts: []arclight.SelectedPart{
			{Part: arclight.IDRef("part_a"), OptionLevels: [3]int{1}},
		},
	}

	totals := PowerCost(power, s.index)
	// part_a 0 EN / 3 TP, quick 2/1, reaction 2/2, 2 bonus dice 2/1
	s.InDelta(6.0, totals.Energy, 1e-9)
	s.InDelta(7.0, totals.TrainingPoints, 1e-9)
	s.Len(totals.Breakdown, 4)
}

func (s *AggregateTestSuite) TestTechniqueWeaponScaling() {
	tech := arclight.Technique{
		Name:     "Riposte",
		WeaponTP: 3,
	}

	totals := TechniqueCost(tech, s.index)
	s.InDelta(3.0, totals.TrainingPoints, 1e-9)
	s.Zero(totals.Energy)
}

func (s *AggregateTestSuite) TestEmptySelection() {
	totals := AggregateCosts(nil, s.index)
	s.Zero(totals.Energy)
	s.Zero(totals.TrainingPoints)
	s.Empty(totals.Breakdown)
}

func TestMechanicParts(t *testing.T) {
	t.Run("basic action with no flags synthesizes nothing", func(t *testing.T) {
		assert.Empty(t, MechanicParts(MechanicSelections{ActionType: arclight.ActionBasic}))
	})

	t.Run("every selection maps to its fixed part id", func(t *testing.T) {
		parts := MechanicParts(MechanicSelections{
			ActionType:      arclight.ActionLong,
			Reaction:        true,
			BonusDamageDice: 4,
			WeaponTP:        2,
		})
		assert.Len(t, parts, 4)
		assert.Equal(t, arclight.IDRef(PartIDActionLong), parts[0].Part)
		assert.Equal(t, arclight.IDRef(PartIDReaction), parts[1].Part)
		assert.Equal(t, 4, parts[2].OptionLevels[0])
		assert.Equal(t, 2, parts[3].OptionLevels[0])
	})
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "quick action (reaction)", ActionLabel(arclight.ActionQuick, true))
	assert.Equal(t, "basic action", ActionLabel("", false))

	assert.Equal(t, "1d8 + 2d6", DamageLabel("1d8", 2))
	assert.Equal(t, "3d6", DamageLabel("", 3))
	assert.Equal(t, "1d8", DamageLabel("1d8", 0))
}
