package rules

import (
	"math"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// AbilityPoints returns the ability point budget at a level: 7 at levels 1-2,
// then 7 + floor((level-1)/3), gaining one point every third level.
func AbilityPoints(level int, rules *GameRules) int {
	level = clampLevel(level)
	base := rules.baseAbilityPoints()
	if level < 3 {
		return base
	}
	return base + (level-1)/3
}

// SkillPoints returns the skill point budget at a level: level x per-level
// rate, 3 for characters and 5 for creatures. There is no flat base in this
// variant.
func SkillPoints(level int, kind arclight.EntityKind, rules *GameRules) int {
	level = clampLevel(level)
	perLevel := rules.characterSkillPointsPerLevel()
	if kind == arclight.EntityCreature {
		perLevel = rules.creatureSkillPointsPerLevel()
	}
	return level * perLevel
}

// LegacySkillPoints is the older flat-base progression (2 + level*3), retained
// for backward display compatibility on old sheets.
func LegacySkillPoints(level int) int {
	level = clampLevel(level)
	return legacySkillPointBase + level*defaultCharacterSkillPointsPerLevel
}

// HealthEnergyPool returns the combined health/energy point budget at a
// level: base + 12 per level past the first. Base is 18 for players, 26 for
// creatures.
func HealthEnergyPool(level int, kind arclight.EntityKind, rules *GameRules) int {
	level = clampLevel(level)
	base := rules.playerPoolBase()
	if kind == arclight.EntityCreature {
		base = rules.creaturePoolBase()
	}
	return base + rules.poolPerLevel()*(level-1)
}

// Proficiency returns the proficiency bonus at a level: 2 through level 4,
// then 2 + floor(level/5).
func Proficiency(level int, rules *GameRules) int {
	level = clampLevel(level)
	base := rules.baseProficiency()
	if level < 5 {
		return base
	}
	return base + level/5
}

// PlayerTrainingPoints returns a player's TP budget:
// 22 + ability + (2+ability) per level past the first.
func PlayerTrainingPoints(level, ability int, rules *GameRules) int {
	level = clampLevel(level)
	return rules.playerTrainingBase() + ability + (2+ability)*(level-1)
}

// CreatureTrainingPoints returns a creature's TP budget. Creatures support
// fractional sub-levels below 1, where the budget scales as
// ceil(22*level) + ability; from level 1 it is 9 + ability plus
// (level-1)*(1+ability), rounded up.
func CreatureTrainingPoints(level float64, ability int, rules *GameRules) int {
	if level <= 0 {
		return ability
	}
	if level < 1 {
		return int(math.Ceil(float64(rules.playerTrainingBase())*level)) + ability
	}
	base := rules.creatureTrainingBase() + ability
	if level == 1 {
		return base
	}
	return int(math.Ceil(float64(base) + (level-1)*float64(1+ability)))
}

// CreatureFeatPoints returns a creature's feat point budget: 1.5 + martial
// proficiency at level 1, one more per additional whole level. Fractional
// levels scale the level-1 value linearly; the result always rounds up.
func CreatureFeatPoints(level float64, martialProf int) int {
	if level <= 0 {
		return 0
	}
	base := 1.5 + float64(martialProf)
	if level <= 1 {
		return int(math.Ceil(base * level))
	}
	return int(math.Ceil(base + math.Floor(level-1)))
}

// CreatureCurrency returns a creature's currency value:
// round(200 * 1.45^(level-1)).
func CreatureCurrency(level int) int {
	level = clampLevel(level)
	return int(math.Round(200 * math.Pow(1.45, float64(level-1))))
}

// AbilityStepCost prices raising an ability by one step to the target value:
// 1 point per step below 4, 2 points per step at 4 and above.
func AbilityStepCost(target int) int {
	if target >= abilityCostBreakpoint {
		return 2
	}
	return 1
}

// AbilityIncreaseCost sums the step costs of raising an ability from one
// value to a higher one. Equal or decreasing inputs cost nothing.
func AbilityIncreaseCost(from, to int) int {
	cost := 0
	for v := from + 1; v <= to; v++ {
		cost += AbilityStepCost(v)
	}
	return cost
}

// AbilityDecreaseRefund refunds lowering an ability at the flat cheap rate of
// one point per step. This is a known simplification: the 2-point tier above
// 4 is not refunded at its purchase price. The asymmetry reproduces observed
// behavior and is a product policy question, not a rule to infer.
func AbilityDecreaseRefund(from, to int) int {
	if to >= from {
		return 0
	}
	return from - to
}
