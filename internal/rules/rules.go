// Package rules implements the Arclight formula engine: level-progression
// resources, archetype progression, combat derivations, and the
// all-derived-stats facade. Every function is pure and deterministic; inputs
// are guarded (negative levels clamp, unknown names read as zero) so no call
// can fail. Built-in constants can be superseded field-by-field through a
// GameRules override record.
package rules

// Built-in constant tables. A nil or zero-field GameRules falls back to
// these.
const (
	defaultBaseAbilityPoints = 7

	defaultCharacterSkillPointsPerLevel = 3
	defaultCreatureSkillPointsPerLevel  = 5
	legacySkillPointBase                = 2

	defaultPlayerPoolBase   = 18
	defaultCreaturePoolBase = 26
	defaultPoolPerLevel     = 12

	defaultBaseProficiency = 2

	defaultBaseDefense = 10
	defaultBaseSpeed   = 6
	defaultBaseEvasion = 10
	defaultBaseHealth  = 8

	defaultPlayerTrainingBase   = 22
	defaultCreatureTrainingBase = 9

	// Ability steps cost double at and above this value
	abilityCostBreakpoint = 4
)

// GameRules is an optional override record matching the shape of the built-in
// constant tables. A nil pointer field keeps the built-in value; a set field
// supersedes it. Campaign-specific house rules are expressed this way rather
// than by forking the formulas.
type GameRules struct {
	BaseAbilityPoints            *int `json:"baseAbilityPoints,omitempty"`
	CharacterSkillPointsPerLevel *int `json:"characterSkillPointsPerLevel,omitempty"`
	CreatureSkillPointsPerLevel  *int `json:"creatureSkillPointsPerLevel,omitempty"`
	PlayerPoolBase               *int `json:"playerPoolBase,omitempty"`
	CreaturePoolBase             *int `json:"creaturePoolBase,omitempty"`
	PoolPerLevel                 *int `json:"poolPerLevel,omitempty"`
	BaseProficiency              *int `json:"baseProficiency,omitempty"`
	BaseDefense                  *int `json:"baseDefense,omitempty"`
	BaseSpeed                    *int `json:"baseSpeed,omitempty"`
	BaseEvasion                  *int `json:"baseEvasion,omitempty"`
	BaseHealth                   *int `json:"baseHealth,omitempty"`
	PlayerTrainingBase           *int `json:"playerTrainingBase,omitempty"`
	CreatureTrainingBase         *int `json:"creatureTrainingBase,omitempty"`
}

// intOr resolves an override against its built-in default
func intOr(override *int, def int) int {
	if override != nil {
		return *override
	}
	return def
}

// baseAbilityPoints etc. read the effective constant for a rules record; all
// formula functions go through these so overrides apply uniformly.

func (r *GameRules) baseAbilityPoints() int {
	if r == nil {
		return defaultBaseAbilityPoints
	}
	return intOr(r.BaseAbilityPoints, defaultBaseAbilityPoints)
}

func (r *GameRules) characterSkillPointsPerLevel() int {
	if r == nil {
		return defaultCharacterSkillPointsPerLevel
	}
	return intOr(r.CharacterSkillPointsPerLevel, defaultCharacterSkillPointsPerLevel)
}

func (r *GameRules) creatureSkillPointsPerLevel() int {
	if r == nil {
		return defaultCreatureSkillPointsPerLevel
	}
	return intOr(r.CreatureSkillPointsPerLevel, defaultCreatureSkillPointsPerLevel)
}

func (r *GameRules) playerPoolBase() int {
	if r == nil {
		return defaultPlayerPoolBase
	}
	return intOr(r.PlayerPoolBase, defaultPlayerPoolBase)
}

func (r *GameRules) creaturePoolBase() int {
	if r == nil {
		return defaultCreaturePoolBase
	}
	return intOr(r.CreaturePoolBase, defaultCreaturePoolBase)
}

func (r *GameRules) poolPerLevel() int {
	if r == nil {
		return defaultPoolPerLevel
	}
	return intOr(r.PoolPerLevel, defaultPoolPerLevel)
}

func (r *GameRules) baseProficiency() int {
	if r == nil {
		return defaultBaseProficiency
	}
	return intOr(r.BaseProficiency, defaultBaseProficiency)
}

func (r *GameRules) baseDefense() int {
	if r == nil {
		return defaultBaseDefense
	}
	return intOr(r.BaseDefense, defaultBaseDefense)
}

func (r *GameRules) baseSpeed() int {
	if r == nil {
		return defaultBaseSpeed
	}
	return intOr(r.BaseSpeed, defaultBaseSpeed)
}

func (r *GameRules) baseEvasion() int {
	if r == nil {
		return defaultBaseEvasion
	}
	return intOr(r.BaseEvasion, defaultBaseEvasion)
}

func (r *GameRules) baseHealth() int {
	if r == nil {
		return defaultBaseHealth
	}
	return intOr(r.BaseHealth, defaultBaseHealth)
}

func (r *GameRules) playerTrainingBase() int {
	if r == nil {
		return defaultPlayerTrainingBase
	}
	return intOr(r.PlayerTrainingBase, defaultPlayerTrainingBase)
}

func (r *GameRules) creatureTrainingBase() int {
	if r == nil {
		return defaultCreatureTrainingBase
	}
	return intOr(r.CreatureTrainingBase, defaultCreatureTrainingBase)
}

// clampLevel guards level inputs; levels below 1 read as 1
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}
