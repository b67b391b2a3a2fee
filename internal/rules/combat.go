package rules

import (
	"math"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// DefenseBlock holds a value for each of the six defenses
type DefenseBlock struct {
	Might           int `json:"might"`
	Fortitude       int `json:"fortitude"`
	Reflex          int `json:"reflex"`
	Discernment     int `json:"discernment"`
	MentalFortitude int `json:"mentalFortitude"`
	Resolve         int `json:"resolve"`
}

// DefenseBonuses computes each defense bonus: matching ability score plus the
// skill points committed to that defense, via the fixed ability-to-defense
// correspondence.
func DefenseBonuses(ab arclight.Abilities, ds arclight.DefenseSkills) DefenseBlock {
	return DefenseBlock{
		Might:           ab.Strength + ds.Might,
		Fortitude:       ab.Vitality + ds.Fortitude,
		Reflex:          ab.Agility + ds.Reflex,
		Discernment:     ab.Acuity + ds.Discernment,
		MentalFortitude: ab.Intelligence + ds.MentalFortitude,
		Resolve:         ab.Charisma + ds.Resolve,
	}
}

// DefenseScores computes the full defense scores: base defense (10) plus each
// bonus.
func DefenseScores(ab arclight.Abilities, ds arclight.DefenseSkills, rules *GameRules) DefenseBlock {
	base := rules.baseDefense()
	b := DefenseBonuses(ab, ds)
	return DefenseBlock{
		Might:           base + b.Might,
		Fortitude:       base + b.Fortitude,
		Reflex:          base + b.Reflex,
		Discernment:     base + b.Discernment,
		MentalFortitude: base + b.MentalFortitude,
		Resolve:         base + b.Resolve,
	}
}

// Speed is base speed (6) + ceil(agility/2)
func Speed(agility int, rules *GameRules) int {
	return rules.baseSpeed() + int(math.Ceil(float64(agility)/2))
}

// Evasion is base evasion (10) + agility
func Evasion(agility int, rules *GameRules) int {
	return rules.baseEvasion() + agility
}

// healthAbilityMod picks the ability modifier for max health: vitality,
// unless vitality is the character's power-archetype ability, in which case
// strength substitutes so the archetype stat is not counted twice.
func healthAbilityMod(ab arclight.Abilities, powerAbility string) int {
	if powerAbility == arclight.AbilityVitality {
		return ab.Strength
	}
	return ab.Vitality
}

// MaxHealth computes the health maximum: 8 + mod*level + allocated points
// when the modifier is non-negative. Negative modifiers apply once and do not
// scale with level.
func MaxHealth(allocated, level int, ab arclight.Abilities, powerAbility string, rules *GameRules) int {
	level = clampLevel(level)
	base := rules.baseHealth()
	mod := healthAbilityMod(ab, powerAbility)
	if mod >= 0 {
		return base + mod*level + allocated
	}
	return base + mod + allocated
}

// MaxEnergy computes the energy maximum: archetype ability score * level +
// allocated energy points.
func MaxEnergy(powerAbilityScore, level, allocated int) int {
	level = clampLevel(level)
	return powerAbilityScore*level + allocated
}

// TerminalThreshold is the dying threshold: ceil(maxHealth/4)
func TerminalThreshold(maxHealth int) int {
	if maxHealth <= 0 {
		return 0
	}
	return int(math.Ceil(float64(maxHealth) / 4))
}

// UnproficientBonus is the untrained check bonus for an ability score: half
// the score rounded up when non-negative, doubled when negative. Allocated
// skill value never contributes untrained.
func UnproficientBonus(ability int) int {
	if ability >= 0 {
		return int(math.Ceil(float64(ability) / 2))
	}
	return ability * 2
}

// SkillBonus computes a skill's check bonus. Proficient skills add the
// highest linked ability score and the allocated skill value. Unproficient
// skills use the untrained formula only. Sub-skills gate on their base
// skill: when the base is unproficient the sub-skill ignores its own
// proficiency and rolls untrained plus the base skill's allocated value.
func SkillBonus(ab arclight.Abilities, skill arclight.Skill, baseSkill *arclight.Skill) int {
	highest := highestLinkedAbility(ab, &skill)

	if baseSkill != nil && !baseSkill.Proficient {
		return UnproficientBonus(highest) + baseSkill.Value
	}
	if skill.Proficient {
		return highest + skill.Value
	}
	return UnproficientBonus(highest)
}

// highestLinkedAbility returns the highest score among the skill's linked
// abilities, or 0 when none are linked.
func highestLinkedAbility(ab arclight.Abilities, skill *arclight.Skill) int {
	names := skill.LinkedAbilities()
	if len(names) == 0 {
		return 0
	}
	highest := ab.AbilityScore(names[0])
	for _, name := range names[1:] {
		if score := ab.AbilityScore(name); score > highest {
			highest = score
		}
	}
	return highest
}

// ArmamentCostCeiling is the maximum TP cost of an armament a character may
// wield at a martial proficiency: 3, 8, 12, then +3 per proficiency past 2.
func ArmamentCostCeiling(martialProf int) int {
	switch {
	case martialProf <= 0:
		return 3
	case martialProf == 1:
		return 8
	case martialProf == 2:
		return 12
	default:
		return 12 + 3*(martialProf-2)
	}
}
