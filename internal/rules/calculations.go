package rules

import (
	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// DerivedStats is the complete derived snapshot for an entity. It is a pure
// function of the character and rules record; calling CalculateAllStats twice
// on the same inputs yields identical output.
type DerivedStats struct {
	MaxHealth      int          `json:"maxHealth"`
	MaxEnergy      int          `json:"maxEnergy"`
	Terminal       int          `json:"terminal"`
	Speed          int          `json:"speed"`
	Evasion        int          `json:"evasion"`
	Armor          int          `json:"armor"`
	DefenseBonuses DefenseBlock `json:"defenseBonuses"`
	DefenseScores  DefenseBlock `json:"defenseScores"`
}

// CalculateAllStats composes the formula library into one derived-stats
// snapshot. It never fails: a nil character yields the zero snapshot and
// missing ability/defense/equipment fields read as zero. The character is
// expected to be normalized at the load boundary (legacy defense-skill
// fields already reconciled).
func CalculateAllStats(c *arclight.Character, rules *GameRules) DerivedStats {
	if c == nil {
		return DerivedStats{}
	}

	level := c.Level
	if level < 1 {
		level = 1
	}

	maxHealth := MaxHealth(c.AllocatedHealthPoints, level, c.Abilities, c.PowerAbility, rules)
	powerScore := c.Abilities.AbilityScore(c.PowerAbility)

	return DerivedStats{
		MaxHealth:      maxHealth,
		MaxEnergy:      MaxEnergy(powerScore, level, c.AllocatedEnergyPoints),
		Terminal:       TerminalThreshold(maxHealth),
		Speed:          Speed(c.Abilities.Agility, rules),
		Evasion:        Evasion(c.Abilities.Agility, rules),
		Armor:          equippedArmorTotal(c.Equipment.Armor),
		DefenseBonuses: DefenseBonuses(c.Abilities, c.DefenseSkills),
		DefenseScores:  DefenseScores(c.Abilities, c.DefenseSkills, rules),
	}
}

// equippedArmorTotal sums armor values over equipped pieces only; unequipped
// pieces contribute nothing.
func equippedArmorTotal(armor []arclight.ArmorItem) int {
	total := 0
	for _, a := range armor {
		if a.Equipped {
			total += a.Armor
		}
	}
	return total
}

// SkillBonuses computes the check bonus for every skill on the sheet,
// resolving each sub-skill's base by SelectedBaseSkillID first, then
// BaseSkillID. The result maps skill name to bonus.
func SkillBonuses(c *arclight.Character) map[string]int {
	if c == nil {
		return map[string]int{}
	}

	bonuses := make(map[string]int, len(c.Skills))
	for _, skill := range c.Skills {
		baseID := skill.SelectedBaseSkillID
		if baseID == "" {
			baseID = skill.BaseSkillID
		}
		bonuses[skill.Name] = SkillBonus(c.Abilities, skill, c.FindSkill(baseID))
	}
	return bonuses
}
