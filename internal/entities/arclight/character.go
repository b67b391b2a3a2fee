// Package arclight implements the Arclight ruleset entities.
// NOTE: These are data-only structs. All calculations (derived stats, part
// costs, progression) are done by internal/rules and internal/calculators,
// not here.
package arclight

// EntityKind distinguishes player characters from creatures; several
// progression formulas use different bases per kind.
type EntityKind string

const (
	// EntityPlayer is a player character
	EntityPlayer EntityKind = "player"
	// EntityCreature is a GM-controlled creature
	EntityCreature EntityKind = "creature"
)

// Abilities holds the six core ability scores. The engine trusts its input;
// the documented UI limits (creation max 3, absolute max 6, floor -2) are not
// enforced here.
type Abilities struct {
	Strength     int `json:"strength"`
	Vitality     int `json:"vitality"`
	Agility      int `json:"agility"`
	Acuity       int `json:"acuity"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
}

// DefenseSkills holds skill points committed to raise each of the six
// defenses.
type DefenseSkills struct {
	Might           int `json:"might"`
	Fortitude       int `json:"fortitude"`
	Reflex          int `json:"reflex"`
	Discernment     int `json:"discernment"`
	MentalFortitude int `json:"mentalFortitude"`
	Resolve         int `json:"resolve"`
}

// Archetype is a character's combat specialization axis
type Archetype string

const (
	// ArchetypePower is the pure power archetype
	ArchetypePower Archetype = "power"
	// ArchetypeMartial is the pure martial archetype
	ArchetypeMartial Archetype = "martial"
	// ArchetypePoweredMartial is the hybrid archetype, called "mixed" at runtime
	ArchetypePoweredMartial Archetype = "powered-martial"
)

// MilestoneChoice is the choice a powered-martial character makes at each
// milestone level (4, 7, 10, ...)
type MilestoneChoice string

const (
	// MilestoneInnate raises the innate threshold and pool count by one
	MilestoneInnate MilestoneChoice = "innate"
	// MilestoneFeat grants one bonus archetype feat
	MilestoneFeat MilestoneChoice = "feat"
)

// Skill is a trained skill on a character sheet. Abilities lists the linked
// ability names from the codex definition; the proficient bonus uses the
// highest of them. BaseSkillID is set on sub-skills, whose proficiency gates
// on the base skill's.
type Skill struct {
	ID                  string   `json:"id,omitempty"`
	Name                string   `json:"name"`
	Value               int      `json:"skill_val"`
	Proficient          bool     `json:"prof"`
	Ability             string   `json:"ability,omitempty"`
	Abilities           []string `json:"abilities,omitempty"`
	BaseSkillID         string   `json:"baseSkillId,omitempty"`
	SelectedBaseSkillID string   `json:"selectedBaseSkillId,omitempty"`
}

// LinkedAbilities returns the ability names the skill's bonus may draw from
func (s *Skill) LinkedAbilities() []string {
	if len(s.Abilities) > 0 {
		return s.Abilities
	}
	if s.Ability != "" {
		return []string{s.Ability}
	}
	return nil
}

// CharacterFeat occupies a character feat slot
type CharacterFeat struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	CurrentUses int    `json:"currentUses,omitempty"`
}

// ArchetypeFeat occupies an archetype feat slot and tracks limited uses
type ArchetypeFeat struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	CurrentUses int    `json:"currentUses,omitempty"`
	MaxUses     int    `json:"maxUses,omitempty"`
}

// PowerRef is a sparse reference to a power in the owner's library. It may
// fail to resolve; that is expected and surfaces as a placeholder, never an
// error.
type PowerRef struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Innate bool   `json:"innate"`
}

// TechniqueRef is a sparse reference to a technique in the owner's library.
// Legacy saves carry only the name.
type TechniqueRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// WeaponItem is a weapon on the sheet. Enrichment fills display fields; only
// name and equipped are authoritative.
type WeaponItem struct {
	Name     string `json:"name"`
	Equipped bool   `json:"equipped,omitempty"`
}

// ArmorItem is an armor piece on the sheet. Armor is the protective value,
// populated by enrichment from the library or codex; it is display-only and
// never persisted.
type ArmorItem struct {
	Name     string `json:"name"`
	Equipped bool   `json:"equipped,omitempty"`
	Armor    int    `json:"-"`
}

// GeneralItem is a mundane carried item
type GeneralItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity,omitempty"`
}

// Equipment groups the three equipment sub-lists
type Equipment struct {
	Weapons []WeaponItem  `json:"weapons"`
	Armor   []ArmorItem   `json:"armor"`
	Items   []GeneralItem `json:"items"`
}

// Character is the aggregate root for a sheet. It is the in-memory, already
// normalized form; CharacterData is the persisted shape.
type Character struct {
	ID       string
	PlayerID string
	Name     string
	Kind     EntityKind
	Level    int

	Abilities Abilities

	Archetype          Archetype
	PowerAbility       string // ability chosen for the power archetype axis
	MartialProficiency int
	PowerProficiency   int
	MilestoneChoices   map[int]MilestoneChoice

	// User-spent budgets, not the derived maximums
	AllocatedHealthPoints int
	AllocatedEnergyPoints int

	// Runtime resource state
	CurrentHealth int
	CurrentEnergy int

	Skills        []Skill
	DefenseSkills DefenseSkills

	ArchetypeFeats []ArchetypeFeat
	CharacterFeats []CharacterFeat

	Powers     []PowerRef
	Techniques []TechniqueRef
	Traits     []string
	TraitUses  map[string]int

	Equipment Equipment
	Currency  int

	Notes         string
	AdvancedNotes map[string]interface{}

	CreatedAt int64
	UpdatedAt int64
}

// FindSkill returns the skill with the given id, or nil. Used to resolve a
// sub-skill's base skill.
func (c *Character) FindSkill(id string) *Skill {
	if id == "" {
		return nil
	}
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}

// AbilityScore returns the named ability score, or 0 for unknown names
func (a *Abilities) AbilityScore(name string) int {
	switch name {
	case AbilityStrength:
		return a.Strength
	case AbilityVitality:
		return a.Vitality
	case AbilityAgility:
		return a.Agility
	case AbilityAcuity:
		return a.Acuity
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}
