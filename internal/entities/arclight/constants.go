package arclight

// Ability name constants
const (
	AbilityStrength     = "strength"
	AbilityVitality     = "vitality"
	AbilityAgility      = "agility"
	AbilityAcuity       = "acuity"
	AbilityIntelligence = "intelligence"
	AbilityCharisma     = "charisma"
)

// Defense name constants
const (
	DefenseMight           = "might"
	DefenseFortitude       = "fortitude"
	DefenseReflex          = "reflex"
	DefenseDiscernment     = "discernment"
	DefenseMentalFortitude = "mentalFortitude"
	DefenseResolve         = "resolve"
)

// DefenseForAbility is the fixed ability-to-defense correspondence
var DefenseForAbility = map[string]string{
	AbilityStrength:     DefenseMight,
	AbilityVitality:     DefenseFortitude,
	AbilityAgility:      DefenseReflex,
	AbilityAcuity:       DefenseDiscernment,
	AbilityIntelligence: DefenseMentalFortitude,
	AbilityCharisma:     DefenseResolve,
}

// AbilityNames lists the six abilities in sheet order
var AbilityNames = []string{
	AbilityStrength,
	AbilityVitality,
	AbilityAgility,
	AbilityAcuity,
	AbilityIntelligence,
	AbilityCharisma,
}

// ArchetypeConfig is the static per-archetype configuration table
type ArchetypeConfig struct {
	FeatLimit          int
	MaxArmamentCost    int
	InnateEnergy       int
	MartialProficiency int
	PowerProficiency   int
}

// ArchetypeConfigs holds the static configuration for each archetype choice.
// Derived progression is computed from the proficiency split, not from this
// table; the caller keeps the stored archetype tag and the proficiencies
// consistent.
var ArchetypeConfigs = map[Archetype]ArchetypeConfig{
	ArchetypePower: {
		FeatLimit:          2,
		MaxArmamentCost:    3,
		InnateEnergy:       16,
		MartialProficiency: 0,
		PowerProficiency:   2,
	},
	ArchetypeMartial: {
		FeatLimit:          4,
		MaxArmamentCost:    8,
		InnateEnergy:       0,
		MartialProficiency: 2,
		PowerProficiency:   0,
	},
	ArchetypePoweredMartial: {
		FeatLimit:          3,
		MaxArmamentCost:    8,
		InnateEnergy:       6,
		MartialProficiency: 1,
		PowerProficiency:   1,
	},
}

// SizeCategory rates a creature's size
type SizeCategory string

// Size categories
const (
	SizeTiny   SizeCategory = "tiny"
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
	SizeHuge   SizeCategory = "huge"
)

// Rarity rates codex equipment
type Rarity string

// Rarity tiers
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)
