package arclight

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// CharacterData is the persisted shape of a character. Only the fields here
// survive a save; everything display-only or derivable lives on Character and
// is rebuilt by enrichment on load. The custom unmarshalers absorb the legacy
// shapes still present in old saves (string skills, single-object equipment
// lists, numeric strings).

// FlexInt is an int that tolerates legacy encodings: JSON numbers (floats
// truncate), numeric strings, and null all decode; anything unparseable
// coerces to 0 instead of failing the load.
type FlexInt int

// UnmarshalJSON implements tolerant decoding
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*f = 0
			return nil
		}
		if n, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*f = FlexInt(int(n))
		} else {
			*f = 0
		}
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(int(n))
	return nil
}

// Int returns the plain int value
func (f FlexInt) Int() int {
	return int(f)
}

// AbilitiesData is the persisted ability block
type AbilitiesData struct {
	Strength     FlexInt `json:"strength"`
	Vitality     FlexInt `json:"vitality"`
	Agility      FlexInt `json:"agility"`
	Acuity       FlexInt `json:"acuity"`
	Intelligence FlexInt `json:"intelligence"`
	Charisma     FlexInt `json:"charisma"`
}

// DefenseSkillsData is the persisted defense allocation block
type DefenseSkillsData struct {
	Might           FlexInt `json:"might"`
	Fortitude       FlexInt `json:"fortitude"`
	Reflex          FlexInt `json:"reflex"`
	Discernment     FlexInt `json:"discernment"`
	MentalFortitude FlexInt `json:"mentalFortitude"`
	Resolve         FlexInt `json:"resolve"`
}

// SkillData is the persisted skill entry. Legacy saves stored bare strings;
// those decode as {name, skill_val 0, prof false}.
type SkillData struct {
	ID                  string  `json:"id,omitempty"`
	Name                string  `json:"name"`
	Value               FlexInt `json:"skill_val"`
	Proficient          bool    `json:"prof"`
	Ability             string  `json:"ability,omitempty"`
	BaseSkillID         string  `json:"baseSkillId,omitempty"`
	SelectedBaseSkillID string  `json:"selectedBaseSkillId,omitempty"`
}

// UnmarshalJSON upgrades legacy string-only skill entries
func (s *SkillData) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*s = SkillData{Name: name}
		return nil
	}
	type alias SkillData
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = SkillData(a)
	return nil
}

// TechniqueRefData is a persisted technique reference. Techniques are saved
// as bare name strings; older saves may carry {id, name} objects.
type TechniqueRefData struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts both the bare-string and object forms
func (t *TechniqueRefData) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*t = TechniqueRefData{Name: name}
		return nil
	}
	type alias TechniqueRefData
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*t = TechniqueRefData(a)
	return nil
}

// MarshalJSON writes the reduced bare-name form
func (t TechniqueRefData) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name)
}

// PowerRefData is a persisted power reference
type PowerRefData struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Innate bool   `json:"innate"`
}

// CharacterFeatData is a persisted character-slot feat
type CharacterFeatData struct {
	Name        string  `json:"name"`
	Type        string  `json:"type,omitempty"`
	CurrentUses FlexInt `json:"currentUses,omitempty"`
}

// ArchetypeFeatData is a persisted archetype-slot feat
type ArchetypeFeatData struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	CurrentUses FlexInt `json:"currentUses,omitempty"`
	MaxUses     FlexInt `json:"maxUses,omitempty"`
}

// WeaponData is a persisted weapon entry, name plus equipped flag only
type WeaponData struct {
	Name     string `json:"name"`
	Equipped bool   `json:"equipped,omitempty"`
}

// ArmorData is a persisted armor entry
type ArmorData struct {
	Name     string `json:"name"`
	Equipped bool   `json:"equipped,omitempty"`
}

// ItemData is a persisted general item entry
type ItemData struct {
	Name     string  `json:"name"`
	Quantity FlexInt `json:"quantity,omitempty"`
}

// WeaponDataList tolerates the legacy single-object encoding of equipment
// arrays
type WeaponDataList []WeaponData

// UnmarshalJSON accepts a list or a single object
func (l *WeaponDataList) UnmarshalJSON(b []byte) error {
	return unmarshalObjectOrList(b, (*[]WeaponData)(l))
}

// ArmorDataList tolerates the legacy single-object encoding
type ArmorDataList []ArmorData

// UnmarshalJSON accepts a list or a single object
func (l *ArmorDataList) UnmarshalJSON(b []byte) error {
	return unmarshalObjectOrList(b, (*[]ArmorData)(l))
}

// ItemDataList tolerates the legacy single-object encoding
type ItemDataList []ItemData

// UnmarshalJSON accepts a list or a single object
func (l *ItemDataList) UnmarshalJSON(b []byte) error {
	return unmarshalObjectOrList(b, (*[]ItemData)(l))
}

// unmarshalObjectOrList decodes either a JSON array of T or a single T object
// into a slice. Null and decode failures leave an empty slice rather than
// failing the load.
func unmarshalObjectOrList[T any](b []byte, out *[]T) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*out = nil
		return nil
	}
	if trimmed[0] == '{' {
		var single T
		if err := json.Unmarshal(trimmed, &single); err != nil {
			*out = nil
			return nil
		}
		*out = []T{single}
		return nil
	}
	var list []T
	if err := json.Unmarshal(trimmed, &list); err != nil {
		*out = nil
		return nil
	}
	*out = list
	return nil
}

// EquipmentData groups the persisted equipment sub-lists
type EquipmentData struct {
	Weapons WeaponDataList `json:"weapons,omitempty"`
	Armor   ArmorDataList  `json:"armor,omitempty"`
	Items   ItemDataList   `json:"items,omitempty"`
}

// LegacyResource is the deprecated nested resource encoding. Only the
// current value ever mattered; maximums were always derived.
type LegacyResource struct {
	Current FlexInt `json:"current"`
}

// CharacterData is the persisted character record: the explicit allow-list of
// authoritative fields. Display and derived fields never appear here.
type CharacterData struct {
	ID       string     `json:"id"`
	PlayerID string     `json:"playerId"`
	Name     string     `json:"name"`
	Kind     EntityKind `json:"kind,omitempty"`
	Level    FlexInt    `json:"level"`

	Abilities AbilitiesData `json:"abilities"`

	Archetype          Archetype                  `json:"archetype,omitempty"`
	PowerAbility       string                     `json:"powerAbility,omitempty"`
	MartialProficiency FlexInt                    `json:"martialProf"`
	PowerProficiency   FlexInt                    `json:"powerProf"`
	MilestoneChoices   map[string]MilestoneChoice `json:"milestoneChoices,omitempty"`

	AllocatedHealthPoints FlexInt `json:"healthPoints"`
	AllocatedEnergyPoints FlexInt `json:"energyPoints"`

	CurrentHealth FlexInt         `json:"currentHealth,omitempty"`
	CurrentEnergy FlexInt         `json:"currentEnergy,omitempty"`
	Health        *LegacyResource `json:"health,omitempty"`
	Energy        *LegacyResource `json:"energy,omitempty"`

	Skills []SkillData `json:"skills,omitempty"`

	// defenseVals is the deprecated duplicate of defenseSkills; the load
	// boundary reconciles the two once, defenseSkills winning.
	DefenseSkills *DefenseSkillsData `json:"defenseSkills,omitempty"`
	DefenseVals   *DefenseSkillsData `json:"defenseVals,omitempty"`

	ArchetypeFeats []ArchetypeFeatData `json:"archetypeFeats,omitempty"`
	CharacterFeats []CharacterFeatData `json:"characterFeats,omitempty"`

	Powers     []PowerRefData     `json:"powers,omitempty"`
	Techniques []TechniqueRefData `json:"techniques,omitempty"`
	Traits     []string           `json:"traits,omitempty"`
	TraitUses  map[string]FlexInt `json:"traitUses,omitempty"`

	Equipment EquipmentData `json:"equipment"`
	Currency  FlexInt       `json:"currency,omitempty"`

	Notes         string `json:"notes,omitempty"`
	AdvancedNotes string `json:"advancedNotes,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}
