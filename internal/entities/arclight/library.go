package arclight

import "strings"

// RefKind tags how a Ref identifies its target
type RefKind string

const (
	// RefByID identifies a target by stable id
	RefByID RefKind = "id"
	// RefByName identifies a target by display name, for legacy records that
	// predate stable ids
	RefByName RefKind = "name"
)

// Ref is a typed reference to a part or codex record: either an id or a name,
// never an ambiguous both. Name matching is case-insensitive.
type Ref struct {
	Kind  RefKind `json:"kind"`
	Value string  `json:"value"`
}

// IDRef builds an id reference
func IDRef(id string) Ref {
	return Ref{Kind: RefByID, Value: id}
}

// NameRef builds a name reference
func NameRef(name string) Ref {
	return Ref{Kind: RefByName, Value: name}
}

// IsZero reports whether the ref is empty
func (r Ref) IsZero() bool {
	return r.Value == ""
}

// ActionType is the action economy cost of activating a power or technique
type ActionType string

// Action types
const (
	ActionBasic ActionType = "basic"
	ActionQuick ActionType = "quick"
	ActionFree  ActionType = "free"
	ActionLong  ActionType = "long"
)

// MaxPartOptions is the number of independent upgrade tiers a part may carry
const MaxPartOptions = 3

// PartOption is one upgrade tier of a part. Each level bought in the option
// adds its energy/TP deltas to the part's contribution.
type PartOption struct {
	Description    string  `json:"description,omitempty"`
	EnergyPerLevel float64 `json:"energyPerLevel"`
	TPPerLevel     float64 `json:"tpPerLevel"`
}

// Part is a modular building block from the codex: a base cost plus up to
// three optional upgrade tiers. Parts are shared and reusable, looked up by
// id with a name fallback for legacy records.
type Part struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category,omitempty"`
	Description string       `json:"description,omitempty"`
	BaseEnergy  float64      `json:"baseEnergy"`
	BaseTP      float64      `json:"baseTP"`
	Options     []PartOption `json:"options,omitempty"`
}

// SelectedPart is a part chosen for a composition, with the levels bought in
// each of the part's option tiers. Levels beyond the part's defined options
// contribute nothing.
type SelectedPart struct {
	Part         Ref                 `json:"part"`
	OptionLevels [MaxPartOptions]int `json:"optionLevels"`
}

// PartIndex resolves typed part references against a definition table
type PartIndex struct {
	byID   map[string]*Part
	byName map[string]*Part
}

// NewPartIndex builds an index over the given definitions. Later duplicates
// win, matching last-write in the codex tables.
func NewPartIndex(defs []Part) *PartIndex {
	idx := &PartIndex{
		byID:   make(map[string]*Part, len(defs)),
		byName: make(map[string]*Part, len(defs)),
	}
	for i := range defs {
		p := &defs[i]
		if p.ID != "" {
			idx.byID[p.ID] = p
		}
		if p.Name != "" {
			idx.byName[strings.ToLower(p.Name)] = p
		}
	}
	return idx
}

// Resolve looks up a part definition. A miss is an ordinary outcome, reported
// through the bool, never an error.
func (idx *PartIndex) Resolve(ref Ref) (*Part, bool) {
	if idx == nil || ref.IsZero() {
		return nil, false
	}
	switch ref.Kind {
	case RefByID:
		p, ok := idx.byID[ref.Value]
		return p, ok
	case RefByName:
		p, ok := idx.byName[strings.ToLower(ref.Value)]
		return p, ok
	default:
		return nil, false
	}
}

// Power is a user-composed power in a player's library
type Power struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parts       []SelectedPart `json:"parts"`
	ActionType  ActionType     `json:"actionType,omitempty"`
	Reaction    bool           `json:"reaction,omitempty"`
	BonusDamage int            `json:"bonusDamage,omitempty"`
	Damage      string         `json:"damage,omitempty"`
	Area        string         `json:"area,omitempty"`
	Duration    string         `json:"duration,omitempty"`
	Range       string         `json:"range,omitempty"`
}

// Technique is a user-composed martial technique in a player's library.
// Techniques cost stamina rather than energy and may scale with the wielded
// weapon's TP.
type Technique struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parts       []SelectedPart `json:"parts"`
	ActionType  ActionType     `json:"actionType,omitempty"`
	Reaction    bool           `json:"reaction,omitempty"`
	BonusDamage int            `json:"bonusDamage,omitempty"`
	WeaponTP    int            `json:"weaponTP,omitempty"`
	Damage      string         `json:"damage,omitempty"`
}

// ItemKind distinguishes library item categories
type ItemKind string

// Item kinds
const (
	ItemWeapon  ItemKind = "weapon"
	ItemArmor   ItemKind = "armor"
	ItemGeneral ItemKind = "general"
)

// Item is a user-built or codex weapon, armor piece, or general item. Either
// Properties (a part composition) or the direct stat fields describe it.
type Item struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Kind        ItemKind       `json:"kind"`
	Damage      string         `json:"damage,omitempty"`
	Armor       int            `json:"armor,omitempty"`
	Rarity      Rarity         `json:"rarity,omitempty"`
	Properties  []SelectedPart `json:"properties,omitempty"`
}

// Library is a player's owned content, keyed against by the enrichment layer
type Library struct {
	Powers     []Power
	Techniques []Technique
	Items      []Item
}
