package calculators

import (
	"fmt"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// Mechanic part IDs. These are fixed rows in the codex part tables so that
// action-type, reaction, bonus-damage, and weapon-scaling selections cost
// through the same summation path as user-chosen parts.
const (
	PartIDActionQuick   = "mech_action_quick"
	PartIDActionFree    = "mech_action_free"
	PartIDActionLong    = "mech_action_long"
	PartIDReaction      = "mech_reaction"
	PartIDBonusDamage   = "mech_bonus_damage"
	PartIDWeaponScaling = "mech_weapon_scaling"
)

var actionTypePartIDs = map[arclight.ActionType]string{
	arclight.ActionQuick: PartIDActionQuick,
	arclight.ActionFree:  PartIDActionFree,
	arclight.ActionLong:  PartIDActionLong,
}

// MechanicSelections are the orthogonal UI choices on a power or technique
// that carry a cost but are not part of the user's part list.
type MechanicSelections struct {
	ActionType      arclight.ActionType
	Reaction        bool
	BonusDamageDice int
	WeaponTP        int
}

// MechanicParts synthesizes selected parts from the mechanic choices. Basic
// actions and zero selections produce nothing. The result is appended to the
// user's selection before aggregation.
func MechanicParts(sel MechanicSelections) []arclight.SelectedPart {
	var parts []arclight.SelectedPart

	if id, ok := actionTypePartIDs[sel.ActionType]; ok {
		parts = append(parts, arclight.SelectedPart{Part: arclight.IDRef(id)})
	}
	if sel.Reaction {
		parts = append(parts, arclight.SelectedPart{Part: arclight.IDRef(PartIDReaction)})
	}
	if sel.BonusDamageDice > 0 {
		parts = append(parts, arclight.SelectedPart{
			Part:         arclight.IDRef(PartIDBonusDamage),
			OptionLevels: [arclight.MaxPartOptions]int{sel.BonusDamageDice},
		})
	}
	if sel.WeaponTP > 0 {
		parts = append(parts, arclight.SelectedPart{
			Part:         arclight.IDRef(PartIDWeaponScaling),
			OptionLevels: [arclight.MaxPartOptions]int{sel.WeaponTP},
		})
	}
	return parts
}

// DefaultMechanicParts returns the builtin definitions backing the mechanic
// part IDs. The codex seeder writes these so every deployment resolves them.
func DefaultMechanicParts() []arclight.Part {
	return []arclight.Part{
		{
			ID:          PartIDActionQuick,
			Name:        "Quick Action",
			Category:    "mechanic",
			Description: "Activates as a quick action instead of a basic action",
			BaseEnergy:  2,
			BaseTP:      1,
		},
		{
			ID:          PartIDActionFree,
			Name:        "Free Action",
			Category:    "mechanic",
			Description: "Activates as a free action",
			BaseEnergy:  4,
			BaseTP:      2,
		},
		{
			ID:          PartIDActionLong,
			Name:        "Long Action",
			Category:    "mechanic",
			Description: "Requires a long action, discounting the cost",
			BaseEnergy:  -1,
			BaseTP:      0,
		},
		{
			ID:          PartIDReaction,
			Name:        "Reaction",
			Category:    "mechanic",
			Description: "Usable as a reaction to a trigger",
			BaseEnergy:  2,
			BaseTP:      2,
		},
		{
			ID:       PartIDBonusDamage,
			Name:     "Bonus Damage",
			Category: "mechanic",
			Options: []arclight.PartOption{
				{Description: "Adds one bonus damage die", EnergyPerLevel: 1, TPPerLevel: 0.5},
			},
		},
		{
			ID:       PartIDWeaponScaling,
			Name:     "Weapon Scaling",
			Category: "mechanic",
			Options: []arclight.PartOption{
				{Description: "Scales with the wielded weapon", TPPerLevel: 1},
			},
		},
	}
}

// MechanicIndex builds a part index over the given definitions plus the
// builtin mechanic parts, so mechanic selections always resolve even against
// an unseeded table. Codex rows override builtins on id collision.
func MechanicIndex(defs []arclight.Part) *arclight.PartIndex {
	all := append([]arclight.Part{}, DefaultMechanicParts()...)
	all = append(all, defs...)
	return arclight.NewPartIndex(all)
}

// ActionLabel renders the action-type selection for display, for example
// "quick action (reaction)".
func ActionLabel(at arclight.ActionType, reaction bool) string {
	label := string(at)
	if label == "" {
		label = string(arclight.ActionBasic)
	}
	label += " action"
	if reaction {
		label += " (reaction)"
	}
	return label
}

// DamageLabel appends the bonus-damage dice to a base damage expression,
// for example base "1d8" with 2 bonus dice reads "1d8 + 2d6".
func DamageLabel(base string, bonusDice int) string {
	if bonusDice <= 0 {
		return base
	}
	bonus := fmt.Sprintf("%dd6", bonusDice)
	if base == "" {
		return bonus
	}
	return base + " + " + bonus
}
