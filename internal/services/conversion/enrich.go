package conversion

import (
	"strings"

	"github.com/arcforge/codex-api/internal/calculators"
	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// notFoundDescription marks placeholder entries for references that no longer
// resolve against the owner's library or the codex.
const notFoundDescription = "not found in library"

// EnrichedPower is a power reference rebuilt into a full display object
type EnrichedPower struct {
	Ref          arclight.PowerRef      `json:"ref"`
	Power        arclight.Power         `json:"power"`
	Cost         calculators.CostTotals `json:"cost"`
	Action       string                 `json:"action"`
	Damage       string                 `json:"damage,omitempty"`
	NotInLibrary bool                   `json:"notInLibrary,omitempty"`
}

// EnrichedTechnique is a technique reference rebuilt into a display object
type EnrichedTechnique struct {
	Ref          arclight.TechniqueRef  `json:"ref"`
	Technique    arclight.Technique     `json:"technique"`
	Cost         calculators.CostTotals `json:"cost"`
	Action       string                 `json:"action"`
	Damage       string                 `json:"damage,omitempty"`
	NotInLibrary bool                   `json:"notInLibrary,omitempty"`
}

// EnrichedWeapon is a carried weapon joined with its library or codex entry
type EnrichedWeapon struct {
	Name         string                 `json:"name"`
	Equipped     bool                   `json:"equipped"`
	Item         arclight.Item          `json:"item"`
	Cost         calculators.CostTotals `json:"cost"`
	NotInLibrary bool                   `json:"notInLibrary,omitempty"`
}

// EnrichedArmor is a carried armor piece joined with its entry
type EnrichedArmor struct {
	Name         string                 `json:"name"`
	Equipped     bool                   `json:"equipped"`
	Armor        int                    `json:"armor"`
	Item         arclight.Item          `json:"item"`
	Cost         calculators.CostTotals `json:"cost"`
	NotInLibrary bool                   `json:"notInLibrary,omitempty"`
}

// EnrichedItem is a carried general item joined with its entry
type EnrichedItem struct {
	Name         string        `json:"name"`
	Quantity     int           `json:"quantity"`
	Item         arclight.Item `json:"item"`
	NotInLibrary bool          `json:"notInLibrary,omitempty"`
}

// EnrichedCharacter is the display view of a character's sparse references.
// Every input reference produces exactly one output entry, in input order.
type EnrichedCharacter struct {
	Powers     []EnrichedPower     `json:"powers"`
	Techniques []EnrichedTechnique `json:"techniques"`
	Weapons    []EnrichedWeapon    `json:"weapons"`
	Armor      []EnrichedArmor     `json:"armor"`
	Items      []EnrichedItem      `json:"items"`
}

// CodexTables is the shared reference data enrichment falls back to when the
// owner's library misses: stock equipment plus the part definition tables
// that price compositions.
type CodexTables struct {
	Equipment      []arclight.Item
	PowerParts     []arclight.Part
	TechniqueParts []arclight.Part
	ItemProperties []arclight.Part
}

// EnrichCharacter resolves the character's sparse references against the
// owner's library with the codex as equipment fallback. Lookup tries id
// first, then case-insensitive name. A miss produces a placeholder entry,
// never an error. Resolved armor values are written back onto the
// character's equipment so stat derivation sees them.
func EnrichCharacter(c *arclight.Character, lib arclight.Library, codex CodexTables) *EnrichedCharacter {
	out := &EnrichedCharacter{}
	if c == nil {
		return out
	}

	powerIdx := calculators.MechanicIndex(codex.PowerParts)
	techIdx := calculators.MechanicIndex(codex.TechniqueParts)
	propIdx := calculators.MechanicIndex(codex.ItemProperties)

	for _, ref := range c.Powers {
		out.Powers = append(out.Powers, enrichPower(ref, lib.Powers, powerIdx))
	}
	for _, ref := range c.Techniques {
		out.Techniques = append(out.Techniques, enrichTechnique(ref, lib.Techniques, techIdx))
	}

	for _, w := range c.Equipment.Weapons {
		item, found := findItem(w.Name, "", arclight.ItemWeapon, lib.Items, codex.Equipment)
		enriched := EnrichedWeapon{Name: w.Name, Equipped: w.Equipped, NotInLibrary: !found}
		if found {
			enriched.Item = item
			enriched.Cost = calculators.ItemCost(item, propIdx)
		} else {
			enriched.Item = placeholderItem(w.Name, arclight.ItemWeapon)
		}
		out.Weapons = append(out.Weapons, enriched)
	}

	for i := range c.Equipment.Armor {
		a := &c.Equipment.Armor[i]
		item, found := findItem(a.Name, "", arclight.ItemArmor, lib.Items, codex.Equipment)
		enriched := EnrichedArmor{Name: a.Name, Equipped: a.Equipped, NotInLibrary: !found}
		if found {
			enriched.Item = item
			enriched.Armor = item.Armor
			enriched.Cost = calculators.ItemCost(item, propIdx)
			a.Armor = item.Armor
		} else {
			enriched.Item = placeholderItem(a.Name, arclight.ItemArmor)
		}
		out.Armor = append(out.Armor, enriched)
	}

	for _, it := range c.Equipment.Items {
		item, found := findItem(it.Name, "", arclight.ItemGeneral, lib.Items, codex.Equipment)
		enriched := EnrichedItem{Name: it.Name, Quantity: it.Quantity, NotInLibrary: !found}
		if found {
			enriched.Item = item
		} else {
			enriched.Item = placeholderItem(it.Name, arclight.ItemGeneral)
		}
		out.Items = append(out.Items, enriched)
	}

	return out
}

func enrichPower(ref arclight.PowerRef, owned []arclight.Power, idx *arclight.PartIndex) EnrichedPower {
	if p := findPower(ref.ID, ref.Name, owned); p != nil {
		return EnrichedPower{
			Ref:    ref,
			Power:  *p,
			Cost:   calculators.PowerCost(*p, idx),
			Action: calculators.ActionLabel(p.ActionType, p.Reaction),
			Damage: calculators.DamageLabel(p.Damage, p.BonusDamage),
		}
	}
	return EnrichedPower{
		Ref:          ref,
		Power:        arclight.Power{ID: ref.ID, Name: ref.Name, Description: notFoundDescription},
		Action:       calculators.ActionLabel(arclight.ActionBasic, false),
		NotInLibrary: true,
	}
}

func enrichTechnique(ref arclight.TechniqueRef, owned []arclight.Technique, idx *arclight.PartIndex) EnrichedTechnique {
	if t := findTechnique(ref.ID, ref.Name, owned); t != nil {
		return EnrichedTechnique{
			Ref:       ref,
			Technique: *t,
			Cost:      calculators.TechniqueCost(*t, idx),
			Action:    calculators.ActionLabel(t.ActionType, t.Reaction),
			Damage:    calculators.DamageLabel(t.Damage, t.BonusDamage),
		}
	}
	return EnrichedTechnique{
		Ref:          ref,
		Technique:    arclight.Technique{ID: ref.ID, Name: ref.Name, Description: notFoundDescription},
		Action:       calculators.ActionLabel(arclight.ActionBasic, false),
		NotInLibrary: true,
	}
}

// findPower resolves id first across the whole pool, then falls back to a
// case-insensitive name pass for legacy records that predate stable ids. A
// stale display name on the ref can never shadow another record's id match.
func findPower(id, name string, owned []arclight.Power) *arclight.Power {
	if id != "" {
		for i := range owned {
			if owned[i].ID == id {
				return &owned[i]
			}
		}
	}
	if name != "" {
		for i := range owned {
			if strings.EqualFold(owned[i].Name, name) {
				return &owned[i]
			}
		}
	}
	return nil
}

// findTechnique mirrors findPower's id-then-name resolution order
func findTechnique(id, name string, owned []arclight.Technique) *arclight.Technique {
	if id != "" {
		for i := range owned {
			if owned[i].ID == id {
				return &owned[i]
			}
		}
	}
	if name != "" {
		for i := range owned {
			if strings.EqualFold(owned[i].Name, name) {
				return &owned[i]
			}
		}
	}
	return nil
}

// findItem searches the owner's library first, then the codex equipment
// tables, resolving id before name within each pool. Kind gates the match so
// a weapon name never resolves to an armor row.
func findItem(name, id string, kind arclight.ItemKind, owned, codex []arclight.Item) (arclight.Item, bool) {
	for _, pool := range [][]arclight.Item{owned, codex} {
		if id != "" {
			for i := range pool {
				if pool[i].Kind == kind && pool[i].ID == id {
					return pool[i], true
				}
			}
		}
		if name != "" {
			for i := range pool {
				if pool[i].Kind == kind && strings.EqualFold(pool[i].Name, name) {
					return pool[i], true
				}
			}
		}
	}
	return arclight.Item{}, false
}

func placeholderItem(name string, kind arclight.ItemKind) arclight.Item {
	return arclight.Item{Name: name, Kind: kind, Description: notFoundDescription}
}
