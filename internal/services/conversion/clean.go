package conversion

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// CleanForSave reduces the in-memory aggregate to the persisted allow-list.
// Display and derived fields never survive; equipment drops to name plus the
// non-default flag or quantity; techniques reduce to bare names through their
// marshaler. The free-form notes blob is scrubbed of values the storage
// encoding cannot represent before it is serialized.
func CleanForSave(c *arclight.Character) *arclight.CharacterData {
	if c == nil {
		return nil
	}

	data := &arclight.CharacterData{
		ID:       c.ID,
		PlayerID: c.PlayerID,
		Name:     c.Name,
		Kind:     c.Kind,
		Level:    arclight.FlexInt(c.Level),

		Abilities: arclight.AbilitiesData{
			Strength:     arclight.FlexInt(c.Abilities.Strength),
			Vitality:     arclight.FlexInt(c.Abilities.Vitality),
			Agility:      arclight.FlexInt(c.Abilities.Agility),
			Acuity:       arclight.FlexInt(c.Abilities.Acuity),
			Intelligence: arclight.FlexInt(c.Abilities.Intelligence),
			Charisma:     arclight.FlexInt(c.Abilities.Charisma),
		},

		Archetype:          c.Archetype,
		PowerAbility:       c.PowerAbility,
		MartialProficiency: arclight.FlexInt(c.MartialProficiency),
		PowerProficiency:   arclight.FlexInt(c.PowerProficiency),

		AllocatedHealthPoints: arclight.FlexInt(c.AllocatedHealthPoints),
		AllocatedEnergyPoints: arclight.FlexInt(c.AllocatedEnergyPoints),

		CurrentHealth: arclight.FlexInt(c.CurrentHealth),
		CurrentEnergy: arclight.FlexInt(c.CurrentEnergy),

		Currency:  arclight.FlexInt(c.Currency),
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if len(c.MilestoneChoices) > 0 {
		data.MilestoneChoices = make(map[string]arclight.MilestoneChoice, len(c.MilestoneChoices))
		for level, choice := range c.MilestoneChoices {
			data.MilestoneChoices[strconv.Itoa(level)] = choice
		}
	}

	data.DefenseSkills = &arclight.DefenseSkillsData{
		Might:           arclight.FlexInt(c.DefenseSkills.Might),
		Fortitude:       arclight.FlexInt(c.DefenseSkills.Fortitude),
		Reflex:          arclight.FlexInt(c.DefenseSkills.Reflex),
		Discernment:     arclight.FlexInt(c.DefenseSkills.Discernment),
		MentalFortitude: arclight.FlexInt(c.DefenseSkills.MentalFortitude),
		Resolve:         arclight.FlexInt(c.DefenseSkills.Resolve),
	}

	for _, sk := range c.Skills {
		if sk.Name == "" {
			continue
		}
		data.Skills = append(data.Skills, arclight.SkillData{
			ID:                  sk.ID,
			Name:                sk.Name,
			Value:               arclight.FlexInt(sk.Value),
			Proficient:          sk.Proficient,
			Ability:             sk.Ability,
			BaseSkillID:         sk.BaseSkillID,
			SelectedBaseSkillID: sk.SelectedBaseSkillID,
		})
	}

	for _, feat := range c.ArchetypeFeats {
		data.ArchetypeFeats = append(data.ArchetypeFeats, arclight.ArchetypeFeatData{
			ID:          feat.ID,
			Name:        feat.Name,
			CurrentUses: arclight.FlexInt(feat.CurrentUses),
			MaxUses:     arclight.FlexInt(feat.MaxUses),
		})
	}
	for _, feat := range c.CharacterFeats {
		data.CharacterFeats = append(data.CharacterFeats, arclight.CharacterFeatData{
			Name:        feat.Name,
			Type:        feat.Type,
			CurrentUses: arclight.FlexInt(feat.CurrentUses),
		})
	}

	for _, p := range c.Powers {
		data.Powers = append(data.Powers, arclight.PowerRefData{ID: p.ID, Name: p.Name, Innate: p.Innate})
	}
	for _, t := range c.Techniques {
		data.Techniques = append(data.Techniques, arclight.TechniqueRefData{ID: t.ID, Name: t.Name})
	}

	data.Traits = append(data.Traits, c.Traits...)
	if len(c.TraitUses) > 0 {
		data.TraitUses = make(map[string]arclight.FlexInt, len(c.TraitUses))
		for name, uses := range c.TraitUses {
			data.TraitUses[name] = arclight.FlexInt(uses)
		}
	}

	data.Equipment = cleanEquipment(c.Equipment)

	if len(c.AdvancedNotes) > 0 {
		scrubbed := scrubValue(c.AdvancedNotes)
		if encoded, err := json.Marshal(scrubbed); err == nil {
			data.AdvancedNotes = string(encoded)
		}
	}

	return data
}

func cleanEquipment(eq arclight.Equipment) arclight.EquipmentData {
	var data arclight.EquipmentData
	for _, w := range eq.Weapons {
		if w.Name == "" {
			continue
		}
		data.Weapons = append(data.Weapons, arclight.WeaponData{Name: w.Name, Equipped: w.Equipped})
	}
	for _, a := range eq.Armor {
		if a.Name == "" {
			continue
		}
		data.Armor = append(data.Armor, arclight.ArmorData{Name: a.Name, Equipped: a.Equipped})
	}
	for _, it := range eq.Items {
		if it.Name == "" {
			continue
		}
		entry := arclight.ItemData{Name: it.Name}
		// quantity 1 is the default and stays implicit
		if it.Quantity > 1 {
			entry.Quantity = arclight.FlexInt(it.Quantity)
		}
		data.Items = append(data.Items, entry)
	}
	return data
}

// scrubValue walks the free-form notes structure and removes values the JSON
// encoding cannot carry (NaN and infinities). Null stays; it is a legitimate
// stored value.
func scrubValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for key, inner := range val {
			if cleaned, ok := scrubField(inner); ok {
				out[key] = cleaned
			}
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(val))
		for _, inner := range val {
			if cleaned, ok := scrubField(inner); ok {
				out = append(out, cleaned)
			}
		}
		return out
	default:
		return v
	}
}

func scrubField(v interface{}) (interface{}, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, false
		}
		return val, true
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return val, true
	case map[string]interface{}, []interface{}:
		return scrubValue(val), true
	default:
		return val, true
	}
}
