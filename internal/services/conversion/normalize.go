// Package conversion translates between the persisted character shape and the
// in-memory aggregate. Loading normalizes every legacy encoding in one place
// so nothing downstream has to know old saves exist; saving reduces the
// aggregate back to the authoritative allow-list.
package conversion

import (
	"encoding/json"
	"strconv"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// ToCharacter normalizes a persisted record into the in-memory aggregate.
// All legacy reconciliation happens here, once, at the load boundary:
// defenseVals folds into defenseSkills, the nested health/energy objects fold
// into the flat current fields, milestone keys become ints, and equipment
// entries without a name are dropped.
func ToCharacter(data *arclight.CharacterData) *arclight.Character {
	if data == nil {
		return nil
	}

	c := &arclight.Character{
		ID:       data.ID,
		PlayerID: data.PlayerID,
		Name:     data.Name,
		Kind:     data.Kind,
		Level:    data.Level.Int(),

		Abilities: arclight.Abilities{
			Strength:     data.Abilities.Strength.Int(),
			Vitality:     data.Abilities.Vitality.Int(),
			Agility:      data.Abilities.Agility.Int(),
			Acuity:       data.Abilities.Acuity.Int(),
			Intelligence: data.Abilities.Intelligence.Int(),
			Charisma:     data.Abilities.Charisma.Int(),
		},

		Archetype:          data.Archetype,
		PowerAbility:       data.PowerAbility,
		MartialProficiency: data.MartialProficiency.Int(),
		PowerProficiency:   data.PowerProficiency.Int(),

		AllocatedHealthPoints: data.AllocatedHealthPoints.Int(),
		AllocatedEnergyPoints: data.AllocatedEnergyPoints.Int(),

		Currency:  data.Currency.Int(),
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if c.Kind == "" {
		c.Kind = arclight.EntityPlayer
	}
	if c.Level < 1 {
		c.Level = 1
	}

	c.MilestoneChoices = milestoneChoices(data.MilestoneChoices)
	c.CurrentHealth = currentResource(data.CurrentHealth, data.Health)
	c.CurrentEnergy = currentResource(data.CurrentEnergy, data.Energy)
	c.DefenseSkills = defenseSkills(data.DefenseSkills, data.DefenseVals)

	c.Skills = make([]arclight.Skill, 0, len(data.Skills))
	for _, sd := range data.Skills {
		if sd.Name == "" {
			continue
		}
		c.Skills = append(c.Skills, arclight.Skill{
			ID:                  sd.ID,
			Name:                sd.Name,
			Value:               sd.Value.Int(),
			Proficient:          sd.Proficient,
			Ability:             sd.Ability,
			BaseSkillID:         sd.BaseSkillID,
			SelectedBaseSkillID: sd.SelectedBaseSkillID,
		})
	}

	for _, fd := range data.ArchetypeFeats {
		c.ArchetypeFeats = append(c.ArchetypeFeats, arclight.ArchetypeFeat{
			ID:          fd.ID,
			Name:        fd.Name,
			CurrentUses: fd.CurrentUses.Int(),
			MaxUses:     fd.MaxUses.Int(),
		})
	}
	for _, fd := range data.CharacterFeats {
		c.CharacterFeats = append(c.CharacterFeats, arclight.CharacterFeat{
			Name:        fd.Name,
			Type:        fd.Type,
			CurrentUses: fd.CurrentUses.Int(),
		})
	}

	for _, pd := range data.Powers {
		c.Powers = append(c.Powers, arclight.PowerRef{ID: pd.ID, Name: pd.Name, Innate: pd.Innate})
	}
	for _, td := range data.Techniques {
		c.Techniques = append(c.Techniques, arclight.TechniqueRef{ID: td.ID, Name: td.Name})
	}

	c.Traits = append(c.Traits, data.Traits...)
	if len(data.TraitUses) > 0 {
		c.TraitUses = make(map[string]int, len(data.TraitUses))
		for name, uses := range data.TraitUses {
			c.TraitUses[name] = uses.Int()
		}
	}

	c.Equipment = equipment(data.Equipment)
	c.AdvancedNotes = advancedNotes(data.AdvancedNotes)

	return c
}

func milestoneChoices(raw map[string]arclight.MilestoneChoice) map[int]arclight.MilestoneChoice {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[int]arclight.MilestoneChoice, len(raw))
	for key, choice := range raw {
		level, err := strconv.Atoi(key)
		if err != nil || level < 1 {
			continue
		}
		out[level] = choice
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// currentResource reconciles the flat field with the deprecated nested
// object. The flat field wins whenever it carries a value.
func currentResource(flat arclight.FlexInt, nested *arclight.LegacyResource) int {
	if flat != 0 {
		return flat.Int()
	}
	if nested != nil {
		return nested.Current.Int()
	}
	return 0
}

func defenseSkills(primary, legacy *arclight.DefenseSkillsData) arclight.DefenseSkills {
	src := primary
	if src == nil {
		src = legacy
	}
	if src == nil {
		return arclight.DefenseSkills{}
	}
	return arclight.DefenseSkills{
		Might:           src.Might.Int(),
		Fortitude:       src.Fortitude.Int(),
		Reflex:          src.Reflex.Int(),
		Discernment:     src.Discernment.Int(),
		MentalFortitude: src.MentalFortitude.Int(),
		Resolve:         src.Resolve.Int(),
	}
}

func equipment(data arclight.EquipmentData) arclight.Equipment {
	var eq arclight.Equipment
	for _, w := range data.Weapons {
		if w.Name == "" {
			continue
		}
		eq.Weapons = append(eq.Weapons, arclight.WeaponItem{Name: w.Name, Equipped: w.Equipped})
	}
	for _, a := range data.Armor {
		if a.Name == "" {
			continue
		}
		eq.Armor = append(eq.Armor, arclight.ArmorItem{Name: a.Name, Equipped: a.Equipped})
	}
	for _, it := range data.Items {
		if it.Name == "" {
			continue
		}
		qty := it.Quantity.Int()
		if qty < 1 {
			qty = 1
		}
		eq.Items = append(eq.Items, arclight.GeneralItem{Name: it.Name, Quantity: qty})
	}
	return eq
}

// advancedNotes decodes the free-form JSON blob. A corrupt blob loses the
// notes rather than the character.
func advancedNotes(raw string) map[string]interface{} {
	if raw == "" {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
