package conversion

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

type EnrichTestSuite struct {
	suite.Suite
	char  *arclight.Character
	lib   arclight.Library
	codex CodexTables
}

func TestEnrichSuite(t *testing.T) {
	suite.Run(t, new(EnrichTestSuite))
}

func (s *EnrichTestSuite) SetupTest() {
	s.lib = arclight.Library{
		Powers: []arclight.Power{
			{
				ID:          "pow_1",
				Name:        "Flame Lance",
				ActionType:  arclight.ActionQuick,
				Damage:      "1d8",
				BonusDamage: 2,
				Parts: []arclight.SelectedPart{
					{Part: arclight.IDRef("part_bolt"), OptionLevels: [3]int{1}},
				},
			},
		},
		Techniques: []arclight.Technique{
			{ID: "tech_1", Name: "Riposte", WeaponTP: 3, Reaction: true},
		},
		Items: []arclight.Item{
			{ID: "item_saber", Name: "Saber", Kind: arclight.ItemWeapon, Damage: "1d6"},
			{ID: "item_coat", Name: "Plated Coat", Kind: arclight.ItemArmor, Armor: 3},
		},
	}
	s.codex = CodexTables{
		Equipment: []arclight.Item{
			{ID: "cdx_rope", Name: "Rope", Kind: arclight.ItemGeneral},
			{ID: "cdx_buckler", Name: "Buckler", Kind: arclight.ItemArmor, Armor: 1},
		},
		PowerParts: []arclight.Part{
			{ID: "part_bolt", Name: "Searing Bolt", BaseTP: 2, Options: []arclight.PartOption{{TPPerLevel: 1}}},
		},
	}
	s.char = &arclight.Character{
		ID:     "char_1",
		Powers: []arclight.PowerRef{{ID: "pow_1", Name: "Flame Lance", Innate: true}},
		Techniques: []arclight.TechniqueRef{
			{Name: "riposte"}, // legacy name-only, case differs
			{Name: "Forgotten Move"},
		},
		Equipment: arclight.Equipment{
			Weapons: []arclight.WeaponItem{{Name: "Saber", Equipped: true}},
			Armor: []arclight.ArmorItem{
				{Name: "Plated Coat", Equipped: true},
				{Name: "Buckler"},
			},
			Items: []arclight.GeneralItem{{Name: "Rope", Quantity: 2}},
		},
	}
}

func (s *EnrichTestSuite) TestPowerResolvesWithCostAndLabels() {
	out := EnrichCharacter(s.char, s.lib, s.codex)

	s.Require().Len(out.Powers, 1)
	p := out.Powers[0]
	s.False(p.NotInLibrary)
	s.Equal("Flame Lance", p.Power.Name)
	s.Equal("quick action", p.Action)
	s.Equal("1d8 + 2d6", p.Damage)
	// part_bolt 2+1 TP, quick 1 TP, 2 bonus dice 1 TP
	s.InDelta(5.0, p.Cost.TrainingPoints, 1e-9)
}

func (s *EnrichTestSuite) TestTechniqueNameLookupIsCaseInsensitive() {
	out := EnrichCharacter(s.char, s.lib, s.codex)

	s.Require().Len(out.Techniques, 2)
	s.False(out.Techniques[0].NotInLibrary)
	s.Equal("Riposte", out.Techniques[0].Technique.Name)
	s.InDelta(5.0, out.Techniques[0].Cost.TrainingPoints, 1e-9) // weapon scaling 3 + reaction 2
}

func (s *EnrichTestSuite) TestUnresolvedReferenceYieldsPlaceholder() {
	out := EnrichCharacter(s.char, s.lib, s.codex)

	missing := out.Techniques[1]
	s.True(missing.NotInLibrary)
	s.Equal("Forgotten Move", missing.Technique.Name)
	s.Equal(notFoundDescription, missing.Technique.Description)
}

func (s *EnrichTestSuite) TestOneOutputPerInputInOrder() {
	out := EnrichCharacter(s.char, s.lib, s.codex)
	s.Len(out.Powers, len(s.char.Powers))
	s.Len(out.Techniques, len(s.char.Techniques))
	s.Len(out.Weapons, len(s.char.Equipment.Weapons))
	s.Len(out.Armor, len(s.char.Equipment.Armor))
	s.Len(out.Items, len(s.char.Equipment.Items))
}

func (s *EnrichTestSuite) TestCodexEquipmentFallback() {
	out := EnrichCharacter(s.char, s.lib, s.codex)

	s.Require().Len(out.Items, 1)
	s.False(out.Items[0].NotInLibrary)
	s.Equal("cdx_rope", out.Items[0].Item.ID)
	s.Equal(2, out.Items[0].Quantity)

	s.Require().Len(out.Armor, 2)
	s.Equal(1, out.Armor[1].Armor, "buckler resolves from the codex")
}

func (s *EnrichTestSuite) TestArmorValuesWrittenBack() {
	EnrichCharacter(s.char, s.lib, s.codex)
	s.Equal(3, s.char.Equipment.Armor[0].Armor)
	s.Equal(1, s.char.Equipment.Armor[1].Armor)
}

func (s *EnrichTestSuite) TestKindGatesItemLookup() {
	// A weapon named like an armor row must not resolve to it.
	s.char.Equipment.Weapons = []arclight.WeaponItem{{Name: "Buckler"}}
	out := EnrichCharacter(s.char, s.lib, s.codex)
	s.Require().Len(out.Weapons, 1)
	s.True(out.Weapons[0].NotInLibrary)
}

func (s *EnrichTestSuite) TestIDMatchBeatsEarlierStaleName() {
	// pow_2 was renamed after the character saved its ref; the stale name on
	// the ref still matches pow_1, which sits earlier in the library. The id
	// pass must win before any name fallback runs.
	s.lib.Powers = []arclight.Power{
		{ID: "pow_1", Name: "Fireball"},
		{ID: "pow_2", Name: "Sunburst"},
	}
	s.char.Powers = []arclight.PowerRef{{ID: "pow_2", Name: "Fireball"}}

	out := EnrichCharacter(s.char, s.lib, s.codex)

	s.Require().Len(out.Powers, 1)
	s.False(out.Powers[0].NotInLibrary)
	s.Equal("pow_2", out.Powers[0].Power.ID)
	s.Equal("Sunburst", out.Powers[0].Power.Name)
}

func (s *EnrichTestSuite) TestTechniqueIDMatchBeatsEarlierStaleName() {
	s.lib.Techniques = []arclight.Technique{
		{ID: "tech_1", Name: "Feint"},
		{ID: "tech_2", Name: "Riposte"},
	}
	s.char.Techniques = []arclight.TechniqueRef{{ID: "tech_2", Name: "Feint"}}

	out := EnrichCharacter(s.char, s.lib, s.codex)

	s.Require().Len(out.Techniques, 1)
	s.Equal("tech_2", out.Techniques[0].Technique.ID)
}

func (s *EnrichTestSuite) TestNilCharacter() {
	out := EnrichCharacter(nil, s.lib, s.codex)
	s.Empty(out.Powers)
	s.Empty(out.Weapons)
}

func (s *EnrichTestSuite) TestRoundTripReintroducesNoDisplayFields() {
	EnrichCharacter(s.char, s.lib, s.codex)
	data := CleanForSave(s.char)

	s.Require().Len(data.Equipment.Armor, 2)
	// ArmorData has no armor-value field at all; equipped flag survives
	s.True(data.Equipment.Armor[0].Equipped)
}
