// Package calculators implements part/cost aggregation for user-composed
// powers, techniques, and items. Every total is a deterministic pure function
// of the selected parts and their option levels; mechanic parts synthesized
// from UI selections flow through the same summation path as user-chosen
// parts.
package calculators

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// CostTotals is the aggregated cost of a part selection. Energy doubles as
// stamina for techniques. TrainingPoints keeps fractional precision;
// TrainingPointsDisplay floors it, never rounds up, so composite fractions
// cannot overcharge. Breakdown is an ordered, display-only list of
// "source: contribution" lines.
type CostTotals struct {
	Energy                float64  `json:"energy"`
	TrainingPoints        float64  `json:"trainingPoints"`
	TrainingPointsDisplay int      `json:"trainingPointsDisplay"`
	Breakdown             []string `json:"breakdown"`
}

// AggregateCosts sums the selected parts against the definition table. A
// selection whose part does not resolve contributes zero and is reported in
// the breakdown; surfacing a warning is the caller's business.
func AggregateCosts(selected []arclight.SelectedPart, index *arclight.PartIndex) CostTotals {
	totals := CostTotals{Breakdown: make([]string, 0, len(selected))}

	for _, sel := range selected {
		def, ok := index.Resolve(sel.Part)
		if !ok {
			totals.Breakdown = append(totals.Breakdown,
				fmt.Sprintf("%s: unknown part, no contribution", sel.Part.Value))
			continue
		}

		en := def.BaseEnergy
		tp := def.BaseTP
		for i, opt := range def.Options {
			if i >= arclight.MaxPartOptions {
				break
			}
			level := sel.OptionLevels[i]
			if level <= 0 {
				continue
			}
			en += opt.EnergyPerLevel * float64(level)
			tp += opt.TPPerLevel * float64(level)
		}

		totals.Energy += en
		totals.TrainingPoints += tp
		totals.Breakdown = append(totals.Breakdown,
			fmt.Sprintf("%s: %s EN, %s TP", def.Name, formatCost(en), formatCost(tp)))
	}

	totals.TrainingPointsDisplay = FloorTP(totals.TrainingPoints)
	return totals
}

// FloorTP truncates a fractional TP total for display. Display always floors;
// intermediate fractions are legitimate and must not round up.
func FloorTP(tp float64) int {
	return int(math.Floor(tp))
}

// formatCost renders a cost without trailing zeros
func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PowerCost aggregates a power's user-selected parts plus the mechanic parts
// synthesized from its action-type, reaction, and bonus-damage selections.
func PowerCost(p arclight.Power, index *arclight.PartIndex) CostTotals {
	parts := append([]arclight.SelectedPart{}, p.Parts...)
	parts = append(parts, MechanicParts(MechanicSelections{
		ActionType:      p.ActionType,
		Reaction:        p.Reaction,
		BonusDamageDice: p.BonusDamage,
	})...)
	return AggregateCosts(parts, index)
}

// TechniqueCost aggregates a technique's parts plus its mechanic parts,
// including weapon TP scaling. The energy total reads as stamina.
func TechniqueCost(t arclight.Technique, index *arclight.PartIndex) CostTotals {
	parts := append([]arclight.SelectedPart{}, t.Parts...)
	parts = append(parts, MechanicParts(MechanicSelections{
		ActionType:      t.ActionType,
		Reaction:        t.Reaction,
		BonusDamageDice: t.BonusDamage,
		WeaponTP:        t.WeaponTP,
	})...)
	return AggregateCosts(parts, index)
}

// ItemCost aggregates an item's property parts. Items have no mechanic
// selections.
func ItemCost(item arclight.Item, index *arclight.PartIndex) CostTotals {
	return AggregateCosts(item.Properties, index)
}
