package rules

import (
	"github.com/arcforge/codex-api/internal/entities/arclight"
)

// ProgressionKind is the archetype progression derived from a character's
// proficiency split. It is computed, never stored; the stored archetype tag
// and the proficiency integers are kept consistent by the caller.
type ProgressionKind string

// Progression kinds
const (
	ProgressionPower   ProgressionKind = "power"
	ProgressionMartial ProgressionKind = "martial"
	ProgressionMixed   ProgressionKind = "mixed"
	ProgressionNone    ProgressionKind = "none"
)

// Archetype progression constants
const (
	pureInnateThresholdBase = 8
	pureStepBase            = 2
	pureStepLevel           = 4

	mixedInnateThresholdBase = 6
	mixedInnatePoolsBase     = 1
	mixedBonusFeatsBase      = 1
	mixedFirstMilestone      = 4
	mixedMilestoneStep       = 3
)

// ArchetypeProgression is the archetype-derived portion of a sheet
type ArchetypeProgression struct {
	Kind            ProgressionKind `json:"kind"`
	InnateThreshold int             `json:"innateThreshold"`
	InnatePools     int             `json:"innatePools"`
	InnateEnergy    int             `json:"innateEnergy"`
	BonusFeats      int             `json:"bonusFeats"`
}

// ProgressionKindFor derives the progression kind from the proficiency split
func ProgressionKindFor(martialProf, powerProf int) ProgressionKind {
	switch {
	case martialProf == 0 && powerProf > 0:
		return ProgressionPower
	case powerProf == 0 && martialProf > 0:
		return ProgressionMartial
	case martialProf > 0 && powerProf > 0:
		return ProgressionMixed
	default:
		return ProgressionNone
	}
}

// pureStep is the shared step function for pure archetypes: the base value
// below level 4, then base + floor((level-1)/3).
func pureStep(level, base int) int {
	if level < pureStepLevel {
		return base
	}
	return base + (level-1)/3
}

// ArchetypeProgressionAt computes archetype progression for a level and
// proficiency split. Mixed characters advance through caller-supplied
// milestone choices at levels 4, 7, 10, ...; an unresolved milestone
// contributes nothing.
func ArchetypeProgressionAt(
	level, martialProf, powerProf int,
	choices map[int]arclight.MilestoneChoice,
) ArchetypeProgression {
	level = clampLevel(level)
	kind := ProgressionKindFor(martialProf, powerProf)

	switch kind {
	case ProgressionPower:
		threshold := pureStep(level, pureInnateThresholdBase)
		pools := pureStep(level, pureStepBase)
		return ArchetypeProgression{
			Kind:            kind,
			InnateThreshold: threshold,
			InnatePools:     pools,
			InnateEnergy:    threshold * pools,
		}

	case ProgressionMartial:
		return ArchetypeProgression{
			Kind:       kind,
			BonusFeats: pureStep(level, pureStepBase),
		}

	case ProgressionMixed:
		threshold := mixedInnateThresholdBase
		pools := mixedInnatePoolsBase
		feats := mixedBonusFeatsBase
		for m := mixedFirstMilestone; m <= level; m += mixedMilestoneStep {
			switch choices[m] {
			case arclight.MilestoneInnate:
				threshold++
				pools++
			case arclight.MilestoneFeat:
				feats++
			}
		}
		return ArchetypeProgression{
			Kind:            kind,
			InnateThreshold: threshold,
			InnatePools:     pools,
			InnateEnergy:    threshold * pools,
			BonusFeats:      feats,
		}

	default:
		return ArchetypeProgression{Kind: ProgressionNone}
	}
}
