// Package check implements the check orchestrator: d20 rolls against a
// character's skill and defense bonuses, with results grouped into short-lived
// roll sessions.
package check

//go:generate mockgen -destination=mock/mock_service.go -package=checkmock github.com/arcforge/codex-api/internal/orchestrators/check Service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/pkg/idgen"
	"github.com/arcforge/codex-api/internal/repositories/character"
	"github.com/arcforge/codex-api/internal/repositories/rollsession"
	"github.com/arcforge/codex-api/internal/rules"
	"github.com/arcforge/codex-api/internal/services/conversion"
)

const (
	// DefaultSessionTTL bounds how long a check result stays retrievable
	DefaultSessionTTL = 15 * time.Minute

	checkDieSize = 20
)

// Service defines the interface for check operations
type Service interface {
	// RollSkillCheck rolls 1d20 plus the character's bonus for a skill
	RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error)

	// RollDefenseCheck rolls 1d20 plus the character's bonus for a defense
	RollDefenseCheck(ctx context.Context, input *RollDefenseCheckInput) (*RollDefenseCheckOutput, error)

	// GetRollSession retrieves the rolls made in a context
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)

	// ClearRollSession discards the rolls made in a context
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)
}

// Config holds the dependencies for the check orchestrator
type Config struct {
	CharacterRepo   character.Repository
	RollSessionRepo rollsession.Repository
	IDGenerator     idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.RollSessionRepo == nil {
		vb.RequiredField("RollSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo   character.Repository
	rollSessionRepo rollsession.Repository
	idGen           idgen.Generator
}

// NewOrchestrator creates a new check orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo:   cfg.CharacterRepo,
		rollSessionRepo: cfg.RollSessionRepo,
		idGen:           cfg.IDGenerator,
	}, nil
}

// RollSkillCheckInput holds the parameters for a skill check
type RollSkillCheckInput struct {
	CharacterID string
	// Skill is the skill id, falling back to a case-insensitive name match
	Skill string
	// Context groups rolls in the session store; defaults to "skill:<skill>"
	Context string
}

// RollSkillCheckOutput holds the resolved skill check
type RollSkillCheckOutput struct {
	Roll *rollsession.RollRecord
	// Bonus is the modifier applied on top of the die
	Bonus int
}

// RollDefenseCheckInput holds the parameters for a defense check
type RollDefenseCheckInput struct {
	CharacterID string
	// Defense is one of the six defense names
	Defense string
	Context string
}

// RollDefenseCheckOutput holds the resolved defense check
type RollDefenseCheckOutput struct {
	Roll  *rollsession.RollRecord
	Bonus int
}

// GetRollSessionInput identifies a session to read
type GetRollSessionInput struct {
	CharacterID string
	Context     string
}

// GetRollSessionOutput carries the session
type GetRollSessionOutput struct {
	Session *rollsession.RollSession
}

// ClearRollSessionInput identifies a session to discard
type ClearRollSessionInput struct {
	CharacterID string
	Context     string
}

// ClearRollSessionOutput reports what was discarded
type ClearRollSessionOutput struct {
	RollsDeleted int32
}

func (o *orchestrator) RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill cannot be empty")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	skill := findSkill(char, input.Skill)
	if skill == nil {
		return nil, errors.NotFoundf("character %s has no skill %q", input.CharacterID, input.Skill)
	}

	base := char.FindSkill(skill.SelectedBaseSkillID)
	if base == nil {
		base = char.FindSkill(skill.BaseSkillID)
	}
	bonus := rules.SkillBonus(char.Abilities, *skill, base)

	sessionContext := input.Context
	if sessionContext == "" {
		sessionContext = "skill:" + strings.ToLower(skill.Name)
	}

	record, err := o.rollAndRecord(ctx, input.CharacterID, sessionContext, bonus,
		fmt.Sprintf("%s check", skill.Name))
	if err != nil {
		return nil, err
	}

	return &RollSkillCheckOutput{Roll: record, Bonus: bonus}, nil
}

func (o *orchestrator) RollDefenseCheck(ctx context.Context, input *RollDefenseCheckInput) (*RollDefenseCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	bonuses := rules.DefenseBonuses(char.Abilities, char.DefenseSkills)
	bonus, ok := defenseBonus(bonuses, input.Defense)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown defense %q", input.Defense)
	}

	sessionContext := input.Context
	if sessionContext == "" {
		sessionContext = "defense:" + strings.ToLower(input.Defense)
	}

	record, err := o.rollAndRecord(ctx, input.CharacterID, sessionContext, bonus,
		fmt.Sprintf("%s defense check", input.Defense))
	if err != nil {
		return nil, err
	}

	return &RollDefenseCheckOutput{Roll: record, Bonus: bonus}, nil
}

func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.rollSessionRepo.Get(ctx, rollsession.GetInput{
		CharacterID: input.CharacterID,
		Context:     input.Context,
	})
	if err != nil {
		return nil, err
	}
	return &GetRollSessionOutput{Session: out.Session}, nil
}

func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.rollSessionRepo.Delete(ctx, rollsession.DeleteInput{
		CharacterID: input.CharacterID,
		Context:     input.Context,
	})
	if err != nil {
		return nil, err
	}
	return &ClearRollSessionOutput{RollsDeleted: out.RollsDeleted}, nil
}

func (o *orchestrator) loadCharacter(ctx context.Context, id string) (*arclight.Character, error) {
	out, err := o.characterRepo.Get(ctx, character.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return conversion.ToCharacter(out.CharacterData), nil
}

// rollAndRecord rolls 1d20, applies the bonus, and appends the result to the
// session, creating the session if this is its first roll.
func (o *orchestrator) rollAndRecord(ctx context.Context, characterID, sessionContext string, bonus int, description string) (*rollsession.RollRecord, error) {
	roll, err := dice.NewRoll(1, checkDieSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create check roll")
	}

	dieValue := roll.GetValue()
	// nolint:gosec // die values and bonuses are tiny
	record := rollsession.RollRecord{
		RollID:      o.idGen.Generate(),
		Notation:    notation(bonus),
		Dice:        []int32{int32(dieValue)},
		Total:       int32(dieValue + bonus),
		Modifier:    int32(bonus),
		Description: description,
	}

	slog.DebugContext(ctx, "resolved check roll",
		"character_id", characterID,
		"context", sessionContext,
		"die", dieValue,
		"bonus", bonus,
		"total", record.Total,
		"roll_detail", roll.GetDescription())

	_, err = o.rollSessionRepo.AddRolls(ctx, rollsession.AddRollsInput{
		CharacterID: characterID,
		Context:     sessionContext,
		Rolls:       []rollsession.RollRecord{record},
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}
		_, err = o.rollSessionRepo.Create(ctx, rollsession.CreateInput{
			CharacterID: characterID,
			Context:     sessionContext,
			Rolls:       []rollsession.RollRecord{record},
			TTL:         DefaultSessionTTL,
		})
		if err != nil {
			return nil, err
		}
	}

	return &record, nil
}

// findSkill resolves by id first, then case-insensitive name
func findSkill(char *arclight.Character, key string) *arclight.Skill {
	if s := char.FindSkill(key); s != nil {
		return s
	}
	for i := range char.Skills {
		if strings.EqualFold(char.Skills[i].Name, key) {
			return &char.Skills[i]
		}
	}
	return nil
}

func defenseBonus(b rules.DefenseBlock, name string) (int, bool) {
	switch strings.ToLower(name) {
	case arclight.DefenseMight:
		return b.Might, true
	case arclight.DefenseFortitude:
		return b.Fortitude, true
	case arclight.DefenseReflex:
		return b.Reflex, true
	case arclight.DefenseDiscernment:
		return b.Discernment, true
	case strings.ToLower(arclight.DefenseMentalFortitude):
		return b.MentalFortitude, true
	case arclight.DefenseResolve:
		return b.Resolve, true
	default:
		return 0, false
	}
}

func notation(bonus int) string {
	switch {
	case bonus > 0:
		return "1d20+" + strconv.Itoa(bonus)
	case bonus < 0:
		return "1d20" + strconv.Itoa(bonus)
	default:
		return "1d20"
	}
}
