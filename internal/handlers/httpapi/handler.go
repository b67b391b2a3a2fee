// Package httpapi exposes the orchestrators as a JSON HTTP API. Request and
// response bodies use the persisted character shape, so every legacy encoding
// a client can still send is absorbed by the same load-boundary
// normalization the storage path uses.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/errors"
	"github.com/arcforge/codex-api/internal/orchestrators/builder"
	"github.com/arcforge/codex-api/internal/orchestrators/check"
	"github.com/arcforge/codex-api/internal/orchestrators/sheet"
	"github.com/arcforge/codex-api/internal/repositories/library"
	"github.com/arcforge/codex-api/internal/rules"
	"github.com/arcforge/codex-api/internal/services/conversion"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	SheetService   sheet.Service
	BuilderService builder.Service
	CheckService   check.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.BuilderService == nil {
		vb.RequiredField("BuilderService")
	}
	if c.CheckService == nil {
		vb.RequiredField("CheckService")
	}

	return vb.Build()
}

// Handler routes HTTP requests to the orchestrators
type Handler struct {
	sheets   sheet.Service
	builders builder.Service
	checks   check.Service
}

// NewHandler creates a new HTTP handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		sheets:   cfg.SheetService,
		builders: cfg.BuilderService,
		checks:   cfg.CheckService,
	}, nil
}

// Routes returns the ServeMux with every endpoint registered
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.health)

	mux.HandleFunc("GET /v1/players/{playerID}/characters", h.listCharacters)
	mux.HandleFunc("POST /v1/characters", h.createCharacter)
	mux.HandleFunc("GET /v1/characters/{id}", h.getSheet)
	mux.HandleFunc("PUT /v1/characters/{id}", h.updateCharacter)
	mux.HandleFunc("DELETE /v1/characters/{id}", h.deleteCharacter)
	mux.HandleFunc("POST /v1/characters/{id}/resources", h.adjustResources)

	mux.HandleFunc("POST /v1/characters/{id}/checks", h.rollCheck)
	mux.HandleFunc("GET /v1/characters/{id}/rolls", h.getRollSession)
	mux.HandleFunc("DELETE /v1/characters/{id}/rolls", h.clearRollSession)

	mux.HandleFunc("POST /v1/builder/powers/preview", h.previewPower)
	mux.HandleFunc("POST /v1/builder/techniques/preview", h.previewTechnique)
	mux.HandleFunc("POST /v1/builder/items/preview", h.previewItem)
	mux.HandleFunc("POST /v1/players/{playerID}/library/powers", h.savePower)
	mux.HandleFunc("POST /v1/players/{playerID}/library/techniques", h.saveTechnique)
	mux.HandleFunc("POST /v1/players/{playerID}/library/items", h.saveItem)
	mux.HandleFunc("DELETE /v1/players/{playerID}/library/{kind}/{entryID}", h.deleteLibraryEntry)

	return mux
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// sheetResponse is the display view of a character. The character itself is
// rendered in its persisted shape so clients read and write the same format.
type sheetResponse struct {
	Character    *arclight.CharacterData       `json:"character"`
	Stats        rules.DerivedStats            `json:"stats"`
	SkillBonuses map[string]int                `json:"skillBonuses"`
	Budgets      sheet.Budgets                 `json:"budgets"`
	Progression  rules.ArchetypeProgression    `json:"progression"`
	Enriched     *conversion.EnrichedCharacter `json:"enriched"`
}

func (h *Handler) getSheet(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheets.GetSheet(r.Context(), &sheet.GetSheetInput{CharacterID: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sheetResponse{
		Character:    conversion.CleanForSave(out.Character),
		Stats:        out.Stats,
		SkillBonuses: out.SkillBonuses,
		Budgets:      out.Budgets,
		Progression:  out.Progression,
		Enriched:     out.Enriched,
	})
}

type saveCharacterResponse struct {
	ID      string `json:"id"`
	Created bool   `json:"created"`
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	h.saveCharacter(w, r, "")
}

func (h *Handler) updateCharacter(w http.ResponseWriter, r *http.Request) {
	h.saveCharacter(w, r, r.PathValue("id"))
}

func (h *Handler) saveCharacter(w http.ResponseWriter, r *http.Request, id string) {
	var data arclight.CharacterData
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}
	if id != "" {
		data.ID = id
	}

	char := conversion.ToCharacter(&data)

	out, err := h.sheets.SaveCharacter(r.Context(), &sheet.SaveCharacterInput{Character: char})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, saveCharacterResponse{ID: out.CharacterID, Created: out.Created})
}

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	out, err := h.sheets.ListCharacters(r.Context(), &sheet.ListCharactersInput{
		PlayerID: r.PathValue("playerID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"characters": out.Characters})
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	_, err := h.sheets.DeleteCharacter(r.Context(), &sheet.DeleteCharacterInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type adjustResourcesRequest struct {
	HealthDelta int `json:"healthDelta"`
	EnergyDelta int `json:"energyDelta"`
}

func (h *Handler) adjustResources(w http.ResponseWriter, r *http.Request) {
	var req adjustResourcesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.sheets.AdjustResources(r.Context(), &sheet.AdjustResourcesInput{
		CharacterID: r.PathValue("id"),
		HealthDelta: req.HealthDelta,
		EnergyDelta: req.EnergyDelta,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"currentHealth": out.CurrentHealth,
		"maxHealth":     out.MaxHealth,
		"currentEnergy": out.CurrentEnergy,
		"maxEnergy":     out.MaxEnergy,
	})
}

type rollCheckRequest struct {
	Skill   string `json:"skill,omitempty"`
	Defense string `json:"defense,omitempty"`
	Context string `json:"context,omitempty"`
}

func (h *Handler) rollCheck(w http.ResponseWriter, r *http.Request) {
	var req rollCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	characterID := r.PathValue("id")
	switch {
	case req.Skill != "" && req.Defense != "":
		writeError(w, r, errors.InvalidArgument("specify either skill or defense, not both"))
	case req.Skill != "":
		out, err := h.checks.RollSkillCheck(r.Context(), &check.RollSkillCheckInput{
			CharacterID: characterID,
			Skill:       req.Skill,
			Context:     req.Context,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"roll": out.Roll, "bonus": out.Bonus})
	case req.Defense != "":
		out, err := h.checks.RollDefenseCheck(r.Context(), &check.RollDefenseCheckInput{
			CharacterID: characterID,
			Defense:     req.Defense,
			Context:     req.Context,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"roll": out.Roll, "bonus": out.Bonus})
	default:
		writeError(w, r, errors.InvalidArgument("skill or defense is required"))
	}
}

func (h *Handler) getRollSession(w http.ResponseWriter, r *http.Request) {
	out, err := h.checks.GetRollSession(r.Context(), &check.GetRollSessionInput{
		CharacterID: r.PathValue("id"),
		Context:     r.URL.Query().Get("context"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": out.Session})
}

func (h *Handler) clearRollSession(w http.ResponseWriter, r *http.Request) {
	out, err := h.checks.ClearRollSession(r.Context(), &check.ClearRollSessionInput{
		CharacterID: r.PathValue("id"),
		Context:     r.URL.Query().Get("context"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"rollsDeleted": out.RollsDeleted})
}

func (h *Handler) previewPower(w http.ResponseWriter, r *http.Request) {
	var power arclight.Power
	if err := decodeJSON(r, &power); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.builders.PreviewPower(r.Context(), &builder.PreviewPowerInput{Power: &power})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) previewTechnique(w http.ResponseWriter, r *http.Request) {
	var technique arclight.Technique
	if err := decodeJSON(r, &technique); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.builders.PreviewTechnique(r.Context(), &builder.PreviewTechniqueInput{Technique: &technique})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) previewItem(w http.ResponseWriter, r *http.Request) {
	var item arclight.Item
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.builders.PreviewItem(r.Context(), &builder.PreviewItemInput{Item: &item})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) savePower(w http.ResponseWriter, r *http.Request) {
	var power arclight.Power
	if err := decodeJSON(r, &power); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.builders.SavePower(r.Context(), &builder.SavePowerInput{
		PlayerID: r.PathValue("playerID"),
		Power:    &power,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) saveTechnique(w http.ResponseWriter, r *http.Request) {
	var technique arclight.Technique
	if err := decodeJSON(r, &technique); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.builders.SaveTechnique(r.Context(), &builder.SaveTechniqueInput{
		PlayerID:  r.PathValue("playerID"),
		Technique: &technique,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) saveItem(w http.ResponseWriter, r *http.Request) {
	var item arclight.Item
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.builders.SaveItem(r.Context(), &builder.SaveItemInput{
		PlayerID: r.PathValue("playerID"),
		Item:     &item,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) deleteLibraryEntry(w http.ResponseWriter, r *http.Request) {
	_, err := h.builders.DeleteEntry(r.Context(), &builder.DeleteEntryInput{
		PlayerID: r.PathValue("playerID"),
		Kind:     library.EntryKind(r.PathValue("kind")),
		EntryID:  r.PathValue("entryID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return errors.Wrapf(errors.InvalidArgument("invalid request body"), "decode failed: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the structured error code to an HTTP status and renders a
// JSON error body
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code.String(),
			"error", err.Error())
	} else {
		slog.DebugContext(r.Context(), "request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code.String(),
			"error", err.Error())
	}

	writeJSON(w, status, map[string]string{
		"code":  code.String(),
		"error": errors.GetMessage(err),
	})
}
