package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/audwofla/Aramalyze/internal/domain"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChampionHandler struct {
	championService *service.ChampionService
	log             *logger.Logger
}

func NewChampionHandler(championService *service.ChampionService, log *logger.Logger) *ChampionHandler {
	return &ChampionHandler{championService: championService, log: log}
}

type ChampionResponse struct {
	ID   int64    `json:"id"`
	Key  string   `json:"key"`
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

type ChampionsResponse struct {
	Champions []ChampionResponse `json:"champions"`
}

type AramModsResponse struct {
	AbilityHaste *float64 `json:"abilityHaste"`
	DmgDealt     *float64 `json:"dmgDealt"`
	DmgTaken     *float64 `json:"dmgTaken"`
	Healing      *float64 `json:"healing"`
	Shielding    *float64 `json:"shielding"`
	Tenacity     *float64 `json:"tenacity"`
	AttackSpeed  *float64 `json:"attackSpeed"`
	EnergyRegen  *float64 `json:"energyRegen"`
}

type ChampionPatchResponse struct {
	Champion     ChampionResponse    `json:"champion"`
	Patch        string              `json:"patch"`
	AramMods     *AramModsResponse   `json:"aramMods"`
	SpellChanges map[string][]string `json:"spellChanges"`
}

func (h *ChampionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.GetAllChampions(r.Context())
	if err != nil {
		h.log.Error("[champion.GetAll] failed", "error", err)
		http.Error(w, "Failed to get champions", http.StatusInternalServerError)
		return
	}

	resp := ChampionsResponse{
		Champions: make([]ChampionResponse, len(champions)),
	}
	for i, c := range champions {
		resp.Champions[i] = ChampionResponse{
			ID:   c.ID,
			Key:  c.Key,
			Name: c.Name,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChampionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := championIDParam(w, r)
	if !ok {
		return
	}

	champion, err := h.championService.GetChampion(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, "[champion.Get]", id, err)
		return
	}

	writeJSON(w, http.StatusOK, ChampionResponse{
		ID:   champion.ID,
		Key:  champion.Key,
		Name: champion.Name,
		Tags: champion.Tags,
	})
}

func (h *ChampionHandler) GetForPatch(w http.ResponseWriter, r *http.Request) {
	id, ok := championIDParam(w, r)
	if !ok {
		return
	}
	patch := chi.URLParam(r, "patch")

	detail, err := h.championService.GetChampionPatch(r.Context(), id, patch)
	if err != nil {
		h.writeLookupError(w, "[champion.GetForPatch] patch="+patch, id, err)
		return
	}

	resp := ChampionPatchResponse{
		Champion: ChampionResponse{
			ID:   detail.Champion.ID,
			Key:  detail.Champion.Key,
			Name: detail.Champion.Name,
		},
		Patch:        detail.Patch,
		SpellChanges: detail.SpellChanges,
	}
	if m := detail.AramMods; m != nil {
		resp.AramMods = &AramModsResponse{
			AbilityHaste: m.AbilityHaste,
			DmgDealt:     m.DmgDealt,
			DmgTaken:     m.DmgTaken,
			Healing:      m.Healing,
			Shielding:    m.Shielding,
			Tenacity:     m.Tenacity,
			AttackSpeed:  m.AttackSpeed,
			EnergyRegen:  m.EnergyRegen,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChampionHandler) writeLookupError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, domain.ErrChampionNotFound):
		http.Error(w, "Champion not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrPatchDataNotFound):
		http.Error(w, "No data for champion in patch", http.StatusNotFound)
	default:
		h.log.Error(op+" failed", "champion_id", id, "error", err)
		http.Error(w, "Failed to get champion", http.StatusInternalServerError)
	}
}

func championIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid champion id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
