package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/audwofla/Aramalyze/internal/api/middleware"
	"github.com/audwofla/Aramalyze/internal/canonical"
	"github.com/audwofla/Aramalyze/internal/domain"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/service"
	"github.com/audwofla/Aramalyze/internal/source"
)

type PatchHandler struct {
	patchService *service.PatchService
	log          *logger.Logger
}

func NewPatchHandler(patchService *service.PatchService, log *logger.Logger) *PatchHandler {
	return &PatchHandler{patchService: patchService, log: log}
}

type PatchesResponse struct {
	Loaded    []string `json:"loaded"`
	Available []string `json:"available"`
}

// LoadRequest names a patch in the canonical directory. Arbitrary file
// locations are only accepted from the CLI.
type LoadRequest struct {
	Patch string `json:"patch"`
}

func (h *PatchHandler) List(w http.ResponseWriter, r *http.Request) {
	loaded, err := h.patchService.LoadedPatches(r.Context())
	if err != nil {
		h.log.Error("[patch.List] failed", "error", err)
		http.Error(w, "Failed to list patches", http.StatusInternalServerError)
		return
	}

	docs, err := h.patchService.Available()
	if err != nil {
		h.log.Error("[patch.List] failed to read canonical dir", "error", err)
		http.Error(w, "Failed to list patches", http.StatusInternalServerError)
		return
	}

	resp := PatchesResponse{
		Loaded:    loaded,
		Available: make([]string, len(docs)),
	}
	if resp.Loaded == nil {
		resp.Loaded = []string{}
	}
	for i, d := range docs {
		resp.Available[i] = d.Patch
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PatchHandler) Load(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	// An empty body loads the latest document
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subject, _ := middleware.GetSubject(r.Context())
	h.log.Info("[patch.Load] load requested", "subject", subject, "patch", req.Patch)

	stats, err := h.patchService.Load(r.Context(), req.Patch, "")
	if err != nil {
		h.writeLoadError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *PatchHandler) writeLoadError(w http.ResponseWriter, err error) {
	var (
		shapeErr   *canonical.ShapeError
		fieldErr   *canonical.FieldError
		noInputErr *source.NoInputFoundError
		loadErr    *service.LoadError
	)

	switch {
	case errors.As(err, &noInputErr):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &shapeErr), errors.As(err, &fieldErr), errors.Is(err, domain.ErrInvalidPatch):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &loadErr):
		h.log.Error("[patch.Load] storage failure", "error", err)
		http.Error(w, "Failed to load patch", http.StatusInternalServerError)
	default:
		h.log.Error("[patch.Load] failed", "error", err)
		http.Error(w, "Failed to load patch", http.StatusInternalServerError)
	}
}
