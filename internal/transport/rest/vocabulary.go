package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// VocabularyHandler serves the vocabulary assistant panel.
type VocabularyHandler struct {
	sessions sessions
	log      *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(s sessions, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{sessions: s, log: logger.With("handler", "vocabulary")}
}

// Register mounts the vocabulary routes on mux.
func (h *VocabularyHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/vocabulary", h.List)
	mux.HandleFunc("POST /api/vocabulary/words/{word}/select", h.Select)
	mux.HandleFunc("POST /api/vocabulary/words/{id}/save", h.ToggleSave)
}

// List handles GET /api/vocabulary?order=asc|desc.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	if _, err := ws.Vocabulary.List(domain.SortOrder(r.URL.Query().Get("order"))); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVocabulary(ws.Vocabulary.Snapshot()))
}

// Select handles POST /api/vocabulary/words/{word}/select.
func (h *VocabularyHandler) Select(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	details, err := ws.Vocabulary.Select(r.PathValue("word"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordDetails(details))
}

type toggleSaveResponse struct {
	ID    int  `json:"id"`
	Saved bool `json:"saved"`
}

// ToggleSave handles POST /api/vocabulary/words/{id}/save.
func (h *VocabularyHandler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}
	saved, err := ws.Vocabulary.ToggleSave(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleSaveResponse{ID: id, Saved: saved})
}
