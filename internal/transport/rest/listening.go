package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// ListeningHandler serves the listening helper panel.
type ListeningHandler struct {
	sessions sessions
	log      *slog.Logger
}

// NewListeningHandler creates a ListeningHandler.
func NewListeningHandler(s sessions, logger *slog.Logger) *ListeningHandler {
	return &ListeningHandler{sessions: s, log: logger.With("handler", "listening")}
}

// Register mounts the listening routes on mux.
func (h *ListeningHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/listening", h.State)
	mux.HandleFunc("POST /api/listening/submit", h.Submit)
	mux.HandleFunc("GET /api/listening/recent", h.Recent)
	mux.HandleFunc("POST /api/listening/videos/{id}/select", h.SelectVideo)
	mux.HandleFunc("POST /api/listening/words/{id}/save", h.SaveWord)
	mux.HandleFunc("POST /api/listening/words/{id}/remove", h.RemoveWord)
	mux.HandleFunc("POST /api/listening/words/{id}/select", h.SelectWord)
	mux.HandleFunc("POST /api/listening/time", h.TimeUpdate)
	mux.HandleFunc("PUT /api/listening/level", h.SetLevel)
}

// State handles GET /api/listening.
func (h *ListeningHandler) State(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	waitFor(r, ws.Listening.Wait)
	writeJSON(w, http.StatusOK, toListening(ws.Listening.Snapshot()))
}

type submitURLRequest struct {
	URL string `json:"url"`
}

// Submit handles POST /api/listening/submit. An unrecognized URL leaves the
// panel untouched and answers 200 with the current state.
func (h *ListeningHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	var req submitURLRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status := http.StatusOK
	if ws.Listening.Submit(r.Context(), req.URL) {
		status = http.StatusAccepted
		waitFor(r, ws.Listening.Wait)
	}
	writeJSON(w, status, toListening(ws.Listening.Snapshot()))
}

// SelectVideo handles POST /api/listening/videos/{id}/select.
func (h *ListeningHandler) SelectVideo(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	if err := ws.Listening.SelectVideo(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	waitFor(r, ws.Listening.Wait)
	writeJSON(w, http.StatusAccepted, toListening(ws.Listening.Snapshot()))
}

// Recent handles GET /api/listening/recent.
func (h *ListeningHandler) Recent(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	videos := ws.Listening.RecentVideos()
	resp := make([]recentVideoResponse, len(videos))
	for i, v := range videos {
		resp[i] = recentVideoResponse{ID: v.ID, Title: v.Title, WatchedAgo: v.WatchedAgo}
	}
	writeJSON(w, http.StatusOK, resp)
}

// SaveWord handles POST /api/listening/words/{id}/save.
func (h *ListeningHandler) SaveWord(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	if err := ws.Listening.SaveWord(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListening(ws.Listening.Snapshot()))
}

// RemoveWord handles POST /api/listening/words/{id}/remove.
func (h *ListeningHandler) RemoveWord(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	if err := ws.Listening.RemoveWord(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListening(ws.Listening.Snapshot()))
}

// SelectWord handles POST /api/listening/words/{id}/select.
func (h *ListeningHandler) SelectWord(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	if err := ws.Listening.SelectWord(r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListening(ws.Listening.Snapshot()))
}

type timeUpdateRequest struct {
	CurrentTime float64 `json:"currentTime"`
}

// TimeUpdate handles POST /api/listening/time.
func (h *ListeningHandler) TimeUpdate(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	var req timeUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := ws.Listening.TimeUpdate(r.Context(), req.CurrentTime); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type levelRequest struct {
	Level string `json:"level"`
}

// SetLevel handles PUT /api/listening/level.
func (h *ListeningHandler) SetLevel(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	var req levelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := ws.Listening.SetLevel(domain.Level(req.Level)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListening(ws.Listening.Snapshot()))
}
