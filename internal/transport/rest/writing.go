package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// WritingHandler serves the writing assistant panel.
type WritingHandler struct {
	sessions sessions
	log      *slog.Logger
}

// NewWritingHandler creates a WritingHandler.
func NewWritingHandler(s sessions, logger *slog.Logger) *WritingHandler {
	return &WritingHandler{sessions: s, log: logger.With("handler", "writing")}
}

// Register mounts the writing routes on mux.
func (h *WritingHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/writing", h.State)
	mux.HandleFunc("PUT /api/writing/content", h.ChangeContent)
	mux.HandleFunc("PUT /api/writing/level", h.ChangeLevel)
	mux.HandleFunc("PUT /api/writing/tab", h.SetTab)
	mux.HandleFunc("POST /api/writing/analyze", h.Analyze)
	mux.HandleFunc("GET /api/writing/topics", h.Topics)
	mux.HandleFunc("POST /api/writing/topics/{index}/use", h.UseTopic)
	mux.HandleFunc("POST /api/writing/suggestions/{id}/accept", h.Accept)
	mux.HandleFunc("POST /api/writing/suggestions/{id}/reject", h.Reject)
}

// State handles GET /api/writing.
func (h *WritingHandler) State(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	waitFor(r, ws.Writing.Wait)
	writeJSON(w, http.StatusOK, toWriting(ws.Writing.Snapshot()))
}

type contentRequest struct {
	Content string `json:"content"`
}

// ChangeContent handles PUT /api/writing/content.
func (h *WritingHandler) ChangeContent(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	var req contentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ws.Writing.ChangeContent(req.Content)
	writeJSON(w, http.StatusOK, toWriting(ws.Writing.Snapshot()))
}

// ChangeLevel handles PUT /api/writing/level.
func (h *WritingHandler) ChangeLevel(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	var req levelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := ws.Writing.ChangeLevel(domain.Level(req.Level)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWriting(ws.Writing.Snapshot()))
}

type tabRequest struct {
	Tab string `json:"tab"`
}

// SetTab handles PUT /api/writing/tab.
func (h *WritingHandler) SetTab(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	var req tabRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := ws.Writing.SetTab(domain.WritingTab(req.Tab)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWriting(ws.Writing.Snapshot()))
}

// Analyze handles POST /api/writing/analyze. Blank content is ignored and
// answers 200 with the current state.
func (h *WritingHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	status := http.StatusOK
	if ws.Writing.Analyze(r.Context()) {
		status = http.StatusAccepted
		waitFor(r, ws.Writing.Wait)
	}
	writeJSON(w, status, toWriting(ws.Writing.Snapshot()))
}

type topicsResponse struct {
	Level  string   `json:"level"`
	Topics []string `json:"topics"`
}

// Topics handles GET /api/writing/topics.
func (h *WritingHandler) Topics(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, topicsResponse{
		Level:  string(ws.Writing.Snapshot().Level),
		Topics: nonNil(ws.Writing.Topics()),
	})
}

// UseTopic handles POST /api/writing/topics/{index}/use.
func (h *WritingHandler) UseTopic(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic index")
		return
	}
	if _, err := ws.Writing.UseTopic(index); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWriting(ws.Writing.Snapshot()))
}

// Accept handles POST /api/writing/suggestions/{id}/accept.
func (h *WritingHandler) Accept(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	s, err := ws.Writing.Accept(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSuggestion(s))
}

// Reject handles POST /api/writing/suggestions/{id}/reject.
func (h *WritingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	s, err := ws.Writing.Reject(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSuggestion(s))
}
