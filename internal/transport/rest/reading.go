package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// ReadingHandler serves the reading assistant panel.
type ReadingHandler struct {
	sessions sessions
	log      *slog.Logger
}

// NewReadingHandler creates a ReadingHandler.
func NewReadingHandler(s sessions, logger *slog.Logger) *ReadingHandler {
	return &ReadingHandler{sessions: s, log: logger.With("handler", "reading")}
}

// Register mounts the reading routes on mux.
func (h *ReadingHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/reading", h.State)
	mux.HandleFunc("POST /api/reading/submit", h.Submit)
	mux.HandleFunc("POST /api/reading/words/{word}/select", h.SelectWord)
	mux.HandleFunc("POST /api/reading/save", h.SaveWord)
	mux.HandleFunc("POST /api/reading/reset", h.Reset)
}

// State handles GET /api/reading.
func (h *ReadingHandler) State(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	waitFor(r, ws.Reading.Wait)
	writeJSON(w, http.StatusOK, toReading(ws.Reading.Snapshot()))
}

type submitTextRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Submit handles POST /api/reading/submit. Blank text is ignored and
// answers 200 with the current state.
func (h *ReadingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	var req submitTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	started, err := ws.Reading.SubmitText(r.Context(), req.Text, domain.TextSource(req.Source))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status := http.StatusOK
	if started {
		status = http.StatusAccepted
		waitFor(r, ws.Reading.Wait)
	}
	writeJSON(w, status, toReading(ws.Reading.Snapshot()))
}

// SelectWord handles POST /api/reading/words/{word}/select.
func (h *ReadingHandler) SelectWord(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	ws.Reading.SelectWord(r.PathValue("word"))
	writeJSON(w, http.StatusOK, toReading(ws.Reading.Snapshot()))
}

// SaveWord handles POST /api/reading/save.
func (h *ReadingHandler) SaveWord(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	word, err := ws.Reading.SaveWord(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"saved": word})
}

// Reset handles POST /api/reading/reset.
func (h *ReadingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	ws.Reading.Reset()
	writeJSON(w, http.StatusOK, toReading(ws.Reading.Snapshot()))
}
