package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// DashboardHandler serves the tool grid, quote and achievements.
type DashboardHandler struct {
	sessions sessions
	log      *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(s sessions, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{sessions: s, log: logger.With("handler", "dashboard")}
}

// Register mounts the dashboard routes on mux.
func (h *DashboardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/tools", h.Tools)
	mux.HandleFunc("POST /api/tools/select", h.SelectTool)
	mux.HandleFunc("POST /api/tools/back", h.Back)
	mux.HandleFunc("GET /api/quote", h.Quote)
	mux.HandleFunc("GET /api/achievements", h.Achievements)
}

type toolsResponse struct {
	Selected string         `json:"selected"`
	Tools    []toolResponse `json:"tools"`
}

// Tools handles GET /api/tools.
func (h *DashboardHandler) Tools(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	tools := ws.Dashboard.Tools()
	resp := toolsResponse{
		Selected: string(ws.Dashboard.Selected()),
		Tools:    make([]toolResponse, len(tools)),
	}
	for i, t := range tools {
		resp.Tools[i] = toolResponse{
			ID:          string(t.ID),
			Title:       t.Title,
			Description: t.Description,
			ButtonText:  t.ButtonText,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type selectToolRequest struct {
	ToolID string `json:"toolId"`
}

// SelectTool handles POST /api/tools/select.
func (h *DashboardHandler) SelectTool(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	var req selectToolRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := ws.Dashboard.SelectTool(r.Context(), domain.ToolID(req.ToolID)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"selected": req.ToolID})
}

// Back handles POST /api/tools/back.
func (h *DashboardHandler) Back(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	ws.Dashboard.Back()
	w.WriteHeader(http.StatusNoContent)
}

// Quote handles GET /api/quote.
func (h *DashboardHandler) Quote(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	q := ws.Dashboard.Quote()
	writeJSON(w, http.StatusOK, quoteResponse{Text: q.Text, Author: q.Author})
}

// Achievements handles GET /api/achievements.
func (h *DashboardHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceFor(h.sessions, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toAchievements(ws.Dashboard.Achievements()))
}
