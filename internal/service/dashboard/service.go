// Package dashboard implements the tool grid and the achievements tracker.
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// Dashboard tracks which tool panel is open.
type Dashboard struct {
	log  *slog.Logger
	seed int64

	mu       sync.Mutex
	selected domain.ToolID
}

// NewDashboard creates a dashboard with no tool open. seed drives the mock
// achievements so one session always sees the same numbers.
func NewDashboard(log *slog.Logger, seed int64) *Dashboard {
	return &Dashboard{
		log:  log.With("service", "dashboard"),
		seed: seed,
	}
}

// Tools returns the tool tiles.
func (d *Dashboard) Tools() []domain.Tool {
	return content.Tools()
}

// Quote returns the motivational quote.
func (d *Dashboard) Quote() domain.Quote {
	return content.MotivationalQuote()
}

// SelectTool opens a tool panel.
func (d *Dashboard) SelectTool(ctx context.Context, id domain.ToolID) error {
	if !id.IsValid() {
		return domain.NewValidationError("tool_id", "unknown tool")
	}
	d.mu.Lock()
	d.selected = id
	d.mu.Unlock()

	d.log.InfoContext(ctx, "tool selected", slog.String("tool", id.String()))
	return nil
}

// Back closes the open tool panel.
func (d *Dashboard) Back() {
	d.mu.Lock()
	d.selected = ""
	d.mu.Unlock()
}

// Selected returns the open tool, or "" on the dashboard.
func (d *Dashboard) Selected() domain.ToolID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected
}

// Achievements returns this dashboard's mock progress.
func (d *Dashboard) Achievements() domain.Achievements {
	return Achievements(d.seed)
}
