// Package writing implements the Writing Assistant panel.
package writing

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/panel"
)

// Suggestions are the two lists produced by an analysis.
type Suggestions struct {
	Grammar []domain.Suggestion
	Style   []domain.Suggestion
}

func (s Suggestions) clone() Suggestions {
	return Suggestions{
		Grammar: append([]domain.Suggestion(nil), s.Grammar...),
		Style:   append([]domain.Suggestion(nil), s.Style...),
	}
}

// Panel is the state of one Writing Assistant.
type Panel struct {
	log   *slog.Logger
	shell *panel.Shell[Suggestions]

	// mu is taken before the shell lock, never after.
	mu       sync.Mutex
	content  string
	level    domain.Level
	tab      domain.WritingTab
	analyzed bool
}

// NewPanel creates an empty panel on the write tab at level B2.
func NewPanel(log *slog.Logger, delay time.Duration) *Panel {
	p := &Panel{
		log:   log.With("service", "writing"),
		level: domain.LevelB2,
		tab:   domain.TabWrite,
	}
	p.shell = panel.New(Suggestions{},
		panel.WithDelay[Suggestions](delay),
		panel.WithLogger[Suggestions](p.log),
		panel.WithOnReady(p.analysisDone),
	)
	return p
}

// State is a point-in-time copy of the panel.
type State struct {
	Status      panel.State
	Generation  uint64
	Content     string
	Level       domain.Level
	Tab         domain.WritingTab
	Analyzed    bool
	Suggestions Suggestions
}

// Snapshot returns the current panel state.
func (p *Panel) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := p.shell.Snapshot()
	return State{
		Status:      snap.State,
		Generation:  snap.Generation,
		Content:     p.content,
		Level:       p.level,
		Tab:         p.tab,
		Analyzed:    p.analyzed,
		Suggestions: snap.Content.clone(),
	}
}

// ChangeContent replaces the draft. Any previous analysis is stale after
// an edit.
func (p *Panel) ChangeContent(text string) {
	p.mu.Lock()
	p.content = text
	p.analyzed = false
	p.mu.Unlock()
}

// ChangeLevel sets the learner level used for topics.
func (p *Panel) ChangeLevel(level domain.Level) error {
	if !level.IsLearnerLevel() {
		return domain.NewValidationError("level", "must be one of B1, B2, C1, C2")
	}
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
	return nil
}

// SetTab switches the visible tab.
func (p *Panel) SetTab(tab domain.WritingTab) error {
	if !tab.IsValid() {
		return domain.NewValidationError("tab", "must be one of write, suggestions, topics")
	}
	p.mu.Lock()
	p.tab = tab
	p.mu.Unlock()
	return nil
}

// Analyze starts checking the draft. A blank draft is ignored and reported
// as not accepted.
func (p *Panel) Analyze(ctx context.Context) bool {
	p.mu.Lock()
	text := p.content
	if strings.TrimSpace(text) == "" {
		p.mu.Unlock()
		return false
	}
	gen := p.shell.Start(ctx, func(context.Context) (Suggestions, error) {
		return Suggestions{
			Grammar: content.GrammarSuggestions(),
			Style:   content.StyleSuggestions(),
		}, nil
	})
	p.mu.Unlock()

	p.log.InfoContext(ctx, "writing analysis started",
		slog.Int("length", len(text)),
		slog.Uint64("generation", gen),
	)
	return true
}

// analysisDone runs after the shell has swapped in the suggestions of gen.
// A newer analysis started in between keeps the panel unanalyzed.
func (p *Panel) analysisDone(gen uint64, _ Suggestions) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shell.Snapshot().Generation != gen {
		return
	}
	p.analyzed = true
	p.tab = domain.TabSuggestions
}

// Wait blocks until the analysis in flight, if any, settles.
func (p *Panel) Wait(ctx context.Context) error {
	return p.shell.Wait(ctx)
}

// Close cancels the analysis in flight.
func (p *Panel) Close() {
	p.shell.Close()
}
