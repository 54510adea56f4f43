// Package reading implements the Reading Assistant panel: submitted text is
// analyzed after a simulated delay and glossary words are highlighted.
package reading

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/panel"
)

// Panel is the state of one Reading Assistant.
type Panel struct {
	log      *slog.Logger
	glossary []domain.GlossaryWord
	shell    *panel.Shell[domain.Analysis]

	// mu is taken before the shell lock, never after.
	mu       sync.Mutex
	selected domain.WordDetails
}

// NewPanel creates a panel showing the input view.
func NewPanel(log *slog.Logger, delay time.Duration) *Panel {
	log = log.With("service", "reading")
	return &Panel{
		log:      log,
		glossary: content.Glossary(),
		shell: panel.New(domain.Analysis{},
			panel.WithDelay[domain.Analysis](delay),
			panel.WithLogger[domain.Analysis](log),
		),
	}
}

// State is a point-in-time copy of the panel.
type State struct {
	Status     panel.State
	Generation uint64
	Analysis   domain.Analysis
	Selected   domain.WordDetails
	Err        error
}

// Snapshot returns the current panel state.
func (p *Panel) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := p.shell.Snapshot()
	return State{
		Status:     snap.State,
		Generation: snap.Generation,
		Analysis:   cloneAnalysis(snap.Content),
		Selected:   p.selected,
		Err:        snap.Err,
	}
}

// SubmitText starts the analysis of text. Blank text is ignored and
// reported as not accepted.
func (p *Panel) SubmitText(ctx context.Context, text string, source domain.TextSource) (bool, error) {
	if !source.IsValid() {
		return false, domain.NewValidationError("source", "must be one of file, paste, url")
	}
	if strings.TrimSpace(text) == "" {
		return false, nil
	}

	p.mu.Lock()
	p.selected = domain.WordDetails{}
	gen := p.shell.Start(ctx, func(ctx context.Context) (domain.Analysis, error) {
		return p.analyze(text, source)
	})
	p.mu.Unlock()

	p.log.InfoContext(ctx, "text analysis started",
		slog.String("source", source.String()),
		slog.Int("length", len(text)),
		slog.Uint64("generation", gen),
	)
	return true, nil
}

func (p *Panel) analyze(text string, source domain.TextSource) (domain.Analysis, error) {
	a := domain.Analysis{Text: text, Source: source}
	if source == domain.TextSourceFile && looksLikeHTML(text) {
		title, body, err := extractArticle(text)
		if err != nil {
			return domain.Analysis{}, fmt.Errorf("extract article: %w", err)
		}
		a.Title = title
		a.Text = body
	}
	a.Highlights = Highlight(a.Text, p.glossary)
	return a, nil
}

// Wait blocks until the analysis in flight, if any, settles.
func (p *Panel) Wait(ctx context.Context) error {
	return p.shell.Wait(ctx)
}

// Reset returns to the input view.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shell.Reset(domain.Analysis{})
	p.selected = domain.WordDetails{}
}

// Close cancels the analysis in flight.
func (p *Panel) Close() {
	p.shell.Close()
}

func cloneAnalysis(a domain.Analysis) domain.Analysis {
	a.Highlights = append([]domain.Highlight(nil), a.Highlights...)
	return a
}
