// Package listening implements the Listening Helper panel: a video URL or
// history pick produces a synthesized vocabulary batch after a simulated
// extraction delay.
package listening

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/panel"
	"github.com/heartmarshall/myenglish-suite/internal/service/synth"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type selector interface {
	SelectBaseSet(ctx context.Context, key string) []domain.BaseWord
	SubmittedSet(ctx context.Context) []domain.BaseWord
	ExtensionPool(ctx context.Context) []string
}

// ---------------------------------------------------------------------------
// Panel
// ---------------------------------------------------------------------------

// Options configure batch generation and the simulated latency.
type Options struct {
	BatchSize           int
	SavedEvery          int
	ExtensionSavedEvery int
	Delay               time.Duration
}

// DefaultOptions match the behavior of the hosted tool.
func DefaultOptions() Options {
	return Options{
		BatchSize:           synth.DefaultBatchSize,
		SavedEvery:          7,
		ExtensionSavedEvery: 11,
		Delay:               panel.DefaultDelay,
	}
}

// Panel is the state of one Listening Helper.
type Panel struct {
	log      *slog.Logger
	selector selector
	opts     Options
	shell    *panel.Shell[[]domain.VocabularyEntry]

	// mu guards the video metadata. It is taken before the shell lock,
	// never after.
	mu             sync.Mutex
	url            string
	videoID        string
	level          domain.Level
	selectedWordID string
	currentTime    float64
}

// NewPanel creates an Idle panel holding the sample extraction.
func NewPanel(log *slog.Logger, sel selector, opts Options) *Panel {
	log = log.With("service", "listening")
	return &Panel{
		log:      log,
		selector: sel,
		opts:     opts,
		shell: panel.New(content.SampleExtraction(),
			panel.WithDelay[[]domain.VocabularyEntry](opts.Delay),
			panel.WithLogger[[]domain.VocabularyEntry](log),
		),
		level: domain.LevelB2,
	}
}

// State is a point-in-time copy of the panel.
type State struct {
	Status         panel.State
	Generation     uint64
	URL            string
	VideoID        string
	Level          domain.Level
	SelectedWordID string
	CurrentTime    float64
	Words          []domain.VocabularyEntry
}

// Snapshot returns a copy of the panel state safe to hand to callers.
func (p *Panel) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := p.shell.Snapshot()
	return State{
		Status:         snap.State,
		Generation:     snap.Generation,
		URL:            p.url,
		VideoID:        p.videoID,
		Level:          p.level,
		SelectedWordID: p.selectedWordID,
		CurrentTime:    p.currentTime,
		Words:          domain.CloneEntries(snap.Content),
	}
}

// Wait blocks until the extraction in flight, if any, settles.
func (p *Panel) Wait(ctx context.Context) error {
	return p.shell.Wait(ctx)
}

// Close cancels the extraction in flight.
func (p *Panel) Close() {
	p.shell.Close()
}

// RecentVideos returns the watch history.
func (p *Panel) RecentVideos() []domain.RecentVideo {
	return content.RecentVideos()
}

// SetLevel records the learner level shown next to the extracted words.
func (p *Panel) SetLevel(level domain.Level) error {
	if !level.IsLearnerLevel() {
		return domain.NewValidationError("level", "must be one of B1, B2, C1, C2")
	}
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
	return nil
}

func (p *Panel) extract(base func(ctx context.Context) []domain.BaseWord, prefix string) panel.Job[[]domain.VocabularyEntry] {
	return func(ctx context.Context) ([]domain.VocabularyEntry, error) {
		return synth.Synthesize(base(ctx), p.selector.ExtensionPool(ctx), synth.Options{
			IDPrefix:            prefix,
			BatchSize:           p.opts.BatchSize,
			SavedEvery:          p.opts.SavedEvery,
			ExtensionSavedEvery: p.opts.ExtensionSavedEvery,
		})
	}
}
