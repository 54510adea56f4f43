package listening

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// SaveWord marks an entry of the current batch as saved.
func (p *Panel) SaveWord(ctx context.Context, id string) error {
	return p.setSaved(ctx, id, true)
}

// RemoveWord clears the saved mark of an entry of the current batch.
func (p *Panel) RemoveWord(ctx context.Context, id string) error {
	return p.setSaved(ctx, id, false)
}

func (p *Panel) setSaved(ctx context.Context, id string, saved bool) error {
	found := false
	p.shell.Mutate(func(words []domain.VocabularyEntry) []domain.VocabularyEntry {
		idx := indexOf(words, id)
		if idx < 0 {
			return words
		}
		found = true
		out := domain.CloneEntries(words)
		out[idx].Saved = saved
		return out
	})
	if !found {
		return fmt.Errorf("word %q: %w", id, domain.ErrNotFound)
	}

	p.log.InfoContext(ctx, "word saved state changed",
		slog.String("word_id", id),
		slog.Bool("saved", saved),
	)
	return nil
}

// SelectWord highlights an entry of the current batch.
func (p *Panel) SelectWord(id string) error {
	if indexOf(p.shell.Snapshot().Content, id) < 0 {
		return fmt.Errorf("word %q: %w", id, domain.ErrNotFound)
	}
	p.mu.Lock()
	p.selectedWordID = id
	p.mu.Unlock()
	return nil
}

// TimeUpdate records the playback position reported by the player.
func (p *Panel) TimeUpdate(ctx context.Context, seconds float64) error {
	if seconds < 0 {
		return domain.NewValidationError("current_time", "must be non-negative")
	}
	p.mu.Lock()
	p.currentTime = seconds
	p.mu.Unlock()

	p.log.DebugContext(ctx, "playback time update", slog.Float64("seconds", seconds))
	return nil
}

func indexOf(words []domain.VocabularyEntry, id string) int {
	for i, w := range words {
		if w.ID == id {
			return i
		}
	}
	return -1
}
