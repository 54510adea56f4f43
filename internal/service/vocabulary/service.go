// Package vocabulary implements the Vocabulary Assistant: a list of daily
// words that can be sorted by level, inspected and saved.
package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// Assistant is the state of one Vocabulary Assistant.
type Assistant struct {
	log *slog.Logger

	mu       sync.Mutex
	words    []domain.DailyWord
	order    domain.SortOrder
	selected string
}

// NewAssistant creates an assistant listing the daily words in ascending
// level order.
func NewAssistant(log *slog.Logger) *Assistant {
	return &Assistant{
		log:   log.With("service", "vocabulary"),
		words: content.DailyWords(),
		order: domain.SortAsc,
	}
}

// State is a point-in-time copy of the assistant.
type State struct {
	Order    domain.SortOrder
	Selected string
	Words    []domain.DailyWord
	Details  domain.WordDetails
}

// Snapshot returns the words in the current order with the detail card.
func (a *Assistant) Snapshot() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return State{
		Order:    a.order,
		Selected: a.selected,
		Words:    sorted(a.words, a.order),
		Details:  content.DailyWordDetails(a.selected),
	}
}

// List sets the sort order and returns the words in it. An empty order
// keeps the current one.
func (a *Assistant) List(order domain.SortOrder) ([]domain.DailyWord, error) {
	switch order {
	case "":
	case domain.SortAsc, domain.SortDesc:
	default:
		return nil, domain.NewValidationError("order", "must be asc or desc")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if order != "" {
		a.order = order
	}
	return sorted(a.words, a.order), nil
}

// Select opens the detail card of word.
func (a *Assistant) Select(word string) (domain.WordDetails, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, w := range a.words {
		if strings.EqualFold(w.Word, word) {
			a.selected = w.Word
			return content.DailyWordDetails(w.Word), nil
		}
	}
	return domain.WordDetails{}, fmt.Errorf("word %q: %w", word, domain.ErrNotFound)
}

// Details returns the detail card of the selected word, or of the first
// daily word when none is selected.
func (a *Assistant) Details() domain.WordDetails {
	a.mu.Lock()
	defer a.mu.Unlock()
	return content.DailyWordDetails(a.selected)
}

// ToggleSave flips the saved mark of a word and returns the new value.
// Saved words live only as long as the assistant.
func (a *Assistant) ToggleSave(ctx context.Context, id int) (bool, error) {
	a.mu.Lock()
	idx := -1
	for i, w := range a.words {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		a.mu.Unlock()
		return false, fmt.Errorf("word %d: %w", id, domain.ErrNotFound)
	}
	a.words[idx].Saved = !a.words[idx].Saved
	saved := a.words[idx].Saved
	word := a.words[idx].Word
	a.mu.Unlock()

	a.log.InfoContext(ctx, "daily word save toggled",
		slog.String("word", word),
		slog.Bool("saved", saved),
	)
	return saved, nil
}

// sorted returns a copy of words ordered by level. Words of the same level
// keep their natural order.
func sorted(words []domain.DailyWord, order domain.SortOrder) []domain.DailyWord {
	out := append([]domain.DailyWord(nil), words...)
	sort.SliceStable(out, func(i, j int) bool {
		if order == domain.SortDesc {
			return out[i].Level > out[j].Level
		}
		return out[i].Level < out[j].Level
	})
	return out
}
