package reading

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// SelectWord shows the details of a highlighted word. Words that are not
// highlighted in the current analysis clear the detail card.
func (p *Panel) SelectWord(word string) domain.WordDetails {
	p.mu.Lock()
	defer p.mu.Unlock()

	var details domain.WordDetails
	for _, h := range p.shell.Snapshot().Content.Highlights {
		if strings.EqualFold(h.Word, word) {
			details = p.details(h)
			break
		}
	}
	p.selected = details
	return details
}

func (p *Panel) details(h domain.Highlight) domain.WordDetails {
	for _, g := range p.glossary {
		if strings.EqualFold(g.Word, h.Word) {
			return g.Details
		}
	}
	return domain.WordDetails{Word: h.Word, Definition: h.Definition}
}

// SaveWord records the selected word. Saved words are not persisted.
func (p *Panel) SaveWord(ctx context.Context) (string, error) {
	p.mu.Lock()
	word := p.selected.Word
	p.mu.Unlock()

	if word == "" {
		return "", domain.NewValidationError("word", "no word selected")
	}
	p.log.InfoContext(ctx, "word saved", slog.String("word", word))
	return word, nil
}
