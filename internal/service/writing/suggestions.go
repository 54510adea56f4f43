package writing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// Accept applies a suggestion by dismissing it from its list.
func (p *Panel) Accept(ctx context.Context, id string) (domain.Suggestion, error) {
	return p.dismiss(ctx, id, "accepted")
}

// Reject dismisses a suggestion from its list.
func (p *Panel) Reject(ctx context.Context, id string) (domain.Suggestion, error) {
	return p.dismiss(ctx, id, "rejected")
}

func (p *Panel) dismiss(ctx context.Context, id, outcome string) (domain.Suggestion, error) {
	var (
		removed domain.Suggestion
		found   bool
	)
	p.shell.Mutate(func(s Suggestions) Suggestions {
		var grammar, style []domain.Suggestion
		grammar, removed, found = without(s.Grammar, id)
		if found {
			return Suggestions{Grammar: grammar, Style: s.Style}
		}
		style, removed, found = without(s.Style, id)
		if found {
			return Suggestions{Grammar: s.Grammar, Style: style}
		}
		return s
	})
	if !found {
		return domain.Suggestion{}, fmt.Errorf("suggestion %q: %w", id, domain.ErrNotFound)
	}

	p.log.InfoContext(ctx, "suggestion "+outcome,
		slog.String("suggestion_id", id),
		slog.String("category", string(removed.Category())),
	)
	return removed, nil
}

// without returns a copy of list minus the suggestion with id.
func without(list []domain.Suggestion, id string) ([]domain.Suggestion, domain.Suggestion, bool) {
	for i, s := range list {
		if s.ID == id {
			out := make([]domain.Suggestion, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, s, true
		}
	}
	return list, domain.Suggestion{}, false
}
