package reading

import (
	"strings"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// Highlight finds the first whole-word, case-insensitive occurrence of each
// glossary word in text. The result is ordered by position.
func Highlight(text string, glossary []domain.GlossaryWord) []domain.Highlight {
	byWord := make(map[string]domain.GlossaryWord, len(glossary))
	for _, g := range glossary {
		byWord[strings.ToLower(g.Word)] = g
	}

	var out []domain.Highlight
	seen := make(map[string]bool, len(glossary))
	for _, tok := range domain.Tokenize(text) {
		word, start, end := trimQuotes(tok)
		key := strings.ToLower(word)
		g, ok := byWord[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, domain.Highlight{
			Word:       g.Word,
			Definition: g.Definition,
			StartIndex: start,
			EndIndex:   end,
		})
	}
	return out
}

// trimQuotes drops apostrophes used as quotation marks around a token.
func trimQuotes(tok domain.Token) (string, int, int) {
	word := strings.TrimLeft(tok.Text, "'")
	start := tok.Start + len(tok.Text) - len(word)
	word = strings.TrimRight(word, "'")
	return word, start, start + len(word)
}
