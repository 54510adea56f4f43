package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeText prepares text for lookup and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Hyphens and apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// Token is a word found in text together with its byte span.
type Token struct {
	Text  string
	Start int
	End   int // exclusive
}

// Tokenize splits text into words. A word is a maximal run of letters,
// digits, apostrophes and inner hyphens; offsets index into the original
// string so they can drive highlighting.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isWordRune(r) || (start >= 0 && r == '-' && i+size < len(text) && nextIsLetter(text[i+size:])) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
			start = -1
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

func nextIsLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}
