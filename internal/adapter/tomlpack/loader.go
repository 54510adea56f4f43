// Package tomlpack reads catalog content packs from TOML files.
//
// A pack looks like:
//
//	pool = ["lucid", "terse"]
//
//	[[set]]
//	name = "dQw4w9WgXcQ"
//	  [[set.word]]
//	  word = "grit"
//	  definition = "Courage and resolve."
//	  examples = ["She showed grit.", "Grit beats talent."]
package tomlpack

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// File is the TOML layout of a content pack.
type File struct {
	Pool []string  `toml:"pool"`
	Sets []SetFile `toml:"set"`
}

// SetFile is one base set.
type SetFile struct {
	Name  string     `toml:"name"`
	Words []WordFile `toml:"word"`
}

// WordFile is one base word.
type WordFile struct {
	Word       string   `toml:"word"`
	Definition string   `toml:"definition"`
	Examples   []string `toml:"examples"`
}

// Load reads path and converts it to a content.Pack. The set names
// "default" and "submitted" address the unkeyed sets.
func Load(path string) (content.Pack, error) {
	if path == "" {
		return content.Pack{}, fmt.Errorf("content pack path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return content.Pack{}, fmt.Errorf("stat content pack: %w", err)
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return content.Pack{}, fmt.Errorf("decode content pack: %w", err)
	}
	return f.Pack()
}

// Decode parses a pack from TOML text.
func Decode(data string) (content.Pack, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return content.Pack{}, fmt.Errorf("decode content pack: %w", err)
	}
	return f.Pack()
}

// Pack validates f and converts it.
func (f File) Pack() (content.Pack, error) {
	var errs []domain.FieldError
	pack := content.Pack{Sets: make(map[string][]domain.BaseWord, len(f.Sets))}

	for _, w := range f.Pool {
		w = strings.TrimSpace(w)
		if w == "" {
			errs = append(errs, domain.FieldError{Field: "pool", Message: "empty word"})
			continue
		}
		pack.Pool = append(pack.Pool, w)
	}

	for i, s := range f.Sets {
		name := setName(s.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("set[%d].name", i), Message: "required"})
			continue
		}
		if _, dup := pack.Sets[name]; dup {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("set[%d].name", i), Message: "duplicate " + s.Name})
			continue
		}
		words := make([]domain.BaseWord, 0, len(s.Words))
		for j, w := range s.Words {
			field := fmt.Sprintf("set[%d].word[%d]", i, j)
			if strings.TrimSpace(w.Word) == "" || strings.TrimSpace(w.Definition) == "" {
				errs = append(errs, domain.FieldError{Field: field, Message: "word and definition required"})
				continue
			}
			if len(w.Examples) != 2 {
				errs = append(errs, domain.FieldError{Field: field, Message: "exactly 2 examples required"})
				continue
			}
			words = append(words, domain.BaseWord{Word: w.Word, Definition: w.Definition, Examples: w.Examples})
		}
		pack.Sets[name] = words
	}

	if len(errs) > 0 {
		return content.Pack{}, domain.NewValidationErrors(errs)
	}
	return pack, nil
}

func setName(name string) string {
	name = strings.TrimSpace(name)
	switch name {
	case "default":
		return content.SetDefault
	case "submitted":
		return content.SetSubmitted
	}
	if content.IsReservedName(name) {
		return ""
	}
	return name
}
