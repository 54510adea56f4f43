// Package synth builds vocabulary batches from a curated base set padded
// with words from the shared extension pool. Everything here is a pure
// function of its inputs.
package synth

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// DefaultBatchSize is the number of entries an extraction produces.
const DefaultBatchSize = 50

// Options control one synthesis.
type Options struct {
	// IDPrefix is prepended to the 1-based index to form entry IDs.
	IDPrefix string
	// BatchSize is the exact number of entries produced.
	BatchSize int
	// SavedEvery marks base-set entries at indices divisible by it as saved.
	// Zero or negative disables the flag.
	SavedEvery int
	// ExtensionSavedEvery does the same for extension-pool entries.
	// Zero falls back to SavedEvery; negative disables the flag.
	ExtensionSavedEvery int
}

// Validate checks the preconditions of Synthesize.
func (o Options) Validate(baseLen, poolLen int) error {
	var errs []domain.FieldError
	if o.BatchSize < 0 {
		errs = append(errs, domain.FieldError{Field: "batch_size", Message: "must be non-negative"})
	}
	if o.BatchSize > baseLen && poolLen == 0 {
		errs = append(errs, domain.FieldError{Field: "extension_pool", Message: "required when batch exceeds base set"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (o Options) extensionModulus() int {
	if o.ExtensionSavedEvery == 0 {
		return o.SavedEvery
	}
	return o.ExtensionSavedEvery
}

// Synthesize produces exactly opts.BatchSize entries in index order.
// Indices below len(base) copy the base word verbatim; later indices take
// pool[i % len(pool)] with templated definition and examples.
func Synthesize(base []domain.BaseWord, pool []string, opts Options) ([]domain.VocabularyEntry, error) {
	if err := opts.Validate(len(base), len(pool)); err != nil {
		return nil, err
	}

	entries := make([]domain.VocabularyEntry, opts.BatchSize)
	for i := range entries {
		e := domain.VocabularyEntry{
			ID:        fmt.Sprintf("%s%d", opts.IDPrefix, i+1),
			Timestamp: FormatTimestamp(i),
		}
		if i < len(base) {
			e.Word = base[i].Word
			e.Definition = base[i].Definition
			e.Examples = append([]string(nil), base[i].Examples...)
			e.Saved = savedAt(i, opts.SavedEvery)
		} else {
			w := pool[i%len(pool)]
			e.Word = w
			e.Definition = ExtensionDefinition(w)
			e.Examples = ExtensionExamples(w)
			e.Saved = savedAt(i, opts.extensionModulus())
		}
		entries[i] = e
	}
	return entries, nil
}

// FormatTimestamp renders the MM:SS position of entry i: one entry every
// thirty seconds.
func FormatTimestamp(i int) string {
	return fmt.Sprintf("%02d:%02d", i/2, (i%2)*30)
}

// ExtensionDefinition is the synthesized definition of a pool word.
func ExtensionDefinition(word string) string {
	return "Advanced vocabulary word meaning " + strings.ToLower(word) + "."
}

// ExtensionExamples are the two synthesized example sentences of a pool word.
func ExtensionExamples(word string) []string {
	return []string{
		"The " + word + " approach was highly effective.",
		"Her " + word + " style impressed everyone in the room.",
	}
}

func savedAt(i, every int) bool {
	return every > 0 && i%every == 0
}
