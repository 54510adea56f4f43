// Package batch generates vocabulary batches on demand, outside any panel.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/service/synth"
)

// MaxBatchSize caps on-demand batches.
const MaxBatchSize = 1000

type selector interface {
	SelectBaseSet(ctx context.Context, key string) []domain.BaseWord
	ExtensionPool(ctx context.Context) []string
}

// Service builds batches for a content key.
type Service struct {
	log      *slog.Logger
	selector selector
	defaults synth.Options
}

// NewService creates a batch Service. defaults supply the batch size, id
// prefix and saved moduli when an Input leaves them unset.
func NewService(log *slog.Logger, sel selector, defaults synth.Options) *Service {
	return &Service{
		log:      log.With("service", "batch"),
		selector: sel,
		defaults: defaults,
	}
}

// Input describes one batch.
type Input struct {
	Key       string
	BatchSize *int
	IDPrefix  string
}

// Validate checks the input fields.
func (i Input) Validate() error {
	var errs []domain.FieldError
	if i.BatchSize != nil && (*i.BatchSize < 0 || *i.BatchSize > MaxBatchSize) {
		errs = append(errs, domain.FieldError{Field: "batch_size", Message: fmt.Sprintf("must be between 0 and %d", MaxBatchSize)})
	}
	if len(i.IDPrefix) > 32 {
		errs = append(errs, domain.FieldError{Field: "id_prefix", Message: "must be at most 32 bytes"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Generate returns the batch for in.Key.
func (s *Service) Generate(ctx context.Context, in Input) ([]domain.VocabularyEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	opts := s.defaults
	if in.BatchSize != nil {
		opts.BatchSize = *in.BatchSize
	}
	if in.IDPrefix != "" {
		opts.IDPrefix = in.IDPrefix
	}

	entries, err := synth.Synthesize(s.selector.SelectBaseSet(ctx, in.Key), s.selector.ExtensionPool(ctx), opts)
	if err != nil {
		return nil, fmt.Errorf("synthesize batch: %w", err)
	}

	s.log.DebugContext(ctx, "batch generated",
		slog.String("key", in.Key),
		slog.Int("size", len(entries)),
	)
	return entries, nil
}
