// Package catalog selects curated base sets by content key.
package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

type catalogStore interface {
	BaseSet(ctx context.Context, name string) ([]domain.BaseWord, error)
	ExtensionPool(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Service is the content selector. Every lookup is total: store failures
// degrade to the built-in content instead of surfacing.
type Service struct {
	store catalogStore
	log   *slog.Logger
}

// NewService creates a catalog Service.
func NewService(log *slog.Logger, store catalogStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "catalog"),
	}
}

// SelectBaseSet returns the curated set for key, or the default set when
// key has none.
func (s *Service) SelectBaseSet(ctx context.Context, key string) []domain.BaseWord {
	if key != "" && !content.IsReservedName(key) {
		set, err := s.store.BaseSet(ctx, key)
		switch {
		case err == nil:
			return set
		case !errors.Is(err, domain.ErrNotFound):
			s.log.WarnContext(ctx, "base set lookup failed, using default",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}
	return s.named(ctx, content.SetDefault, content.DefaultSet)
}

// SubmittedSet returns the set used for directly submitted video URLs.
func (s *Service) SubmittedSet(ctx context.Context) []domain.BaseWord {
	return s.named(ctx, content.SetSubmitted, content.SubmittedSet)
}

// ExtensionPool returns the shared padding words.
func (s *Service) ExtensionPool(ctx context.Context) []string {
	pool, err := s.store.ExtensionPool(ctx)
	if err != nil || len(pool) == 0 {
		if err != nil {
			s.log.WarnContext(ctx, "extension pool lookup failed, using built-in",
				slog.String("error", err.Error()))
		}
		return content.ExtensionPool()
	}
	return pool
}

// Ping reports whether the backing store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) named(ctx context.Context, name string, fallback func() []domain.BaseWord) []domain.BaseWord {
	set, err := s.store.BaseSet(ctx, name)
	if err == nil {
		return set
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "named set lookup failed, using built-in",
			slog.String("set", name),
			slog.String("error", err.Error()),
		)
	}
	return fallback()
}
