// Package memory implements the catalog store over an in-process content pack.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// CatalogStore serves base sets and the extension pool from memory.
type CatalogStore struct {
	mu   sync.RWMutex
	pack content.Pack
}

// NewCatalogStore creates a store over pack.
func NewCatalogStore(pack content.Pack) *CatalogStore {
	return &CatalogStore{pack: pack}
}

// BaseSet returns a copy of the named set or domain.ErrNotFound.
func (s *CatalogStore) BaseSet(_ context.Context, name string) ([]domain.BaseWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.pack.Sets[name]
	if !ok {
		return nil, fmt.Errorf("base set %q: %w", name, domain.ErrNotFound)
	}
	out := make([]domain.BaseWord, len(set))
	for i, w := range set {
		out[i] = domain.BaseWord{
			Word:       w.Word,
			Definition: w.Definition,
			Examples:   append([]string(nil), w.Examples...),
		}
	}
	return out, nil
}

// ExtensionPool returns a copy of the pool.
func (s *CatalogStore) ExtensionPool(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.pack.Pool...), nil
}

// Replace swaps the whole pack, e.g. after a content file reload.
func (s *CatalogStore) Replace(pack content.Pack) {
	s.mu.Lock()
	s.pack = pack
	s.mu.Unlock()
}

// Ping always succeeds.
func (s *CatalogStore) Ping(_ context.Context) error { return nil }
