package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-suite/internal/adapter/memory"
	"github.com/heartmarshall/myenglish-suite/internal/adapter/postgres"
	pgcatalog "github.com/heartmarshall/myenglish-suite/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/myenglish-suite/internal/adapter/tomlpack"
	"github.com/heartmarshall/myenglish-suite/internal/config"
	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/service/batch"
	"github.com/heartmarshall/myenglish-suite/internal/service/catalog"
	"github.com/heartmarshall/myenglish-suite/internal/service/listening"
	"github.com/heartmarshall/myenglish-suite/internal/service/synth"
)

// Catalog is the content selector plus whatever owns its backing store.
type Catalog struct {
	*catalog.Service
	Source string
	close  func()
}

// Close releases the backing store.
func (c *Catalog) Close() {
	if c.close != nil {
		c.close()
	}
}

// OpenCatalog builds the content selector for cfg.Catalog.Source.
//
// memory serves the built-in pack. file overlays a TOML pack on it.
// postgres reads the tables written by the seed command.
func OpenCatalog(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogFile:
		pack, err := tomlpack.Load(cfg.Catalog.File)
		if err != nil {
			return nil, fmt.Errorf("load content pack: %w", err)
		}
		store := memory.NewCatalogStore(content.Builtin().Merge(pack))
		return &Catalog{Service: catalog.NewService(log, store), Source: config.CatalogFile}, nil

	case config.CatalogPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		return &Catalog{
			Service: catalog.NewService(log, pgcatalog.New(pool)),
			Source:  config.CatalogPostgres,
			close:   pool.Close,
		}, nil

	default:
		store := memory.NewCatalogStore(content.Builtin())
		return &Catalog{Service: catalog.NewService(log, store), Source: config.CatalogMemory}, nil
	}
}

// SynthOptions converts the synth config section.
func SynthOptions(cfg config.SynthConfig) synth.Options {
	return synth.Options{
		IDPrefix:            cfg.IDPrefix,
		BatchSize:           cfg.BatchSize,
		SavedEvery:          cfg.SavedEvery,
		ExtensionSavedEvery: cfg.ExtensionSavedEvery,
	}
}

// ListeningOptions converts the synth and panel config sections.
func ListeningOptions(cfg *config.Config) listening.Options {
	return listening.Options{
		BatchSize:           cfg.Synth.BatchSize,
		SavedEvery:          cfg.Synth.SavedEvery,
		ExtensionSavedEvery: cfg.Synth.ExtensionSavedEvery,
		Delay:               cfg.Panel.Delay,
	}
}

// NewBatchService creates the on-demand batch generator over cat.
func NewBatchService(log *slog.Logger, cat *Catalog, cfg config.SynthConfig) *batch.Service {
	return batch.NewService(log, cat.Service, SynthOptions(cfg))
}
