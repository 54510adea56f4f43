package config

import (
	"errors"
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Panel.Delay < 0 {
		return fmt.Errorf("panel.delay must be >= 0 (got %v)", c.Panel.Delay)
	}
	if c.Synth.BatchSize < 0 {
		return fmt.Errorf("synth.batch_size must be >= 0 (got %d)", c.Synth.BatchSize)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.Session.IdleTTL <= 0 {
		return fmt.Errorf("session.idle_ttl must be > 0 (got %v)", c.Session.IdleTTL)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.sweep_interval must be > 0 (got %v)", c.Session.SweepInterval)
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be > 0 (got %d)", c.Session.MaxSessions)
	}

	if err := c.Catalog.validate(c.Database); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}

func (c CatalogConfig) validate(db DatabaseConfig) error {
	switch c.Source {
	case CatalogMemory:
	case CatalogFile:
		if c.File == "" {
			return errors.New("file is required when source is file")
		}
	case CatalogPostgres:
		if db.DSN == "" {
			return errors.New("database.dsn is required when source is postgres")
		}
	default:
		return fmt.Errorf("source must be one of memory, file, postgres (got %q)", c.Source)
	}
	return nil
}
