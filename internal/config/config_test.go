package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "5s"

log:
  level: "debug"
  format: "text"

panel:
  delay: "250ms"

synth:
  batch_size: 30
  id_prefix: "x"
  saved_every: 5
  extension_saved_every: 0

catalog:
  source: "file"
  file: "content.toml"

session:
  idle_ttl: "10m"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("server.write_timeout = %v, want 30s (default)", cfg.Server.WriteTimeout)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}

	// Panel
	if cfg.Panel.Delay != 250*time.Millisecond {
		t.Errorf("panel.delay = %v, want 250ms", cfg.Panel.Delay)
	}

	// Synth
	if cfg.Synth.BatchSize != 30 {
		t.Errorf("synth.batch_size = %d, want 30", cfg.Synth.BatchSize)
	}
	if cfg.Synth.IDPrefix != "x" {
		t.Errorf("synth.id_prefix = %q, want x", cfg.Synth.IDPrefix)
	}
	if cfg.Synth.SavedEvery != 5 {
		t.Errorf("synth.saved_every = %d, want 5", cfg.Synth.SavedEvery)
	}

	// Catalog
	if cfg.Catalog.Source != CatalogFile || cfg.Catalog.File != "content.toml" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}

	// Session
	if cfg.Session.IdleTTL != 10*time.Minute {
		t.Errorf("session.idle_ttl = %v, want 10m", cfg.Session.IdleTTL)
	}
	if cfg.Session.SweepInterval != time.Minute {
		t.Errorf("session.sweep_interval = %v, want 1m (default)", cfg.Session.SweepInterval)
	}
	if cfg.Session.MaxSessions != 10000 {
		t.Errorf("session.max_sessions = %d, want 10000 (default)", cfg.Session.MaxSessions)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("PANEL_DELAY", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Panel.Delay != 0 {
		t.Errorf("panel.delay = %v, want 0 (ENV override)", cfg.Panel.Delay)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Panel.Delay != 1500*time.Millisecond {
		t.Errorf("panel.delay = %v, want 1.5s (default)", cfg.Panel.Delay)
	}
	if cfg.Synth.BatchSize != 50 || cfg.Synth.SavedEvery != 7 || cfg.Synth.ExtensionSavedEvery != 11 {
		t.Errorf("synth = %+v, want defaults 50/7/11", cfg.Synth)
	}
	if cfg.Catalog.Source != CatalogMemory {
		t.Errorf("catalog.source = %q, want memory", cfg.Catalog.Source)
	}
}

func TestLoadFrom_ExplicitPathNotFound(t *testing.T) {
	_, err := LoadFrom("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero delay allowed", func(c *Config) { c.Panel.Delay = 0 }, ""},
		{"zero batch allowed", func(c *Config) { c.Synth.BatchSize = 0 }, ""},
		{"negative delay", func(c *Config) { c.Panel.Delay = -time.Second }, "panel.delay"},
		{"negative batch", func(c *Config) { c.Synth.BatchSize = -1 }, "synth.batch_size"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"rate limit without budget", func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, "rate_limit"},
		{"rate limit disabled", func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.RequestsPerMinute = 0
		}, ""},
		{"zero session ttl", func(c *Config) { c.Session.IdleTTL = 0 }, "session.idle_ttl"},
		{"zero sweep interval", func(c *Config) { c.Session.SweepInterval = 0 }, "session.sweep_interval"},
		{"zero session cap", func(c *Config) { c.Session.MaxSessions = 0 }, "session.max_sessions"},
		{"unknown catalog source", func(c *Config) { c.Catalog.Source = "redis" }, "catalog"},
		{"file source without file", func(c *Config) { c.Catalog.Source = CatalogFile }, "file is required"},
		{"file source with file", func(c *Config) {
			c.Catalog.Source = CatalogFile
			c.Catalog.File = "pack.toml"
		}, ""},
		{"postgres without dsn", func(c *Config) { c.Catalog.Source = CatalogPostgres }, "database.dsn"},
		{"postgres with dsn", func(c *Config) {
			c.Catalog.Source = CatalogPostgres
			c.Database.DSN = "postgres://u:p@localhost:5432/db"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: 8080},
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerMinute: 120},
		Panel:     PanelConfig{Delay: 1500 * time.Millisecond},
		Synth:     SynthConfig{BatchSize: 50, SavedEvery: 7, ExtensionSavedEvery: 11},
		Catalog:   CatalogConfig{Source: CatalogMemory},
		Session:   SessionConfig{IdleTTL: 30 * time.Minute, SweepInterval: time.Minute, MaxSessions: 10000},
	}
}
