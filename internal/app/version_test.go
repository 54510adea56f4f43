package app

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	stamped := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		}}, true
	}
	missing := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name   string
		commit string
		built  string
		info   func() (*debug.BuildInfo, bool)
		want   string
	}{
		{"ldflags win", "abc123", "today", stamped, "1.0.0 (commit: abc123, built: today)"},
		{"vcs fallback", "unknown", "unknown", stamped, "1.0.0 (commit: 0123456789ab, built: 2024-05-01T10:00:00Z)"},
		{"partial ldflags", "abc123", "unknown", stamped, "1.0.0 (commit: abc123, built: 2024-05-01T10:00:00Z)"},
		{"no build info", "unknown", "unknown", missing, "1.0.0 (commit: unknown, built: unknown)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatVersion("1.0.0", tt.commit, tt.built, tt.info))
		})
	}
}
