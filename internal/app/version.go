package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/myenglish-suite/internal/app.Version=1.0.0" ./cmd/myenglish
//
// Without ldflags, Commit and BuildTime fall back to the VCS stamp that
// `go build` embeds in the binary.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line printed by `myenglish version` and
// reported by /health.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, debug.ReadBuildInfo)
}

func formatVersion(version, commit, built string, info func() (*debug.BuildInfo, bool)) string {
	if commit == "unknown" || built == "unknown" {
		if bi, ok := info(); ok {
			for _, s := range bi.Settings {
				switch {
				case s.Key == "vcs.revision" && commit == "unknown":
					commit = shortRevision(s.Value)
				case s.Key == "vcs.time" && built == "unknown":
					built = s.Value
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
