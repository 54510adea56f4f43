package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/myenglish-suite/internal/config"
)

// appName is attached to every record.
const appName = "myenglish"

// NewLogger creates the process logger on stderr and installs it as the
// slog default.
//
// Format "json" produces structured output; any other format produces text
// with source locations. Level is one of debug, info, warn, error
// (case-insensitive) and defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := NewLoggerTo(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewLoggerTo creates a logger writing to w without touching the default.
// The terminal shell passes io.Discard so records never reach the screen.
func NewLoggerTo(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON,
	}

	var handler slog.Handler
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("app", appName))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
