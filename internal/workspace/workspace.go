// Package workspace owns the panel state of one learner session and keeps
// sessions alive while they are in use.
package workspace

import (
	"context"
	"encoding/binary"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/service/dashboard"
	"github.com/heartmarshall/myenglish-suite/internal/service/listening"
	"github.com/heartmarshall/myenglish-suite/internal/service/reading"
	"github.com/heartmarshall/myenglish-suite/internal/service/vocabulary"
	"github.com/heartmarshall/myenglish-suite/internal/service/writing"
)

type selector interface {
	SelectBaseSet(ctx context.Context, key string) []domain.BaseWord
	SubmittedSet(ctx context.Context) []domain.BaseWord
	ExtensionPool(ctx context.Context) []string
}

// Config holds what every new workspace is built with.
type Config struct {
	Listening listening.Options
	Delay     time.Duration
}

// Workspace is the dashboard plus one instance of every tool panel.
type Workspace struct {
	ID         uuid.UUID
	Dashboard  *dashboard.Dashboard
	Listening  *listening.Panel
	Reading    *reading.Panel
	Writing    *writing.Panel
	Vocabulary *vocabulary.Assistant
}

// New creates a fresh workspace for session id.
func New(log *slog.Logger, sel selector, cfg Config, id uuid.UUID) *Workspace {
	log = log.With("session_id", id.String())
	return &Workspace{
		ID:         id,
		Dashboard:  dashboard.NewDashboard(log, seedOf(id)),
		Listening:  listening.NewPanel(log, sel, cfg.Listening),
		Reading:    reading.NewPanel(log, cfg.Delay),
		Writing:    writing.NewPanel(log, cfg.Delay),
		Vocabulary: vocabulary.NewAssistant(log),
	}
}

// Close cancels every task in flight.
func (w *Workspace) Close() {
	w.Listening.Close()
	w.Reading.Close()
	w.Writing.Close()
}

// Wait blocks until no panel has a task in flight.
func (w *Workspace) Wait(ctx context.Context) error {
	if err := w.Listening.Wait(ctx); err != nil {
		return err
	}
	if err := w.Reading.Wait(ctx); err != nil {
		return err
	}
	return w.Writing.Wait(ctx)
}

func seedOf(id uuid.UUID) int64 {
	return int64(binary.BigEndian.Uint64(id[:8]))
}
