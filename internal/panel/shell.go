// Package panel provides the state container shared by the tool panels:
// Idle → Loading → Ready, with Ready → Loading re-entrant.
//
// Each Start supersedes the task in flight. A generation counter guards the
// content write, so a late task can never overwrite a newer submission.
package panel

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// State is the lifecycle position of a panel.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// DefaultDelay is the simulated latency of every mock operation.
const DefaultDelay = 1500 * time.Millisecond

// Job produces the content swapped in when a task completes.
type Job[T any] func(ctx context.Context) (T, error)

// Snapshot is a consistent view of a shell.
type Snapshot[T any] struct {
	State      State
	Generation uint64
	Content    T
	Err        error
}

// Option configures a Shell.
type Option[T any] func(*Shell[T])

// WithDelay overrides DefaultDelay.
func WithDelay[T any](d time.Duration) Option[T] {
	return func(s *Shell[T]) { s.delay = d }
}

// WithLogger sets the logger used for task lifecycle events.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(s *Shell[T]) { s.log = log }
}

// WithOnReady registers fn to run after a task's content has been swapped
// in. fn runs outside the shell lock and only for the current generation.
func WithOnReady[T any](fn func(gen uint64, content T)) Option[T] {
	return func(s *Shell[T]) { s.onReady = fn }
}

// Shell holds panel content and the single task allowed to replace it.
type Shell[T any] struct {
	delay   time.Duration
	log     *slog.Logger
	onReady func(uint64, T)

	mu      sync.Mutex
	state   State
	settled State // state to return to when a task fails or is aborted
	gen     uint64
	content T
	err     error
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates an Idle shell holding initial.
func New[T any](initial T, opts ...Option[T]) *Shell[T] {
	s := &Shell[T]{
		delay:   DefaultDelay,
		log:     slog.Default(),
		state:   StateIdle,
		settled: StateIdle,
		content: initial,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start moves the shell to Loading and schedules job after the delay.
// Any task in flight is cancelled. The task outlives ctx's cancellation but
// keeps its values. Start returns the new generation.
func (s *Shell[T]) Start(ctx context.Context, job Job[T]) uint64 {
	taskCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.state = StateLoading
	s.err = nil
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go s.run(taskCtx, gen, job, done)
	return gen
}

func (s *Shell[T]) run(ctx context.Context, gen uint64, job Job[T], done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.log.DebugContext(ctx, "panel task superseded", slog.Uint64("generation", gen))
		return
	case <-timer.C:
	}

	result, err := job(ctx)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.DebugContext(ctx, "panel task result dropped", slog.Uint64("generation", gen))
		return
	}
	s.cancel = nil
	if err != nil {
		s.state = s.settled
		s.err = err
		s.mu.Unlock()
		s.log.WarnContext(ctx, "panel task failed",
			slog.Uint64("generation", gen),
			slog.String("error", err.Error()),
		)
		return
	}
	s.content = result
	s.state = StateReady
	s.settled = StateReady
	s.mu.Unlock()

	if s.onReady != nil {
		s.onReady(gen, result)
	}
}

// Snapshot returns the current state, generation, content and last error.
func (s *Shell[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[T]{State: s.state, Generation: s.gen, Content: s.content, Err: s.err}
}

// State returns the current lifecycle state.
func (s *Shell[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mutate applies fn to the content in place regardless of state. A task in
// flight still replaces the content when it completes.
func (s *Shell[T]) Mutate(fn func(T) T) {
	s.mu.Lock()
	s.content = fn(s.content)
	s.mu.Unlock()
}

// Reset cancels any task and returns to Idle with content.
func (s *Shell[T]) Reset(content T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.state = StateIdle
	s.settled = StateIdle
	s.content = content
	s.err = nil
}

// Wait blocks until no task is in flight or ctx is done.
func (s *Shell[T]) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		done := s.done
		loading := s.state == StateLoading
		s.mu.Unlock()

		if !loading || done == nil {
			return nil
		}
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close cancels the task in flight, if any, and settles the state.
func (s *Shell[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.gen++
		s.state = s.settled
	}
}
