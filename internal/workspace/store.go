package workspace

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Factory builds the workspace of a new session.
type Factory func(id uuid.UUID) *Workspace

type entry struct {
	ws       *Workspace
	lastSeen time.Time
}

// Store keeps one workspace per session and evicts sessions that have been
// idle longer than the TTL. At most limit sessions are held; creating one
// more evicts the least recently seen.
type Store struct {
	log     *slog.Logger
	ttl     time.Duration
	limit   int
	factory Factory
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store holding at most limit sessions, with background
// eviction every sweepInterval. Call Stop() on shutdown.
func NewStore(log *slog.Logger, ttl, sweepInterval time.Duration, limit int, factory Factory) *Store {
	s := newStore(log, ttl, limit, factory, time.Now)
	go s.sweepLoop(sweepInterval)
	return s
}

func newStore(log *slog.Logger, ttl time.Duration, limit int, factory Factory, now func() time.Time) *Store {
	return &Store{
		log:      log.With("component", "workspace_store"),
		ttl:      ttl,
		limit:    limit,
		factory:  factory,
		now:      now,
		sessions: make(map[uuid.UUID]*entry),
		stop:     make(chan struct{}),
	}
}

// Get returns the workspace of session id, creating it on first use.
func (s *Store) Get(id uuid.UUID) *Workspace {
	s.mu.Lock()
	e, ok := s.sessions[id]
	var evicted *Workspace
	if !ok {
		if s.limit > 0 && len(s.sessions) >= s.limit {
			evicted = s.evictOldestLocked()
		}
		e = &entry{ws: s.factory(id)}
		s.sessions[id] = e
		s.log.Debug("session created", slog.String("session_id", id.String()))
	}
	e.lastSeen = s.now()
	s.mu.Unlock()

	if evicted != nil {
		evicted.Close()
		s.log.Info("session limit reached, evicted least recently seen",
			slog.String("session_id", evicted.ID.String()),
			slog.Int("limit", s.limit),
		)
	}
	return e.ws
}

func (s *Store) evictOldestLocked() *Workspace {
	var (
		oldestID uuid.UUID
		oldest   *entry
	)
	for id, e := range s.sessions {
		if oldest == nil || e.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, e
		}
	}
	if oldest == nil {
		return nil
	}
	delete(s.sessions, oldestID)
	return oldest.ws
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var evicted []*Workspace
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			evicted = append(evicted, e.ws)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, ws := range evicted {
		ws.Close()
	}
	if len(evicted) > 0 {
		s.log.Info("idle sessions evicted", slog.Int("count", len(evicted)))
	}
	return len(evicted)
}

// Stop terminates the sweeper and closes every workspace.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)

		s.mu.Lock()
		sessions := s.sessions
		s.sessions = make(map[uuid.UUID]*entry)
		s.mu.Unlock()

		for _, e := range sessions {
			e.ws.Close()
		}
	})
}

func (s *Store) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
