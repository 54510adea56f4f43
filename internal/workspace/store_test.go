package workspace

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-suite/internal/adapter/memory"
	"github.com/heartmarshall/myenglish-suite/internal/content"
	"github.com/heartmarshall/myenglish-suite/internal/panel"
	"github.com/heartmarshall/myenglish-suite/internal/service/catalog"
	"github.com/heartmarshall/myenglish-suite/internal/service/listening"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testFactory(t *testing.T) Factory {
	t.Helper()
	log := testLogger()
	sel := catalog.NewService(log, memory.NewCatalogStore(content.Builtin()))
	opts := listening.DefaultOptions()
	opts.Delay = time.Millisecond
	cfg := Config{Listening: opts, Delay: time.Millisecond}
	return func(id uuid.UUID) *Workspace { return New(log, sel, cfg, id) }
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestStore_GetCreatesOncePerSession(t *testing.T) {
	t.Parallel()
	s := newStore(testLogger(), time.Minute, 0, testFactory(t), time.Now)
	t.Cleanup(s.Stop)

	a, b := uuid.New(), uuid.New()
	wa := s.Get(a)
	assert.Same(t, wa, s.Get(a))
	assert.NotSame(t, wa, s.Get(b))
	assert.Equal(t, a, wa.ID)
	assert.Equal(t, 2, s.Len())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	t.Parallel()
	s := newStore(testLogger(), time.Minute, 0, testFactory(t), time.Now)
	t.Cleanup(s.Stop)
	ctx := context.Background()

	wa := s.Get(uuid.New())
	wb := s.Get(uuid.New())

	require.True(t, wa.Listening.Submit(ctx, "https://youtu.be/dQw4w9WgXcQ"))
	require.NoError(t, wa.Wait(ctx))

	assert.Equal(t, panel.StateReady, wa.Listening.Snapshot().Status)
	assert.Equal(t, panel.StateIdle, wb.Listening.Snapshot().Status)
}

func TestStore_SweepEvictsIdleSessions(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newStore(testLogger(), 10*time.Minute, 0, testFactory(t), clock.Now)
	t.Cleanup(s.Stop)

	idle, active := uuid.New(), uuid.New()
	first := s.Get(idle)
	s.Get(active)

	clock.Advance(6 * time.Minute)
	s.Get(active)
	assert.Equal(t, 0, s.Sweep())

	clock.Advance(6 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())

	assert.NotSame(t, first, s.Get(idle))
}

func TestStore_LimitEvictsLeastRecentlySeen(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newStore(testLogger(), time.Hour, 2, testFactory(t), clock.Now)
	t.Cleanup(s.Stop)
	ctx := context.Background()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	first := s.Get(a)
	require.True(t, first.Listening.Submit(ctx, "https://youtu.be/dQw4w9WgXcQ"))
	clock.Advance(time.Second)
	s.Get(b)
	clock.Advance(time.Second)
	s.Get(a)
	clock.Advance(time.Second)

	s.Get(c)
	assert.Equal(t, 2, s.Len())
	assert.Same(t, first, s.Get(a), "recently used session must survive")

	clock.Advance(time.Second)
	s.Get(c)
	clock.Advance(time.Second)
	s.Get(uuid.New())
	assert.Equal(t, 2, s.Len())
	assert.NotSame(t, first, s.Get(a), "oldest session is evicted once the cap is hit again")
}

func TestStore_StopIsIdempotent(t *testing.T) {
	t.Parallel()
	s := NewStore(testLogger(), time.Minute, time.Hour, 10, testFactory(t))
	s.Get(uuid.New())

	s.Stop()
	s.Stop()
	assert.Equal(t, 0, s.Len())
}

func TestSeedOf_StablePerSession(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	assert.Equal(t, seedOf(id), seedOf(id))

	ws := New(testLogger(), nil, Config{}, id)
	defer ws.Close()
	assert.Equal(t, ws.Dashboard.Achievements(), New(testLogger(), nil, Config{}, id).Dashboard.Achievements())
}
