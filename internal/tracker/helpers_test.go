// ABOUTME: Shared test helpers for tracker tests.
// ABOUTME: Provides an in-memory tracker with a controllable clock.
package tracker

import (
	"sync"
	"testing"
	"time"

	"github.com/harperreed/fitness/internal/store"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testStart = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func setupTracker(t *testing.T) (*Tracker, *store.MemoryBackend, *stepClock) {
	t.Helper()
	mem := store.NewMemory()
	clock := &stepClock{now: testStart}
	tr := New(store.New(mem), WithClock(clock), WithLocation(time.UTC))
	t.Cleanup(func() { _ = tr.Close() })
	return tr, mem, clock
}

func declined(string) bool { return false }
