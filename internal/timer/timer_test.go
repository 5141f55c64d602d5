// ABOUTME: Tests for the countdown state machine using a manually driven clock.
// ABOUTME: goleak verifies no tick goroutine outlives the tests.
package timer

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTimer struct {
	clock   *fakeClock
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(_ time.Duration, f func()) Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Tick fires every pending callback synchronously.
func (c *fakeClock) Tick() {
	c.mu.Lock()
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	c.timers = nil
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify() error { c.n++; return nil }

func newTest(t *testing.T, opts ...Option) (*Countdown, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	return New(append([]Option{WithClock(clock)}, opts...)...), clock
}

func TestStartWithZeroRemainingIsNoop(t *testing.T) {
	c, clock := newTest(t)

	c.Start()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 0, clock.Pending())
}

func TestRunToCompletionFiresOnce(t *testing.T) {
	var completions []Completion
	var ticks []int
	bell := &countingNotifier{}
	c, clock := newTest(t,
		WithNotifier(bell),
		OnTick(func(r int) { ticks = append(ticks, r) }),
		OnComplete(func(done Completion) { completions = append(completions, done) }),
	)

	require.NoError(t, c.SetDuration(3))
	c.Start()
	assert.Equal(t, Running, c.State())

	for i := 0; i < 5; i++ {
		clock.Tick()
	}

	assert.Equal(t, []int{2, 1, 0}, ticks)
	require.Len(t, completions, 1)
	assert.Equal(t, 3, completions[0].Duration)
	assert.Equal(t, 1, bell.n)
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, 0, clock.Pending())

	c.Start()
	assert.Equal(t, Idle, c.State(), "start after completion needs a reset")
}

func TestPauseKeepsRemainingAndResumeKeepsRun(t *testing.T) {
	var completions []Completion
	c, clock := newTest(t, OnComplete(func(done Completion) { completions = append(completions, done) }))

	require.NoError(t, c.SetDuration(4))
	c.Start()
	clock.Tick()
	c.Pause()

	assert.Equal(t, Paused, c.State())
	assert.Equal(t, 3, c.Remaining())
	assert.Equal(t, 0, clock.Pending())

	clock.Tick()
	assert.Equal(t, 3, c.Remaining(), "no ticks while paused")

	c.Start()
	for i := 0; i < 3; i++ {
		clock.Tick()
	}
	require.Len(t, completions, 1)
}

func TestPauseOutsideRunningIsNoop(t *testing.T) {
	c, _ := newTest(t)
	require.NoError(t, c.SetDuration(10))

	c.Pause()
	assert.Equal(t, Idle, c.State())
}

func TestResetRestoresConfiguredDuration(t *testing.T) {
	c, clock := newTest(t)
	require.NoError(t, c.SetDuration(90))
	c.Start()
	clock.Tick()
	clock.Tick()

	c.Reset()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 90, c.Remaining())
	assert.Equal(t, "01:30", c.Display())
	assert.Equal(t, 0, clock.Pending())
}

func TestStaleTickIsIgnored(t *testing.T) {
	c, clock := newTest(t)
	require.NoError(t, c.SetDuration(5))
	c.Start()

	clock.mu.Lock()
	stale := clock.timers[0]
	clock.mu.Unlock()

	c.Reset()
	stale.f()
	assert.Equal(t, 5, c.Remaining())
	assert.Equal(t, Idle, c.State())
}

func TestSetDurationWhileRunningRearms(t *testing.T) {
	c, clock := newTest(t)
	require.NoError(t, c.SetDuration(60))
	c.Start()
	clock.Tick()

	require.NoError(t, c.SetDuration(10))
	assert.Equal(t, Running, c.State())
	assert.Equal(t, 10, c.Remaining())
	assert.Equal(t, 1, clock.Pending())

	clock.Tick()
	assert.Equal(t, 9, c.Remaining())

	c.Reset()
	assert.Equal(t, 10, c.Remaining())
}

func TestSetDurationZeroWhileRunningStops(t *testing.T) {
	fired := false
	c, clock := newTest(t, OnComplete(func(Completion) { fired = true }))
	require.NoError(t, c.SetDuration(30))
	c.Start()

	require.NoError(t, c.SetDuration(0))
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 0, clock.Pending())
	assert.False(t, fired)
}

func TestSetDurationRejectsNegative(t *testing.T) {
	c, _ := newTest(t)
	assert.Error(t, c.SetDuration(-1))
}

func TestRestartWhileRunningDoesNotDoubleTick(t *testing.T) {
	c, clock := newTest(t)
	require.NoError(t, c.SetDuration(10))
	c.Start()
	c.Start()

	assert.Equal(t, 1, clock.Pending())
	clock.Tick()
	assert.Equal(t, 9, c.Remaining())
}

func TestEachRunGetsNewID(t *testing.T) {
	var ids []Completion
	c, clock := newTest(t, OnComplete(func(done Completion) { ids = append(ids, done) }))

	for run := 0; run < 2; run++ {
		require.NoError(t, c.SetDuration(1))
		c.Start()
		clock.Tick()
	}

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0].RunID, ids[1].RunID)
}

func TestFormat(t *testing.T) {
	tests := map[int]string{0: "00:00", 5: "00:05", 60: "01:00", 125: "02:05", 3600: "60:00"}
	for in, want := range tests {
		assert.Equal(t, want, Format(in))
	}
}

func TestBellWritesBellCharacter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bell{W: &buf}.Notify())
	assert.Equal(t, "\a", buf.String())
}

func TestRealClockCompletes(t *testing.T) {
	if testing.Short() {
		t.Skip("uses wall-clock time")
	}
	done := make(chan Completion, 1)
	c := New(OnComplete(func(cmp Completion) { done <- cmp }))
	require.NoError(t, c.SetDuration(1))
	c.Start()

	select {
	case cmp := <-done:
		assert.Equal(t, 1, cmp.Duration)
	case <-time.After(5 * time.Second):
		t.Fatal("timer did not complete")
	}
}

func TestRealClockResetLeavesNoGoroutine(t *testing.T) {
	c := New()
	require.NoError(t, c.SetDuration(30))
	c.Start()
	c.Reset()
	assert.Equal(t, Idle, c.State())
}
