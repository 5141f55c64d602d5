// ABOUTME: Countdown rest timer with Idle, Running, and Paused states.
// ABOUTME: Ticks once per second on an injectable clock; completion fires once per run.
package timer

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitness/internal/models"
	"github.com/sirupsen/logrus"
)

// State is the timer's lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stopper cancels a scheduled callback.
type Stopper interface {
	Stop() bool
}

// Clock schedules callbacks. The real clock is time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Notifier plays the completion tone.
type Notifier interface {
	Notify() error
}

// Bell writes the terminal bell character.
type Bell struct {
	W io.Writer
}

func (b Bell) Notify() error {
	_, err := io.WriteString(b.W, "\a")
	return err
}

// Completion describes one finished run.
type Completion struct {
	RunID    uuid.UUID `json:"run_id"`
	Duration int       `json:"duration"`
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithClock replaces the real clock.
func WithClock(c Clock) Option {
	return func(cd *Countdown) { cd.clock = c }
}

// WithNotifier sets the tone played on completion.
func WithNotifier(n Notifier) Option {
	return func(cd *Countdown) { cd.notifier = n }
}

// OnTick registers an observer called with the remaining seconds after each tick.
func OnTick(f func(remaining int)) Option {
	return func(cd *Countdown) { cd.onTick = append(cd.onTick, f) }
}

// OnComplete registers an observer called once per finished run.
func OnComplete(f func(Completion)) Option {
	return func(cd *Countdown) { cd.onComplete = append(cd.onComplete, f) }
}

// Countdown is a single rest timer.
type Countdown struct {
	mu        sync.Mutex
	clock     Clock
	notifier  Notifier
	remaining int
	total     int
	state     State
	gen       uint64
	pending   Stopper
	runID     uuid.UUID

	onTick     []func(int)
	onComplete []func(Completion)
	log        *logrus.Entry
}

// New returns an idle timer with zero duration.
func New(opts ...Option) *Countdown {
	c := &Countdown{
		clock: realClock{},
		log:   logrus.WithField("component", "timer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDuration sets both the remaining and configured time. While running the
// tick is re-armed a full second out; setting zero while running stops the
// timer without a completion.
func (c *Countdown) SetDuration(seconds int) error {
	if seconds < 0 {
		return models.Invalid("duration", "must be >= 0, got %d", seconds)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total = seconds
	c.remaining = seconds
	if c.state == Running {
		c.cancel()
		if seconds == 0 {
			c.state = Idle
			return nil
		}
		c.arm()
	}
	return nil
}

// Start begins or resumes ticking. A no-op with zero remaining.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.remaining == 0 {
		return
	}
	switch c.state {
	case Idle:
		c.runID = uuid.New()
		c.log.WithFields(logrus.Fields{"run": c.runID, "seconds": c.remaining}).Debug("start")
	case Running:
		c.cancel()
	}
	c.state = Running
	c.arm()
}

// Pause halts a running timer, keeping the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return
	}
	c.cancel()
	c.state = Paused
}

// Reset returns to Idle with the configured duration restored.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()
	c.remaining = c.total
	c.state = Idle
}

// State returns the current state.
func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Display renders the remaining time as MM:SS.
func (c *Countdown) Display() string {
	return Format(c.Remaining())
}

// Format renders seconds as MM:SS.
func Format(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// arm must be called with mu held.
func (c *Countdown) arm() {
	c.gen++
	gen := c.gen
	c.pending = c.clock.AfterFunc(time.Second, func() { c.tick(gen) })
}

// cancel must be called with mu held.
func (c *Countdown) cancel() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.gen++
}

func (c *Countdown) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != Running {
		c.mu.Unlock()
		return
	}

	c.remaining--
	remaining := c.remaining
	var done *Completion
	if remaining <= 0 {
		c.remaining = 0
		remaining = 0
		c.state = Idle
		c.pending = nil
		c.gen++
		done = &Completion{RunID: c.runID, Duration: c.total}
	} else {
		c.arm()
	}
	onTick := c.onTick
	onComplete := c.onComplete
	notifier := c.notifier
	c.mu.Unlock()

	for _, f := range onTick {
		f(remaining)
	}
	if done == nil {
		return
	}
	c.log.WithField("run", done.RunID).Debug("complete")
	if notifier != nil {
		if err := notifier.Notify(); err != nil {
			c.log.WithError(err).Warn("notify failed")
		}
	}
	for _, f := range onComplete {
		f(*done)
	}
}
