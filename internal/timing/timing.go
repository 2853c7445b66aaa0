package timing

import (
	"sync"
	"time"
)

// Debouncer delays a callback until calls have settled: each Call resets the
// timer, so only the last callback within a burst runs.
type Debouncer struct {
	delay time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a Debouncer with the given settle delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the settle delay, replacing any pending call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Throttler caps invocation frequency on the leading edge: the first Call in
// a window runs immediately, later ones inside the window are dropped.
type Throttler struct {
	interval time.Duration
	mu       sync.Mutex
	last     time.Time
	now      func() time.Time
}

// NewThrottler creates a Throttler with the given minimum interval.
func NewThrottler(interval time.Duration) *Throttler {
	return &Throttler{interval: interval, now: time.Now}
}

// Call runs fn if the interval has elapsed since the last accepted call and
// reports whether it ran.
func (t *Throttler) Call(fn func()) bool {
	t.mu.Lock()
	current := t.now()
	if !t.last.IsZero() && current.Sub(t.last) < t.interval {
		t.mu.Unlock()
		return false
	}
	t.last = current
	t.mu.Unlock()

	fn()
	return true
}
