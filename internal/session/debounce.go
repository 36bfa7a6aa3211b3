package session

import (
	"strings"
	"sync"
	"time"
)

const (
	// DefaultQuietPeriod is how long input must be quiet before a search dispatches.
	DefaultQuietPeriod = 300 * time.Millisecond

	// MinQueryLength is the shortest trimmed query worth a network call.
	// Anything shorter clears results locally instead.
	MinQueryLength = 2
)

// Debouncer collapses a burst of query intents into a single dispatch.
//
// Schedule records the latest intent and arms a timer; a newer intent cancels
// the pending one, so within any busy window only the final intent fires.
// Intents shorter than [MinQueryLength] after trimming short-circuit to the
// clear callback without arming a timer.
type Debouncer struct {
	mu       sync.Mutex
	quiet    time.Duration
	timer    *time.Timer
	dispatch func(intent string)
	clear    func()
}

// NewDebouncer creates a debouncer with the given quiet period.
// A non-positive quiet period falls back to [DefaultQuietPeriod].
func NewDebouncer(quiet time.Duration, dispatch func(string), clear func()) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{
		quiet:    quiet,
		dispatch: dispatch,
		clear:    clear,
	}
}

// Schedule records intent as the latest query and re-arms the quiet timer.
func (d *Debouncer) Schedule(intent string) {
	trimmed := strings.TrimSpace(intent)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if len(trimmed) < MinQueryLength {
		if d.clear != nil {
			d.clear()
		}
		return
	}

	d.timer = time.AfterFunc(d.quiet, func() {
		d.dispatch(trimmed)
	})
}

// Stop cancels any pending dispatch.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
