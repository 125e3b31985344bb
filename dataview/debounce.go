package dataview

import (
	"sync"
	"time"
)

// DefaultDebounce is the search debounce window used when a screen does not
// configure its own.
const DefaultDebounce = 400 * time.Millisecond

// Debouncer collapses rapid bursts of query input: a pending value is
// replaced whenever a new one arrives inside the window, and only the last
// value of a burst is propagated to the callback. Flush delivers the
// pending value immediately (explicit submit) and Cancel drops it
// (explicit clear).
type Debouncer struct {
	mu         sync.Mutex
	window     time.Duration
	timer      *time.Timer
	generation uint64
	pending    string
	hasPending bool
	fn         func(string)
}

func NewDebouncer(window time.Duration, fn func(string)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window, fn: fn}
}

// Update queues a value, replacing any pending one and restarting the
// window.
func (d *Debouncer) Update(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimerLocked()
	d.pending = value
	d.hasPending = true
	d.generation++

	generation := d.generation
	d.timer = time.AfterFunc(d.window, func() {
		d.fire(generation)
	})
}

// Flush delivers the pending value immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.hasPending {
		d.mu.Unlock()
		return
	}
	d.stopTimerLocked()
	value := d.pending
	d.hasPending = false
	d.generation++
	d.mu.Unlock()

	d.fn(value)
}

// Cancel drops the pending value without delivering it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimerLocked()
	d.hasPending = false
	d.generation++
}

func (d *Debouncer) fire(generation uint64) {
	d.mu.Lock()
	// A timer callback can race with Update/Flush/Cancel; the generation
	// check discards a callback that was superseded after scheduling.
	if generation != d.generation || !d.hasPending {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.hasPending = false
	d.mu.Unlock()

	d.fn(value)
}

func (d *Debouncer) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
