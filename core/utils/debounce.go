package utils

import (
	"sync"
	"time"
)

// Debouncer defers a function until no further calls arrive for its delay.
// Each call to Trigger cancels the pending function and restarts the window.
type Debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	delay   time.Duration
}

// NewDebouncer creates a debouncer with the given delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any call still waiting in the window.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn

	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A newer Trigger already replaced this timer.
		if d.timer != timer {
			d.mu.Unlock()
			return
		}
		run := d.pending
		d.timer, d.pending = nil, nil
		d.mu.Unlock()

		if run != nil {
			run()
		}
	})
	d.timer = timer
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer, d.pending = nil, nil
}

// Flush runs the pending call now instead of at the end of the window.
// It reports whether there was a call to run.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	run := d.pending
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer, d.pending = nil, nil
	d.mu.Unlock()

	if run == nil {
		return false
	}
	run()
	return true
}

// Pending reports whether a call is waiting for its window to close.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Debounced wraps a single-argument function so that only the last call in a
// burst reaches it, with that call's argument.
type Debounced[T any] struct {
	d  *Debouncer
	fn func(T)
}

// NewDebounced wraps fn with the given delay.
func NewDebounced[T any](fn func(T), delay time.Duration) *Debounced[T] {
	return &Debounced[T]{d: NewDebouncer(delay), fn: fn}
}

// Call records arg and restarts the window.
func (db *Debounced[T]) Call(arg T) {
	db.d.Trigger(func() { db.fn(arg) })
}

// Cancel drops the pending call.
func (db *Debounced[T]) Cancel() { db.d.Cancel() }

// Flush runs the pending call immediately.
func (db *Debounced[T]) Flush() bool { return db.d.Flush() }

// Debounce returns a function that forwards to fn only after delay has passed
// without another call. Use NewDebounced when the caller needs Cancel.
func Debounce[T any](fn func(T), delay time.Duration) func(T) {
	return NewDebounced(fn, delay).Call
}
