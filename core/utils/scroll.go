package utils

import (
	"context"
	"math"
	"sync"
	"time"
)

// DefaultFrameInterval is the delay between two ScrollToTop steps.
const DefaultFrameInterval = 15 * time.Millisecond

// Scroller is a vertical scroll surface.
type Scroller interface {
	// ScrollOffset returns the current distance from the top.
	ScrollOffset() float64
	// ScrollTo moves to the given distance from the top.
	ScrollTo(offset float64)
}

// Viewport is an in-memory Scroller, safe for concurrent use.
type Viewport struct {
	mu     sync.RWMutex
	offset float64
}

// NewViewport creates a viewport scrolled to offset.
func NewViewport(offset float64) *Viewport {
	return &Viewport{offset: math.Max(offset, 0)}
}

// ScrollOffset implements Scroller.
func (v *Viewport) ScrollOffset() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.offset
}

// ScrollTo implements Scroller. Negative offsets clamp to the top.
func (v *Viewport) ScrollTo(offset float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offset = math.Max(offset, 0)
}

type scrollOptions struct {
	frame   time.Duration
	onFrame func(offset float64)
}

// ScrollOption configures ScrollToTop.
type ScrollOption func(*scrollOptions)

// WithFrameInterval overrides DefaultFrameInterval.
func WithFrameInterval(d time.Duration) ScrollOption {
	return func(o *scrollOptions) {
		if d > 0 {
			o.frame = d
		}
	}
}

// WithFrameHook registers a callback invoked with the offset after each step.
func WithFrameHook(fn func(offset float64)) ScrollOption {
	return func(o *scrollOptions) {
		o.onFrame = fn
	}
}

// ScrollToTop moves s to the top over roughly duration, one frame at a time.
//
// The step is fixed when the scroll starts: the initial offset divided by the
// number of frames that fit in duration. A duration no longer than one frame
// jumps straight to the top. ScrollToTop blocks until the top is reached or
// ctx is done, in which case it returns ctx.Err() and leaves s where it was.
func ScrollToTop(ctx context.Context, s Scroller, duration time.Duration, opts ...ScrollOption) error {
	o := scrollOptions{frame: DefaultFrameInterval}
	for _, opt := range opts {
		opt(&o)
	}

	offset := s.ScrollOffset()
	if offset <= 0 {
		return nil
	}
	if duration <= o.frame {
		s.ScrollTo(0)
		if o.onFrame != nil {
			o.onFrame(0)
		}
		return nil
	}

	step := offset / (float64(duration) / float64(o.frame))

	ticker := time.NewTicker(o.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		current := s.ScrollOffset()
		if current <= 0 {
			return nil
		}
		next := math.Max(current-step, 0)
		s.ScrollTo(next)
		if o.onFrame != nil {
			o.onFrame(next)
		}
		if next == 0 {
			return nil
		}
	}
}
