package motion

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// Progress range defaults: from the trigger's top at the viewport top until
// its bottom leaves through the viewport top.
const (
	DefaultProgressStart = "top top"
	DefaultProgressEnd   = "bottom top"
)

// Range is the scroll span over which progress runs from 0 to 1.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DefaultRange returns the standard progress range.
func DefaultRange() Range {
	return Range{Start: DefaultProgressStart, End: DefaultProgressEnd}
}

func (r Range) normalized() Range {
	if r.Start == "" {
		r.Start = DefaultProgressStart
	}
	if r.End == "" {
		r.End = DefaultProgressEnd
	}
	return r
}

// Progress registers fn to receive the trigger's normalized progress through
// rng on every recorded scroll update. fn runs synchronously inside the
// scroll callback and always receives a value in [0,1]; it is also called
// once at registration with the current progress.
//
// Reduced motion or a missing scroller registers nothing and returns an
// inert disposer.
func (e *Engine) Progress(trigger Element, rng Range, fn func(float64)) (Disposer, error) {
	if trigger == nil || fn == nil || e.inert() {
		return inertDisposer, nil
	}

	rng = rng.normalized()
	sr, err := parseRange(rng.Start, rng.End)
	if err != nil {
		return inertDisposer, err
	}

	now := e.scroller.State()
	if start, end := sr.bounds(trigger.Bounds(), now.ViewportHeight); !(start < end) {
		return inertDisposer, fmt.Errorf("%w: %q resolves to %.1f, %q to %.1f", ErrInvertedRange, rng.Start, start, rng.End, end)
	}

	obs := &sampler{trigger: trigger, rng: sr, fn: fn}
	obs.scroll(now)
	return e.register(obs), nil
}

type sampler struct {
	trigger Element
	rng     scrollRange
	fn      func(float64)
	stopped atomic.Bool
}

func (s *sampler) scroll(st ScrollState) {
	if s.stopped.Load() {
		return
	}
	s.fn(s.rng.progress(s.trigger.Bounds(), st))
}

func (s *sampler) frame(time.Duration) {}

func (s *sampler) stop() {
	s.stopped.Store(true)
}

// Handle is a progress scalar owned by one visual component. Its scroll
// observer is the only writer and the component's per-frame render callback
// the only reader; reads and writes are atomic so the two may live on
// different goroutines.
type Handle struct {
	bits     atomic.Uint64
	disposer Disposer
}

// Store records progress p, clamped to [0,1].
func (h *Handle) Store(p float64) {
	h.bits.Store(math.Float64bits(clamp01(p)))
}

// Load returns the most recently stored progress.
func (h *Handle) Load() float64 {
	return math.Float64frombits(h.bits.Load())
}

// Bind attaches the handle to a progress observer on e. A second Bind
// replaces the first registration.
func (h *Handle) Bind(e *Engine, trigger Element, rng Range) error {
	h.Release()
	d, err := e.Progress(trigger, rng, h.Store)
	if err != nil {
		return err
	}
	h.disposer = d
	return nil
}

// Release tears down the handle's observer, if any. The last stored value
// is kept.
func (h *Handle) Release() {
	h.disposer.Dispose()
	h.disposer = nil
}
