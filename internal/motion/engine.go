package motion

import (
	"sync"
	"time"
)

// ScrollState is one recorded scroll position.
type ScrollState struct {
	Y              float64
	ViewportHeight float64
}

// Scroller is the scroll source an Engine observes.
type Scroller interface {
	// State returns the current scroll position.
	State() ScrollState
	// Subscribe registers fn for every recorded scroll update and returns a
	// function that removes it.
	Subscribe(fn func(ScrollState)) (unsubscribe func())
}

// Element is anything with document-relative bounds.
type Element interface {
	Bounds() Rect
}

// Target is an element whose display state can be written.
type Target interface {
	Element
	Apply(State)
}

// Container is implemented by targets that can resolve stagger selectors.
type Container interface {
	Query(selector string) []Target
}

// Disposer tears down one registration. Calling it more than once is a no-op.
type Disposer func()

// Dispose calls d if it is non-nil.
func (d Disposer) Dispose() {
	if d != nil {
		d()
	}
}

func inertDisposer() {}

// observer is one live registration.
type observer interface {
	scroll(ScrollState)
	frame(dt time.Duration)
	stop()
}

// Engine owns the scroll registrations for one page view. Scroll callbacks
// and Frame are expected on a single goroutine; Observers and disposers may
// be called from anywhere.
type Engine struct {
	scroller Scroller
	caps     Capabilities

	mu        sync.Mutex
	nextID    int
	observers map[int]observer
}

// NewEngine creates an Engine. A nil scroller stands for an environment
// without a viewport: every registration is inert.
func NewEngine(scroller Scroller, caps Capabilities) *Engine {
	Init()
	return &Engine{
		scroller:  scroller,
		caps:      caps,
		observers: make(map[int]observer),
	}
}

// Capabilities returns the capabilities the engine was created with.
func (e *Engine) Capabilities() Capabilities {
	return e.caps
}

// Observers returns the number of live registrations.
func (e *Engine) Observers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.observers)
}

// Frame advances every scrubbed registration by one display frame.
func (e *Engine) Frame(dt time.Duration) {
	if dt <= 0 {
		return
	}
	for _, obs := range e.snapshot() {
		obs.frame(dt)
	}
}

func (e *Engine) inert() bool {
	return e.scroller == nil || !e.caps.AnimationsEnabled()
}

func (e *Engine) snapshot() []observer {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]observer, 0, len(e.observers))
	for _, obs := range e.observers {
		out = append(out, obs)
	}
	return out
}

// register subscribes obs to the scroller and returns its disposer.
func (e *Engine) register(obs observer) Disposer {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.observers[id] = obs
	e.mu.Unlock()

	unsubscribe := e.scroller.Subscribe(obs.scroll)

	var once sync.Once
	return func() {
		once.Do(func() {
			obs.stop()
			unsubscribe()
			e.mu.Lock()
			delete(e.observers, id)
			e.mu.Unlock()
		})
	}
}
