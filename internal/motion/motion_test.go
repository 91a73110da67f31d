package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeScroller is a synchronous scroll source driven by the test.
type fakeScroller struct {
	state ScrollState
	subs  map[int]func(ScrollState)
	next  int
}

func newFakeScroller(viewport float64) *fakeScroller {
	return &fakeScroller{
		state: ScrollState{ViewportHeight: viewport},
		subs:  make(map[int]func(ScrollState)),
	}
}

func (f *fakeScroller) State() ScrollState { return f.state }

func (f *fakeScroller) Subscribe(fn func(ScrollState)) func() {
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() { delete(f.subs, id) }
}

func (f *fakeScroller) ScrollTo(y float64) {
	f.state.Y = y
	for _, fn := range f.subs {
		fn(f.state)
	}
}

// fakeTarget records every state written to it.
type fakeTarget struct {
	bounds   Rect
	applied  []State
	children map[string][]Target
}

func (t *fakeTarget) Bounds() Rect  { return t.bounds }
func (t *fakeTarget) Apply(s State) { t.applied = append(t.applied, s) }
func (t *fakeTarget) Query(sel string) []Target {
	return t.children[sel]
}

func (t *fakeTarget) last() State {
	if len(t.applied) == 0 {
		return State{}
	}
	return t.applied[len(t.applied)-1]
}

func assertState(t *testing.T, want, got State, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.Opacity, got.Opacity, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Scale, got.Scale, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.ClipInset, got.ClipInset, 1e-9, msgAndArgs...)
	assert.Equal(t, want.Clipped, got.Clipped, msgAndArgs...)
}
