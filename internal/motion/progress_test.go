package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct{ bounds Rect }

func (e fakeElement) Bounds() Rect { return e.bounds }

// An element at top 1000 with height 500 under the default range runs from
// scroll 1000 ("top top") to scroll 1500 ("bottom top").
func TestProgress_ClampsToUnitInterval(t *testing.T) {
	scroller := newFakeScroller(800)
	engine := NewEngine(scroller, Capabilities{})

	var got []float64
	dispose, err := engine.Progress(fakeElement{Rect{Top: 1000, Height: 500}}, DefaultRange(), func(p float64) {
		got = append(got, p)
	})
	require.NoError(t, err)
	defer dispose()

	require.Len(t, got, 1, "registration reports the current progress")
	assert.InDelta(t, 0.0, got[0], 1e-9)

	tests := []struct {
		y    float64
		want float64
	}{
		{y: -400, want: 0},
		{y: 0, want: 0},
		{y: 1000, want: 0},
		{y: 1125, want: 0.25},
		{y: 1250, want: 0.5},
		{y: 1500, want: 1},
		{y: 9000, want: 1},
	}

	for _, tt := range tests {
		scroller.ScrollTo(tt.y)
		assert.InDelta(t, tt.want, got[len(got)-1], 1e-9, "y=%v", tt.y)
	}

	for _, p := range got {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestProgress_CallbackRunsOnEveryScrollUpdate(t *testing.T) {
	scroller := newFakeScroller(800)
	engine := NewEngine(scroller, Capabilities{})

	calls := 0
	dispose, err := engine.Progress(fakeElement{Rect{Top: 0, Height: 2000}}, Range{}, func(float64) { calls++ })
	require.NoError(t, err)

	for y := 0.0; y < 100; y += 10 {
		scroller.ScrollTo(y)
	}
	assert.Equal(t, 11, calls)

	dispose()
	dispose()
	scroller.ScrollTo(500)
	assert.Equal(t, 11, calls, "no callbacks after dispose")
	assert.Equal(t, 0, engine.Observers())
	assert.Empty(t, scroller.subs)
}

func TestProgress_ReducedMotionRegistersNothing(t *testing.T) {
	scroller := newFakeScroller(800)
	engine := NewEngine(scroller, Capabilities{ReducedMotion: true})

	calls := 0
	dispose, err := engine.Progress(fakeElement{Rect{Top: 0, Height: 2000}}, DefaultRange(), func(float64) { calls++ })
	require.NoError(t, err)

	scroller.ScrollTo(100)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, engine.Observers())
	assert.Empty(t, scroller.subs)
	assert.NotPanics(t, func() { dispose() })
}

func TestProgress_Errors(t *testing.T) {
	scroller := newFakeScroller(800)
	engine := NewEngine(scroller, Capabilities{})

	_, err := engine.Progress(fakeElement{Rect{Top: 0, Height: 100}}, Range{Start: "middle top", End: "bottom top"}, func(float64) {})
	assert.Error(t, err)

	_, err = engine.Progress(fakeElement{Rect{Top: 0, Height: 100}}, Range{Start: "bottom top", End: "top top"}, func(float64) {})
	assert.ErrorIs(t, err, ErrInvertedRange)

	assert.Equal(t, 0, engine.Observers())
}

func TestHandle_BindLoadRelease(t *testing.T) {
	scroller := newFakeScroller(800)
	engine := NewEngine(scroller, Capabilities{})

	var h Handle
	require.NoError(t, h.Bind(engine, fakeElement{Rect{Top: 1000, Height: 500}}, DefaultRange()))
	assert.Equal(t, 1, engine.Observers())

	scroller.ScrollTo(1250)
	assert.InDelta(t, 0.5, h.Load(), 1e-9)

	require.NoError(t, h.Bind(engine, fakeElement{Rect{Top: 0, Height: 1000}}, DefaultRange()))
	assert.Equal(t, 1, engine.Observers(), "rebinding replaces the observer")

	h.Release()
	h.Release()
	assert.Equal(t, 0, engine.Observers())

	last := h.Load()
	scroller.ScrollTo(0)
	assert.Equal(t, last, h.Load())
}

func TestHandle_StoreClamps(t *testing.T) {
	var h Handle
	h.Store(3)
	assert.Equal(t, 1.0, h.Load())
	h.Store(-2)
	assert.Equal(t, 0.0, h.Load())
}
