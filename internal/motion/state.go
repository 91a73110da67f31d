package motion

import (
	"strconv"
	"strings"
)

// State is the display state an entrance effect writes to its target.
// ClipInset is the fraction of the element hidden from the top (0 = fully
// revealed) and is only meaningful when Clipped is set.
type State struct {
	Opacity   float64 `json:"opacity"`
	Y         float64 `json:"y"`
	Scale     float64 `json:"scale"`
	ClipInset float64 `json:"clipInset,omitempty"`
	Clipped   bool    `json:"clipped,omitempty"`
}

// Revealed is the terminal state of every entrance.
var Revealed = State{Opacity: 1, Y: 0, Scale: 1}

// Lerp blends s toward to by t, where t is clamped to [0,1].
func (s State) Lerp(to State, t float64) State {
	t = clamp01(t)
	mix := func(a, b float64) float64 { return a + (b-a)*t }
	return State{
		Opacity:   mix(s.Opacity, to.Opacity),
		Y:         mix(s.Y, to.Y),
		Scale:     mix(s.Scale, to.Scale),
		ClipInset: mix(s.ClipInset, to.ClipInset),
		Clipped:   s.Clipped || to.Clipped,
	}
}

// CSS renders the state as CSS declarations suitable for a style rule.
func (s State) CSS() string {
	var b strings.Builder
	b.WriteString("opacity:")
	b.WriteString(formatNumber(s.Opacity))
	b.WriteString(";transform:translate3d(0,")
	b.WriteString(formatNumber(s.Y))
	b.WriteString("px,0) scale(")
	b.WriteString(formatNumber(s.Scale))
	b.WriteString(")")
	if s.Clipped {
		b.WriteString(";clip-path:inset(")
		b.WriteString(formatNumber(s.ClipInset * 100))
		b.WriteString("% 0% 0% 0%)")
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Capabilities describes the rendering environment once per page view.
// Components read it instead of probing global media state, so tests can
// pin any combination.
type Capabilities struct {
	ReducedMotion bool `json:"reducedMotion"`
	Touch         bool `json:"touch"`
	Narrow        bool `json:"narrow"`
}

// AnimationsEnabled reports whether scroll-driven motion may run at all.
func (c Capabilities) AnimationsEnabled() bool {
	return !c.ReducedMotion
}
