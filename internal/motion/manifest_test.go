package motion

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotateVar() VarBinding {
	c := NewCurve(0, 360)
	return VarBinding{Name: "--morph-rotate", Curve: &c, Unit: "deg"}
}

func colorVar() VarBinding {
	c := NewColorCurve("#ffffff", "#6366f1", "#ffffff")
	return VarBinding{Name: "--morph-color", Colors: &c}
}

func TestManifest_CollectsBindings(t *testing.T) {
	m := NewManifest(Capabilities{})

	cfg := DefaultEntrance()
	cfg.StaggerSelector = "[data-stagger]"
	require.NoError(t, m.AddEntrance("#about [data-motion-content]", cfg))
	require.NoError(t, m.AddProgress("#hero", DefaultRange(), rotateVar(), colorVar()))

	assert.False(t, m.Empty())
	assert.Len(t, m.Entrances, 1)
	assert.Len(t, m.Progress, 1)

	css := m.InitialCSS()
	assert.Contains(t, css, "@media (prefers-reduced-motion: no-preference){")
	assert.Contains(t, css, "html.motion-ready #about [data-motion-content]{opacity:0;transform:translate3d(0,60px,0) scale(0.98)")
	assert.Contains(t, css, "html.motion-ready #about [data-motion-content] [data-stagger]{opacity:0;transform:translate3d(0,24px,0) scale(1)}")
	assert.Contains(t, css, "html.motion-ready #hero{--morph-rotate:0deg;--morph-color:#ffffff}")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"start":"top 88%"`)
	assert.NotContains(t, string(data), "caps")
}

func TestManifest_InitialCSSScopedToReadyClass(t *testing.T) {
	m := NewManifest(Capabilities{})

	cfg := DefaultEntrance()
	cfg.StaggerSelector = "[data-stagger]"
	require.NoError(t, m.AddEntrance("#services [data-motion-content]", cfg))
	require.NoError(t, m.AddEntrance("#trust", DefaultEntrance()))
	require.NoError(t, m.AddProgress("#hero", DefaultRange(), rotateVar()))

	css := strings.TrimPrefix(m.InitialCSS(), "@media (prefers-reduced-motion: no-preference){")
	css = strings.TrimSuffix(css, "}")

	rules := strings.Split(strings.TrimSuffix(css, "}"), "}")
	require.Len(t, rules, 4)
	for _, rule := range rules {
		selector, _, ok := strings.Cut(rule, "{")
		require.True(t, ok, rule)
		assert.True(t, strings.HasPrefix(selector, "html."+ReadyClass+" "), selector)
	}
}

func TestManifest_ReducedMotionShipsNothing(t *testing.T) {
	m := NewManifest(Capabilities{ReducedMotion: true})

	require.NoError(t, m.AddEntrance("#about", DefaultEntrance()))
	require.NoError(t, m.AddProgress("#hero", DefaultRange(), rotateVar()))

	assert.True(t, m.Empty())
	assert.Empty(t, m.InitialCSS())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entrances":[],"progress":[]}`, string(data))
}

func TestManifest_RejectsInvalidBindings(t *testing.T) {
	m := NewManifest(Capabilities{})

	bad := DefaultEntrance()
	bad.Scrub = -1
	assert.Error(t, m.AddEntrance("#a", bad))
	assert.Error(t, m.AddEntrance("", DefaultEntrance()))
	assert.Error(t, m.AddProgress("#a", Range{Start: "nowhere top"}))
	assert.Error(t, m.AddProgress("#a", DefaultRange(), VarBinding{Name: "rotate", Curve: rotateVar().Curve}))
	assert.Error(t, m.AddProgress("#a", DefaultRange(), VarBinding{Name: "--empty"}))
	assert.True(t, m.Empty())
}

func TestState_CSS(t *testing.T) {
	assert.Equal(t, "opacity:1;transform:translate3d(0,0px,0) scale(1)", Revealed.CSS())

	clipped := State{Opacity: 0.92, Y: 48, Scale: 0.98, ClipInset: 0.25, Clipped: true}
	assert.Equal(t, "opacity:0.92;transform:translate3d(0,48px,0) scale(0.98);clip-path:inset(25% 0% 0% 0%)", clipped.CSS())
}
