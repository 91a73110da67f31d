package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_IsIdempotent(t *testing.T) {
	Init()
	Init()

	for _, name := range []string{EaseLinear, EaseEditorial, EaseEditorialIn, EaseExpo, EaseSmoothInOut, ""} {
		fn, ok := LookupEase(name)
		require.True(t, ok, name)
		assert.InDelta(t, 0.0, fn(0), 1e-9, name)
		assert.InDelta(t, 1.0, fn(1), 1e-9, name)

		prev := fn(0)
		for x := 0.01; x <= 1; x += 0.01 {
			cur := fn(x)
			require.GreaterOrEqual(t, cur, prev, "%s at %v", name, x)
			prev = cur
		}
	}

	_, ok := LookupEase("elastic.out")
	assert.False(t, ok)
}

func TestCurve_At(t *testing.T) {
	rotate := NewCurve(0, 360)
	radius := NewCurve(50, 10, 50, 0, 50)

	tests := []struct {
		name  string
		curve Curve
		p     float64
		want  float64
	}{
		{name: "start", curve: rotate, p: 0, want: 0},
		{name: "mid", curve: rotate, p: 0.5, want: 180},
		{name: "end", curve: rotate, p: 1, want: 360},
		{name: "below clamps", curve: rotate, p: -0.5, want: 0},
		{name: "above clamps", curve: rotate, p: 1.5, want: 360},
		{name: "exact inner stop", curve: radius, p: 0.25, want: 10},
		{name: "between inner stops", curve: radius, p: 0.625, want: 25},
		{name: "last segment", curve: radius, p: 0.875, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.curve.At(tt.p), 1e-9)
		})
	}
}

func TestCurve_EasedSegmentsStayWithinStops(t *testing.T) {
	c := Curve{Stops: []Stop{{At: 0, Value: 10}, {At: 1, Value: 20}}, Ease: EaseEditorial}
	for p := 0.0; p <= 1; p += 0.05 {
		v := c.At(p)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.LessOrEqual(t, v, 20.0)
	}
}

func TestCurve_Validate(t *testing.T) {
	assert.NoError(t, NewCurve(1, 2, 3).Validate())
	assert.ErrorIs(t, Curve{}.Validate(), ErrCurveStops)
	assert.ErrorIs(t, Curve{Stops: []Stop{{At: 0.5}, {At: 0.5}}}.Validate(), ErrCurveStops)
	assert.Error(t, Curve{Stops: []Stop{{At: 0}}, Ease: "nope"}.Validate())
	assert.Equal(t, 0.0, Curve{}.At(0.3))
}

func TestColorCurve_At(t *testing.T) {
	c := NewColorCurve("#ffffff", "#6366f1", "#ffffff")
	require.NoError(t, c.Validate())

	assert.Equal(t, "#ffffff", c.At(0).Hex())
	assert.Equal(t, "#6366f1", c.At(0.5).Hex())
	assert.Equal(t, "#ffffff", c.At(1).Hex())
	assert.Equal(t, "#b1b3f8", c.At(0.25).Hex())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#abc")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0xaa, G: 0xbb, B: 0xcc}, c)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestParseOffset(t *testing.T) {
	b := Rect{Top: 1000, Height: 400}

	tests := []struct {
		expr    string
		want    float64
		wantErr bool
	}{
		{expr: "top top", want: 1000},
		{expr: "top bottom", want: 200},
		{expr: "bottom top", want: 1400},
		{expr: "center center", want: 800},
		{expr: "top 88%", want: 1000 - 704},
		{expr: "50% 25%", want: 1200 - 200},
		{expr: "top 100px", want: 900},
		{expr: "20 top", want: 1020},
		{expr: "top", wantErr: true},
		{expr: "top middle", wantErr: true},
		{expr: "x% top", wantErr: true},
		{expr: "top top top", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			o, err := ParseOffset(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expr, o.String())
			assert.InDelta(t, tt.want, o.Resolve(b, 800), 1e-9)
		})
	}
}
