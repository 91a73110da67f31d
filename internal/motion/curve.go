package motion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrCurveStops is returned when a curve's breakpoints are empty or out of order.
var ErrCurveStops = errors.New("motion: curve stops must be non-empty and strictly ascending")

// Stop is one breakpoint of a Curve: at progress At the curve yields Value.
type Stop struct {
	At    float64 `json:"at"`
	Value float64 `json:"value"`
}

// Curve maps a progress scalar through an ordered breakpoint list. Between
// neighbouring stops the value is interpolated linearly after passing the
// local fraction through Ease. Outside the first and last stop the curve is
// clamped to the boundary value, so it never extrapolates.
type Curve struct {
	Stops []Stop `json:"stops"`
	Ease  string `json:"ease,omitempty"`
}

// NewCurve builds a curve whose stops are evenly spread over [0,1].
func NewCurve(values ...float64) Curve {
	return Curve{Stops: spread(values)}
}

// Validate reports whether the stops are usable and the ease is registered.
func (c Curve) Validate() error {
	if err := validateStops(len(c.Stops), func(i int) float64 { return c.Stops[i].At }); err != nil {
		return err
	}
	if _, ok := LookupEase(c.Ease); !ok {
		return fmt.Errorf("motion: unknown ease %q", c.Ease)
	}
	return nil
}

// At evaluates the curve at p. An invalid curve yields 0.
func (c Curve) At(p float64) float64 {
	i, frac, ok := locate(len(c.Stops), func(i int) float64 { return c.Stops[i].At }, c.Ease, p)
	if !ok {
		return 0
	}
	if frac == 0 {
		return c.Stops[i].Value
	}
	a, b := c.Stops[i].Value, c.Stops[i+1].Value
	return a + (b-a)*frac
}

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" or "#rgb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("motion: invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("motion: invalid hex colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorStop is one breakpoint of a ColorCurve.
type ColorStop struct {
	At    float64 `json:"at"`
	Color string  `json:"color"`
}

// ColorCurve interpolates colours channel by channel in sRGB space.
type ColorCurve struct {
	Stops []ColorStop `json:"stops"`
	Ease  string      `json:"ease,omitempty"`
}

// NewColorCurve builds a colour curve whose stops are evenly spread over [0,1].
func NewColorCurve(colors ...string) ColorCurve {
	at := spread(make([]float64, len(colors)))
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		stops[i] = ColorStop{At: at[i].At, Color: c}
	}
	return ColorCurve{Stops: stops}
}

// Validate reports whether every stop parses and the stops ascend.
func (c ColorCurve) Validate() error {
	if err := validateStops(len(c.Stops), func(i int) float64 { return c.Stops[i].At }); err != nil {
		return err
	}
	for _, s := range c.Stops {
		if _, err := ParseHex(s.Color); err != nil {
			return err
		}
	}
	if _, ok := LookupEase(c.Ease); !ok {
		return fmt.Errorf("motion: unknown ease %q", c.Ease)
	}
	return nil
}

// At evaluates the colour curve at p. Unparsable stops render as black.
func (c ColorCurve) At(p float64) RGB {
	i, frac, ok := locate(len(c.Stops), func(i int) float64 { return c.Stops[i].At }, c.Ease, p)
	if !ok {
		return RGB{}
	}
	a, _ := ParseHex(c.Stops[i].Color)
	if frac == 0 {
		return a
	}
	b, _ := ParseHex(c.Stops[i+1].Color)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*frac))
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

func spread(values []float64) []Stop {
	stops := make([]Stop, len(values))
	for i, v := range values {
		at := 0.0
		if len(values) > 1 {
			at = float64(i) / float64(len(values)-1)
		}
		stops[i] = Stop{At: at, Value: v}
	}
	return stops
}

func validateStops(n int, at func(int) float64) error {
	if n == 0 {
		return ErrCurveStops
	}
	for i := 1; i < n; i++ {
		if !(at(i) > at(i-1)) {
			return ErrCurveStops
		}
	}
	return nil
}

// locate finds the segment containing p and the eased fraction within it.
// A zero fraction means the value is exactly stop i.
func locate(n int, at func(int) float64, easeName string, p float64) (int, float64, bool) {
	if n == 0 || math.IsNaN(p) {
		return 0, 0, false
	}
	if p <= at(0) {
		return 0, 0, true
	}
	if p >= at(n-1) {
		return n - 1, 0, true
	}

	ease, ok := LookupEase(easeName)
	if !ok {
		return 0, 0, false
	}

	for i := 0; i < n-1; i++ {
		lo, hi := at(i), at(i+1)
		if p < hi {
			return i, applyEase(ease, (p-lo)/(hi-lo)), true
		}
	}
	return n - 1, 0, true
}
