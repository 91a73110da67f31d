package motion

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is an element's document-relative vertical extent.
type Rect struct {
	Top    float64
	Height float64
}

// edge is a position along one axis, expressed as a fraction of the owning
// box plus a pixel adjustment.
type edge struct {
	frac float64
	px   float64
}

func (e edge) resolve(size float64) float64 {
	return e.frac*size + e.px
}

// Offset is a parsed "<element-edge> <viewport-edge>" expression such as
// "top 88%" or "bottom top". The trigger point is reached when the element
// edge lines up with the viewport edge.
type Offset struct {
	raw      string
	element  edge
	viewport edge
}

// ParseOffset parses an offset expression. Each edge is one of top, center,
// bottom, a percentage ("35%") or a pixel length ("120px" or "120").
func ParseOffset(s string) (Offset, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Offset{}, fmt.Errorf("motion: offset %q must have an element and a viewport edge", s)
	}

	el, err := parseEdge(fields[0])
	if err != nil {
		return Offset{}, fmt.Errorf("motion: offset %q: %w", s, err)
	}
	vp, err := parseEdge(fields[1])
	if err != nil {
		return Offset{}, fmt.Errorf("motion: offset %q: %w", s, err)
	}

	return Offset{raw: s, element: el, viewport: vp}, nil
}

// String returns the original expression.
func (o Offset) String() string {
	return o.raw
}

// Resolve returns the scroll position at which the offset is reached for an
// element with bounds b inside a viewport of the given height.
func (o Offset) Resolve(b Rect, viewportHeight float64) float64 {
	return b.Top + o.element.resolve(b.Height) - o.viewport.resolve(viewportHeight)
}

func parseEdge(tok string) (edge, error) {
	switch tok {
	case "top":
		return edge{frac: 0}, nil
	case "center":
		return edge{frac: 0.5}, nil
	case "bottom":
		return edge{frac: 1}, nil
	}

	if pct, ok := strings.CutSuffix(tok, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return edge{}, fmt.Errorf("invalid percentage %q", tok)
		}
		return edge{frac: v / 100}, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
	if err != nil {
		return edge{}, fmt.Errorf("invalid edge %q", tok)
	}
	return edge{px: v}, nil
}

// scrollRange is a resolved pair of offsets.
type scrollRange struct {
	start, end Offset
}

func parseRange(start, end string) (scrollRange, error) {
	s, err := ParseOffset(start)
	if err != nil {
		return scrollRange{}, err
	}
	e, err := ParseOffset(end)
	if err != nil {
		return scrollRange{}, err
	}
	return scrollRange{start: s, end: e}, nil
}

// bounds returns the scroll positions of the range's start and end.
func (r scrollRange) bounds(b Rect, viewportHeight float64) (float64, float64) {
	return r.start.Resolve(b, viewportHeight), r.end.Resolve(b, viewportHeight)
}

// progress maps scroll position y linearly onto [0,1] across the range.
// A collapsed range behaves as a step at its end.
func (r scrollRange) progress(b Rect, s ScrollState) float64 {
	start, end := r.bounds(b, s.ViewportHeight)
	if end <= start {
		if s.Y >= end {
			return 1
		}
		return 0
	}
	return clamp01((s.Y - start) / (end - start))
}
