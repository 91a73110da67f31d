package motion

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// EntranceBinding ties an entrance configuration to a CSS selector.
type EntranceBinding struct {
	Target string         `json:"target"`
	Config EntranceConfig `json:"config"`
}

// VarBinding maps progress onto one CSS custom property through either a
// numeric curve (suffixed with Unit) or a colour curve.
type VarBinding struct {
	Name   string      `json:"name"`
	Curve  *Curve      `json:"curve,omitempty"`
	Colors *ColorCurve `json:"colors,omitempty"`
	Unit   string      `json:"unit,omitempty"`
}

// Value renders the property value at progress p.
func (v VarBinding) Value(p float64) string {
	if v.Colors != nil {
		return v.Colors.At(p).Hex()
	}
	if v.Curve != nil {
		return formatNumber(roundTo(v.Curve.At(p), 4)) + v.Unit
	}
	return ""
}

func (v VarBinding) validate() error {
	if !strings.HasPrefix(v.Name, "--") {
		return fmt.Errorf("motion: custom property %q must start with --", v.Name)
	}
	switch {
	case v.Curve != nil && v.Colors != nil:
		return fmt.Errorf("motion: %s binds both a curve and a colour curve", v.Name)
	case v.Curve != nil:
		return v.Curve.Validate()
	case v.Colors != nil:
		return v.Colors.Validate()
	default:
		return fmt.Errorf("motion: %s has no curve", v.Name)
	}
}

// ProgressBinding samples a trigger's scroll progress and writes every
// bound custom property on each update.
type ProgressBinding struct {
	Target string       `json:"target"`
	Range  Range        `json:"range"`
	Vars   []VarBinding `json:"vars"`
}

// Manifest lists the motion bindings of one rendered page. The browser
// runtime registers exactly these observers; the server uses the same data
// to render initial states.
type Manifest struct {
	Entrances []EntranceBinding `json:"entrances"`
	Progress  []ProgressBinding `json:"progress"`

	caps Capabilities
}

// NewManifest creates an empty manifest for a page view with caps. Under
// reduced motion every Add call is accepted and dropped, so the page ships
// no observers and content renders fully revealed.
func NewManifest(caps Capabilities) *Manifest {
	Init()
	return &Manifest{
		Entrances: []EntranceBinding{},
		Progress:  []ProgressBinding{},
		caps:      caps,
	}
}

// AddEntrance validates cfg and appends it for selector.
func (m *Manifest) AddEntrance(selector string, cfg EntranceConfig) error {
	if selector == "" {
		return errors.New("motion: entrance selector is empty")
	}
	cfg = cfg.normalized()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("entrance %s: %w", selector, err)
	}
	if !m.caps.AnimationsEnabled() {
		return nil
	}
	m.Entrances = append(m.Entrances, EntranceBinding{Target: selector, Config: cfg})
	return nil
}

// AddProgress validates the binding and appends it.
func (m *Manifest) AddProgress(selector string, rng Range, vars ...VarBinding) error {
	if selector == "" {
		return errors.New("motion: progress selector is empty")
	}
	rng = rng.normalized()
	if _, err := parseRange(rng.Start, rng.End); err != nil {
		return fmt.Errorf("progress %s: %w", selector, err)
	}
	for _, v := range vars {
		if err := v.validate(); err != nil {
			return fmt.Errorf("progress %s: %w", selector, err)
		}
	}
	if !m.caps.AnimationsEnabled() {
		return nil
	}
	m.Progress = append(m.Progress, ProgressBinding{Target: selector, Range: rng, Vars: vars})
	return nil
}

// Empty reports whether the manifest registers nothing.
func (m *Manifest) Empty() bool {
	return len(m.Entrances) == 0 && len(m.Progress) == 0
}

// ReadyClass is set on the document element by the browser runtime once it
// has taken over. Initial states only apply under it, so a page whose
// runtime never runs shows its content.
const ReadyClass = "motion-ready"

// readyScope prefixes every initial-state selector.
const readyScope = "html." + ReadyClass + " "

// InitialCSS renders the pre-scroll state of every binding as a stylesheet.
// Rules sit inside a prefers-reduced-motion media query so browsers that
// report the preference without sending the client hint still see static
// content, and every selector is scoped under ReadyClass.
func (m *Manifest) InitialCSS() string {
	if m.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("@media (prefers-reduced-motion: no-preference){")
	for _, e := range m.Entrances {
		fmt.Fprintf(&b, "%s%s{%s;will-change:transform,opacity}", readyScope, e.Target, e.Config.StateAt(0).CSS())
		if e.Config.StaggerSelector != "" {
			fmt.Fprintf(&b, "%s%s %s{%s}", readyScope, e.Target, e.Config.StaggerSelector, StaggerChildInitial().CSS())
		}
	}
	for _, p := range m.Progress {
		b.WriteString(readyScope)
		b.WriteString(p.Target)
		b.WriteByte('{')
		for i, v := range p.Vars {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(v.Name)
			b.WriteByte(':')
			b.WriteString(v.Value(0))
		}
		b.WriteByte('}')
	}
	b.WriteString("}")
	return b.String()
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
