package motion

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// Entrance defaults.
const (
	DefaultEntranceStart = "top 88%"
	DefaultEntranceEnd   = "top 30%"
	DefaultScrub         = 1.2
	DefaultStaggerDelay  = 0.06

	// Stagger children travel this far and this long (in timeline units
	// where the parent transition lasts 1).
	staggerChildY        = 24
	staggerChildDuration = 0.8
)

// ErrInvertedRange is returned when a range's start does not precede its end
// for the trigger's current bounds.
var ErrInvertedRange = errors.New("motion: range start must precede end")

// EntranceConfig describes one scroll-driven entrance effect. The initial
// state is {Opacity, Y, Scale, ClipInset}; the final state is Revealed.
type EntranceConfig struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Scrub float64 `json:"scrub"`

	Y       float64  `json:"y"`
	Scale   float64  `json:"scale"`
	Opacity float64  `json:"opacity"`
	Clip    *float64 `json:"clipInset,omitempty"`
	Ease    string   `json:"ease,omitempty"`

	StaggerSelector string  `json:"staggerSelector,omitempty"`
	StaggerDelay    float64 `json:"staggerDelay,omitempty"`

	// OnEnter fires once, the first time the trigger's progress leaves 0.
	OnEnter func() `json:"-"`
}

// DefaultEntrance returns the standard section entrance.
func DefaultEntrance() EntranceConfig {
	return EntranceConfig{
		Start:        DefaultEntranceStart,
		End:          DefaultEntranceEnd,
		Scrub:        DefaultScrub,
		Y:            60,
		Scale:        0.98,
		Opacity:      0,
		Ease:         EaseLinear,
		StaggerDelay: DefaultStaggerDelay,
	}
}

// ClipInset returns a pointer suitable for EntranceConfig.Clip.
func ClipInset(v float64) *float64 {
	return &v
}

func (c EntranceConfig) normalized() EntranceConfig {
	if c.Start == "" {
		c.Start = DefaultEntranceStart
	}
	if c.End == "" {
		c.End = DefaultEntranceEnd
	}
	return c
}

// Validate checks the parts of the configuration that do not depend on layout.
func (c EntranceConfig) Validate() error {
	c = c.normalized()
	if c.Scrub < 0 || math.IsNaN(c.Scrub) {
		return fmt.Errorf("motion: scrub must be >= 0, got %v", c.Scrub)
	}
	if c.StaggerDelay < 0 {
		return fmt.Errorf("motion: stagger delay must be >= 0, got %v", c.StaggerDelay)
	}
	if c.Clip != nil && (*c.Clip < 0 || *c.Clip > 1) {
		return fmt.Errorf("motion: clip inset must be within [0,1], got %v", *c.Clip)
	}
	if _, ok := LookupEase(c.Ease); !ok {
		return fmt.Errorf("motion: unknown ease %q", c.Ease)
	}
	if _, err := parseRange(c.Start, c.End); err != nil {
		return err
	}
	return nil
}

// InitialState is the state an element shows before the entrance begins.
func (c EntranceConfig) InitialState() State {
	s := State{Opacity: c.Opacity, Y: c.Y, Scale: c.Scale}
	if c.Clip != nil {
		s.Clipped = true
		s.ClipInset = *c.Clip
	}
	return s
}

// FinalState is the fully revealed state, keeping the clip property when the
// entrance animates it.
func (c EntranceConfig) FinalState() State {
	s := Revealed
	s.Clipped = c.Clip != nil
	return s
}

// StateAt returns the parent's display state at linear progress p.
func (c EntranceConfig) StateAt(p float64) State {
	ease, ok := LookupEase(c.Ease)
	if !ok {
		ease, _ = LookupEase(EaseLinear)
	}
	return c.InitialState().Lerp(c.FinalState(), applyEase(ease, p))
}

// StaggerChildInitial is the state stagger children start from.
func StaggerChildInitial() State {
	return State{Opacity: 0, Y: staggerChildY, Scale: 1}
}

// staggerProgress maps parent progress p to the progress of child i of n.
// Child i starts i*delay into the shared timeline and lasts
// staggerChildDuration; the timeline is normalised so every child finishes
// exactly when p reaches 1.
func staggerProgress(p float64, i, n int, delay float64) float64 {
	total := staggerChildDuration + float64(n-1)*delay
	return clamp01((clamp01(p)*total - float64(i)*delay) / staggerChildDuration)
}

// Entrance registers a scroll-driven entrance for target. While the trigger
// crosses [Start, End] its progress rises linearly from 0 to 1 and is
// clamped outside the range; the target's state is the eased blend between
// InitialState and FinalState at that progress.
//
// When the capabilities request reduced motion, or the engine has no
// scroller, nothing is registered and the returned disposer is inert.
func (e *Engine) Entrance(target Target, cfg EntranceConfig) (Disposer, error) {
	if target == nil || e.inert() {
		return inertDisposer, nil
	}

	cfg = cfg.normalized()
	if err := cfg.Validate(); err != nil {
		return inertDisposer, err
	}

	rng, _ := parseRange(cfg.Start, cfg.End)
	now := e.scroller.State()
	if start, end := rng.bounds(target.Bounds(), now.ViewportHeight); !(start < end) {
		return inertDisposer, fmt.Errorf("%w: %q resolves to %.1f, %q to %.1f", ErrInvertedRange, cfg.Start, start, cfg.End, end)
	}

	ease, _ := LookupEase(cfg.Ease)
	ent := &entrance{
		target: target,
		cfg:    cfg,
		rng:    rng,
		ease:   ease,
	}
	if cfg.StaggerSelector != "" {
		if c, ok := target.(Container); ok {
			ent.children = c.Query(cfg.StaggerSelector)
		}
	}

	ent.goal = rng.progress(target.Bounds(), now)
	ent.current = ent.goal
	ent.render()

	return e.register(ent), nil
}

type entrance struct {
	target   Target
	children []Target
	cfg      EntranceConfig
	rng      scrollRange
	ease     EaseFunc

	current float64
	goal    float64
	entered bool
	stopped atomic.Bool
}

func (en *entrance) scroll(s ScrollState) {
	if en.stopped.Load() {
		return
	}
	en.goal = en.rng.progress(en.target.Bounds(), s)
	if en.cfg.Scrub == 0 {
		en.current = en.goal
		en.render()
	}
}

// frame moves the displayed progress a fraction of the way to the scroll
// goal. Each step is a convex blend, so the displayed value stays between
// its previous value and the goal and never overshoots.
func (en *entrance) frame(dt time.Duration) {
	if en.stopped.Load() || en.cfg.Scrub == 0 || en.current == en.goal {
		return
	}
	k := 1 - math.Exp(-dt.Seconds()/en.cfg.Scrub)
	en.current += (en.goal - en.current) * k
	if math.Abs(en.goal-en.current) < 1e-4 {
		en.current = en.goal
	}
	en.render()
}

func (en *entrance) stop() {
	en.stopped.Store(true)
}

func (en *entrance) render() {
	p := clamp01(en.current)
	if p > 0 && !en.entered {
		en.entered = true
		if en.cfg.OnEnter != nil {
			en.cfg.OnEnter()
		}
	}

	en.target.Apply(en.cfg.InitialState().Lerp(en.cfg.FinalState(), applyEase(en.ease, p)))

	from := StaggerChildInitial()
	for i, child := range en.children {
		cp := staggerProgress(p, i, len(en.children), en.cfg.StaggerDelay)
		child.Apply(from.Lerp(Revealed, applyEase(en.ease, cp)))
	}
}
