// Package motion implements scroll-driven animation orchestration: entrance
// effects that blend an element from an offset state to fully revealed as it
// crosses a scroll range, and progress sampling that feeds a normalized
// [0,1] scalar to visual effects.
//
// The package never touches a real DOM. Elements, targets, and the scroll
// source are interfaces so the same code drives the server-rendered initial
// state, the manifest consumed by the browser runtime, and tests.
package motion

import (
	"math"
	"sync"
)

// EaseFunc maps linear progress in [0,1] to eased progress in [0,1].
// Registered eases are monotonic non-decreasing with f(0)=0 and f(1)=1.
type EaseFunc func(t float64) float64

// Names of the built-in eases.
const (
	EaseLinear      = "none"
	EaseEditorial   = "power4.out"
	EaseEditorialIn = "power4.in"
	EaseExpo        = "expo.out"
	EaseSmoothInOut = "power2.inOut"
	defaultEaseName = EaseLinear
)

var (
	initOnce sync.Once
	easesMu  sync.RWMutex
	eases    = map[string]EaseFunc{}
)

// Init registers the built-in eases. It is safe to call any number of times;
// only the first call has an effect. The composition root calls it during
// startup and every exported lookup calls it lazily as well.
func Init() {
	initOnce.Do(func() {
		easesMu.Lock()
		defer easesMu.Unlock()

		eases[EaseLinear] = func(t float64) float64 { return t }
		eases[EaseEditorial] = func(t float64) float64 { return 1 - math.Pow(1-t, 5) }
		eases[EaseEditorialIn] = func(t float64) float64 { return math.Pow(t, 5) }
		eases[EaseExpo] = func(t float64) float64 {
			if t >= 1 {
				return 1
			}
			return 1 - math.Pow(2, -10*t)
		}
		eases[EaseSmoothInOut] = func(t float64) float64 {
			if t < 0.5 {
				return 4 * t * t * t
			}
			return 1 - math.Pow(-2*t+2, 3)/2
		}
	})
}

// LookupEase returns the registered ease for name. An empty name resolves to
// the linear ease. The boolean is false for unknown names.
func LookupEase(name string) (EaseFunc, bool) {
	Init()
	if name == "" {
		name = defaultEaseName
	}

	easesMu.RLock()
	defer easesMu.RUnlock()
	fn, ok := eases[name]
	return fn, ok
}

// clamp01 bounds v to [0,1]. NaN collapses to 0.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}

// applyEase runs fn and clamps the result so a misbehaving ease can never
// push a state past its endpoints.
func applyEase(fn EaseFunc, t float64) float64 {
	return clamp01(fn(clamp01(t)))
}
