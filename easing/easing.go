// Package easing maps normalized progress t in [0, 1] to eased progress.
//
// Every function reachable through a Registry satisfies f(0) = 0 and
// f(1) = 1 exactly. Elastic curves may leave [0, 1] in between.
package easing

import "math"

// Func is a deterministic, stateless easing curve.
type Func func(t float64) float64

const (
	Linear    = "linear"
	EaseIn    = "ease_in"
	EaseOut   = "ease_out"
	EaseInOut = "ease_in_out"
	Bounce    = "bounce"
	Elastic   = "elastic"
)

func linear(t float64) float64 {
	return t
}

func easeIn(t float64) float64 {
	return t * t
}

func easeOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}

// bounce is the standard bounce-out curve.
func bounce(t float64) float64 {
	const (
		n = 7.5625
		d = 2.75
	)
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

func elastic(t float64) float64 {
	const (
		p = 0.3
		s = p / 4
	)
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	t--
	return -math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p)
}

// Bounded pins fn to 0 at t <= 0 and 1 at t >= 1 so floating point
// error in a curve's last segment can never break the endpoint law.
func Bounded(fn Func) Func {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return fn(t)
	}
}
