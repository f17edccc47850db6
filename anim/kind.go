package anim

import (
	"math"

	"github.com/milk9111/motion/common"
)

type Kind uint8

const (
	KindLerp Kind = iota + 1
	KindSlide
	KindHighlight
	KindPulse
	KindBounce
)

func (k Kind) String() string {
	switch k {
	case KindLerp:
		return "property_lerp"
	case KindSlide:
		return "slide"
	case KindHighlight:
		return "highlight"
	case KindPulse:
		return "pulse"
	case KindBounce:
		return "bounce"
	}
	return "unknown"
}

// Assignment is one property write produced by an updater.
type Assignment struct {
	Property string
	Value    any
}

// Params holds the immutable, kind-specific parameters of an animation.
// Values is the kind's updater: a pure function of eased progress.
type Params interface {
	Kind() Kind
	Values(eased float64) []Assignment
	validate() error
}

// capturer is implemented by params that read initial state from the
// target once, when the animation is created.
type capturer interface {
	capture(t Target) (Params, error)
}

// Lerp interpolates a single scalar property.
type Lerp struct {
	Property string
	From     float64
	To       float64
}

func Fade(from, to float64) Lerp {
	return Lerp{Property: PropOpacity, From: from, To: to}
}

func Scale(from, to float64) Lerp {
	return Lerp{Property: PropScale, From: from, To: to}
}

func (l Lerp) Kind() Kind { return KindLerp }

func (l Lerp) Values(eased float64) []Assignment {
	return []Assignment{{Property: orDefault(l.Property, PropOpacity), Value: common.Lerp(l.From, l.To, eased)}}
}

func (l Lerp) validate() error {
	if !common.Finite(l.From) || !common.Finite(l.To) {
		return invalid("lerp", "from/to must be finite")
	}
	return nil
}

// Slide moves along x and y with the same eased progress.
type Slide struct {
	FromX, FromY float64
	ToX, ToY     float64
}

func (s Slide) Kind() Kind { return KindSlide }

func (s Slide) Values(eased float64) []Assignment {
	return []Assignment{
		{Property: PropX, Value: common.Lerp(s.FromX, s.ToX, eased)},
		{Property: PropY, Value: common.Lerp(s.FromY, s.ToY, eased)},
	}
}

func (s Slide) validate() error {
	for _, v := range []float64{s.FromX, s.FromY, s.ToX, s.ToY} {
		if !common.Finite(v) {
			return invalid("slide", "coordinates must be finite")
		}
	}
	return nil
}

// Highlight shows Color for the first half of the animation and Original
// for the second. Original is read from the target at start when unset.
type Highlight struct {
	Property string
	Color    any
	Original any
}

func (h Highlight) Kind() Kind { return KindHighlight }

func (h Highlight) Values(eased float64) []Assignment {
	v := h.Original
	if eased < 0.5 {
		v = h.Color
	}
	return []Assignment{{Property: orDefault(h.Property, PropBorderColor), Value: v}}
}

func (h Highlight) validate() error {
	if h.Color == nil {
		return invalid("highlight", "color is required")
	}
	if s, ok := h.Color.(string); ok && s == "" {
		return invalid("highlight", "color is required")
	}
	return nil
}

func (h Highlight) capture(t Target) (Params, error) {
	if h.Original != nil {
		return h, nil
	}
	prop := orDefault(h.Property, PropBorderColor)
	v, ok := t.GetProperty(prop)
	if !ok || v == nil {
		return nil, invalid("highlight", "target has no %s to restore", prop)
	}
	h.Original = v
	return h, nil
}

// Pulse grows the scale toward ScaleFactor twice within its duration.
type Pulse struct {
	ScaleFactor float64
}

func (p Pulse) Kind() Kind { return KindPulse }

func (p Pulse) Values(eased float64) []Assignment {
	phase := math.Mod(eased, 0.5) * 2
	return []Assignment{{Property: PropScale, Value: 1 + (p.ScaleFactor-1)*phase}}
}

func (p Pulse) validate() error {
	if !common.Finite(p.ScaleFactor) || p.ScaleFactor <= 0 {
		return invalid("pulse", "scale factor must be > 0, got %v", p.ScaleFactor)
	}
	return nil
}

// Bounce is a decaying vertical hop that is zero at both ends.
type Bounce struct {
	Height float64
}

func (b Bounce) Kind() Kind { return KindBounce }

func (b Bounce) Values(eased float64) []Assignment {
	return []Assignment{{Property: PropOffsetY, Value: b.Height * (1 - eased) * math.Sin(eased*math.Pi)}}
}

func (b Bounce) validate() error {
	if !common.Finite(b.Height) {
		return invalid("bounce", "height must be finite")
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
