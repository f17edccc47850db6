package anim

import (
	"math"
	"testing"
)

func single(t *testing.T, p Params, eased float64) Assignment {
	t.Helper()
	vals := p.Values(eased)
	if len(vals) != 1 {
		t.Fatalf("%s: expected 1 assignment, got %d", p.Kind(), len(vals))
	}
	return vals[0]
}

func TestLerpValues(t *testing.T) {
	cases := []struct {
		name  string
		p     Lerp
		eased float64
		prop  string
		want  float64
	}{
		{"fade_start", Fade(0, 1), 0, PropOpacity, 0},
		{"fade_mid", Fade(0, 1), 0.5, PropOpacity, 0.5},
		{"fade_out", Fade(1, 0), 0.25, PropOpacity, 0.75},
		{"scale_end", Scale(1, 2), 1, PropScale, 2},
		{"custom_property", Lerp{Property: "width", From: 10, To: 20}, 0.5, "width", 15},
		{"default_property", Lerp{From: 0, To: 4}, 0.5, PropOpacity, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := single(t, c.p, c.eased)
			if a.Property != c.prop || a.Value != c.want {
				t.Fatalf("got %s=%v, want %s=%v", a.Property, a.Value, c.prop, c.want)
			}
		})
	}
}

func TestSlideMovesBothAxes(t *testing.T) {
	vals := Slide{FromX: 0, FromY: 100, ToX: 50, ToY: 0}.Values(0.5)
	if len(vals) != 2 {
		t.Fatalf("expected x and y, got %v", vals)
	}
	if vals[0] != (Assignment{Property: PropX, Value: 25.0}) {
		t.Fatalf("unexpected x: %v", vals[0])
	}
	if vals[1] != (Assignment{Property: PropY, Value: 50.0}) {
		t.Fatalf("unexpected y: %v", vals[1])
	}
}

func TestHighlightIsTwoPhase(t *testing.T) {
	h := Highlight{Color: "#FF0000", Original: "#222222"}
	for _, c := range []struct {
		eased float64
		want  any
	}{
		{0, "#FF0000"},
		{0.49, "#FF0000"},
		{0.5, "#222222"},
		{1, "#222222"},
	} {
		a := single(t, h, c.eased)
		if a.Property != PropBorderColor || a.Value != c.want {
			t.Fatalf("eased=%v: got %v", c.eased, a)
		}
	}
}

func TestHighlightCaptureKeepsExplicitOriginal(t *testing.T) {
	target := newTarget("t", nil)
	p, err := Highlight{Color: "red", Original: "blue"}.capture(target)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if p.(Highlight).Original != "blue" {
		t.Fatalf("explicit original was overwritten")
	}

	p, err = Highlight{Color: "red"}.capture(target)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if p.(Highlight).Original != "#000000" {
		t.Fatalf("expected captured #000000, got %v", p.(Highlight).Original)
	}
}

func TestPulseOscillatesTwice(t *testing.T) {
	p := Pulse{ScaleFactor: 1.5}
	cases := []struct {
		eased float64
		want  float64
	}{
		{0, 1},
		{0.25, 1.25},
		{0.5, 1},
		{0.75, 1.25},
		{1, 1},
	}
	for _, c := range cases {
		a := single(t, p, c.eased)
		if got := a.Value.(float64); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("pulse(%v) = %v, want %v", c.eased, got, c.want)
		}
	}
}

func TestBounceVanishesAtEnds(t *testing.T) {
	b := Bounce{Height: 40}
	if got := single(t, b, 0).Value.(float64); got != 0 {
		t.Fatalf("bounce(0) = %v", got)
	}
	if got := single(t, b, 1).Value.(float64); got != 0 {
		t.Fatalf("bounce(1) = %v", got)
	}
	mid := single(t, b, 0.5)
	if mid.Property != PropOffsetY || math.Abs(mid.Value.(float64)-20) > 1e-12 {
		t.Fatalf("bounce(0.5) = %v, want offset_y=20", mid)
	}
}

func TestKindStrings(t *testing.T) {
	for k, want := range map[Kind]string{
		KindLerp:      "property_lerp",
		KindSlide:     "slide",
		KindHighlight: "highlight",
		KindPulse:     "pulse",
		KindBounce:    "bounce",
		Kind(99):      "unknown",
	} {
		if k.String() != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
