package easing

import (
	"errors"
	"math"
	"testing"
)

func TestCompileScript(t *testing.T) {
	fn, err := CompileScript(`out := t * t`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := fn(0.5); math.Abs(got-0.25) > 1e-12 {
		t.Fatalf("fn(0.5) = %v, want 0.25", got)
	}
	if fn(0) != 0 || fn(1) != 1 {
		t.Fatalf("script easing broke the endpoint law")
	}
}

func TestCompileScriptWithMathModule(t *testing.T) {
	fn, err := CompileScript(`math := import("math"); out := math.pow(t, 3)`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := fn(0.5); math.Abs(got-0.125) > 1e-12 {
		t.Fatalf("fn(0.5) = %v, want 0.125", got)
	}
}

func TestCompileScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `out := (`},
		{"no_out", `x := t`},
		{"string_out", `out := "fast"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := CompileScript(c.src); err == nil {
				t.Fatalf("expected error for %q", c.src)
			}
		})
	}
}

func TestCompileScriptStringOutIsOutputError(t *testing.T) {
	_, err := CompileScript(`out := "fast"`)
	if !errors.Is(err, ErrScriptOutput) {
		t.Fatalf("expected ErrScriptOutput, got %v", err)
	}
}

func TestRegisterScript(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterScript("snap", `out := t < 0.5 ? 0 : 1`); err != nil {
		t.Fatalf("register: %v", err)
	}
	fn, ok := r.Lookup("snap")
	if !ok {
		t.Fatalf("snap not registered")
	}
	if fn(0.25) != 0 || fn(0.75) != 1 {
		t.Fatalf("snap curve wrong: %v %v", fn(0.25), fn(0.75))
	}
}
