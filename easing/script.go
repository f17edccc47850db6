package easing

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const (
	scriptInput  = "t"
	scriptOutput = "out"
)

var ErrScriptOutput = errors.New("easing: script must assign a finite number to out")

// CompileScript builds a Func from a tengo script that reads t and assigns
// out, e.g. `math := import("math"); out := math.pow(t, 3)`. The script is
// run once at t=0.5 to reject scripts that fail or never assign out.
//
// A runtime error while easing yields NaN.
func CompileScript(src string) (Func, error) {
	script := tengo.NewScript([]byte(src))
	if err := script.Add(scriptInput, 0.0); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("easing: compile script: %w", err)
	}

	rt := &scriptRuntime{compiled: compiled}
	if err := rt.run(0.5); err != nil {
		return nil, fmt.Errorf("easing: probe script: %w", err)
	}
	if !compiled.IsDefined(scriptOutput) {
		return nil, ErrScriptOutput
	}
	if v, ok := numeric(compiled.Get(scriptOutput)); !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrScriptOutput
	}
	return Bounded(rt.ease), nil
}

// RegisterScript compiles src and registers it under name.
func (r *Registry) RegisterScript(name, src string) error {
	fn, err := CompileScript(src)
	if err != nil {
		return fmt.Errorf("easing %q: %w", name, err)
	}
	return r.Register(name, fn)
}

type scriptRuntime struct {
	mu       sync.Mutex
	compiled *tengo.Compiled
}

func (rt *scriptRuntime) run(t float64) error {
	if err := rt.compiled.Set(scriptInput, t); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (rt *scriptRuntime) ease(t float64) float64 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := rt.run(t); err != nil {
		return math.NaN()
	}
	v, ok := numeric(rt.compiled.Get(scriptOutput))
	if !ok {
		return math.NaN()
	}
	return v
}

func numeric(v *tengo.Variable) (float64, bool) {
	switch n := v.Value().(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
