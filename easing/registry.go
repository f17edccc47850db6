package easing

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrUnknown   = errors.New("easing: unknown easing")
	ErrEmptyName = errors.New("easing: empty name")
	ErrNilFunc   = errors.New("easing: nil func")
)

// Registry resolves easing names to functions. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
	names map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]Func),
		names: make(map[string]string),
	}
}

// Default holds the built-in curves and the Penner catalog.
var Default = newDefault()

func newDefault() *Registry {
	r := NewRegistry()
	builtins := map[string]Func{
		Linear:    linear,
		EaseIn:    easeIn,
		EaseOut:   easeOut,
		EaseInOut: easeInOut,
		Bounce:    bounce,
		Elastic:   elastic,
	}
	for name, fn := range builtins {
		mustRegister(r, name, fn)
	}
	for name, fn := range penner {
		mustRegister(r, name, fromTween(fn))
	}
	return r
}

func mustRegister(r *Registry, name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(fmt.Sprintf("easing: register %q: %v", name, err))
	}
}

// Normalize folds case and drops '_', '-' and spaces, so "easeInOut",
// "ease-in-out" and "EASE_IN_OUT" share one key.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Register adds or replaces fn under name. The stored function is bounded.
func (r *Registry) Register(name string, fn Func) error {
	key := Normalize(name)
	if key == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilFunc
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[key] = Bounded(fn)
	r.names[key] = name
	return nil
}

func (r *Registry) Lookup(name string) (Func, bool) {
	if r == nil {
		return nil, false
	}
	key := Normalize(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[key]
	return fn, ok
}

// Resolve is Lookup with an error wrapping ErrUnknown.
func (r *Registry) Resolve(name string) (Func, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, &UnknownError{Name: name}
	}
	return fn, nil
}

// Names returns the registered names as first spelled, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy; later registrations on either side
// are not shared.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := NewRegistry()
	for k, fn := range r.funcs {
		c.funcs[k] = fn
	}
	for k, name := range r.names {
		c.names[k] = name
	}
	return c
}

type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("easing: unknown easing %q", e.Name)
}

func (e *UnknownError) Unwrap() error {
	return ErrUnknown
}
