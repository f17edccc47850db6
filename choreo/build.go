package choreo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/milk9111/motion/anim"
	"github.com/milk9111/motion/easing"
)

var (
	ErrUnknownAnimation = errors.New("choreo: unknown animation")
	ErrUnknownSequence  = errors.New("choreo: unknown sequence")
	ErrUnknownTarget    = errors.New("choreo: unknown target")
	ErrInvalidSpec      = errors.New("choreo: invalid spec")
)

// Resolver binds a target name used in a document to a host target.
type Resolver func(name string) (anim.Target, bool)

// MapResolver resolves names from a fixed map.
func MapResolver(targets map[string]anim.Target) Resolver {
	return func(name string) (anim.Target, bool) {
		t, ok := targets[name]
		return t, ok
	}
}

// RegisterEasings compiles the document's scripted easings into reg.
func (f *File) RegisterEasings(reg *easing.Registry) error {
	for _, name := range sortedKeys(f.Easings) {
		if err := reg.RegisterScript(name, f.Easings[name]); err != nil {
			return fmt.Errorf("choreo: %w", err)
		}
	}
	return nil
}

// Validate checks the document without binding targets. Easing names are
// looked up in reg or among the document's own scripted easings. All
// problems are reported together.
func (f *File) Validate(reg *easing.Registry) error {
	var errs []error
	for _, name := range sortedKeys(f.Easings) {
		if _, err := easing.CompileScript(f.Easings[name]); err != nil {
			errs = append(errs, fmt.Errorf("easing %q: %w", name, err))
		}
	}
	for _, name := range sortedKeys(f.Animations) {
		a := f.Animations[name]
		if err := a.validate(reg, f.Easings); err != nil {
			errs = append(errs, fmt.Errorf("animation %q: %w", name, err))
		}
	}
	for _, name := range sortedKeys(f.Sequences) {
		seq := f.Sequences[name]
		if len(seq.Steps) == 0 {
			errs = append(errs, fmt.Errorf("sequence %q: %w: no steps", name, ErrInvalidSpec))
		}
		for _, step := range seq.Steps {
			if _, ok := f.Animations[step]; !ok {
				errs = append(errs, fmt.Errorf("sequence %q: %w %q", name, ErrUnknownAnimation, step))
			}
		}
	}
	return errors.Join(errs...)
}

// Spec binds the named animation to its target.
func (f *File) Spec(name string, resolve Resolver) (anim.Spec, error) {
	a, ok := f.Animations[name]
	if !ok {
		return anim.Spec{}, fmt.Errorf("%w %q", ErrUnknownAnimation, name)
	}
	params, err := a.params()
	if err != nil {
		return anim.Spec{}, fmt.Errorf("choreo: animation %q: %w", name, err)
	}
	target, ok := resolve(a.Target)
	if !ok {
		return anim.Spec{}, fmt.Errorf("choreo: animation %q: %w %q", name, ErrUnknownTarget, a.Target)
	}
	return anim.Spec{
		Target:   target,
		Params:   params,
		Duration: a.Duration(),
		Easing:   a.Easing,
	}, nil
}

// Sequence binds every step of the named sequence, in order.
func (f *File) Sequence(name string, resolve Resolver) ([]anim.Spec, error) {
	seq, ok := f.Sequences[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSequence, name)
	}
	specs := make([]anim.Spec, 0, len(seq.Steps))
	for _, step := range seq.Steps {
		spec, err := f.Spec(step, resolve)
		if err != nil {
			return nil, fmt.Errorf("choreo: sequence %q: %w", name, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (f *File) AnimationNames() []string {
	return sortedKeys(f.Animations)
}

func (f *File) SequenceNames() []string {
	return sortedKeys(f.Sequences)
}

// Targets lists every target name the document refers to.
func (f *File) Targets() []string {
	seen := map[string]struct{}{}
	for _, a := range f.Animations {
		seen[a.Target] = struct{}{}
	}
	return sortedKeys(seen)
}

func (a AnimationSpec) Duration() time.Duration {
	return time.Duration(a.DurationMS) * time.Millisecond
}

func (a AnimationSpec) validate(reg *easing.Registry, scripted map[string]string) error {
	if strings.TrimSpace(a.Target) == "" {
		return fmt.Errorf("%w: target is required", ErrInvalidSpec)
	}
	if a.DurationMS <= 0 {
		return fmt.Errorf("%w: duration_ms must be > 0, got %d", ErrInvalidSpec, a.DurationMS)
	}
	if a.Easing != "" && !knownEasing(a.Easing, reg, scripted) {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalidSpec, a.Easing)
	}
	_, err := a.params()
	return err
}

func knownEasing(name string, reg *easing.Registry, scripted map[string]string) bool {
	if _, ok := reg.Lookup(name); ok {
		return true
	}
	key := easing.Normalize(name)
	for s := range scripted {
		if easing.Normalize(s) == key {
			return true
		}
	}
	return false
}

func (a AnimationSpec) params() (anim.Params, error) {
	switch strings.ToLower(strings.TrimSpace(a.Kind)) {
	case "fade":
		l := anim.Fade(valueOr(a.From, 0), valueOr(a.To, 1))
		if a.Property != "" {
			l.Property = a.Property
		}
		return l, nil
	case "scale":
		if a.From == nil || a.To == nil {
			return nil, fmt.Errorf("%w: scale needs from and to", ErrInvalidSpec)
		}
		return anim.Scale(*a.From, *a.To), nil
	case "lerp":
		if a.Property == "" || a.From == nil || a.To == nil {
			return nil, fmt.Errorf("%w: lerp needs property, from and to", ErrInvalidSpec)
		}
		return anim.Lerp{Property: a.Property, From: *a.From, To: *a.To}, nil
	case "slide":
		return anim.Slide{FromX: a.FromX, FromY: a.FromY, ToX: a.ToX, ToY: a.ToY}, nil
	case "highlight":
		if a.Color == nil {
			return nil, fmt.Errorf("%w: highlight needs color", ErrInvalidSpec)
		}
		h := anim.Highlight{Property: a.Property, Color: a.Color.Hex()}
		if a.Restore != nil {
			h.Original = a.Restore.Hex()
		}
		return h, nil
	case "pulse":
		if a.ScaleFactor <= 0 {
			return nil, fmt.Errorf("%w: pulse needs scale_factor > 0", ErrInvalidSpec)
		}
		return anim.Pulse{ScaleFactor: a.ScaleFactor}, nil
	case "bounce":
		return anim.Bounce{Height: a.Height}, nil
	case "":
		return nil, fmt.Errorf("%w: kind is required", ErrInvalidSpec)
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, a.Kind)
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
