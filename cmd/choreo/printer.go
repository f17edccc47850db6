package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/milk9111/motion/anim"
)

// printTarget stands in for a UI element and prints every property change.
type printTarget struct {
	name  string
	label string

	mu    *sync.Mutex
	out   io.Writer
	props map[string]any
	shown map[string]string
}

func newPrintTarget(name string, out io.Writer, mu *sync.Mutex) *printTarget {
	return &printTarget{
		name:  name,
		label: color.New(color.FgCyan).Sprintf("%-8s", name),
		mu:    mu,
		out:   out,
		props: map[string]any{
			anim.PropOpacity:     1.0,
			anim.PropScale:       1.0,
			anim.PropX:           0.0,
			anim.PropY:           0.0,
			anim.PropOffsetY:     0.0,
			anim.PropBorderColor: "#000000",
		},
		shown: make(map[string]string),
	}
}

func (p *printTarget) SetProperty(name string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.props[name] = value

	text := format(value)
	if p.shown[name] == text {
		return nil
	}
	p.shown[name] = text
	_, err := fmt.Fprintf(p.out, "%s %s=%s\n", p.label, name, text)
	return err
}

func (p *printTarget) GetProperty(name string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.props[name]
	return v, ok
}

func (p *printTarget) Exists() bool { return true }

func format(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.3f", f)
	}
	return fmt.Sprint(v)
}

// stage hands out one printTarget per name, creating them on first use.
type stage struct {
	mu      sync.Mutex
	out     io.Writer
	targets map[string]*printTarget
}

func newStage(out io.Writer) *stage {
	return &stage{out: out, targets: make(map[string]*printTarget)}
}

// println writes one line under the lock the targets print with, so lines
// from the scheduler and watcher goroutines never interleave.
func (s *stage) println(a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *stage) resolve(name string) (anim.Target, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.targets[name]
	if !ok {
		t = newPrintTarget(name, s.out, &s.mu)
		s.targets[name] = t
	}
	return t, true
}
