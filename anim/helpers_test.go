package anim

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type setCall struct {
	target string
	prop   string
	value  any
}

type recorder struct {
	mu    sync.Mutex
	calls []setCall
}

func (r *recorder) add(c setCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

func (r *recorder) snapshot() []setCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]setCall(nil), r.calls...)
}

type fakeTarget struct {
	name   string
	rec    *recorder
	gone   atomic.Bool
	setErr error
	panics bool

	mu    sync.Mutex
	props map[string]any
	sets  int
}

func newTarget(name string, rec *recorder) *fakeTarget {
	if rec == nil {
		rec = &recorder{}
	}
	return &fakeTarget{
		name:  name,
		rec:   rec,
		props: map[string]any{PropBorderColor: "#000000"},
	}
}

func (f *fakeTarget) SetProperty(name string, value any) error {
	if f.panics {
		panic("target exploded")
	}
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	f.props[name] = value
	f.sets++
	f.mu.Unlock()
	f.rec.add(setCall{target: f.name, prop: name, value: value})
	return nil
}

func (f *fakeTarget) GetProperty(name string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.props[name]
	return v, ok
}

func (f *fakeTarget) Exists() bool {
	return !f.gone.Load()
}

func (f *fakeTarget) value(name string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.props[name]
}

func (f *fakeTarget) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

type completions struct {
	mu     sync.Mutex
	counts map[Handle]int
}

func newCompletions() *completions {
	return &completions{counts: make(map[Handle]int)}
}

func (c *completions) record(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[h]++
}

func (c *completions) count(h Handle) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[h]
}

func (c *completions) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScheduler(t *testing.T, opts ...Option) (*Scheduler, clockwork.FakeClock) {
	t.Helper()
	fc := clockwork.NewFakeClock()
	base := []Option{WithClock(fc), WithLogger(quietLogger())}
	return New(append(base, opts...)...), fc
}

// waitTimer blocks until the loop is sleeping on its tick timer.
func waitTimer(t *testing.T, fc clockwork.FakeClock) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		fc.BlockUntil(1)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduler never waited for its next tick")
	}
}

func advance(t *testing.T, fc clockwork.FakeClock, d time.Duration) {
	t.Helper()
	waitTimer(t, fc)
	fc.Advance(d)
}

// waitIdle returns true once the loop is sleeping on its tick timer and false
// if it exited instead. A loop that drains a start and its stop in one pass
// exits without ever arming a timer.
func waitIdle(t *testing.T, s *Scheduler, fc clockwork.FakeClock) bool {
	t.Helper()
	done := make(chan struct{})
	go func() {
		fc.BlockUntil(1)
		close(done)
	}()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-done:
			return true
		case <-deadline:
			t.Fatalf("scheduler pass did not finish")
		case <-time.After(time.Millisecond):
			if !s.IsRunning() {
				return false
			}
		}
	}
}

// settle returns once the pass triggered by the last advance has finished:
// the loop is either sleeping on its next tick again or has exited.
func settle(t *testing.T, s *Scheduler, fc clockwork.FakeClock) {
	t.Helper()
	waitIdle(t, s, fc)
}

func step(t *testing.T, s *Scheduler, fc clockwork.FakeClock, d time.Duration) {
	t.Helper()
	advance(t, fc, d)
	settle(t, s, fc)
}

func waitStopped(t *testing.T, s *Scheduler) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatalf("scheduler goroutine did not exit")
		}
		time.Sleep(time.Millisecond)
	}
}

// flush lets already queued commands apply and waits for the loop to exit.
func flush(t *testing.T, s *Scheduler, fc clockwork.FakeClock) {
	t.Helper()
	if waitIdle(t, s, fc) {
		fc.Advance(s.interval)
	}
	waitStopped(t, s)
}

// shutdown stops everything and lets the loop exit so no goroutine is left
// sleeping on the fake clock.
func shutdown(t *testing.T, s *Scheduler, fc clockwork.FakeClock) {
	t.Helper()
	s.StopAll()
	flush(t, s, fc)
}
