// Package anim schedules timed property transitions against host targets.
//
// A Scheduler owns one background goroutine, started on the first Start and
// exiting once nothing is active. Every tick it drains queued Start/Stop
// commands, advances each active animation from the injected clock and
// writes the resulting values through the Target interface. Only that
// goroutine reads or writes the set of active animations.
package anim

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/milk9111/motion/easing"
)

const DefaultInterval = 16 * time.Millisecond

type Scheduler struct {
	clock    clockwork.Clock
	interval time.Duration
	log      *slog.Logger
	easings  *easing.Registry

	queue  commandQueue
	active atomic.Int64

	// reg belongs to the loop goroutine.
	reg *registry
}

type Option func(*Scheduler)

// WithClock injects the time source used for both progress and tick
// sleeps. Use clockwork.NewFakeClock in tests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEasings sets the registry Spec.Easing names are resolved against.
func WithEasings(r *easing.Registry) Option {
	return func(s *Scheduler) {
		if r != nil {
			s.easings = r
		}
	}
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:    clockwork.NewRealClock(),
		interval: DefaultInterval,
		log:      slog.Default(),
		easings:  easing.Default,
		reg:      newRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates spec and queues it. Invalid specs fail with an error
// matching ErrInvalidParameter (or ErrTargetDestroyed) and leave no trace:
// nothing is queued and no goroutine is started.
func (s *Scheduler) Start(spec Spec) (Handle, error) {
	a, err := s.prepare(spec)
	if err != nil {
		return 0, err
	}
	s.submit(a)
	return a.id, nil
}

// Stop cancels h on the next tick. Its OnComplete never runs and the target
// receives no further writes for it. Unknown or finished handles are ignored.
func (s *Scheduler) Stop(h Handle) {
	s.queue.pushIfRunning(command{kind: cmdStop, id: h})
}

// StopAll cancels everything active when the next tick runs. No callbacks
// fire. Starts queued after StopAll are kept.
func (s *Scheduler) StopAll() {
	s.queue.pushIfRunning(command{kind: cmdStopAll})
}

func (s *Scheduler) IsRunning() bool {
	return s.queue.isRunning()
}

// ActiveCount is the number of active animations after the last tick.
func (s *Scheduler) ActiveCount() int {
	return int(s.active.Load())
}

func (s *Scheduler) validate(spec Spec) (easing.Func, error) {
	if spec.Target == nil {
		return nil, invalid("target", "target is nil")
	}
	if spec.Params == nil {
		return nil, invalid("params", "params are nil")
	}
	if spec.Duration <= 0 {
		return nil, invalid("duration", "must be > 0, got %v", spec.Duration)
	}
	name := spec.Easing
	if name == "" {
		name = easing.Linear
	}
	fn, ok := s.easings.Lookup(name)
	if !ok {
		return nil, invalid("easing", "unknown easing %q", spec.Easing)
	}
	if err := spec.Params.validate(); err != nil {
		return nil, err
	}
	return fn, nil
}

// prepare builds the animation record for spec, capturing any initial
// target state. The start time is taken here.
func (s *Scheduler) prepare(spec Spec) (*animation, error) {
	fn, err := s.validate(spec)
	if err != nil {
		return nil, err
	}
	if !spec.Target.Exists() {
		return nil, ErrTargetDestroyed
	}
	params := spec.Params
	if c, ok := params.(capturer); ok {
		if params, err = c.capture(spec.Target); err != nil {
			return nil, err
		}
	}
	return &animation{
		id:         newHandle(),
		target:     spec.Target,
		params:     params,
		duration:   spec.Duration,
		ease:       fn,
		start:      s.clock.Now(),
		state:      Active,
		onComplete: spec.OnComplete,
	}, nil
}

func (s *Scheduler) submit(a *animation) {
	if s.queue.push(command{kind: cmdStart, anim: a}) {
		go s.run()
	}
}

func (s *Scheduler) run() {
	for {
		s.apply(s.queue.drain())
		s.tick(s.clock.Now())
		s.active.Store(int64(s.reg.len()))
		if s.reg.len() == 0 && s.queue.park() {
			return
		}
		<-s.clock.After(s.interval)
	}
}

func (s *Scheduler) apply(cmds []command) {
	for _, cmd := range cmds {
		switch cmd.kind {
		case cmdStart:
			s.reg.add(cmd.anim)
		case cmdStop:
			if a, ok := s.reg.get(cmd.id); ok {
				s.cancel(a, ErrStopped)
			}
		case cmdStopAll:
			for _, a := range s.reg.order {
				if a.state == Active {
					s.cancel(a, ErrStopped)
				}
			}
		}
	}
}

func (s *Scheduler) tick(now time.Time) {
	for _, a := range s.reg.order {
		if a.state != Active {
			continue
		}
		s.advance(a, now)
	}
	s.reg.compact()
}

func (s *Scheduler) advance(a *animation, now time.Time) {
	progress := a.progressAt(now)
	alive, err := a.step(progress)
	switch {
	case err != nil:
		s.log.Error("anim: animation fault", "id", a.id, "kind", a.kind(), "err", err)
		s.cancel(a, &FaultError{ID: a.id, Kind: a.kind(), Err: err})
	case !alive:
		s.log.Debug("anim: target destroyed", "id", a.id, "kind", a.kind())
		s.cancel(a, ErrTargetDestroyed)
	case progress >= 1:
		s.complete(a)
	}
}

func (s *Scheduler) cancel(a *animation, cause error) {
	a.state = Cancelled
	s.reg.remove(a.id)
	s.notify(a, Cancelled, cause)
}

func (s *Scheduler) complete(a *animation) {
	a.state = Completed
	s.reg.remove(a.id)
	if a.onComplete != nil {
		s.guard(a, func() { a.onComplete(a.id) })
	}
	s.notify(a, Completed, nil)
}

func (s *Scheduler) notify(a *animation, st State, err error) {
	if a.onEnd == nil {
		return
	}
	s.guard(a, func() { a.onEnd(a.id, st, err) })
}

// guard runs a callback on the loop goroutine; a panic is logged and
// swallowed so it cannot take the loop down.
func (s *Scheduler) guard(a *animation, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("anim: callback panic", "id", a.id, "kind", a.kind(), "panic", r)
		}
	}()
	fn()
}
