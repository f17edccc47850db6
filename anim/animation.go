package anim

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/milk9111/motion/common"
	"github.com/milk9111/motion/easing"
)

// Handle identifies an animation for the lifetime of the process.
type Handle uint64

var nextHandle atomic.Uint64

func newHandle() Handle {
	return Handle(nextHandle.Add(1))
}

type State uint8

const (
	Active State = iota
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Spec describes one animation to start.
type Spec struct {
	Target   Target
	Params   Params
	Duration time.Duration
	// Easing names a curve in the scheduler's registry; empty means linear.
	Easing string
	// OnComplete runs on the scheduler goroutine once the animation reaches
	// the end. It never runs for a stopped or cancelled animation.
	OnComplete func(Handle)
}

func (s Spec) Kind() Kind {
	if s.Params == nil {
		return 0
	}
	return s.Params.Kind()
}

// animation is the scheduler-owned record for one active Spec.
type animation struct {
	id       Handle
	target   Target
	params   Params
	duration time.Duration
	ease     easing.Func
	start    time.Time
	state    State
	progress float64

	onComplete func(Handle)
	// onEnd reports the terminal state to a Sequence. err is nil on Completed.
	onEnd func(id Handle, st State, err error)
}

func (a *animation) kind() Kind {
	return a.params.Kind()
}

// progressAt returns elapsed/duration clamped to [0, 1], never below the
// value seen on the previous tick.
func (a *animation) progressAt(now time.Time) float64 {
	p := common.Clamp01(float64(now.Sub(a.start)) / float64(a.duration))
	if p < a.progress {
		p = a.progress
	}
	a.progress = p
	return p
}

// step writes the values for progress to the target. It reports alive=false,
// without writing, once the target no longer exists. Panics raised by the
// target or the easing curve are returned as errors.
func (a *animation) step(progress float64) (alive bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if !a.target.Exists() {
		return false, nil
	}
	eased := a.ease(progress)
	if !common.Finite(eased) {
		return true, ErrNonFinite
	}
	for _, as := range a.params.Values(eased) {
		if err := a.target.SetProperty(as.Property, as.Value); err != nil {
			return true, fmt.Errorf("set %s: %w", as.Property, err)
		}
	}
	return true, nil
}
