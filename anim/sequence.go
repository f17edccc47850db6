package anim

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

var nextSequence atomic.Uint64

// Sequence runs Specs one after another. Each step starts from the
// completion signal of the one before it, on the scheduler goroutine.
type Sequence struct {
	id         uint64
	sched      *Scheduler
	specs      []Spec
	onComplete func(*Sequence)
	done       chan struct{}

	mu      sync.Mutex
	step    int
	current Handle
	state   State
	err     error
}

// StartSequence validates every spec, then starts specs[0]. The specs' own
// OnComplete callbacks are ignored; onComplete fires once, on the scheduler
// goroutine, after the last step completes. A step cancelled for any reason
// cancels the whole sequence and onComplete never fires.
func (s *Scheduler) StartSequence(specs []Spec, onComplete func(*Sequence)) (*Sequence, error) {
	if len(specs) == 0 {
		return nil, invalid("specs", "sequence is empty")
	}
	for i, spec := range specs {
		if _, err := s.validate(spec); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, spec.Kind(), err)
		}
	}

	q := &Sequence{
		id:         nextSequence.Add(1),
		sched:      s,
		specs:      append([]Spec(nil), specs...),
		onComplete: onComplete,
		done:       make(chan struct{}),
		state:      Active,
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.startLocked(0); err != nil {
		return nil, fmt.Errorf("step 0: %w", err)
	}
	return q, nil
}

func (q *Sequence) ID() uint64 {
	return q.id
}

// Step is the index of the step currently running, or the last one run.
func (q *Sequence) Step() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.step
}

func (q *Sequence) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Err is the reason a cancelled sequence stopped.
func (q *Sequence) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}

// Done is closed when the sequence is cancelled, or after onComplete
// returns.
func (q *Sequence) Done() <-chan struct{} {
	return q.done
}

// Wait blocks until the sequence ends or ctx is done.
func (q *Sequence) Wait(ctx context.Context) (State, error) {
	select {
	case <-q.done:
		q.mu.Lock()
		defer q.mu.Unlock()
		return q.state, q.err
	case <-ctx.Done():
		return Active, ctx.Err()
	}
}

// Cancel stops the running step and prevents later steps from starting.
// It is a no-op once the sequence has ended.
func (q *Sequence) Cancel() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state != Active {
		return
	}
	q.endLocked(Cancelled, ErrSequenceCancelled)
	q.sched.Stop(q.current)
}

func (q *Sequence) startLocked(i int) error {
	spec := q.specs[i]
	spec.OnComplete = nil
	a, err := q.sched.prepare(spec)
	if err != nil {
		return err
	}
	a.onEnd = q.stepEnded
	q.step = i
	q.current = a.id
	q.sched.submit(a)
	return nil
}

func (q *Sequence) stepEnded(id Handle, st State, cause error) {
	q.mu.Lock()
	if q.state != Active || id != q.current {
		q.mu.Unlock()
		return
	}
	if st == Cancelled {
		q.endLocked(Cancelled, cause)
		q.mu.Unlock()
		return
	}
	if next := q.step + 1; next < len(q.specs) {
		if err := q.startLocked(next); err != nil {
			q.endLocked(Cancelled, fmt.Errorf("step %d: %w", next, err))
		}
		q.mu.Unlock()
		return
	}
	q.state = Completed
	cb := q.onComplete
	q.mu.Unlock()

	defer close(q.done)
	if cb != nil {
		cb(q)
	}
}

func (q *Sequence) endLocked(st State, err error) {
	q.state = st
	q.err = err
	close(q.done)
}
