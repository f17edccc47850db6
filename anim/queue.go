package anim

import "sync"

type commandKind uint8

const (
	cmdStart commandKind = iota
	cmdStop
	cmdStopAll
)

type command struct {
	kind commandKind
	anim *animation
	id   Handle
}

// commandQueue is the only state shared between callers and the loop
// goroutine. running is flipped under the same lock as the queue so a
// command is never left behind by an exiting loop.
type commandQueue struct {
	mu      sync.Mutex
	items   []command
	running bool
}

// push appends cmd and reports whether the caller must launch the loop.
func (q *commandQueue) push(cmd command) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, cmd)
	if q.running {
		return false
	}
	q.running = true
	return true
}

// pushIfRunning drops cmd when no loop is running; with no loop there is
// nothing active for it to act on.
func (q *commandQueue) pushIfRunning(cmd command) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.running {
		return
	}
	q.items = append(q.items, cmd)
}

// drain returns all pending commands in FIFO order and clears the queue.
func (q *commandQueue) drain() []command {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// park marks the loop as stopped unless commands are still pending.
func (q *commandQueue) park() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) > 0 {
		return false
	}
	q.running = false
	return true
}

func (q *commandQueue) isRunning() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running
}
