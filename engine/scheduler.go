package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a handle to one deferred callback
type Timer interface {
	// Stop cancels the callback, returns true if the call prevented it from running
	Stop() bool
}

// Scheduler runs a callback once after a delay
// Implementations decide which goroutine the callback runs on
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// LoopScheduler defers callbacks onto the goroutine that drains Tasks()
// Expired timers never run user code themselves, they only enqueue it,
// so everything scheduled through it executes on the owning event loop
type LoopScheduler struct {
	tasks chan func()
	done  chan struct{}

	mu     sync.Mutex
	timers map[*loopTimer]struct{}
	closed bool
}

// NewLoopScheduler creates a scheduler whose task channel holds up to size pending callbacks
func NewLoopScheduler(size int) *LoopScheduler {
	if size < 1 {
		size = 1
	}
	return &LoopScheduler{
		tasks:  make(chan func(), size),
		done:   make(chan struct{}),
		timers: make(map[*loopTimer]struct{}),
	}
}

// Tasks returns the channel the owning loop must drain and execute
func (s *LoopScheduler) Tasks() <-chan func() {
	return s.tasks
}

// AfterFunc schedules fn to be queued on Tasks() after d
func (s *LoopScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{owner: s, fn: fn}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		t.stopped.Store(true)
		return t
	}
	s.timers[t] = struct{}{}
	s.mu.Unlock()

	t.timer = time.AfterFunc(d, t.enqueue)
	return t
}

// Close stops every outstanding timer, later AfterFunc calls return already-stopped timers
func (s *LoopScheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	timers := s.timers
	s.timers = make(map[*loopTimer]struct{})
	s.mu.Unlock()

	for t := range timers {
		t.Stop()
	}
}

func (s *LoopScheduler) forget(t *loopTimer) {
	s.mu.Lock()
	delete(s.timers, t)
	s.mu.Unlock()
}

// loopTimer tracks one LoopScheduler callback through timer expiry, queueing and execution
type loopTimer struct {
	owner *LoopScheduler
	timer *time.Timer
	fn    func()

	stopped atomic.Bool
	ran     atomic.Bool
}

// enqueue runs on the runtime timer goroutine
func (t *loopTimer) enqueue() {
	if t.stopped.Load() {
		return
	}
	select {
	case t.owner.tasks <- t.run:
	case <-t.owner.done:
	}
}

// run executes on the loop goroutine, a stop issued while queued wins
func (t *loopTimer) run() {
	t.owner.forget(t)
	if t.stopped.Load() {
		return
	}
	if t.ran.CompareAndSwap(false, true) {
		t.fn()
	}
}

func (t *loopTimer) Stop() bool {
	if t.timer != nil {
		t.timer.Stop()
	}
	if !t.stopped.CompareAndSwap(false, true) {
		return false
	}
	t.owner.forget(t)
	return !t.ran.Load()
}
