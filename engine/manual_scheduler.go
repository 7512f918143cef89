package engine

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler fires callbacks synchronously when its mock clock is advanced
// Used by tests and the headless simulator to drive deferred work without wall-clock delay
type ManualScheduler struct {
	clock *MockTimeProvider

	mu      sync.Mutex
	pending []*manualTimer
	nextSeq uint64
}

// NewManualScheduler binds a scheduler to clock, a nil clock starts at the zero time
func NewManualScheduler(clock *MockTimeProvider) *ManualScheduler {
	if clock == nil {
		clock = NewMockTimeProvider(time.Time{})
	}
	return &ManualScheduler{clock: clock}
}

// Clock returns the mock clock deadlines are measured against
func (s *ManualScheduler) Clock() *MockTimeProvider {
	return s.clock
}

// AfterFunc registers fn to run once the clock reaches now+d
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTimer{
		owner:    s,
		deadline: s.clock.Now().Add(d),
		seq:      s.nextSeq,
		fn:       fn,
	}
	s.nextSeq++
	s.pending = append(s.pending, t)
	return t
}

// Pending returns the number of callbacks that have neither fired nor been stopped
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance moves the clock by d and runs every due callback in deadline order
// Ties run in scheduling order; callbacks scheduled while advancing run too if already due
// Returns the number of callbacks fired
func (s *ManualScheduler) Advance(d time.Duration) int {
	now := s.clock.Advance(d)
	fired := 0
	for {
		t := s.popDue(now)
		if t == nil {
			return fired
		}
		t.fn()
		fired++
	}
}

// RunPending advances the clock exactly to each outstanding deadline until nothing is left
func (s *ManualScheduler) RunPending() int {
	fired := 0
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.mu.Unlock()
			return fired
		}
		s.sortLocked()
		wait := s.pending[0].deadline.Sub(s.clock.Now())
		s.mu.Unlock()

		if wait < 0 {
			wait = 0
		}
		fired += s.Advance(wait)
	}
}

// popDue removes and returns the earliest callback due at now, nil if none
func (s *ManualScheduler) popDue(now time.Time) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	s.sortLocked()
	t := s.pending[0]
	if t.deadline.After(now) {
		return nil
	}
	s.pending = s.pending[1:]
	return t
}

func (s *ManualScheduler) sortLocked() {
	sort.SliceStable(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if a.deadline.Equal(b.deadline) {
			return a.seq < b.seq
		}
		return a.deadline.Before(b.deadline)
	})
}

func (s *ManualScheduler) remove(t *manualTimer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	owner    *ManualScheduler
	deadline time.Time
	seq      uint64
	fn       func()
}

func (t *manualTimer) Stop() bool {
	return t.owner.remove(t)
}
