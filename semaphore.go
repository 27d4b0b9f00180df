package semaphore

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// Semaphore is a counting semaphore. The counter holds the number of permits
// currently available for acquisition; acquiring takes one permit and
// releasing returns one.
//
// A Semaphore is designed to be shared by pointer across arbitrarily many
// goroutines and requires no external locking. It must not be copied after
// first use.
type Semaphore struct {
	mu sync.Mutex

	// permits is the number of available permits. It never goes below zero:
	// every decrement is gated on permits > 0 while mu is held. It can exceed
	// capacity through unbalanced releases unless the semaphore is bounded.
	permits int

	// capacity is the permit count the semaphore was constructed with.
	// Immutable after New.
	capacity int

	// bounded makes Release panic instead of raising permits past capacity.
	bounded bool

	// waiters holds one buffered wake channel (chan struct{}, capacity 1) per
	// goroutine blocked in Acquire or AcquireTimeout. A waiter is removed from
	// the queue at the moment it is signalled, so each channel receives at
	// most one signal and sending never blocks.
	waiters list.List
}

// New creates a Semaphore with count permits initially available. A count of
// zero is valid and means no permits are available until Release is called;
// negative counts are treated as zero.
func New(count int, opts ...Option) *Semaphore {
	if count < 0 {
		count = 0
	}
	s := &Semaphore{
		permits:  count,
		capacity: count,
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Acquire blocks the calling goroutine until a permit is available, then
// claims it. It never returns without having taken a permit.
//
// Waiting goroutines are woken one at a time by Release, but a wakeup is only
// a hint that a permit may be available: the woken goroutine re-checks the
// counter and waits again if a concurrent acquirer claimed the permit first.
func (s *Semaphore) Acquire() {
	s.mu.Lock()
	for s.permits == 0 {
		elem := s.enqueue()
		s.mu.Unlock()
		<-elem.Value.(chan struct{})
		s.mu.Lock()
	}
	s.permits--
	s.mu.Unlock()
}

// TryAcquire claims a permit without waiting. It returns true and decrements
// the counter if a permit was available at the instant of the call, and false
// otherwise, leaving the counter unchanged. It never blocks.
//
// TryAcquire may succeed even while other goroutines are blocked in Acquire;
// there is no queue-jumping protection for waiters.
func (s *Semaphore) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.permits == 0 {
		return false
	}
	s.permits--
	return true
}

// AcquireTimeout waits up to d for a permit. It returns true and decrements
// the counter if a permit was claimed within the window, and false otherwise,
// leaving the counter unchanged.
//
// The window covers the whole attempt: a goroutine that is woken but loses
// the race for the permit resumes waiting with the time remaining on its
// original budget, not a fresh one. With d <= 0 the call claims an
// already-available permit but never waits.
func (s *Semaphore) AcquireTimeout(d time.Duration) bool {
	s.mu.Lock()
	if s.permits > 0 {
		s.permits--
		s.mu.Unlock()
		return true
	}
	if d <= 0 {
		s.mu.Unlock()
		return false
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		elem := s.enqueue()
		wake := elem.Value.(chan struct{})
		s.mu.Unlock()

		select {
		case <-wake:
			s.mu.Lock()
			if s.permits > 0 {
				s.permits--
				s.mu.Unlock()
				return true
			}
			// Another acquirer claimed the permit between the signal and the
			// re-check. Queue up again; the timer still holds the remaining
			// budget.
		case <-timer.C:
			s.mu.Lock()
			select {
			case <-wake:
				// A release signalled this waiter in the same instant the
				// deadline passed. The hint must not be lost with the permit
				// still unclaimed, so pass it to the next waiter.
				s.signal()
			default:
				s.waiters.Remove(elem)
			}
			s.mu.Unlock()
			return false
		}
	}
}

// Release returns one permit, incrementing the counter and waking one waiting
// goroutine, if any. It never blocks and never fails.
//
// Release does not verify that the caller holds a permit. On an unbounded
// semaphore an unbalanced Release silently raises the counter past the
// constructed capacity; on a bounded one it panics. Callers that want
// balance enforced structurally should use AcquirePermit.
func (s *Semaphore) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bounded && s.permits >= s.capacity {
		panic("semaphore: release of unacquired permit")
	}
	s.permits++
	s.signal()
}

// Value returns the number of permits available at the instant of the call.
// The value may be stale by the time the caller observes it whenever other
// goroutines acquire or release concurrently; use it for diagnostics, never
// for synchronization decisions.
func (s *Semaphore) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permits
}

// Capacity returns the permit count the semaphore was constructed with.
func (s *Semaphore) Capacity() int {
	return s.capacity
}

// Waiters returns the number of goroutines blocked in Acquire or
// AcquireTimeout at the instant of the call. Like Value, the result is
// immediately stale under concurrency and is intended for diagnostics.
func (s *Semaphore) Waiters() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waiters.Len()
}

// String returns a human-readable "Semaphore(available/capacity)" summary of
// the semaphore's state. On an unbounded semaphore the available count can
// read higher than the capacity after unbalanced releases.
func (s *Semaphore) String() string {
	return fmt.Sprintf("Semaphore(%d/%d)", s.Value(), s.capacity)
}

// enqueue registers the calling goroutine as a waiter and returns its queue
// element. The element's value is the buffered channel a signal arrives on.
// Callers must hold mu.
func (s *Semaphore) enqueue() *list.Element {
	return s.waiters.PushBack(make(chan struct{}, 1))
}

// signal wakes the longest-waiting goroutine, if any, removing it from the
// queue so no waiter is ever signalled twice. Callers must hold mu.
func (s *Semaphore) signal() {
	if elem := s.waiters.Front(); elem != nil {
		s.waiters.Remove(elem)
		elem.Value.(chan struct{}) <- struct{}{}
	}
}
