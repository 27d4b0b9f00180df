// Package semaphore provides a counting semaphore that bounds the number of
// concurrent holders of a resource, with blocking, non-blocking, and
// timeout-bounded acquisition.
//
// # Why This Package Exists
//
// Buffered channels are the usual Go idiom for limiting concurrency, and for
// many programs they are all you need. A channel cannot, however, express two
// behaviours this package is built around:
//
//   - A bounded wait that keeps waiting with its *remaining* budget after a
//     wakeup that lost the race for a permit. A select on a channel and a
//     timer either wins or gives up; it cannot rejoin the wait without
//     restarting the clock.
//   - A counter that is free to exceed the constructed capacity. A buffered
//     channel is capped at its capacity by construction, so it cannot model a
//     semaphore that doubles as a simple counting signal via extra releases.
//
// The implementation is therefore a mutex-guarded counter plus a queue of
// waiting goroutines, the classic condition-variable shape. Each Release
// increments the counter and wakes one waiter. Wakeups are hints, not
// hand-offs: a woken goroutine re-checks the counter and may find that a
// concurrent TryAcquire got there first, in which case it simply waits again.
// Callers must not assume any fairness or FIFO ordering among waiters.
//
// # Acquisition Variants
//
// Acquire blocks until a permit is available. TryAcquire claims a permit only
// if one is available right now and never blocks. AcquireTimeout waits up to a
// caller-supplied duration and reports whether a permit was claimed; both
// failure outcomes are ordinary booleans for the caller to handle, not errors.
//
// # Scope-Bound Release
//
// AcquirePermit pairs a blocking acquire with a Permit whose Release method
// fires the matching release exactly once, no matter how often it is called.
// Deferring it guarantees the permit is returned on every exit path from the
// acquiring function, including panics:
//
//	p := sem.AcquirePermit()
//	defer p.Release()
//	// ... use the gated resource ...
//
// # Release Discipline
//
// The semaphore does not track who holds permits. By default, calling Release
// without a matching acquire silently raises the counter past the constructed
// capacity, admitting more concurrent holders than configured. Construct with
// the Bounded option to turn such an unbalanced Release into a panic instead.
//
// # When NOT to Use This Package
//
//   - Weighted semaphores (acquiring multiple permits at once): use
//     golang.org/x/sync/semaphore.
//   - Context cancellation of a blocked acquire: use buffered channels with
//     select, or golang.org/x/sync/semaphore.
//   - Strict FIFO ordering among waiters: this package deliberately makes no
//     ordering promise.
//   - Reentrant acquisition: a goroutine that acquires twice on a semaphore
//     with one permit deadlocks itself, exactly as any other goroutine would.
package semaphore
