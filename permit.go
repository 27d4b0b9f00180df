package semaphore

import "sync"

// Permit represents one held permit and binds its release to an explicit,
// idempotent Release call. It is the structural alternative to manually
// pairing Acquire with Release: defer the Permit's Release right after
// acquiring and the permit is returned on every exit path from the scope,
// early returns and panics included.
//
// A Permit is obtained only through AcquirePermit, so one cannot exist
// without a successfully acquired permit behind it. Permits are used by
// pointer; however many copies of the pointer exist, the underlying release
// fires once.
type Permit struct {
	sem  *Semaphore
	once sync.Once
}

// AcquirePermit blocks until a permit is available, claims it, and returns a
// Permit that releases it. It blocks exactly as Acquire does. The Semaphore
// must outlive the returned Permit.
func (s *Semaphore) AcquirePermit() *Permit {
	s.Acquire()
	return &Permit{sem: s}
}

// Release returns the held permit to the semaphore. Only the first call
// releases; every later call is a no-op, so an explicit early Release
// followed by a deferred one does not double-release.
func (p *Permit) Release() {
	p.once.Do(p.sem.Release)
}
