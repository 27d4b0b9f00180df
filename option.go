package semaphore

// Option configures a Semaphore at construction time.
type Option func(s *Semaphore)

// Bounded makes the constructed capacity a hard ceiling: a Release that would
// raise the available-permit count past the capacity panics instead of
// incrementing.
//
// The default, unbounded behaviour treats extra releases as valid, which lets
// the semaphore double as a simple counting signal but also lets an
// unbalanced caller admit more concurrent holders than configured. Bounded
// trades that flexibility for early detection of the imbalance.
func Bounded() Option {
	return func(s *Semaphore) {
		s.bounded = true
	}
}
