package engine

import "time"

// Call is a pending command: issuing returns immediately, Settle blocks for
// the simulated round-trip and then applies the effect atomically. There is
// no cancellation — once issued, the latency always elapses and the effect is
// always applied. Settling twice returns the first outcome.
type Call[T any] struct {
	timer   <-chan time.Time
	apply   func() (T, error)
	settled bool
	result  T
	err     error
}

func newCall[T any](latency time.Duration, apply func() (T, error)) *Call[T] {
	return &Call[T]{
		timer: time.After(latency),
		apply: apply,
	}
}

// Settle waits out the simulated latency, applies the command and returns the
// success payload or the tagged failure. Never panics past this boundary.
func (c *Call[T]) Settle() (T, error) {
	if !c.settled {
		<-c.timer
		c.result, c.err = c.apply()
		c.settled = true
		c.apply = nil
	}
	return c.result, c.err
}
