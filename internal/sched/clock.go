// internal/sched/clock.go

package sched

// Clock counts simulated time units for a single run.
// It only moves forward; the algorithm executing a run owns it exclusively.
type Clock struct {
	count int
}

// Advance moves the clock forward by n units and returns the new time.
// Non-positive n leaves the clock where it is.
func (c *Clock) Advance(n int) int {
	if n > 0 {
		c.count += n
	}
	return c.count
}

// Now returns the current time.
func (c *Clock) Now() int {
	return c.count
}
