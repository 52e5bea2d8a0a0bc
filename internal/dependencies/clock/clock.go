package clock

import "time"

// Clock supplies the timestamps stamped on turns and room updates. Turn
// timeouts are computed from these, so tests substitute a mock to move
// time deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC. Turn timestamps travel inside
// state snapshots to clients and back, so they are kept zone-free.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
