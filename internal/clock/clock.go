// Package clock provides an injectable source of the current time so that
// period resolution and deadline math stay deterministic in tests.
package clock

import "time"

// Clock reports the current moment.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now in a fixed location.
type System struct {
	Location *time.Location
}

// NewSystem returns a System clock for loc. A nil loc means time.Local.
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.Local
	}
	return System{Location: loc}
}

// Now implements Clock.
func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Fixed is a Clock frozen at a single instant.
type Fixed time.Time

// Now implements Clock.
func (f Fixed) Now() time.Time { return time.Time(f) }
