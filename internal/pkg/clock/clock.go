// Package clock abstracts "now" so read-time projections can be tested with
// fixed instants instead of the wall clock.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System is the wall clock in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed is a clock pinned to a single instant. Intended for tests.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
