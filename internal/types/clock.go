package types

import "time"

// Clock provides the current time. The invoice payload builder stamps the
// issue date at build time, so the clock is injected rather than read from
// the system inside a pure function.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// NewClock returns a Clock backed by the system time in UTC.
func NewClock() Clock {
	return realClock{}
}
