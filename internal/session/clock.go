package session

import "time"

// Clock supplies the current time. The engine and reconciler read time only
// through it, so tests can pin the clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
