package core

import "time"

// Clock supplies transaction timestamps. Accounts take one at
// construction so tests can pin time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
