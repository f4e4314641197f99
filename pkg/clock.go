package updateversion

import "time"

// Clock supplies the current time to the date-derived policies. Production
// code uses SystemClock; tests substitute a fixed clock so calculations are
// deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
