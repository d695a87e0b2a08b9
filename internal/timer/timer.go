package timer

import (
	"sync/atomic"
	"time"
)

// Resolution is the frequency at which the clock is updated. Precise enough for I/O deadlines
// and the Date header, which has a resolution of one second anyway.
const Resolution = 500 * time.Millisecond

var clock atomic.Pointer[time.Time]

// Now returns the current time with the precision of Resolution.
func Now() time.Time {
	return *clock.Load()
}

// Deadline returns the point in time after the timeout, or zero time (no deadline) if the
// timeout isn't positive.
func Deadline(timeout time.Duration) time.Time {
	if timeout <= 0 {
		return time.Time{}
	}

	return Now().Add(timeout)
}

func tick() {
	now := time.Now()
	clock.Store(&now)
}

func init() {
	// Now must never observe an unset clock.
	tick()

	go func() {
		for range time.Tick(Resolution) {
			tick()
		}
	}()
}
