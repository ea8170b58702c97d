// Package clock provides countdown timers for timed sessions.
//
// A timer started with Start(interval, total, onTick, onExpire) calls
// onTick at every interval boundary strictly before total elapses, then
// calls onExpire exactly once when total is reached and stops. Canceling a
// timer before its deadline guarantees onExpire is never called.
package clock

import "time"

// Clock starts countdown timers.
type Clock interface {
	Start(interval, total time.Duration, onTick, onExpire func()) Timer
}

// Timer is a running countdown.
type Timer interface {
	// Cancel stops further deliveries. Safe to call more than once.
	Cancel()
}

// normalize clamps a non-positive interval to the total so the timer
// delivers no ticks, only the expiry.
func normalize(interval, total time.Duration) (time.Duration, time.Duration) {
	if total < 0 {
		total = 0
	}
	if interval <= 0 || interval > total {
		interval = total
	}
	return interval, total
}

// boundary returns the offset of the n-th delivery (1-based) from the
// timer's start, capped at total.
func boundary(n int, interval, total time.Duration) time.Duration {
	if interval <= 0 {
		return total
	}
	at := time.Duration(n) * interval
	if at > total {
		return total
	}
	return at
}
