package clock

import (
	"math"
	"time"
)

// Backoff computes the wait before each poll attempt. A Multiplier of 1 or
// less gives a fixed delay of Initial.
type Backoff struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
}

// Fixed returns a backoff that always waits d.
func Fixed(d time.Duration) Backoff {
	return Backoff{Initial: d, Max: d, Multiplier: 1}
}

// Duration returns the wait after the given zero-based attempt, capped at Max
// when Max is set.
func (b Backoff) Duration(attempt int) time.Duration {
	if b.Initial <= 0 {
		return 0
	}
	d := float64(b.Initial)
	if b.Multiplier > 1 && attempt > 0 {
		d *= math.Pow(b.Multiplier, float64(attempt))
	}
	if b.Max > 0 && d > float64(b.Max) {
		return b.Max
	}
	if d > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d)
}

// Total is the longest AwaitReady can sleep across attempts polls.
func (b Backoff) Total(attempts int) time.Duration {
	var total time.Duration
	for i := 0; i < attempts-1; i++ {
		total += b.Duration(i)
	}
	return total
}
