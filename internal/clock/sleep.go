// Package clock provides context-aware waiting for the funding poll.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or returns early with the context error.
// A non-positive d only checks the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
