// Package clock holds the timed waits used to pace keystrokes and poll the
// trigger. Every wait returns early with ctx.Err() when the context ends.
package clock

import (
	"context"
	"time"
)

type Clock interface {
	// Now must carry a monotonic reading; durations are taken with Sub.
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// Real uses time.Now, which includes the monotonic clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
