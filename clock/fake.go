package clock

import (
	"context"
	"sync"
	"time"
)

// Fake is a virtual clock. Sleep returns at once and moves Now forward.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	Sleeps []time.Duration

	// OnSleep, if set, runs after each Sleep with the new time.
	OnSleep func(now time.Time)
}

func NewFake() *Fake {
	return &Fake{now: time.Date(1982, time.August, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	if d > 0 {
		f.now = f.now.Add(d)
	}
	f.Sleeps = append(f.Sleeps, d)
	now, hook := f.now, f.OnSleep
	f.mu.Unlock()
	if hook != nil {
		hook(now)
	}
	return ctx.Err()
}

// Elapsed is the total virtual time slept.
func (f *Fake) Elapsed() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum time.Duration
	for _, d := range f.Sleeps {
		sum += d
	}
	return sum
}
