package sender

import (
	"context"
	"math/rand"
	"time"

	"github.com/strickyak/c64keys/petscii"
)

const (
	DefaultIdleMin    = 15 * time.Second
	DefaultIdleMax    = 30 * time.Second
	DefaultIdleWindow = 6 * time.Minute
)

// Injector keeps a running demo busy by pressing one of two keys at random
// intervals until Window has passed.
type Injector struct {
	Keyboard *Keyboard
	Keys     [2]byte
	Min, Max time.Duration
	Window   time.Duration
	Rand     *rand.Rand
}

// NewInjector presses F1 or F3 every 15 to 30 seconds for 6 minutes.
func NewInjector(kb *Keyboard) *Injector {
	return &Injector{
		Keyboard: kb,
		Keys:     [2]byte{petscii.K_F1, petscii.K_F3},
		Min:      DefaultIdleMin,
		Max:      DefaultIdleMax,
		Window:   DefaultIdleWindow,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run returns after the window closes, on a write error, or when ctx ends.
// The window is checked before each wait, so the last key may land up to
// Max+Delay past it.
func (j *Injector) Run(ctx context.Context) error {
	c := j.Keyboard.Clock
	start := c.Now()
	for c.Now().Sub(start) < j.Window {
		if err := c.Sleep(ctx, j.interval()); err != nil {
			return err
		}
		key := j.Keys[j.Rand.Intn(2)]
		Logf("Sending %s", petscii.KeyName(key))
		if err := j.Keyboard.Press(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// interval is uniform in [Min, Max].
func (j *Injector) interval() time.Duration {
	span := j.Max - j.Min
	if span <= 0 {
		return j.Min
	}
	return j.Min + time.Duration(j.Rand.Int63n(int64(span)+1))
}
