// Package trigger watches the arming input and plays the show while it is
// held low.
package trigger

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/strickyak/c64keys/clock"
)

var Logf = log.Printf

const (
	DefaultPoll     = 50 * time.Millisecond
	DefaultDebounce = 50 * time.Millisecond
)

// Input is a pulled-up line: Get is true when idle, false when triggered.
// gpio.Pin satisfies it.
type Input interface {
	Get() bool
}

// Show is played over and over while Running.
type Show interface {
	Play(ctx context.Context) error
}

type State int

const (
	Idle State = iota
	Debounce
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Debounce:
		return "Debounce"
	case Running:
		return "Running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Loop struct {
	Input    Input
	Show     Show
	Clock    clock.Clock
	Poll     time.Duration
	Debounce time.Duration

	state State
	// Runs counts entries into Running.
	Runs int
}

func NewLoop(in Input, show Show) *Loop {
	return &Loop{
		Input:    in,
		Show:     show,
		Clock:    clock.Real{},
		Poll:     DefaultPoll,
		Debounce: DefaultDebounce,
	}
}

func (o *Loop) State() State { return o.state }

// Run loops until ctx ends and returns ctx.Err().
func (o *Loop) Run(ctx context.Context) error {
	Logf("Monitoring trigger. Pull it low to send the show.")
	for {
		if err := o.Step(ctx); err != nil {
			return err
		}
	}
}

// Step does one pass from Idle back to Idle.  It only returns an error when
// ctx has ended; show failures are logged and swallowed.
func (o *Loop) Step(ctx context.Context) error {
	o.state = Idle
	if o.Input.Get() {
		return o.Clock.Sleep(ctx, o.Poll)
	}

	o.state = Debounce
	if err := o.Clock.Sleep(ctx, o.Debounce); err != nil {
		return err
	}
	if o.Input.Get() {
		o.state = Idle
		return o.Clock.Sleep(ctx, o.Poll)
	}

	o.state = Running
	o.Runs++
	err := o.playForever(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	Logf("Error running program: %v", err)

	// Wait for release so one pull does not start two shows.
	for !o.Input.Get() {
		if err := o.Clock.Sleep(ctx, o.Poll); err != nil {
			return err
		}
	}
	o.state = Idle
	return o.Clock.Sleep(ctx, o.Poll)
}

func (o *Loop) playForever(ctx context.Context) error {
	for {
		if err := o.tryPlay(ctx); err != nil {
			return err
		}
	}
}

func (o *Loop) tryPlay(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recover: %v\n%s", r, debug.Stack())
		}
	}()
	err = o.Show.Play(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return err
}
