// Package sender types keystroke bytes into the C64 through the serial
// keyboard bridge.  Nothing is ever read back; pacing is the only flow
// control.
package sender

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/strickyak/c64keys/clock"
)

var Logf = log.Printf

// DefaultKeyDelay is the wait after each byte.  The C64 scans its keyboard
// buffer slowly and drops keys sent faster than this.
const DefaultKeyDelay = 100 * time.Millisecond

// WriteError wraps a failed write of one keystroke byte.
type WriteError struct {
	Byte byte
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write keystroke $%02x: %v", e.Byte, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Keyboard is the only writer of the transport.  Each Press writes one
// byte and then holds the lock for Delay, so bytes from any goroutine stay
// in order and evenly spaced.
type Keyboard struct {
	mu    sync.Mutex
	W     io.Writer
	Clock clock.Clock
	Delay time.Duration
}

func NewKeyboard(w io.Writer) *Keyboard {
	return &Keyboard{
		W:     w,
		Clock: clock.Real{},
		Delay: DefaultKeyDelay,
	}
}

// Press sends one keystroke and waits out the inter-byte delay.
func (k *Keyboard) Press(ctx context.Context, b byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.press(ctx, b)
}

// Type sends bb in order, one Press at a time.  The lock is held for the
// whole run so nothing can be interleaved.
func (k *Keyboard) Type(ctx context.Context, bb []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	for _, b := range bb {
		if err := k.press(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keyboard) press(ctx context.Context, b byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := k.W.Write([]byte{b})
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &WriteError{Byte: b, Err: err}
	}
	return k.Clock.Sleep(ctx, k.Delay)
}
