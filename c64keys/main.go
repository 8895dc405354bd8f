// Command c64keys waits for the trigger and types the BASIC demo show into
// a Commodore 64 through the serial keyboard bridge.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/strickyak/c64keys/clock"
	"github.com/strickyak/c64keys/sender"
	"github.com/strickyak/c64keys/trigger"
)

var WIRE = flag.String("wire", "/dev/ttyUSB0", "serial device of the keyboard bridge")
var BAUD = flag.Uint("baud", sender.DefaultBaud, "serial device baud rate")
var PIN = flag.Int("pin", 4, "GPIO number of the trigger input (active low)")
var DIR = flag.String("dir", ".", "directory holding hello.bas, mouse.bas, maze.bas, bounce.bas")
var NOTRIGGER = flag.Bool("notrigger", false, "ignore the trigger and loop the show at once")

var Logf = log.Printf

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	flag.Parse()
	InstallLimitedLogWriter()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	port, err := sender.OpenSerial(*WIRE, *BAUD)
	if err != nil {
		log.Fatalf("serial.Open: %v", err)
	}
	defer port.Close()

	kb := sender.NewKeyboard(port)
	show := sender.NewPlaylist(kb, *DIR)

	if *NOTRIGGER {
		err = PlayForever(ctx, kb.Clock, show)
	} else {
		pin, perr := trigger.OpenPin(*PIN)
		if perr != nil {
			log.Fatalf("gpio.OpenPin(%d): %v", *PIN, perr)
		}
		defer pin.Close()
		err = trigger.NewLoop(pin, show).Run(ctx)
	}

	if errors.Is(err, context.Canceled) {
		Logf("*** STOPPING ON SIGNAL")
		return
	}
	Logf("*** STOPPING: %v", err)
	os.Exit(3)
}

// RetryPause is the wait after a failed show when there is no trigger.
const RetryPause = 1 * time.Second

// PlayForever replays the show, pausing RetryPause after a failure.
func PlayForever(ctx context.Context, c clock.Clock, show trigger.Show) error {
	for {
		err := show.Play(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			Logf("Error running program: %v", err)
			if err := c.Sleep(ctx, RetryPause); err != nil {
				return err
			}
		}
	}
}
