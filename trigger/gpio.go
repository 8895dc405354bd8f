package trigger

import (
	"errors"

	"github.com/davecheney/gpio"
)

// ErrNoPin is returned by OpenPin for a negative pin number.
var ErrNoPin = errors.New("no trigger pin")

// OpenPin opens a sysfs GPIO line as the trigger input.  The pull-up must
// be set outside (device tree or raspi-gpio); sysfs cannot.
func OpenPin(n int) (gpio.Pin, error) {
	if n < 0 {
		return nil, ErrNoPin
	}
	pin, err := gpio.OpenPin(n, gpio.ModeInput)
	if err != nil {
		return nil, err
	}
	Logf("Trigger on GPIO%d", n)
	return pin, nil
}

// Always is an Input stuck at one level.  Always(false) means held low,
// which plays the show without any hardware.
type Always bool

func (a Always) Get() bool { return bool(a) }
