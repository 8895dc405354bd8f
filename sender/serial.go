package sender

import (
	"io"

	"github.com/jacobsa/go-serial/serial"
)

const DefaultBaud = 9600

// OpenSerial opens the bridge's port at 8N1.  Only Write is used.
func OpenSerial(portName string, baud uint) (io.ReadWriteCloser, error) {
	options := serial.OpenOptions{
		PortName:        portName,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		ParityMode:      serial.PARITY_NONE,
		MinimumReadSize: 1,
	}
	port, err := serial.Open(options)
	if err != nil {
		return nil, err
	}
	Logf("Opened %s at %d baud", portName, baud)
	return port, nil
}
