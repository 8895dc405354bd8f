package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

var LogLimit = flag.Uint64("logmax", 1<<30, "maximum bytes to log to stderr")

// LimitedLogWriter stops the program once Limit bytes have been logged, so
// a stuck show cannot fill the SD card.
type LimitedLogWriter struct {
	Limit   uint64
	Current uint64
	W       io.Writer
	Exit    func(code int)
}

func InstallLimitedLogWriter() {
	llw := &LimitedLogWriter{
		Limit: *LogLimit,
		W:     os.Stderr,
		Exit:  os.Exit,
	}
	log.SetOutput(llw)
}

func (llw *LimitedLogWriter) Write(bb []byte) (int, error) {
	llw.Current += uint64(len(bb))
	if llw.Current > llw.Limit {
		fmt.Fprintf(os.Stderr, "\n***\nFatal: LimitedLogWriter exceeded its limit of %d bytes\n", llw.Limit)
		llw.Exit(13)
		return 0, io.ErrShortWrite
	}
	return llw.W.Write(bb)
}
