// Command bas2keys shows the keystrokes a BASIC file turns into, and can
// type a single file into the C64 without the trigger.
//
//	bas2keys maze.bas
//	bas2keys -list
//	bas2keys -send /dev/ttyUSB0 hello.bas
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"

	. "github.com/strickyak/gomar/gu"

	"github.com/strickyak/c64keys/petscii"
	"github.com/strickyak/c64keys/sender"
)

var LIST = flag.Bool("list", false, "list the {token} vocabulary and exit")
var SEND = flag.String("send", "", "serial device; if set, type each file into the C64")
var BAUD = flag.Uint("baud", sender.DefaultBaud, "serial device baud rate")

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *LIST {
		ListTokens(os.Stdout, petscii.Tokens)
		return
	}

	var progs []*petscii.Program
	for _, filename := range flag.Args() {
		prog := Value(petscii.Tokens.LoadFile(filename))
		DumpProgram(os.Stdout, prog)
		progs = append(progs, prog)
	}

	if *SEND == "" {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	port := Value(sender.OpenSerial(*SEND, *BAUD))
	defer port.Close()
	seq := sender.NewSequencer(sender.NewKeyboard(port))
	for _, prog := range progs {
		if err := seq.Send(ctx, prog); err != nil {
			log.Fatalf("sending %q: %v", prog.Filename, err)
		}
	}
}

func ListTokens(w io.Writer, t *petscii.Table) {
	m := t.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%-15s $%02x %s\n", k, m[k], petscii.KeyName(m[k]))
	}
}

// DumpProgram prints each line with its bytes, then the totals Send will
// put on the wire.
func DumpProgram(w io.Writer, prog *petscii.Program) {
	fmt.Fprintf(w, "# %s\n", prog.Filename)
	total := 0
	for _, rec := range prog.Lines {
		fmt.Fprintf(w, "%4d: %s\n", rec.Num, rec.Text)
		fmt.Fprintf(w, "      % 3x\n", rec.Bytes)
		total += len(rec.Bytes) + 1
	}
	AssertLE(total, len(prog.Bytes))
	AssertLE(len(prog.Bytes), total)
	fmt.Fprintf(w, "# %d program bytes, %d on the wire\n", len(prog.Bytes), len(prog.Bytes)+sender.Framing())
	if specials := Specials(prog.Bytes); len(specials) > 0 {
		fmt.Fprintf(w, "# keys: %s\n", strings.Join(specials, " "))
	}
}

// Specials names the non-printing keystrokes in bb, in order, without
// RETURNs.
func Specials(bb []byte) []string {
	var z []string
	for _, b := range bb {
		if b == petscii.K_RETURN || (32 <= b && b <= 126) {
			continue
		}
		z = append(z, petscii.KeyName(b))
	}
	return z
}
