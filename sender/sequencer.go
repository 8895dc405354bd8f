package sender

import (
	"context"

	"github.com/strickyak/c64keys/petscii"
)

// Sequencer runs the bring-up protocol: STOP+RESTORE, NEW, the program,
// RUN.  Every byte goes through the Keyboard.
type Sequencer struct {
	Keyboard *Keyboard
	Table    *petscii.Table
}

func NewSequencer(kb *Keyboard) *Sequencer {
	return &Sequencer{Keyboard: kb, Table: petscii.Tokens}
}

// Framing returns the number of bytes Send adds around a program.
func Framing() int { return 1 + len("new") + 1 + len("run") + 1 }

// LoadAndRun loads filename and sends it.  Nothing is written if the load
// fails.
func (s *Sequencer) LoadAndRun(ctx context.Context, filename string) error {
	Logf("Processing %s...", filename)
	prog, err := s.Table.LoadFile(filename)
	if err != nil {
		return err
	}
	return s.Send(ctx, prog)
}

// Send types an already loaded program and RUNs it.  A failure abandons
// the rest of the sequence.
func (s *Sequencer) Send(ctx context.Context, prog *petscii.Program) error {
	Logf("Processed into %d bytes: % 3x", len(prog.Bytes), prog.Bytes)
	Logf("Starting transmission sequence...")

	kb := s.Keyboard
	kb.mu.Lock()
	defer kb.mu.Unlock()

	steps := []struct {
		what string
		bb   []byte
	}{
		{"Sending RUN/STOP + RESTORE", []byte{petscii.K_STOP_RESTOR}},
		{"Sending NEW command", []byte{'n', 'e', 'w', petscii.K_RETURN}},
		{"Sending program...", prog.Bytes},
		{"Sending RUN command", []byte{'r', 'u', 'n', petscii.K_RETURN}},
	}
	for _, step := range steps {
		Logf("%s", step.what)
		for _, b := range step.bb {
			if err := kb.press(ctx, b); err != nil {
				return err
			}
		}
	}
	return nil
}
