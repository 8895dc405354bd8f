package petscii

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineRecord is the diagnostic kept for each source line.
type LineRecord struct {
	Num   int
	Text  string // lowered, newline stripped
	Bytes []byte // tokenized, without the RETURN
}

// Program is a loaded BASIC source ready to type.
type Program struct {
	Filename string
	Bytes    []byte
	Lines    []LineRecord
}

// LoadFile reads a BASIC source and tokenizes it with t.
func (t *Table) LoadFile(filename string) (*Program, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open program %q: %w", filename, err)
	}
	defer fd.Close()

	prog, err := t.Load(fd)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", filename, err)
	}
	prog.Filename = filename
	return prog, nil
}

// Load reads lines from r in order.  Each line is lowered, loses only its
// trailing newline, is tokenized, and is followed by one K_RETURN.
func (t *Table) Load(r io.Reader) (*Program, error) {
	prog := &Program{}
	br := bufio.NewReader(r)
	num := 0
	for {
		s, err := br.ReadString('\n')
		if len(s) > 0 {
			num++
			text := strings.ToLower(strings.TrimSuffix(s, "\n"))
			Logf("Line %d: %s", num, text)

			bb, tokErr := t.Tokenize(text)
			if tokErr != nil {
				var ee *EncodingError
				if errors.As(tokErr, &ee) {
					ee.Line = num
				}
				return nil, tokErr
			}
			prog.Lines = append(prog.Lines, LineRecord{Num: num, Text: text, Bytes: bb})
			prog.Bytes = append(prog.Bytes, bb...)
			prog.Bytes = append(prog.Bytes, K_RETURN)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", num+1, err)
		}
	}
	return prog, nil
}
