package petscii

import (
	"fmt"
	"unicode/utf8"
)

// EncodingError reports a character that cannot be sent as one keystroke
// byte.  Line and Column count from 1; Line is 0 when unknown.
type EncodingError struct {
	Line   int
	Column int
	Rune   rune
}

func (e *EncodingError) Error() string {
	where := fmt.Sprintf("col %d", e.Column)
	if e.Line > 0 {
		where = fmt.Sprintf("line %d col %d", e.Line, e.Column)
	}
	if e.Rune == utf8.RuneError {
		return where + ": invalid UTF-8"
	}
	return fmt.Sprintf("%s: character %q (U+%04X) does not fit in a keystroke byte", where, e.Rune, e.Rune)
}

// Tokenize converts one lowered line into keystroke bytes.
// A '{' starts an escape token only if the text up to the next '}' is in
// the table; otherwise the '{' is typed literally and scanning goes on
// with the character after it.
func (t *Table) Tokenize(line string) ([]byte, error) {
	rr := []rune(line)
	out := make([]byte, 0, len(rr))
	i := 0
	for i < len(rr) {
		if rr[i] == '{' {
			if end := indexRune(rr, '}', i); end >= 0 {
				if b, ok := t.Resolve(string(rr[i : end+1])); ok {
					out = append(out, b)
					i = end + 1
					continue
				}
			}
		}
		r := rr[i]
		if r < 0 || r > 255 {
			return out, &EncodingError{Column: i + 1, Rune: r}
		}
		out = append(out, byte(r))
		i++
	}
	return out, nil
}

func indexRune(rr []rune, r rune, from int) int {
	for j := from; j < len(rr); j++ {
		if rr[j] == r {
			return j
		}
	}
	return -1
}
