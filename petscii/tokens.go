package petscii

// Table maps escape tokens such as "{red}" to keystroke bytes.
// It is never changed after NewTable returns.
type Table struct {
	m map[string]byte
}

func NewTable(m map[string]byte) *Table {
	t := &Table{m: make(map[string]byte, len(m))}
	for k, v := range m {
		t.m[k] = v
	}
	return t
}

// Resolve matches the whole pattern, braces included, exactly.
func (t *Table) Resolve(pattern string) (byte, bool) {
	b, ok := t.m[pattern]
	return b, ok
}

func (t *Table) Len() int { return len(t.m) }

// Map returns a copy of the table contents.
func (t *Table) Map() map[string]byte {
	z := make(map[string]byte, len(t.m))
	for k, v := range t.m {
		z[k] = v
	}
	return z
}

// Tokens is the C64 vocabulary.  Source lines are lowered before lookup,
// so every pattern is lower case.
var Tokens = NewTable(map[string]byte{
	"{clear}":       K_CLR_HOME,
	"{white}":       K_WHITE,
	"{red}":         K_RED,
	"{green}":       K_GREEN,
	"{blue}":        K_BLUE,
	"{yellow}":      K_YELLOW,
	"{orange}":      K_ORANGE,
	"{brown}":       K_BROWN,
	"{light red}":   K_LIGHT_RED,
	"{dark gray}":   K_DARK_GRAY,
	"{medium gray}": K_MEDIUM_GRAY,
	"{light green}": K_LIGHT_GREEN,
	"{light blue}":  K_LIGHT_BLUE,
	"{light gray}":  K_LIGHT_GRAY,
})
