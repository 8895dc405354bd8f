package petscii

import (
	"bytes"
	"errors"
	"testing"
)

func TestTokenizePlain(t *testing.T) {
	for _, line := range []string{
		"",
		"10 print \"hello\"",
		"20 goto 10",
		"  spaces  kept  ",
		"closing} only",
	} {
		got, err := Tokens.Tokenize(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		if !bytes.Equal(got, []byte(line)) {
			t.Errorf("%q: got % 3x", line, got)
		}
	}
}

func TestTokenizeEveryToken(t *testing.T) {
	for pattern, code := range Tokens.Map() {
		line := "a" + pattern + "b"
		got, err := Tokens.Tokenize(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		want := []byte{'a', code, 'b'}
		if !bytes.Equal(got, want) {
			t.Errorf("%q: got % 3x want % 3x", line, got, want)
		}
	}
}

func TestTokenizeRedHelloClear(t *testing.T) {
	got, err := Tokens.Tokenize("10 print {red}hello{clear}")
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte("10 print "), K_RED)
	want = append(want, "hello"...)
	want = append(want, K_CLR_HOME)
	if !bytes.Equal(got, want) {
		t.Fatalf("got % 3x want % 3x", got, want)
	}
}

func TestTokenizeUnterminatedBrace(t *testing.T) {
	a, err := Tokens.Tokenize("10 print {red")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Tokens.Tokenize("10 print xred")
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] && !(a[i] == '{' && b[i] == 'x') {
			t.Fatalf("byte %d: %02x vs %02x", i, a[i], b[i])
		}
	}
}

func TestTokenizeUnknownTokenIsLiteral(t *testing.T) {
	// Only the '{' falls back; the rest is scanned char by char, so a real
	// token nested inside is still found.
	got, err := Tokens.Tokenize("{purple}{{red}")
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte("{purple}{"), K_RED)
	if !bytes.Equal(got, want) {
		t.Fatalf("got % 3x want % 3x", got, want)
	}
}

func TestTokenizeCaseSensitive(t *testing.T) {
	got, _ := Tokens.Tokenize("{RED}")
	if !bytes.Equal(got, []byte("{RED}")) {
		t.Fatalf("upper case token matched: % 3x", got)
	}
}

func TestTokenizeLatin1Allowed(t *testing.T) {
	got, err := Tokens.Tokenize("é")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0xE9}) {
		t.Fatalf("got % 3x", got)
	}
}

func TestTokenizeRejectsWideRune(t *testing.T) {
	_, err := Tokens.Tokenize("ab€")
	var ee *EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want EncodingError", err)
	}
	if ee.Column != 3 || ee.Rune != '€' {
		t.Fatalf("got %+v", ee)
	}
}

func TestTableResolve(t *testing.T) {
	if Tokens.Len() != 14 {
		t.Fatalf("vocabulary has %d tokens", Tokens.Len())
	}
	if b, ok := Tokens.Resolve("{light blue}"); !ok || b != K_LIGHT_BLUE {
		t.Fatalf("got %02x %v", b, ok)
	}
	for _, p := range []string{"{light blue", "light blue}", "{light  blue}", "{black}", ""} {
		if _, ok := Tokens.Resolve(p); ok {
			t.Errorf("%q resolved", p)
		}
	}
	m := Tokens.Map()
	m["{black}"] = K_BLACK
	if _, ok := Tokens.Resolve("{black}"); ok {
		t.Fatal("Map leaked the table")
	}
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	_, err := Tokens.Tokenize("{re\xffd}")
	var ee *EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want EncodingError", err)
	}
	if ee.Column != 4 || err.Error() != "col 4: invalid UTF-8" {
		t.Fatalf("got %q", err.Error())
	}

	ee.Line = 7
	if err.Error() != "line 7 col 4: invalid UTF-8" {
		t.Fatalf("got %q", err.Error())
	}
}
