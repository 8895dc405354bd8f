// Package petscii turns BASIC source text into the keystroke bytes the
// keyboard bridge types into a Commodore 64.
package petscii

import "log"

var Logf = log.Printf

// Keystroke codes understood by the bridge.  Printable characters are sent
// as themselves; these are the specials.
const (
	K_RETURN      = 0x0D // CHR$(13)
	K_RUN_STOP    = 0x03 // CHR$(3)
	K_STOP_RESTOR = 0xFF // RUN/STOP + RESTORE, not a real CHR$
	K_CLR_HOME    = 0x93 // SHIFT CLR/HOME, CHR$(147)

	K_CRSR_UP    = 0x91
	K_CRSR_DOWN  = 0x11
	K_CRSR_LEFT  = 0x9D
	K_CRSR_RIGHT = 0x1D

	K_F1 = 0x85
	K_F2 = 0x86
	K_F3 = 0x87
	K_F4 = 0x88
	K_F5 = 0x89
	K_F6 = 0x8A
	K_F7 = 0x8B
	K_F8 = 0x8C

	K_BLACK       = 0x90
	K_WHITE       = 0x05
	K_RED         = 0x1C
	K_CYAN        = 0x9F
	K_PURPLE      = 0x9C
	K_GREEN       = 0x1E
	K_BLUE        = 0x1F
	K_YELLOW      = 0x9E
	K_ORANGE      = 0x81
	K_BROWN       = 0x95
	K_LIGHT_RED   = 0x96
	K_DARK_GRAY   = 0x97
	K_MEDIUM_GRAY = 0x98
	K_LIGHT_GREEN = 0x99
	K_LIGHT_BLUE  = 0x9A
	K_LIGHT_GRAY  = 0x9B
)

var KeyNames = map[byte]string{
	K_RETURN:      "RETURN",
	K_RUN_STOP:    "RUN/STOP",
	K_STOP_RESTOR: "RUN/STOP+RESTORE",
	K_CLR_HOME:    "CLR/HOME",
	K_CRSR_UP:     "CRSR_UP",
	K_CRSR_DOWN:   "CRSR_DOWN",
	K_CRSR_LEFT:   "CRSR_LEFT",
	K_CRSR_RIGHT:  "CRSR_RIGHT",
	K_F1:          "F1",
	K_F2:          "F2",
	K_F3:          "F3",
	K_F4:          "F4",
	K_F5:          "F5",
	K_F6:          "F6",
	K_F7:          "F7",
	K_F8:          "F8",
	K_BLACK:       "BLACK",
	K_WHITE:       "WHITE",
	K_RED:         "RED",
	K_CYAN:        "CYAN",
	K_PURPLE:      "PURPLE",
	K_GREEN:       "GREEN",
	K_BLUE:        "BLUE",
	K_YELLOW:      "YELLOW",
	K_ORANGE:      "ORANGE",
	K_BROWN:       "BROWN",
	K_LIGHT_RED:   "LIGHT_RED",
	K_DARK_GRAY:   "DARK_GRAY",
	K_MEDIUM_GRAY: "MEDIUM_GRAY",
	K_LIGHT_GREEN: "LIGHT_GREEN",
	K_LIGHT_BLUE:  "LIGHT_BLUE",
	K_LIGHT_GRAY:  "LIGHT_GRAY",
}

// KeyName gives a printable name for a keystroke byte.
func KeyName(b byte) string {
	if s, ok := KeyNames[b]; ok {
		return s
	}
	if 32 <= b && b <= 126 {
		return string(rune(b))
	}
	return "?"
}
