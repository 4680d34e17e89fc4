// Package x11 defines the concrete chord types used by key notation:
// keysyms resolved to Unicode codepoints and X11 modifier masks.
package x11

import (
	"fmt"
	"unicode"

	"github.com/dshills/keychord/internal/input/chord"
)

// Keysym is a resolved key identity: the Unicode codepoint of an X11 keysym.
type Keysym rune

// NoSymbol is the null key.
const NoSymbol Keysym = 0

// String returns the character for printable keysyms, U+XXXX otherwise.
func (k Keysym) String() string {
	if k != NoSymbol && unicode.IsPrint(rune(k)) {
		return string(rune(k))
	}
	return fmt.Sprintf("U+%04X", rune(k))
}

// Event is a chord on an X11 keysym.
type Event = chord.Event[Keysym, Modifier]

// NewEvent creates an X11 chord event.
func NewEvent(k Keysym, mods Modifier) Event {
	return chord.New(k, mods)
}
