// Package term converts terminal key events into X11 chord events so they
// can be matched against parsed key notation.
//
// Events come either from a tcell screen or from recorded descriptions
// such as "ctrl+shift+r" or "alt+enter", read by ParseEventKey.
package term

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/x11"
)

type mapped struct {
	sym  x11.Keysym
	mods x11.Modifier
}

// ErrInvalidEvent is returned for a key event description that cannot be
// read.
var ErrInvalidEvent = errors.New("invalid key event")

// keyTable maps non-rune tcell keys that have a codepoint.
var keyTable = buildKeyTable()

func buildKeyTable() map[tcell.Key]mapped {
	m := make(map[tcell.Key]mapped)
	for k := tcell.KeyCtrlA; k <= tcell.KeyCtrlZ; k++ {
		m[k] = mapped{x11.Keysym('a' + rune(k-tcell.KeyCtrlA)), x11.ModControl}
	}
	m[tcell.KeyBackspace] = mapped{'\b', x11.ModNone}
	m[tcell.KeyBackspace2] = mapped{0x7f, x11.ModNone}
	m[tcell.KeyTab] = mapped{'\t', x11.ModNone}
	m[tcell.KeyEnter] = mapped{'\r', x11.ModNone}
	m[tcell.KeyEscape] = mapped{0x1b, x11.ModNone}
	m[tcell.KeyDelete] = mapped{0x7f, x11.ModNone}
	return m
}

var modPairs = []struct {
	tc  tcell.ModMask
	x   x11.Modifier
	tag string
}{
	{tcell.ModShift, x11.ModShift, "shift"},
	{tcell.ModCtrl, x11.ModControl, "ctrl"},
	{tcell.ModAlt, x11.ModMod1, "alt"},
	{tcell.ModMeta, x11.ModMeta, "meta"},
}

// convertMod converts a tcell modifier mask to X11 modifiers.
func convertMod(m tcell.ModMask) x11.Modifier {
	var mods []x11.Modifier
	for _, p := range modPairs {
		if m&p.tc != 0 {
			mods = append(mods, p.x)
		}
	}
	return x11.ModifierOf(mods...)
}

// namedKeys is the lowercased inverse of tcell.KeyNames.
var namedKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseEventKey reads a key event description: zero or more modifiers
// (shift, ctrl, alt, meta, or control) joined by '+', then a key. The key
// is a single character, "space", or a tcell key name such as Enter, Esc
// or F5. Names are case-insensitive; a single character is not.
//
//	a  ctrl+x  ctrl+shift+r  alt+enter  ctrl++
//
// The event is built with tcell.NewEventKey and so is normalized the way a
// terminal would report it: "shift+a" arrives as a bare 'a'.
func ParseEventKey(desc string) (*tcell.EventKey, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidEvent)
	}

	// The last '+' before the final character splits modifiers from the
	// key, so "ctrl++" is ctrl and '+'.
	key := desc
	var mods tcell.ModMask
	if i := strings.LastIndex(desc[:len(desc)-1], "+"); i >= 0 {
		key = desc[i+1:]
		for _, word := range strings.Split(desc[:i], "+") {
			mod, ok := modifierWord(word)
			if !ok {
				return nil, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidEvent, word, desc)
			}
			mods |= mod
		}
	}

	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		return tcell.NewEventKey(tcell.KeyRune, r, mods), nil
	}
	name := strings.ToLower(key)
	if name == "space" {
		return tcell.NewEventKey(tcell.KeyRune, ' ', mods), nil
	}
	k, ok := namedKeys[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidEvent, key, desc)
	}
	return tcell.NewEventKey(k, 0, mods), nil
}

func modifierWord(word string) (tcell.ModMask, bool) {
	word = strings.ToLower(word)
	if word == "control" {
		word = "ctrl"
	}
	for _, p := range modPairs {
		if p.tag == word {
			return p.tc, true
		}
	}
	return tcell.ModNone, false
}

// FromEventKey converts a tcell key event. ok is false for keys with no
// codepoint (arrows, function keys and the like).
func FromEventKey(ev *tcell.EventKey) (x11.Event, bool) {
	mods := convertMod(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		return x11.NewEvent(x11.Keysym(ev.Rune()), mods), true
	}

	m, ok := keyTable[ev.Key()]
	if !ok {
		return x11.Event{}, false
	}
	return x11.NewEvent(m.sym, mods.With(m.mods)), true
}

// Matches returns true if ev is exactly the chord c.
func Matches(ev *tcell.EventKey, c x11.Event) bool {
	got, ok := FromEventKey(ev)
	if !ok {
		return false
	}
	delta, same := got.Contains(c)
	return same && delta.IsEmpty()
}
