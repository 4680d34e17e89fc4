package x11

import "strings"

// Modifier represents X11 modifier masks.
type Modifier uint32

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << 0

	// ModLock indicates Caps Lock.
	ModLock Modifier = 1 << 1

	// ModControl indicates the Control key.
	ModControl Modifier = 1 << 2

	// ModMod1 is usually Alt.
	ModMod1 Modifier = 1 << 3

	// ModMod2 is usually Num Lock.
	ModMod2 Modifier = 1 << 4

	// ModMod3 is rarely bound.
	ModMod3 Modifier = 1 << 5

	// ModMod4 is usually Super.
	ModMod4 Modifier = 1 << 6

	// ModMod5 is usually AltGr (ISO Level 3 Shift).
	ModMod5 Modifier = 1 << 7

	// ModMeta is a virtual mask outside the core protocol range.
	ModMeta Modifier = 1 << 28
)

// ModifierOf returns the union of mods.
func ModifierOf(mods ...Modifier) Modifier {
	var m Modifier
	for _, mod := range mods {
		m |= mod
	}
	return m
}

// Or returns the union of m and other.
func (m Modifier) Or(other Modifier) Modifier {
	return m | other
}

// And returns the intersection of m and other.
func (m Modifier) And(other Modifier) Modifier {
	return m & other
}

// Xor returns the symmetric difference of m and other.
func (m Modifier) Xor(other Modifier) Modifier {
	return m ^ other
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Compare orders modifiers by their mask value.
func (m Modifier) Compare(other Modifier) int {
	switch {
	case m < other:
		return -1
	case m > other:
		return 1
	}
	return 0
}

// Has returns true if m contains all of mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod && mod != ModNone
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

var modifierNames = []struct {
	mod   Modifier
	name  string
	short string
}{
	{ModShift, "Shift", "S"},
	{ModLock, "Lock", "L"},
	{ModControl, "Control", "C"},
	{ModMod1, "Mod1", "A"},
	{ModMod2, "Mod2", "2"},
	{ModMod3, "Mod3", "3"},
	{ModMod4, "Mod4", "4"},
	{ModMod5, "Mod5", "G"},
	{ModMeta, "Meta", "M"},
}

// String returns a human-readable representation like "Shift+Control".
func (m Modifier) String() string {
	return m.join(false, "+")
}

// ShortString returns the dash notation prefix like "S-C".
// Masks without a notation letter use their digit.
func (m Modifier) ShortString() string {
	return m.join(true, "-")
}

func (m Modifier) join(short bool, sep string) string {
	if m == ModNone {
		return ""
	}

	var parts []string
	for _, n := range modifierNames {
		if !m.Has(n.mod) {
			continue
		}
		if short {
			parts = append(parts, n.short)
		} else {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, sep)
}
