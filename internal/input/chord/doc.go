// Package chord provides the generic chord event model for the input system.
//
// A chord is a single key press combined with zero or more modifiers:
//
//   - Key: the constraint satisfied by key identities (runes, names, codes)
//   - Modifiers: a set-like algebra of modifiers (union, intersection,
//     symmetric difference)
//   - Event: an immutable pairing of one Key with one Modifiers value
//   - Set: an ordered-set Modifiers implementation over arbitrary tokens
//
// # Comparing chords
//
// Event.Contains reports the modifier delta between two events on the same
// key rather than a subset test:
//
//	a := chord.New("x", chord.SetOf("shift", "alt"))
//	b := chord.New("x", chord.SetOf("shift"))
//	delta, ok := a.Contains(b) // ok == true, delta == {alt}
//
// An empty delta means both events are the same chord. ok == false means
// the keys differ.
package chord
