package chord

import (
	"cmp"
	"fmt"
)

// Event is a single chord: one key with its modifiers.
// Events are values; derived events are always new instances.
type Event[K Key, M Modifiers[M]] struct {
	key       K
	modifiers M
}

// New creates an event. It performs no validation.
func New[K Key, M Modifiers[M]](key K, mods M) Event[K, M] {
	return Event[K, M]{key: key, modifiers: mods}
}

// Collect creates an event whose modifiers are built from tokens by collect.
func Collect[K Key, T any, M Modifiers[M]](key K, collect Collector[T, M], tokens ...T) Event[K, M] {
	return New(key, collect(tokens...))
}

// Key returns the event's key.
func (e Event[K, M]) Key() K {
	return e.key
}

// Modifiers returns the event's modifiers.
func (e Event[K, M]) Modifiers() M {
	return e.modifiers
}

// Contains returns the symmetric difference of both events' modifiers when
// they share a key. ok is false when the keys differ.
//
// An empty delta means the events are the same chord.
func (e Event[K, M]) Contains(other Event[K, M]) (delta M, ok bool) {
	if e.key != other.key {
		return delta, false
	}
	return e.modifiers.Xor(other.modifiers), true
}

// ExtendModifiers returns a copy with extra merged into the modifiers.
func (e Event[K, M]) ExtendModifiers(extra M) Event[K, M] {
	return Event[K, M]{
		key:       e.key,
		modifiers: e.modifiers.Or(extra),
	}
}

// Compare orders events by key, then by modifiers.
func (e Event[K, M]) Compare(other Event[K, M]) int {
	if c := cmp.Compare(e.key, other.key); c != 0 {
		return c
	}
	return e.modifiers.Compare(other.modifiers)
}

// Equal returns true if both events have the same key and modifiers.
func (e Event[K, M]) Equal(other Event[K, M]) bool {
	return e.Compare(other) == 0
}

// String returns "key" or "key+modifiers" for diagnostics.
func (e Event[K, M]) String() string {
	if e.modifiers.IsEmpty() {
		return fmt.Sprintf("%v", e.key)
	}
	return fmt.Sprintf("%v+%v", e.key, e.modifiers)
}
