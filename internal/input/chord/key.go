package chord

import "cmp"

// Key is satisfied by any key identity usable in an Event.
// Keys must be totally ordered so events can be sorted and compared.
type Key interface {
	cmp.Ordered
}

// Modifiers is a set-like algebra of modifier keys.
//
// Implementations must behave as a set: Or and And are commutative and
// associative, x.Xor(x) is empty, x.Or(empty) == x, and
// a.Xor(b) == a.Or(b) minus a.And(b). Values are never mutated in place;
// every operation returns a new value.
type Modifiers[M any] interface {
	// Or returns the union of the receiver and other.
	Or(other M) M

	// And returns the intersection of the receiver and other.
	And(other M) M

	// Xor returns the symmetric difference of the receiver and other.
	Xor(other M) M

	// IsEmpty returns true if no modifiers are set.
	IsEmpty() bool

	// Compare orders modifier values canonically, returning -1, 0 or +1.
	Compare(other M) int
}

// Collector builds a Modifiers value from a sequence of tokens.
type Collector[T any, M Modifiers[M]] func(tokens ...T) M
