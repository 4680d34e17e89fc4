package chord

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Set is a Modifiers implementation over an open vocabulary of tokens.
// Items are kept sorted and deduplicated, so equality does not depend on
// insertion order. The zero value is the empty set.
type Set[T cmp.Ordered] struct {
	items []T
}

// SetOf returns the set of the given items.
func SetOf[T cmp.Ordered](items ...T) Set[T] {
	if len(items) == 0 {
		return Set[T]{}
	}
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return Set[T]{items: slices.Compact(sorted)}
}

// Or returns the union of s and other.
func (s Set[T]) Or(other Set[T]) Set[T] {
	out := make([]T, 0, len(s.items)+len(other.items))
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch c := cmp.Compare(s.items[i], other.items[j]); {
		case c < 0:
			out = append(out, s.items[i])
			i++
		case c > 0:
			out = append(out, other.items[j])
			j++
		default:
			out = append(out, s.items[i])
			i++
			j++
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, other.items[j:]...)
	return Set[T]{items: out}
}

// And returns the intersection of s and other.
func (s Set[T]) And(other Set[T]) Set[T] {
	var out []T
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch c := cmp.Compare(s.items[i], other.items[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out = append(out, s.items[i])
			i++
			j++
		}
	}
	return Set[T]{items: out}
}

// Xor returns the items in exactly one of s and other.
func (s Set[T]) Xor(other Set[T]) Set[T] {
	var out []T
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch c := cmp.Compare(s.items[i], other.items[j]); {
		case c < 0:
			out = append(out, s.items[i])
			i++
		case c > 0:
			out = append(out, other.items[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, other.items[j:]...)
	return Set[T]{items: out}
}

// IsEmpty returns true if the set has no items.
func (s Set[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Compare orders sets lexicographically over their sorted items.
func (s Set[T]) Compare(other Set[T]) int {
	return slices.Compare(s.items, other.items)
}

// Equal returns true if both sets hold the same items.
func (s Set[T]) Equal(other Set[T]) bool {
	return s.Compare(other) == 0
}

// Has returns true if item is in the set.
func (s Set[T]) Has(item T) bool {
	_, found := slices.BinarySearch(s.items, item)
	return found
}

// Len returns the number of items.
func (s Set[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in canonical order.
func (s Set[T]) Items() []T {
	return slices.Clone(s.items)
}

// String returns the items joined with "+", e.g. "alt+shift".
func (s Set[T]) String() string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, "+")
}
