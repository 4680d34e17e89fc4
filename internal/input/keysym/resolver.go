// Package keysym resolves X11 keysym names to Unicode codepoints.
//
// Resolvers are read-only after construction and safe to share across
// goroutines without locking. The built-in table covers the Latin-1
// keysyms ("a", "space", "exclam", "eacute", ...) and the TTY function
// keys ("Return", "Tab", "Escape", ...), which map to their control
// codepoints.
//
//	r := keysym.Default()
//	cp, ok := r.Resolve("Return") // '\r', true
package keysym

// Resolver maps a keysym name to its codepoint.
// ok is false when the name is unknown.
type Resolver interface {
	Resolve(name string) (cp rune, ok bool)
}

// Map is a Resolver backed by a plain map. It must not be mutated while
// in use.
type Map map[string]rune

// Resolve implements Resolver.
func (m Map) Resolve(name string) (rune, bool) {
	cp, ok := m[name]
	return cp, ok
}

type chain []Resolver

// Chain returns a Resolver that consults resolvers in order; the first hit
// wins. Nil resolvers are skipped.
func Chain(resolvers ...Resolver) Resolver {
	c := make(chain, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			c = append(c, r)
		}
	}
	return c
}

func (c chain) Resolve(name string) (rune, bool) {
	for _, r := range c {
		if cp, ok := r.Resolve(name); ok {
			return cp, true
		}
	}
	return 0, false
}
