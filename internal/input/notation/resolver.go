package notation

import (
	"strings"

	"github.com/dshills/keychord/internal/input/keysym"
	"github.com/dshills/keychord/internal/input/x11"
)

// normalModifiers maps dash-notation modifier letters.
var normalModifiers = map[string]x11.Modifier{
	"S": x11.ModShift,
	"C": x11.ModControl,
	"M": x11.ModMeta,
	"A": x11.ModMod1,
	"G": x11.ModMod5,
}

// specialModifiers maps parenthesized-notation modifier words.
var specialModifiers = map[string]x11.Modifier{
	"shift":   x11.ModShift,
	"control": x11.ModControl,
	"alt":     x11.ModMod1,
}

// Resolver turns raw tokens into chord events.
// It holds no per-token state and is safe for concurrent use when its
// keysym resolver is.
type Resolver struct {
	keysyms keysym.Resolver
}

// NewResolver creates a resolver backed by keysyms.
// A nil keysyms uses the built-in table.
func NewResolver(keysyms keysym.Resolver) *Resolver {
	if keysyms == nil {
		keysyms = keysym.Default()
	}
	return &Resolver{keysyms: keysyms}
}

// Resolve converts one token into an event.
//
// Dash notation is strict: an unknown key name is ErrKeysymNotFound.
// Parenthesized notation falls back to x11.NoSymbol for unknown names.
func (r *Resolver) Resolve(tok Token) (x11.Event, error) {
	switch tok.Kind {
	case KindSpecial:
		return r.resolveSpecial(tok)
	default:
		return r.resolveNormal(tok)
	}
}

// resolveNormal handles "C-S-r": modifier letters then the key name.
func (r *Resolver) resolveNormal(tok Token) (x11.Event, error) {
	parts := strings.Split(tok.Text, "-")
	name := parts[len(parts)-1]

	cp, ok := r.keysyms.Resolve(name)
	if !ok {
		return x11.Event{}, keysymNotFoundError(name, tok.Pos)
	}

	mods, err := foldModifiers(parts[:len(parts)-1], normalModifiers, tok.Pos)
	if err != nil {
		return x11.Event{}, err
	}
	return x11.NewEvent(x11.Keysym(cp), mods), nil
}

// resolveSpecial handles "shift control a": modifier words then the key
// name, separated by whitespace.
func (r *Resolver) resolveSpecial(tok Token) (x11.Event, error) {
	words := strings.Fields(tok.Text)

	var name string
	if len(words) > 0 {
		name = words[len(words)-1]
		words = words[:len(words)-1]
	}

	mods, err := foldModifiers(words, specialModifiers, tok.Pos)
	if err != nil {
		return x11.Event{}, err
	}

	key := x11.NoSymbol
	if cp, ok := r.keysyms.Resolve(name); ok {
		key = x11.Keysym(cp)
	}
	return x11.NewEvent(key, mods), nil
}

func foldModifiers(names []string, table map[string]x11.Modifier, pos int) (x11.Modifier, error) {
	mods := x11.ModNone
	for _, name := range names {
		mod, ok := table[name]
		if !ok {
			return x11.ModNone, unknownModifierError(name, pos)
		}
		mods = mods.With(mod)
	}
	return mods, nil
}
