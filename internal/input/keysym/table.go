package keysym

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tidwall/gjson"
)

// Table errors
var (
	ErrInvalidTable = errors.New("invalid keysym table")
)

// Entry is one keysym definition.
type Entry struct {
	Name    string
	Keysym  uint32
	Unicode rune
}

// Table is an immutable keysym name table.
type Table struct {
	byName map[string]Entry
}

// Load parses a JSON keysym table of the form
//
//	{"keysyms": [{"name": "a", "keysym": 97, "unicode": 97}, ...]}
//
// Later entries with a duplicate name replace earlier ones.
func Load(data []byte) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidTable)
	}

	list := gjson.GetBytes(data, "keysyms")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: missing keysyms array", ErrInvalidTable)
	}

	t := &Table{byName: make(map[string]Entry)}
	for i, v := range list.Array() {
		name := v.Get("name")
		cp := v.Get("unicode")
		if name.Type != gjson.String || name.String() == "" || cp.Type != gjson.Number {
			return nil, fmt.Errorf("%w: entry %d: need name and unicode", ErrInvalidTable, i)
		}
		t.byName[name.String()] = Entry{
			Name:    name.String(),
			Keysym:  uint32(v.Get("keysym").Uint()),
			Unicode: rune(cp.Int()),
		}
	}

	return t, nil
}

// Resolve implements Resolver.
func (t *Table) Resolve(name string) (rune, bool) {
	e, ok := t.byName[name]
	return e.Unicode, ok
}

// Lookup returns the full entry for name.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.byName[name]
	return e, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.byName)
}

// Names returns all keysym names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//go:embed keysymdef.json
var builtin []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table. It is loaded on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(builtin)
		if err != nil {
			panic("keysym: built-in table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}
