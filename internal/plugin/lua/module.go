package lua

import (
	"errors"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/internal/input/keysym"
	"github.com/dshills/keychord/internal/input/notation"
	"github.com/dshills/keychord/internal/input/term"
	"github.com/dshills/keychord/internal/input/x11"
)

// ModuleName is the global name of the module table.
const ModuleName = "keychord"

// Module is the keychord Lua module.
type Module struct {
	keysyms keysym.Resolver
	logger  *log.Logger
}

// NewModule creates the module. A nil keysyms uses the built-in table.
func NewModule(keysyms keysym.Resolver) *Module {
	return &Module{keysyms: keysyms}
}

// WithLogger sets the logger passed to every parse.
func (m *Module) WithLogger(logger *log.Logger) *Module {
	m.logger = logger
	return m
}

// Register installs the module into s as a global table.
func (m *Module) Register(s *State) {
	s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"parse":    m.parse,
		"contains": m.contains,
		"matches":  m.matches,
	}, map[string]lua.LValue{
		"NONE":    lua.LNumber(x11.ModNone),
		"SHIFT":   lua.LNumber(x11.ModShift),
		"LOCK":    lua.LNumber(x11.ModLock),
		"CONTROL": lua.LNumber(x11.ModControl),
		"MOD1":    lua.LNumber(x11.ModMod1),
		"MOD2":    lua.LNumber(x11.ModMod2),
		"MOD3":    lua.LNumber(x11.ModMod3),
		"MOD4":    lua.LNumber(x11.ModMod4),
		"MOD5":    lua.LNumber(x11.ModMod5),
		"META":    lua.LNumber(x11.ModMeta),
	})
}

func (m *Module) options() []notation.Option {
	opts := []notation.Option{notation.WithResolver(m.keysyms)}
	if m.logger != nil {
		opts = append(opts, notation.WithLogger(m.logger))
	}
	return opts
}

// parse implements keychord.parse(text).
func (m *Module) parse(L *lua.LState) int {
	text := L.CheckString(1)

	results := L.NewTable()
	for _, r := range notation.Parse(text, m.options()...).Collect() {
		results.Append(resultTable(L, r))
	}

	L.Push(results)
	return 1
}

// contains implements keychord.contains(a, b).
func (m *Module) contains(L *lua.LState) int {
	a := m.first(L, 1)
	b := m.first(L, 2)

	delta, ok := a.Contains(b)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(delta))
	return 1
}

// matches implements keychord.matches(event, text): the 1-based index of
// the first chord in text that the key event description selects, or nil.
// Chords that fail to parse are skipped.
func (m *Module) matches(L *lua.LState) int {
	desc := L.CheckString(1)
	text := L.CheckString(2)

	ev, err := term.ParseEventKey(desc)
	if err != nil {
		L.ArgError(1, err.Error())
	}

	i := 0
	for c, err := range notation.Parse(text, m.options()...).All() {
		if err != nil {
			continue
		}
		i++
		if term.Matches(ev, c) {
			L.Push(lua.LNumber(i))
			return 1
		}
	}
	L.Push(lua.LNil)
	return 1
}

// first parses argument n and returns its first chord, raising a Lua
// argument error on failure.
func (m *Module) first(L *lua.LState, n int) x11.Event {
	text := L.CheckString(n)
	ev, err := notation.Parse(text, m.options()...).Next()
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return ev
}

// resultTable converts one parse result to
// {key, char, modifiers, names} or {error, kind, pos, terminal}.
func resultTable(L *lua.LState, r notation.Result) *lua.LTable {
	t := L.NewTable()
	if r.Err != nil {
		t.RawSetString("error", lua.LString(r.Err.Error()))
		t.RawSetString("kind", lua.LString(notation.ErrorCode(r.Err)))
		var pe *notation.ParseError
		if errors.As(r.Err, &pe) {
			t.RawSetString("pos", lua.LNumber(pe.Pos))
			t.RawSetString("terminal", lua.LBool(pe.Terminal()))
		}
		return t
	}

	key := r.Event.Key()
	char := ""
	if key != x11.NoSymbol {
		char = string(rune(key))
	}
	t.RawSetString("key", lua.LNumber(key))
	t.RawSetString("char", lua.LString(char))
	t.RawSetString("modifiers", lua.LNumber(r.Event.Modifiers()))
	t.RawSetString("names", lua.LString(r.Event.Modifiers().String()))
	return t
}
