// Package lua provides the Lua scripting binding for key notation.
//
// This package wraps the gopher-lua library to provide:
//   - A sandboxed Lua state (base, table, string and math libraries only)
//   - Go-Lua type conversion for chord results
//   - The keychord module
//
// # State
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(2 * time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	lua.NewModule(nil).Register(state)
//	err = state.DoString(`
//	    for _, r in ipairs(keychord.parse("a C-S-r")) do
//	        print(r.char, r.names)
//	    end
//	`)
//
// # Module
//
// The keychord module exposes:
//   - keychord.parse(text): array of results, each either
//     {key, char, modifiers, names} or {error, kind, pos}
//   - keychord.contains(a, b): modifier delta between the first chords of
//     two notations, or nil when their keys differ
//   - keychord.SHIFT, CONTROL, MOD1 ... META: modifier masks
package lua
