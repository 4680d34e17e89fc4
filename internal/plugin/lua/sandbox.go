package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// dangerousFuncs load code from disk or strings and bypass the sandbox.
var dangerousFuncs = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L *lua.LState
}

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState) *Sandbox {
	return &Sandbox{L: L}
}

// Install removes globals that could load arbitrary code.
func (s *Sandbox) Install() {
	for _, name := range dangerousFuncs {
		s.L.SetGlobal(name, lua.LNil)
	}
}

// removed returns the names of the globals removed by Install.
func (s *Sandbox) removed() []string {
	out := make([]string, len(dangerousFuncs))
	copy(out, dangerousFuncs)
	return out
}
