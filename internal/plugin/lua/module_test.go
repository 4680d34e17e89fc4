package lua

import (
	"strings"
	"testing"

	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/keychord/internal/input/keysym"
	"github.com/dshills/keychord/internal/input/x11"
)

func newModuleState(t *testing.T, keysyms keysym.Resolver) *State {
	t.Helper()
	state, err := NewState()
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	t.Cleanup(func() { state.Close() })
	NewModule(keysyms).Register(state)
	return state
}

func globalNumber(t *testing.T, s *State, name string) float64 {
	t.Helper()
	v, ok := s.global(name).(glua.LNumber)
	if !ok {
		t.Fatalf("global %q = %v, want number", name, s.global(name))
	}
	return float64(v)
}

func globalString(t *testing.T, s *State, name string) string {
	t.Helper()
	v, ok := s.global(name).(glua.LString)
	if !ok {
		t.Fatalf("global %q = %v, want string", name, s.global(name))
	}
	return string(v)
}

func TestModuleParse(t *testing.T) {
	state := newModuleState(t, nil)

	err := state.DoString(`
		local r = keychord.parse("a i C-S-r")
		n = #r
		first = r[1].char
		last_key = r[3].key
		last_mods = r[3].modifiers
		last_names = r[3].names
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if got := globalNumber(t, state, "n"); got != 3 {
		t.Errorf("#results = %v, want 3", got)
	}
	if got := globalString(t, state, "first"); got != "a" {
		t.Errorf("first char = %q, want a", got)
	}
	if got := globalNumber(t, state, "last_key"); got != 'r' {
		t.Errorf("last key = %v, want %d", got, 'r')
	}
	if got := globalNumber(t, state, "last_mods"); got != float64(x11.ModShift|x11.ModControl) {
		t.Errorf("last modifiers = %v, want %d", got, x11.ModShift|x11.ModControl)
	}
	if got := globalString(t, state, "last_names"); got != "Shift+Control" {
		t.Errorf("last names = %q, want Shift+Control", got)
	}
}

func TestModuleParseErrors(t *testing.T) {
	state := newModuleState(t, keysym.Chain(keysym.Map{"foo": 0xe000}, keysym.Default()))

	err := state.DoString(`
		local r = keychord.parse("foo bar-a b")
		n = #r
		foo_key = r[1].key
		err_kind = r[2].kind
		err_msg = r[2].error
		err_pos = r[2].pos
		last = r[3].char

		local p = keychord.parse("a)b")
		paren_n = #p
		paren_kind = p[1].kind
		paren_terminal = p[1].terminal
		err_terminal = r[2].terminal

		null = keychord.parse("(shift)")[1].char
		empty = #keychord.parse("   ")
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if got := globalNumber(t, state, "n"); got != 3 {
		t.Errorf("#results = %v, want 3", got)
	}
	if got := globalNumber(t, state, "foo_key"); got != 0xe000 {
		t.Errorf("foo key = %v, want 0xe000", got)
	}
	if got := globalString(t, state, "err_kind"); got != "unknown_modifier" {
		t.Errorf("error kind = %q, want unknown_modifier", got)
	}
	if got := globalString(t, state, "err_msg"); got != "unknown modifier: bar" {
		t.Errorf("error = %q, want %q", got, "unknown modifier: bar")
	}
	if got := globalNumber(t, state, "err_pos"); got != 4 {
		t.Errorf("error pos = %v, want 4", got)
	}
	if got := globalString(t, state, "last"); got != "b" {
		t.Errorf("last char = %q, want b", got)
	}
	if got := globalNumber(t, state, "paren_n"); got != 1 {
		t.Errorf("#paren results = %v, want 1", got)
	}
	if got := globalString(t, state, "paren_kind"); got != "bare_close_paren" {
		t.Errorf("paren kind = %q, want bare_close_paren", got)
	}
	if state.global("paren_terminal") != glua.LTrue {
		t.Error("bare paren error should be terminal")
	}
	if state.global("err_terminal") != glua.LFalse {
		t.Error("unknown modifier error should not be terminal")
	}
	if got := globalString(t, state, "null"); got != "" {
		t.Errorf("null key char = %q, want empty", got)
	}
	if got := globalNumber(t, state, "empty"); got != 0 {
		t.Errorf("#empty results = %v, want 0", got)
	}
}

func TestModuleContains(t *testing.T) {
	state := newModuleState(t, nil)

	err := state.DoString(`
		delta = keychord.contains("C-S-k", "S-k")
		same = keychord.contains("C-k", "C-k")
		other = keychord.contains("C-k", "C-j") == nil
		is_control = delta == keychord.CONTROL
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if got := globalNumber(t, state, "delta"); got != float64(x11.ModControl) {
		t.Errorf("delta = %v, want %d", got, x11.ModControl)
	}
	if got := globalNumber(t, state, "same"); got != 0 {
		t.Errorf("same = %v, want 0", got)
	}
	if state.global("other") != glua.LTrue {
		t.Error("contains on different keys should be nil")
	}
	if state.global("is_control") != glua.LTrue {
		t.Error("delta should equal keychord.CONTROL")
	}
}

func TestModuleContainsBadArgument(t *testing.T) {
	state := newModuleState(t, nil)

	err := state.DoString(`keychord.contains("C-foo", "a")`)
	if err == nil {
		t.Fatal("contains() with unknown key should raise")
	}
	if !strings.Contains(err.Error(), "unknown key: foo") {
		t.Errorf("error = %v, want mention of unknown key", err)
	}
}

func TestModuleMatches(t *testing.T) {
	state := newModuleState(t, nil)

	err := state.DoString(`
		local seq = "foo C-x C-S-r Return"
		ctrl_x = keychord.matches("ctrl+x", seq)
		ctrl_shift_r = keychord.matches("ctrl+shift+r", seq)
		enter = keychord.matches("enter", seq)
		none = keychord.matches("y", seq) == nil
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	for _, tt := range []struct {
		name string
		want float64
	}{
		{"ctrl_x", 1},
		{"ctrl_shift_r", 2},
		{"enter", 3},
	} {
		if got := globalNumber(t, state, tt.name); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
	if state.global("none") != glua.LTrue {
		t.Error("matches on an unbound event should be nil")
	}
}

func TestModuleMatchesBadEvent(t *testing.T) {
	state := newModuleState(t, nil)

	err := state.DoString(`keychord.matches("hyper+a", "a")`)
	if err == nil {
		t.Fatal("matches() with unknown modifier should raise")
	}
	if !strings.Contains(err.Error(), "invalid key event") {
		t.Errorf("error = %v, want mention of invalid key event", err)
	}
}

func TestModuleConstants(t *testing.T) {
	state := newModuleState(t, nil)

	if err := state.DoString(`meta = keychord.META shift = keychord.SHIFT`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if got := globalNumber(t, state, "meta"); got != float64(x11.ModMeta) {
		t.Errorf("META = %v, want %d", got, x11.ModMeta)
	}
	if got := globalNumber(t, state, "shift"); got != float64(x11.ModShift) {
		t.Errorf("SHIFT = %v, want %d", got, x11.ModShift)
	}
}
