package term

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/notation"
	"github.com/dshills/keychord/internal/input/x11"
)

func TestFromEventKey(t *testing.T) {
	tests := []struct {
		ev       *tcell.EventKey
		wantSym  x11.Keysym
		wantMods x11.Modifier
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), 'a', x11.ModNone},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModCtrl|tcell.ModShift), 'r', x11.ModShift | x11.ModControl},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), 'x', x11.ModMod1},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModMeta), 'x', x11.ModMeta},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), '\r', x11.ModNone},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModCtrl), '\r', x11.ModControl},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0x1b, x11.ModNone},
		{tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), 'a', x11.ModControl},
		{tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), 'x', x11.ModControl},
	}

	for _, tt := range tests {
		got, ok := FromEventKey(tt.ev)
		if !ok {
			t.Errorf("FromEventKey(%v) ok = false", tt.ev.Name())
			continue
		}
		if got.Key() != tt.wantSym || got.Modifiers() != tt.wantMods {
			t.Errorf("FromEventKey(%v) = %v, want %v", tt.ev.Name(), got, x11.NewEvent(tt.wantSym, tt.wantMods))
		}
	}
}

func TestFromEventKeyNoCodepoint(t *testing.T) {
	for _, k := range []tcell.Key{tcell.KeyUp, tcell.KeyF1, tcell.KeyHome} {
		if _, ok := FromEventKey(tcell.NewEventKey(k, 0, tcell.ModNone)); ok {
			t.Errorf("FromEventKey(%v) ok = true, want false", k)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		keys string
		want bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModCtrl|tcell.ModShift), "C-S-r", true},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModCtrl), "C-S-r", false},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a", true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "b", false},
		{tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), "C-x", true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "Return", true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), `(alt\ a)`, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "a", false},
	}

	for _, tt := range tests {
		ev, err := notation.Parse(tt.keys).Next()
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.keys, err)
		}
		if got := Matches(tt.ev, ev); got != tt.want {
			t.Errorf("Matches(%v, %q) = %v, want %v", tt.ev.Name(), tt.keys, got, tt.want)
		}
	}
}

func TestParseEventKey(t *testing.T) {
	tests := []struct {
		desc     string
		wantSym  x11.Keysym
		wantMods x11.Modifier
	}{
		{"a", 'a', x11.ModNone},
		{"+", '+', x11.ModNone},
		{"space", ' ', x11.ModNone},
		{"ctrl+shift+r", 'r', x11.ModShift | x11.ModControl},
		{"Control+x", 'x', x11.ModControl},
		{"alt+Enter", '\r', x11.ModMod1},
		{"ctrl++", '+', x11.ModControl},
		{"meta+A", 'A', x11.ModMeta},
		{"shift+a", 'a', x11.ModNone},
		{" esc ", 0x1b, x11.ModNone},
		{"tab", '\t', x11.ModNone},
	}

	for _, tt := range tests {
		ev, err := ParseEventKey(tt.desc)
		if err != nil {
			t.Errorf("ParseEventKey(%q) error = %v", tt.desc, err)
			continue
		}
		got, ok := FromEventKey(ev)
		if !ok {
			t.Errorf("FromEventKey(ParseEventKey(%q)) ok = false", tt.desc)
			continue
		}
		if got.Key() != tt.wantSym || got.Modifiers() != tt.wantMods {
			t.Errorf("ParseEventKey(%q) = %v, want %v", tt.desc, got, x11.NewEvent(tt.wantSym, tt.wantMods))
		}
	}
}

func TestParseEventKeyNamed(t *testing.T) {
	ev, err := ParseEventKey("shift+F5")
	if err != nil {
		t.Fatalf("ParseEventKey(shift+F5) error = %v", err)
	}
	if ev.Key() != tcell.KeyF5 || ev.Modifiers() != tcell.ModShift {
		t.Errorf("ParseEventKey(shift+F5) = %v, want Shift+F5", ev.Name())
	}
}

func TestParseEventKeyErrors(t *testing.T) {
	for _, desc := range []string{"", "  ", "hyper+a", "ctrl+nope", "ctrl+", "ab"} {
		if _, err := ParseEventKey(desc); !errors.Is(err, ErrInvalidEvent) {
			t.Errorf("ParseEventKey(%q) error = %v, want ErrInvalidEvent", desc, err)
		}
	}
}
