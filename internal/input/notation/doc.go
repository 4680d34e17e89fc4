// Package notation parses Emacs/SKK-style key chord notation into X11
// chord events.
//
// Input is a space-separated list of chords in one of two notations:
//
//   - Dash notation: "a", "C-x", "C-S-r". Modifier letters are
//     S (Shift), C (Control), M (Meta), A (Mod1/Alt) and G (Mod5). The
//     key name must be a known keysym.
//   - Parenthesized notation: "(shift)", "(shift\ control\ a)". Modifier
//     words are shift, control and alt. Unknown key names resolve to the
//     null key instead of failing.
//
// A backslash escapes the next character, including space and parens.
// A space always ends the current chord, so words inside parentheses are
// separated with escaped spaces. A ')' inside parentheses is ignored.
//
// # Errors
//
// Resolution errors (ErrUnknownModifier, ErrKeysymNotFound) apply to one
// chord and parsing continues. A '(' inside parentheses (ErrBareOpenParen)
// or a ')' outside them (ErrBareCloseParen) ends the parse.
//
//	for ev, err := range notation.Parse("a i C-S-r").All() {
//	    if err != nil {
//	        // per-chord error
//	        continue
//	    }
//	    fmt.Println(ev.Key(), ev.Modifiers())
//	}
package notation
