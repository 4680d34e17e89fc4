package notation

import (
	"errors"
	"fmt"
)

// Parse errors
var (
	// ErrKeysymNotFound is returned when a dash-notation key name does not
	// resolve.
	ErrKeysymNotFound = errors.New("keysym not found")

	// ErrUnknownModifier is returned for an unrecognized modifier letter
	// or word.
	ErrUnknownModifier = errors.New("unknown modifier")

	// ErrBareOpenParen is returned for '(' inside a parenthesized token.
	// It ends the parse.
	ErrBareOpenParen = errors.New("bare open paren")

	// ErrBareCloseParen is returned for ')' outside a parenthesized token.
	// It ends the parse.
	ErrBareCloseParen = errors.New("bare close paren")
)

// ParseError reports a failure for one token or one character of input.
// Error returns the diagnostic message; errors.Is matches Kind.
type ParseError struct {
	// Kind is one of the package sentinel errors.
	Kind error

	// Text is the offending modifier, key name or character.
	Text string

	// Pos is the rune offset of the offending character for tokenizer
	// errors, or of the token start for resolution errors.
	Pos int

	// Msg is the human-readable diagnostic.
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Terminal returns true if the error ended the parse.
func (e *ParseError) Terminal() bool {
	return errors.Is(e.Kind, ErrBareOpenParen) || errors.Is(e.Kind, ErrBareCloseParen)
}

// ErrorCode returns a stable snake_case name for err's kind, for use in
// machine-readable output.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrKeysymNotFound):
		return "keysym_not_found"
	case errors.Is(err, ErrUnknownModifier):
		return "unknown_modifier"
	case errors.Is(err, ErrBareOpenParen):
		return "bare_open_paren"
	case errors.Is(err, ErrBareCloseParen):
		return "bare_close_paren"
	default:
		return "parse_failed"
	}
}

func bareParenError(r rune, pos int) *ParseError {
	kind := ErrBareCloseParen
	if r == '(' {
		kind = ErrBareOpenParen
	}
	return &ParseError{
		Kind: kind,
		Text: string(r),
		Pos:  pos,
		Msg:  fmt.Sprintf("bare '%c' is not allowed in complex keyseq", r),
	}
}

func unknownModifierError(mod string, pos int) *ParseError {
	return &ParseError{
		Kind: ErrUnknownModifier,
		Text: mod,
		Pos:  pos,
		Msg:  "unknown modifier: " + mod,
	}
}

func keysymNotFoundError(name string, pos int) *ParseError {
	return &ParseError{
		Kind: ErrKeysymNotFound,
		Text: name,
		Pos:  pos,
		Msg:  "unknown key: " + name,
	}
}
