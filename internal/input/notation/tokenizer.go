package notation

import (
	"io"
	"iter"
	"unicode/utf8"
)

// Kind identifies which notation a token uses.
type Kind uint8

const (
	// KindNormal is dash notation: "C-S-r".
	KindNormal Kind = iota

	// KindSpecial is parenthesized notation: "(shift\ a)".
	KindSpecial
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Token is one raw chord token.
type Token struct {
	Kind Kind
	Text string

	// Pos is the rune offset where the token starts.
	Pos int
}

// state is the tokenizer state between characters.
type state struct {
	kind    Kind
	text    []byte
	escape  bool
	started bool
	start   int
}

// step advances s by one character r at rune offset pos. raw holds the
// character's input bytes, which are what gets stored, so invalid UTF-8
// survives into the token text. It returns the next state and, on a token
// boundary, the completed token.
func step(s state, r rune, raw string, pos int) (state, *Token, error) {
	if s.escape {
		s.escape = false
		s.text = append(s.text, raw...)
		s.started = true
		return s, nil, nil
	}

	switch r {
	case '\\':
		if !s.started {
			s.start = pos
		}
		s.escape = true
	case ' ':
		if !s.started {
			return s, nil, nil
		}
		return state{}, s.token(), nil
	case '(':
		if s.kind == KindSpecial {
			return s, nil, bareParenError(r, pos)
		}
		if !s.started {
			s.start = pos
		}
		s.kind = KindSpecial
		s.text = nil
		s.started = true
	case ')':
		if s.kind == KindNormal {
			return s, nil, bareParenError(r, pos)
		}
	default:
		if !s.started {
			s.start = pos
		}
		s.text = append(s.text, raw...)
		s.started = true
	}
	return s, nil, nil
}

func (s state) token() *Token {
	return &Token{Kind: s.kind, Text: string(s.text), Pos: s.start}
}

// Tokenizer splits notation text into raw tokens.
//
// Tokens are produced lazily, one per call to Next. A Tokenizer is single
// use and not safe for concurrent use; tokenize the same text again with a
// fresh Tokenizer.
type Tokenizer struct {
	input  string
	offset int // byte offset into input
	pos    int // rune offset into input
	st     state
	done   bool
}

// NewTokenizer creates a tokenizer over text.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{input: text}
}

// Next returns the next token. It returns io.EOF when the input is
// exhausted. A *ParseError for a bare paren is the last result; every
// later call returns io.EOF.
func (t *Tokenizer) Next() (Token, error) {
	if t.done {
		return Token{}, io.EOF
	}

	for t.offset < len(t.input) {
		r, size := utf8.DecodeRuneInString(t.input[t.offset:])
		raw := t.input[t.offset : t.offset+size]
		pos := t.pos
		t.offset += size
		t.pos++

		next, tok, err := step(t.st, r, raw, pos)
		if err != nil {
			t.done = true
			return Token{}, err
		}
		t.st = next
		if tok != nil {
			return *tok, nil
		}
	}

	t.done = true
	if t.st.started {
		return *t.st.token(), nil
	}
	return Token{}, io.EOF
}

// All returns the remaining tokens as a sequence. Tokenizer errors are
// yielded with a zero Token and end the sequence.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

// Pos returns the number of characters consumed so far.
func (t *Tokenizer) Pos() int {
	return t.pos
}
