package notation

import (
	"errors"
	"io"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/dshills/keychord/internal/input/keysym"
	"github.com/dshills/keychord/internal/input/x11"
)

// Result is one parsed chord or the error for its token.
type Result struct {
	Event x11.Event
	Err   error
}

// Parser turns notation text into chord events, one per token, in input
// order. A Parser is single use and not safe for concurrent use.
type Parser struct {
	text     string
	tokens   *Tokenizer
	resolver *Resolver
	keysyms  keysym.Resolver
	logger   *log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithResolver sets the keysym resolver. The default is keysym.Default().
func WithResolver(r keysym.Resolver) Option {
	return func(p *Parser) {
		p.keysyms = r
	}
}

// WithLogger enables debug logging of tokens and resolution failures.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parse creates a parser over text. No work is done until the first
// call to Next, All or Collect.
func Parse(text string, opts ...Option) *Parser {
	p := &Parser{
		text:   text,
		tokens: NewTokenizer(text),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.resolver = NewResolver(p.keysyms)
	return p
}

// Next returns the next chord event.
//
// A resolution error (unknown modifier, unknown key) applies to its token
// only; later calls continue with the next token. A bare paren error ends
// the parse. Next returns io.EOF once the input is exhausted.
func (p *Parser) Next() (x11.Event, error) {
	tok, err := p.tokens.Next()
	if err != nil {
		if !errors.Is(err, io.EOF) && p.logger != nil {
			p.logger.Debug("tokenize failed", "pos", p.tokens.Pos()-1, "err", err)
		}
		return x11.Event{}, err
	}

	if p.logger != nil {
		p.logger.Debug("token", "pos", tok.Pos, "kind", tok.Kind, "text", tok.Text)
	}

	ev, err := p.resolver.Resolve(tok)
	if err != nil && p.logger != nil {
		p.logger.Debug("resolve failed", "pos", tok.Pos, "kind", tok.Kind, "text", tok.Text, "err", err)
	}
	return ev, err
}

// All returns the remaining results as a sequence.
func (p *Parser) All() iter.Seq2[x11.Event, error] {
	return func(yield func(x11.Event, error) bool) {
		for {
			ev, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(ev, err) {
				return
			}
		}
	}
}

// Collect drains the parser.
func (p *Parser) Collect() []Result {
	var results []Result
	for ev, err := range p.All() {
		results = append(results, Result{Event: ev, Err: err})
	}
	return results
}

// String returns the input text.
func (p *Parser) String() string {
	return p.text
}
