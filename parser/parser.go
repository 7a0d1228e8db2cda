package parser

import (
	"github.com/xiam/minilisp/lexer"
)

// The grammar, with one token of lookahead:
//
//	program := start*
//	start   := '(' list ')' | atom
//	list    := start list | ε
//	atom    := any token but '(' and ')'
//
// Pending productions are kept on an explicit stack, so nesting depth does
// not grow the goroutine stack.
type production uint8

const (
	prodStart production = iota
	prodList
	prodClose
)

// Options changes how strict the parser is.
type Options struct {
	// AutoCloseOnEOF treats every list still open at the end of input as
	// closed.
	AutoCloseOnEOF bool

	// MaxDepth limits how deep lists may nest. Zero means no limit.
	MaxDepth int
}

// Parser checks a token stream against the grammar.
type Parser struct {
	tokens []lexer.Token
	table  lexer.Table

	options Options

	pos   int
	depth int
	stack []production
}

// New creates a parser for the given token stream and its position table.
func New(tokens []lexer.Token, table lexer.Table) *Parser {
	return &Parser{
		tokens: tokens,
		table:  table,
	}
}

// SetOptions replaces the parser options.
func (p *Parser) SetOptions(options Options) {
	p.options = options
}

// Parse consumes the whole token stream as a sequence of forms. It returns
// the first syntax error found, if any.
func (p *Parser) Parse() error {
	p.pos, p.depth, p.stack = 0, 0, p.stack[:0]

	for {
		tok, ok := p.peek()
		if !ok {
			return nil
		}
		if p.pos > 0 && tok.Is(lexer.TokenCloseParen) {
			return p.errorAt(ErrUnexpectedTrailing, tok)
		}
		if err := p.parseStart(); err != nil {
			return err
		}
	}
}

// parseStart parses one complete top-level form.
func (p *Parser) parseStart() error {
	p.push(prodStart)

	for len(p.stack) > 0 {
		var err error

		switch p.pop() {
		case prodStart:
			err = p.start()
		case prodList:
			err = p.list()
		case prodClose:
			err = p.close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) start() error {
	tok, ok := p.peek()
	if !ok {
		return errUnexpectedEOF()
	}

	switch {
	case tok.Type().IsAtom():
		return p.expect(tok.Type())

	case tok.Is(lexer.TokenOpenParen):
		if err := p.expect(lexer.TokenOpenParen); err != nil {
			return err
		}
		p.depth++
		if p.options.MaxDepth > 0 && p.depth > p.options.MaxDepth {
			return p.errorAt(ErrTooDeep, tok)
		}
		p.push(prodClose)
		p.push(prodList)
		return nil
	}

	return p.errorAt(ErrUnexpectedToken, tok)
}

func (p *Parser) list() error {
	tok, ok := p.peek()
	if !ok || tok.Is(lexer.TokenCloseParen) {
		// ε; a missing ')' is reported by close.
		return nil
	}

	p.push(prodList)
	p.push(prodStart)
	return nil
}

func (p *Parser) close() error {
	if _, ok := p.peek(); !ok && p.options.AutoCloseOnEOF {
		p.depth--
		return nil
	}

	if err := p.expect(lexer.TokenCloseParen); err != nil {
		return err
	}
	p.depth--
	return nil
}

// expect consumes exactly one token of the given type.
func (p *Parser) expect(tt lexer.TokenType) error {
	tok, ok := p.peek()
	if !ok {
		return errUnexpectedEOF()
	}
	if !tok.Is(tt) {
		return p.errorAt(ErrUnexpectedToken, tok)
	}
	p.pos++
	return nil
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) push(prod production) {
	p.stack = append(p.stack, prod)
}

func (p *Parser) pop() production {
	prod := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return prod
}

func (p *Parser) errorAt(err error, tok lexer.Token) error {
	entry, ok := p.table.Lookup(tok.Index())
	if !ok {
		return &Error{Err: ErrUnknownToken}
	}
	return &Error{Err: err, Pos: entry.Pos, HasPos: true}
}

func errUnexpectedEOF() error {
	return &Error{Err: ErrUnexpectedEOF}
}

// Parse checks a token stream built by lexer.Scan.
func Parse(tokens []lexer.Token, table lexer.Table) error {
	return New(tokens, table).Parse()
}

// ParseWithOptions is like Parse but with non-default options.
func ParseWithOptions(tokens []lexer.Token, table lexer.Table, options Options) error {
	p := New(tokens, table)
	p.SetOptions(options)
	return p.Parse()
}
