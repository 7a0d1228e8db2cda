// Package minilisp tells whether a piece of source text is a well-formed
// program: a sequence of atoms and parenthesized lists.
package minilisp

import (
	"bytes"
	"io"

	"github.com/xiam/minilisp/lexer"
	"github.com/xiam/minilisp/parser"
)

// Result holds the token stream and position table of a scanned input.
type Result struct {
	Tokens []lexer.Token
	Table  lexer.Table
}

type Reader struct {
	r       io.Reader
	options parser.Options
}

// Check scans and parses in. When scanning succeeds the result is returned
// even if parsing fails, so the stream can still be inspected.
func Check(in []byte) (*Result, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Check()
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetOptions sets the options handed to the parser.
func (r *Reader) SetOptions(options parser.Options) {
	r.options = options
}

// Check reads everything from the underlying reader, then scans and parses
// it. Errors are *lexer.Error or *parser.Error, except for read errors,
// which are returned as they are.
func (r *Reader) Check() (*Result, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}

	tokens, table, err := lexer.Scan(in)
	if err != nil {
		return nil, err
	}

	res := &Result{Tokens: tokens, Table: table}
	if err := parser.ParseWithOptions(tokens, table, r.options); err != nil {
		return res, err
	}
	return res, nil
}
