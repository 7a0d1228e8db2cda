package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/minilisp/lexer"
)

var (
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnexpectedTrailing = errors.New("unexpected trailing input")
	ErrUnknownToken       = errors.New("token has no entry in the position table")
	ErrTooDeep            = errors.New("nesting too deep")
)

// Error is a syntax error. Pos is only meaningful when HasPos is true; the
// end of input has no position of its own.
type Error struct {
	Err    error
	Pos    lexer.Pos
	HasPos bool
}

func (e *Error) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%v: %v", e.Pos, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
