package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrCursorOverrun    = errors.New("cursor moved past end of line")
)

// Error is a lexical error located at the position where scanning stopped.
type Error struct {
	Err error
	Pos Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error, pos Pos) error {
	return &Error{Err: err, Pos: pos}
}
