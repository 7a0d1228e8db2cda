package lexer

import (
	"fmt"
)

// Token represents a classified lexical unit. Its index points to the entry
// in the position table that describes where it was found.
type Token struct {
	tt    TokenType
	index int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, index int) Token {
	return Token{
		tt:    tt,
		index: index,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Index returns the position of the token's entry in the table
func (t Token) Index() int {
	return t.index
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("<%v, %d>", t.tt, t.index)
}
