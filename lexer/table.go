package lexer

import (
	"fmt"
)

// Entry describes where a token was found and, for constants and
// identifiers, its decoded literal.
type Entry struct {
	Pos

	// Value is nil for tokens that carry no literal.
	Value Valuer
}

func (e Entry) String() string {
	if e.Value == nil {
		return fmt.Sprintf("[%d %d]", e.Row, e.Col)
	}
	return fmt.Sprintf("[%d %d] %v %s", e.Row, e.Col, e.Value.Type(), e.Value.Encode())
}

// Table is the position table built alongside the token stream. Entry i
// describes token i.
type Table []Entry

// Len returns the number of entries
func (t Table) Len() int {
	return len(t)
}

// Lookup returns the entry at index i
func (t Table) Lookup(i int) (Entry, bool) {
	if i < 0 || i >= len(t) {
		return Entry{}, false
	}
	return t[i], true
}
