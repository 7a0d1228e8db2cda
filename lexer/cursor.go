package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Pos is a 0-indexed location in the source text. Col counts characters,
// not bytes.
type Pos struct {
	Row int
	Col int
}

// String returns the position in the 1-indexed form people expect to read.
func (p Pos) String() string {
	return fmt.Sprintf("row %d column %d", p.Row+1, p.Col+1)
}

// cursor tracks the unconsumed part of the line being scanned.
type cursor struct {
	line string
	pos  Pos
}

func newCursor(line string, row int) *cursor {
	return &cursor{
		line: line,
		pos:  Pos{Row: row},
	}
}

func (c *cursor) done() bool {
	return c.line == ""
}

func (c *cursor) skipWhitespace() {
	n := 0
	for i, r := range c.line {
		if !isWhitespace(r) {
			c.line = c.line[i:]
			c.pos.Col += n
			return
		}
		n++
	}
	c.line = ""
	c.pos.Col += n
}

// advance consumes n characters.
func (c *cursor) advance(n int) error {
	offset, err := charsToBytes(c.line, n)
	if err != nil {
		return newError(err, c.pos)
	}
	c.line = c.line[offset:]
	c.pos.Col += n
	return nil
}

// charsToBytes returns the byte offset of the n-th character of s.
func charsToBytes(s string, n int) (int, error) {
	offset := 0
	for i := 0; i < n; i++ {
		if offset >= len(s) {
			return 0, ErrCursorOverrun
		}
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset, nil
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}
