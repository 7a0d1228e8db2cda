package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexeme is what a recognizer found at the start of a line: its type, its
// decoded literal (if any) and its length in characters.
type lexeme struct {
	tt    TokenType
	value Valuer
	size  int
}

type recognizer func(line string) (lexeme, bool)

// Order matters: the first recognizer that matches wins, so a run of digits
// is a constant before it could ever be tried as anything else.
var recognizers = []recognizer{
	recogDelimiter,
	recogConst,
	recogReserved,
	recogIdent,
	recogArithmetic,
	recogComparison,
}

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in: in,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in []byte

	tokens []Token
	table  Table
}

// Tokens returns the token stream built by the last successful Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Table returns the position table built by the last successful Scan.
func (lx *Lexer) Table() Table {
	return lx.table
}

// Scan tokenizes the whole input line by line. On error neither the token
// stream nor the table is kept.
func (lx *Lexer) Scan() error {
	tokens := []Token{}
	table := Table{}

	for row, line := range strings.Split(string(lx.in), "\n") {
		c := newCursor(line, row)

		for c.skipWhitespace(); !c.done(); c.skipWhitespace() {
			tok, entry, size, err := Tokenize(c.line, c.pos)
			if err != nil {
				return err
			}

			tok.index = len(tokens)
			tokens = append(tokens, tok)
			table = append(table, entry)

			if err := c.advance(size); err != nil {
				return err
			}
		}
	}

	lx.tokens, lx.table = tokens, table
	return nil
}

// Tokenize recognizes the lexeme at the start of line, which must not begin
// with whitespace. It returns the token (with index 0), its table entry and
// the lexeme length in characters.
func Tokenize(line string, pos Pos) (Token, Entry, int, error) {
	for _, recog := range recognizers {
		if lm, ok := recog(line); ok {
			return NewToken(lm.tt, 0), Entry{Pos: pos, Value: lm.value}, lm.size, nil
		}
	}
	return Token{}, Entry{}, 0, newError(ErrInvalidCharacter, pos)
}

// Scan takes an array of bytes and returns all the tokens within it along
// with their position table, or an error if a lexeme can't be identified.
func Scan(in []byte) ([]Token, Table, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, nil, err
	}
	return lx.tokens, lx.table, nil
}

// boundedRun returns the text up to the next whitespace, parenthesis or
// double quote.
func boundedRun(line string) string {
	for i, r := range line {
		if isRunBreak(r) {
			return line[:i]
		}
	}
	return line
}

func recogDelimiter(line string) (lexeme, bool) {
	r, _ := utf8.DecodeRuneInString(line)
	switch r {
	case '(':
		return lexeme{tt: TokenOpenParen, size: 1}, true
	case ')':
		return lexeme{tt: TokenCloseParen, size: 1}, true
	}
	return lexeme{}, false
}

func recogConst(line string) (lexeme, bool) {
	if strings.HasPrefix(line, `"`) {
		return recogString(line)
	}

	run := boundedRun(line)
	if run == "" {
		return lexeme{}, false
	}

	value, ok := parseConst(run)
	if !ok {
		return lexeme{}, false
	}
	return lexeme{tt: TokenConst, value: value, size: utf8.RuneCountInString(run)}, true
}

// recogString looks for the closing quote. A backslash keeps the quote right
// after it from closing the string; nothing else is unescaped.
func recogString(line string) (lexeme, bool) {
	escaped := false
	n := 0
	for i, r := range line {
		if n > 0 && r == '"' && !escaped {
			return lexeme{
				tt:    TokenConst,
				value: NewStringValue(line[1:i]),
				size:  n + 1,
			}, true
		}
		escaped = r == '\\'
		n++
	}
	return lexeme{}, false
}

func parseConst(run string) (Valuer, bool) {
	if i, err := strconv.ParseInt(run, 10, 64); err == nil {
		return NewIntValue(i), true
	}

	// ParseFloat also takes hexadecimal mantissas, which are not part of the
	// language.
	if !strings.ContainsAny(run, "xX") {
		f, err := strconv.ParseFloat(run, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return NewFloatValue(f), true
		}
	}

	switch run {
	case "#t":
		return NewBoolValue(true), true
	case "#f":
		return NewBoolValue(false), true
	}
	return nil, false
}

func recogReserved(line string) (lexeme, bool) {
	run := boundedRun(line)

	if tt, ok := keywords[run]; ok {
		return lexeme{tt: tt, size: utf8.RuneCountInString(run)}, true
	}
	if strings.HasPrefix(run, "'") {
		return lexeme{tt: TokenQuoteMark, size: 1}, true
	}
	return lexeme{}, false
}

func recogIdent(line string) (lexeme, bool) {
	run := boundedRun(line)
	if run == "" {
		return lexeme{}, false
	}

	n := 0
	for _, r := range run {
		if n == 0 && r >= '0' && r <= '9' {
			return lexeme{}, false
		}
		if !isIdentRune(r) {
			return lexeme{}, false
		}
		n++
	}
	return lexeme{tt: TokenID, value: NewStringValue(run), size: n}, true
}

// isIdentRune accepts alphabetic characters (letters, letter numbers and
// other alphabetic marks such as vowel signs), numbers and '_'.
func isIdentRune(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}

func recogArithmetic(line string) (lexeme, bool) {
	run := boundedRun(line)
	if tt, ok := arithmeticOps[run]; ok {
		return lexeme{tt: tt, size: 1}, true
	}
	return lexeme{}, false
}

func recogComparison(line string) (lexeme, bool) {
	run := boundedRun(line)
	for _, op := range comparisonOps {
		if run == op.text {
			return lexeme{tt: op.tt, size: len(op.text)}, true
		}
	}
	return lexeme{}, false
}
