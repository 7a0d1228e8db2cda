package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/minilisp/lexer"
)

func scan(t *testing.T, in string) ([]lexer.Token, lexer.Table) {
	tokens, table, err := lexer.Scan([]byte(in))
	require.NoError(t, err, in)
	return tokens, table
}

func TestParserAccepts(t *testing.T) {
	testCases := []string{
		``,
		"\n\n",
		`1`,
		`1 3 3.4 5.6789`,
		`foo`,
		`(+ 1 2)`,
		`()`,
		`() (1) ()`,
		`(foo 1) (bar 2)`,
		`(1 2 (3 (4 (5))) 6 (7))`,
		`((lambda (x) (* x x)) 4)`,
		`'(1 2 3)`,
		`(quote (a b c))`,
		`(if (<= x 10) (display "small") (display "big"))`,
		`(cons 1 (list 2 3 #t #f))`,
		"(define (fact n)\n\t(if (= n 0)\n\t\t1\n\t\t(* n (fact (- n 1)))))\n(display (fact 10))",
		`(((1)))`,
		`(a)(b)(c)`,
	}

	for i := range testCases {
		tokens, table := scan(t, testCases[i])
		assert.NoError(t, Parse(tokens, table), testCases[i])
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In     string
		Err    error
		Pos    lexer.Pos
		HasPos bool
	}{
		{In: `(+ 1 2`, Err: ErrUnexpectedEOF},
		{In: `(`, Err: ErrUnexpectedEOF},
		{In: `((a)`, Err: ErrUnexpectedEOF},
		{In: "(1 2 3 4\n(5 6 7 8\n(4 6", Err: ErrUnexpectedEOF},
		{In: `)`, Err: ErrUnexpectedToken, Pos: lexer.Pos{Row: 0, Col: 0}, HasPos: true},
		{In: "\n  )", Err: ErrUnexpectedToken, Pos: lexer.Pos{Row: 1, Col: 2}, HasPos: true},
		{In: `(a) )`, Err: ErrUnexpectedTrailing, Pos: lexer.Pos{Row: 0, Col: 4}, HasPos: true},
		{In: `(a))`, Err: ErrUnexpectedTrailing, Pos: lexer.Pos{Row: 0, Col: 3}, HasPos: true},
		{In: `())`, Err: ErrUnexpectedTrailing, Pos: lexer.Pos{Row: 0, Col: 2}, HasPos: true},
		{In: `1 )`, Err: ErrUnexpectedTrailing, Pos: lexer.Pos{Row: 0, Col: 2}, HasPos: true},
		{In: "(a)\n(b))", Err: ErrUnexpectedTrailing, Pos: lexer.Pos{Row: 1, Col: 3}, HasPos: true},
		{In: "(1 2 3 4\n(5 6 7 8\n(4 6)))\n)", Err: ErrUnexpectedTrailing, Pos: lexer.Pos{Row: 3, Col: 0}, HasPos: true},
	}

	for i := range testCases {
		tokens, table := scan(t, testCases[i].In)

		err := Parse(tokens, table)
		require.Error(t, err, testCases[i].In)
		assert.True(t, errors.Is(err, testCases[i].Err), "%q: %v", testCases[i].In, err)

		var parseErr *Error
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, testCases[i].HasPos, parseErr.HasPos, testCases[i].In)
		assert.Equal(t, testCases[i].Pos, parseErr.Pos, testCases[i].In)
	}
}

func TestExpect(t *testing.T) {
	tokens, table := scan(t, "(\n  x")

	p := New(tokens, table)
	assert.NoError(t, p.expect(lexer.TokenOpenParen))

	err := p.expect(lexer.TokenCloseParen)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
	assert.Equal(t, "row 2 column 3: unexpected token", err.Error())

	assert.NoError(t, p.expect(lexer.TokenID))

	err = p.expect(lexer.TokenCloseParen)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
	assert.Equal(t, "unexpected end of input", err.Error())
}

func TestUnknownToken(t *testing.T) {
	tokens := []lexer.Token{lexer.NewToken(lexer.TokenCloseParen, 5)}

	err := Parse(tokens, lexer.Table{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownToken))
}

func TestInvalidTokenType(t *testing.T) {
	tokens := []lexer.Token{
		lexer.NewToken(lexer.TokenOpenParen, 0),
		lexer.NewToken(lexer.TokenInvalid, 1),
	}
	table := lexer.Table{
		{Pos: lexer.Pos{Row: 0, Col: 0}},
		{Pos: lexer.Pos{Row: 0, Col: 1}},
	}

	err := Parse(tokens, table)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))

	var parseErr *Error
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, lexer.Pos{Row: 0, Col: 1}, parseErr.Pos)
}

func TestDeepNesting(t *testing.T) {
	const depth = 100000

	in := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)
	tokens, table := scan(t, in)

	assert.NoError(t, Parse(tokens, table))

	tokens, table = scan(t, strings.Repeat("(", depth))
	assert.True(t, errors.Is(Parse(tokens, table), ErrUnexpectedEOF))
}

func TestMaxDepth(t *testing.T) {
	options := Options{MaxDepth: 10}

	tokens, table := scan(t, strings.Repeat("(", 10)+strings.Repeat(")", 10))
	assert.NoError(t, ParseWithOptions(tokens, table, options))

	tokens, table = scan(t, "(1) "+strings.Repeat("(", 11)+strings.Repeat(")", 11))
	err := ParseWithOptions(tokens, table, options)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooDeep))

	var parseErr *Error
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, lexer.Pos{Row: 0, Col: 14}, parseErr.Pos)

	// siblings do not add up
	tokens, table = scan(t, strings.Repeat("(()) ", 50))
	assert.NoError(t, ParseWithOptions(tokens, table, Options{MaxDepth: 2}))
}

func TestAutoCloseOnEOF(t *testing.T) {
	testCases := []string{
		`(`,
		`(1`,
		`(((`,
		`(((1 1 1`,
		`(()`,
		"(1 2 3 4\n(5 6 7 8\n(4 6\n",
		`(1 2 3 4 (5 6 7 8 (4 6) 7`,
		`(*`,
	}

	for i := range testCases {
		tokens, table := scan(t, testCases[i])

		{
			err := Parse(tokens, table)
			assert.True(t, errors.Is(err, ErrUnexpectedEOF), testCases[i])
		}

		{
			p := New(tokens, table)
			p.SetOptions(Options{
				AutoCloseOnEOF: true,
			})
			assert.NoError(t, p.Parse(), testCases[i])
		}
	}

	// stray close parens are still rejected
	for _, in := range []string{`)`, `(1))`} {
		tokens, table := scan(t, in)
		assert.Error(t, ParseWithOptions(tokens, table, Options{AutoCloseOnEOF: true}), in)
	}
}

func TestParserReuse(t *testing.T) {
	tokens, table := scan(t, `(a (b)) c`)

	p := New(tokens, table)
	assert.NoError(t, p.Parse())
	assert.NoError(t, p.Parse())

	tokens, table = scan(t, `(a (b c)`)
	p = New(tokens, table)
	assert.Error(t, p.Parse())
	assert.Error(t, p.Parse())
}
