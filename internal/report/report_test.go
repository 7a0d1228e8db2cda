package report

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/minilisp/lexer"
	"github.com/xiam/minilisp/parser"
)

func TestDiagnostic(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{"(foo\n  1abc)", "scan failed at row 2 column 3: invalid character"},
		{")", "parse failed at row 1 column 1: unexpected token"},
		{"(a)\n (b))", "parse failed at row 2 column 5: unexpected trailing input"},
		{"(+ 1 2", "parse failed: unexpected end of input"},
	}

	for i := range testCases {
		tokens, table, err := lexer.Scan([]byte(testCases[i].In))
		if err == nil {
			err = parser.Parse(tokens, table)
		}
		require.Error(t, err, testCases[i].In)

		assert.Equal(t, testCases[i].Out, Diagnostic(err))
		assert.Equal(t, testCases[i].Out, Diagnostic(fmt.Errorf("wrapped: %w", err)))
	}

	assert.Equal(t, "could not read file", Diagnostic(errors.New("could not read file")))
}

func TestPrinter(t *testing.T) {
	tokens, table, err := lexer.Scan([]byte("(+ 1\n  \"a\")"))
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	p := New(&out, &errOut, false)

	p.Header("Scanner")
	p.Tokens(tokens)
	p.Table(table)
	p.Success()

	expected := "=====================\n" +
		"====== Scanner ======\n" +
		"=====================\n" +
		"tokens:\n" +
		"<open_paren, 0> <plus_op, 1> <const, 2> <const, 3> <close_paren, 4>\n" +
		"\n" +
		"token table:\n" +
		"  0: row 1 col 1\n" +
		"  1: row 1 col 2\n" +
		"  2: row 1 col 4 int 1\n" +
		"  3: row 2 col 3 string \"a\"\n" +
		"  4: row 2 col 6\n" +
		"\n" +
		"parsing success\n"

	assert.Equal(t, expected, out.String())
	assert.Empty(t, errOut.String())

	p.Failure(parser.Parse(tokens[:2], table))
	assert.Equal(t, "parse failed: unexpected end of input\n", errOut.String())
}

func TestPrinterColor(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out, true)

	p.Success()
	assert.Contains(t, out.String(), "parsing success")
}
