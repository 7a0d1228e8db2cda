// Package report prints token streams, position tables and diagnostics.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xiam/minilisp/lexer"
	"github.com/xiam/minilisp/parser"
)

// Printer writes reports to out and diagnostics to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

// New creates a printer. Styles are only applied when color is true.
func New(out, errOut io.Writer, color bool) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		color:  color,
	}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Header prints a banner for a section of the report.
func (p *Printer) Header(title string) {
	line := "====== " + title + " ======"
	bar := strings.Repeat("=", len(line))

	fmt.Fprintln(p.out, p.render(headerStyle, bar))
	fmt.Fprintln(p.out, p.render(headerStyle, line))
	fmt.Fprintln(p.out, p.render(headerStyle, bar))
}

// Tokens prints the token stream on a single line.
func (p *Printer) Tokens(tokens []lexer.Token) {
	fmt.Fprintln(p.out, "tokens:")

	items := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		items = append(items, fmt.Sprintf("<%s, %s>",
			p.render(kindStyle, tok.Type().String()),
			p.render(indexStyle, fmt.Sprintf("%d", tok.Index())),
		))
	}
	fmt.Fprintln(p.out, strings.Join(items, " "))
	fmt.Fprintln(p.out)
}

// Table prints one line per entry, with 1-indexed rows and columns.
func (p *Printer) Table(table lexer.Table) {
	fmt.Fprintln(p.out, "token table:")

	for i, entry := range table {
		line := fmt.Sprintf("%3d: row %d col %d", i, entry.Row+1, entry.Col+1)
		if entry.Value != nil {
			line += fmt.Sprintf(" %v %s", entry.Value.Type(), entry.Value.Encode())
		}
		fmt.Fprintln(p.out, line)
	}
	fmt.Fprintln(p.out)
}

// Success reports a successful parse.
func (p *Printer) Success() {
	fmt.Fprintln(p.out, p.render(successStyle, "parsing success"))
}

// Failure prints a one line diagnostic for err.
func (p *Printer) Failure(err error) {
	fmt.Fprintln(p.errOut, p.render(errorStyle, Diagnostic(err)))
}

// Diagnostic names the failing stage, the 1-indexed position (when there is
// one) and the kind of error.
func Diagnostic(err error) string {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return fmt.Sprintf("scan failed at %v: %v", lexErr.Pos, lexErr.Err)
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		if parseErr.HasPos {
			return fmt.Sprintf("parse failed at %v: %v", parseErr.Pos, parseErr.Err)
		}
		return fmt.Sprintf("parse failed: %v", parseErr.Err)
	}

	return err.Error()
}
