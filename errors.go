package fern

import (
	"fmt"
	"strings"
)

// LexerError is an ERROR token's payload: an unterminated string or an
// unrecognised character. The lexer never aborts on one of these; it emits
// an ERROR token carrying the offending span and continues with the next
// character, per spec.md §4.1's failure model.
type LexerError struct {
	Msg string
	Loc SourceLoc
	Ch  rune
}

func (e *LexerError) Error() string {
	if e.Ch != 0 {
		return fmt.Sprintf("%s: %s: %q", e.Loc, e.Msg, e.Ch)
	}

	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// ParserError is one "expected X, got Y" syntax error. The parser never
// raises a control-flow exception for one of these; it records the error,
// sets had_error, and enters panic mode (spec.md §4.2, §7).
type ParserError struct {
	Msg string
	Loc SourceLoc
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// Diagnostic is the ambient-layer shape both the CLI and the LSP server
// render from a Lexer/ParserError: a severity, message, and location, plus
// an optional rendered source snippet with a caret under the offending
// column (spec.md §7's "diagnostic printed... with a source snippet and
// caret").
type Diagnostic struct {
	Severity string // "error" is currently the only severity the front end emits
	Message  string
	Loc      SourceLoc
}

// NewDiagnostic builds a Diagnostic from any front-end error value.
func NewDiagnostic(err error) Diagnostic {
	switch e := err.(type) {
	case *LexerError:
		return Diagnostic{Severity: "error", Message: e.Msg, Loc: e.Loc}
	case *ParserError:
		return Diagnostic{Severity: "error", Message: e.Msg, Loc: e.Loc}
	default:
		return Diagnostic{Severity: "error", Message: err.Error()}
	}
}

// Render formats the diagnostic as the banner-with-caret the CLI prints to
// stderr: filename:line:column, the message, the offending source line, and
// a caret pointing at the column.
func (d Diagnostic) Render(source string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s: %s\n", d.Loc, d.Severity, d.Message)

	line := sourceLine(source, d.Loc.Line)
	if line != "" {
		b.WriteString(line)
		b.WriteByte('\n')

		col := d.Loc.Column
		if col < 1 {
			col = 1
		}

		b.WriteString(strings.Repeat(" ", col-1))
		b.WriteString("^\n")
	}

	return b.String()
}

func sourceLine(source string, line int) string {
	if line < 1 {
		return ""
	}

	n := 1
	start := 0

	for i := 0; i < len(source); i++ {
		if n == line {
			end := strings.IndexByte(source[i:], '\n')
			if end < 0 {
				return source[i:]
			}

			return source[i : i+end]
		}

		if source[i] == '\n' {
			n++
			start = i + 1
		}
	}

	if n == line {
		return source[start:]
	}

	return ""
}
