package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	fern "github.com/fernlang/fern"
)

var (
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4212E"))
	locStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8899A6"))
	caretStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1D9BF0"))
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E7E9EA"))
)

// colorEnabled resolves the --color/--no-color flags against stderr's TTY
// status, mirroring mattn/go-isatty's role in the teacher's TUI formatter.
func colorEnabled(colorFlag, noColorFlag bool) bool {
	switch {
	case noColorFlag:
		return false
	case colorFlag:
		return true
	default:
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
}

// renderDiagnostic formats one diagnostic as a filename:line:col banner plus
// a source snippet with a caret, in color when enabled, else falling back to
// fern.Diagnostic's own plain Render.
func renderDiagnostic(d fern.Diagnostic, source string, color bool) string {
	if !color {
		return d.Render(source)
	}

	var b strings.Builder

	b.WriteString(locStyle.Render(d.Loc.String()))
	b.WriteString(": ")
	b.WriteString(errorStyle.Render(d.Severity))
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteByte('\n')

	line := sourceLine(source, d.Loc.Line)
	if line != "" {
		b.WriteString(sourceStyle.Render(line))
		b.WriteByte('\n')

		col := d.Loc.Column
		if col < 1 {
			col = 1
		}

		b.WriteString(strings.Repeat(" ", col-1))
		b.WriteString(caretStyle.Render("^"))
		b.WriteByte('\n')
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
