package fern_test

import (
	"testing"

	fern "github.com/fernlang/fern"
	"github.com/fernlang/fern/arena"
)

func lexAll(t *testing.T, src string) []fern.Token {
	t.Helper()

	a := arena.New()
	t.Cleanup(a.Destroy)

	l := fern.NewLexer(a, "test.fn", []byte(src))

	var toks []fern.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)

		if tok.Kind == fern.TokEOF {
			break
		}
	}

	return toks
}

func kinds(toks []fern.Token) []fern.TokenKind {
	ks := make([]fern.TokenKind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}

	return ks
}

func TestLexerSimpleExpression(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "1 + 2")

	got := kinds(toks)
	want := []fern.TokenKind{fern.TokInt, fern.TokPlus, fern.TokInt, fern.TokEOF}

	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerIdentifierVsKeyword(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "let letter")

	if toks[0].Kind != fern.TokLet {
		t.Errorf("toks[0].Kind = %v, want TokLet", toks[0].Kind)
	}

	if toks[1].Kind != fern.TokIdent {
		t.Errorf("toks[1].Kind = %v, want TokIdent", toks[1].Kind)
	}

	if toks[1].Text != "letter" {
		t.Errorf("toks[1].Text = %q, want %q", toks[1].Text, "letter")
	}
}

func TestLexerIndentDedent(t *testing.T) {
	t.Parallel()

	src := "if true\n  1\nelse\n  2\n"
	toks := lexAll(t, src)

	var sawIndent, sawDedent bool
	for _, tok := range toks {
		switch tok.Kind {
		case fern.TokIndent:
			sawIndent = true
		case fern.TokDedent:
			sawDedent = true
		}
	}

	if !sawIndent {
		t.Error("expected at least one INDENT token")
	}

	if !sawDedent {
		t.Error("expected at least one DEDENT token")
	}
}

func TestLexerBracketsSuppressLayout(t *testing.T) {
	t.Parallel()

	// A newline inside parentheses must not synthesize layout tokens; the
	// bracket-depth counter suppresses INDENT/DEDENT/NEWLINE while depth > 0.
	src := "(\n  1,\n  2\n)"
	toks := lexAll(t, src)

	for _, tok := range toks {
		if tok.IsLayout() {
			t.Errorf("unexpected layout token %v inside brackets", tok.Kind)
		}
	}
}

func TestLexerStringInterpolation(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, `"hello {name}!"`)

	got := kinds(toks)
	want := []fern.TokenKind{fern.TokStringBegin, fern.TokIdent, fern.TokStringEnd, fern.TokEOF}

	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerUnterminatedStringEmitsErrorToken(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, `"unterminated`)

	found := false
	for _, tok := range toks {
		if tok.Kind == fern.TokError {
			found = true
		}
	}

	if !found {
		t.Error("expected an ERROR token for an unterminated string, lexer must not abort")
	}
}

func TestLexerSaveRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	a := arena.New()
	defer a.Destroy()

	l := fern.NewLexer(a, "test.fn", []byte("1 + 2"))

	first := l.Next()

	state := l.Save()

	second := l.Next()

	l.Restore(state)

	secondAgain := l.Next()

	if second.Kind != secondAgain.Kind || second.Text != secondAgain.Text {
		t.Errorf("after Restore, Next() = %v, want %v (first token was %v)", secondAgain, second, first)
	}
}
