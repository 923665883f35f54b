package fern

import (
	"fmt"
	"os"

	"github.com/fernlang/fern/arena"
)

// Parser turns a token stream into an AST. It holds current/previous tokens
// plus two transient signals advance() maintains across layout tokens it
// silently skips: dedentSeen (how many DEDENTs were skipped on the way to the
// current token) and newlineSeen (whether a NEWLINE was
// skipped since the last real token), per spec.md §4.2's token-plumbing
// contract.
type Parser struct {
	arena *arena.Arena
	lex   *Lexer

	current  Token
	previous Token

	dedentSeen  int
	newlineSeen bool

	hadError    bool
	diagnostics []Diagnostic
}

// NewParser constructs a Parser over src, allocating from a.
func NewParser(a *arena.Arena, filename string, src []byte) *Parser {
	p := &Parser{arena: a, lex: NewLexer(a, filename, src)}
	p.advance() // prime p.current

	return p
}

// HadError reports whether any syntax error was recorded during parsing.
func (p *Parser) HadError() bool { return p.hadError }

// Diagnostics returns every syntax error recorded so far, in the order
// encountered.
func (p *Parser) Diagnostics() []Diagnostic { return p.diagnostics }

// advance shifts current into previous and pulls the next non-layout token
// from the lexer, resetting dedentSeen and recomputing newlineSeen for the
// tokens skipped on the way.
func (p *Parser) advance() Token {
	p.previous = p.current
	p.dedentSeen = 0
	p.newlineSeen = false

	for {
		tok := p.lex.Next()

		switch tok.Kind {
		case TokNewline:
			p.newlineSeen = true

			continue
		case TokIndent:
			continue
		case TokDedent:
			p.dedentSeen++

			continue
		}

		p.current = tok

		return p.previous
	}
}

// advanceRaw pulls the single next token from the lexer without skipping
// layout tokens, so INDENT/DEDENT/NEWLINE are seen directly. The parser
// itself does not call it; block parsing reads layout through advance's
// dedentSeen/newlineSeen signals.
func (p *Parser) advanceRaw() Token {
	return p.lex.Next()
}

func (p *Parser) check(kind TokenKind) bool {
	return p.current.Kind == kind
}

func (p *Parser) match(kind TokenKind) bool {
	if !p.check(kind) {
		return false
	}

	p.advance()

	return true
}

// expect consumes current if it has the given kind, else records a syntax
// error and enters panic mode.
func (p *Parser) expect(kind TokenKind, what string) Token {
	if p.check(kind) {
		return p.advance()
	}

	p.errorAt(p.current, fmt.Sprintf("expected %s, got %s", what, p.current.Kind))

	return p.current
}

// errorAt records one syntax error: it prints the filename:line:col banner
// with a caret, as spec.md §4.2/§7 require, and sets hadError. It does not
// raise a control-flow exception; callers keep parsing.
func (p *Parser) errorAt(tok Token, msg string) {
	p.errorAtLoc(tok.Loc, msg)
}

// errorAtLoc is errorAt for callers (the multi-clause grouping pass) that
// only have a SourceLoc, not a Token.
func (p *Parser) errorAtLoc(loc SourceLoc, msg string) {
	p.hadError = true

	d := Diagnostic{Severity: "error", Message: msg, Loc: loc}
	p.diagnostics = append(p.diagnostics, d)
	fmt.Fprint(os.Stderr, d.Render(string(p.lex.src)))
}

// parserSnapshot is everything a speculative parse (lambda-vs-tuple,
// labelled-vs-positional call argument) needs to roll back: the full lexer
// state plus the parser's own current/previous tokens and transient
// signals.
type parserSnapshot struct {
	lex         LexerState
	current     Token
	previous    Token
	dedentSeen  int
	newlineSeen bool
	hadError    bool
	diagCount   int
}

func (p *Parser) snapshot() parserSnapshot {
	return parserSnapshot{
		lex:         p.lex.Save(),
		current:     p.current,
		previous:    p.previous,
		dedentSeen:  p.dedentSeen,
		newlineSeen: p.newlineSeen,
		hadError:    p.hadError,
		diagCount:   len(p.diagnostics),
	}
}

func (p *Parser) rewind(s parserSnapshot) {
	p.lex.Restore(s.lex)
	p.current = s.current
	p.previous = s.previous
	p.dedentSeen = s.dedentSeen
	p.newlineSeen = s.newlineSeen
	p.hadError = s.hadError
	p.diagnostics = p.diagnostics[:s.diagCount]
}

// synchronize advances tokens until a plausible statement boundary is
// reached (a keyword that starts a statement, or EOF), clearing panic mode.
func (p *Parser) synchronize() {
	if !p.check(TokEOF) {
		p.advance()
	}

	for !p.check(TokEOF) {
		switch p.current.Kind {
		case TokLet, TokFn, TokReturn, TokDefer, TokBreak, TokContinue,
			TokType, TokTrait, TokImpl, TokNewtype, TokModule, TokImport, TokPub:
			return
		}

		p.advance()
	}
}

// ParseProgram parses a whole source file: a sequence of top-level
// statements up to EOF, followed by the multi-clause grouping pass.
func (p *Parser) ParseProgram() []Stmt {
	var stmts []Stmt

	for !p.check(TokEOF) {
		before := p.hadError
		stmts = append(stmts, p.parseTopLevelStmt())

		if p.hadError && !before {
			p.synchronize()
		}
	}

	return groupMultiClauseFns(p, stmts)
}

// ParseStatement parses a single statement; exposed for callers that only
// need one.
func (p *Parser) ParseStatement() Stmt {
	return p.parseTopLevelStmt()
}

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() Expr {
	return p.parseExpr()
}

// ParseType parses a single type annotation.
func (p *Parser) ParseType() TypeAnn {
	return p.parseTypeAnn()
}

// Parse is the package-level convenience entry point: it allocates nothing
// itself (the caller owns the arena) and returns the parsed program plus any
// diagnostics recorded along the way. This mirrors the teacher's top-level
// Parse(data []byte) (*Suite, error) shape, generalised to return
// diagnostics instead of a single error since the front end never aborts on
// the first mistake (spec.md §7).
func Parse(a *arena.Arena, filename string, src []byte) ([]Stmt, []Diagnostic) {
	p := NewParser(a, filename, src)
	program := p.ParseProgram()

	return program, p.Diagnostics()
}
