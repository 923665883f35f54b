package fern

import "fmt"

// parseTopLevelStmt dispatches on the current token to parse exactly one
// statement, consuming a leading `pub` modifier where applicable.
func (p *Parser) parseTopLevelStmt() Stmt {
	isPublic := p.match(TokPub)

	switch p.current.Kind {
	case TokLet:
		return p.parseLetStmt()
	case TokFn:
		return p.parseFnStmt(isPublic)
	case TokReturn:
		return p.parseReturnStmt()
	case TokDefer:
		return p.parseDeferStmt()
	case TokBreak:
		return p.parseBreakStmt()
	case TokContinue:
		return p.parseContinueStmt()
	case TokType:
		return p.parseTypeDeclStmt(isPublic)
	case TokTrait:
		return p.parseTraitStmt()
	case TokImpl:
		return p.parseImplStmt()
	case TokNewtype:
		return p.parseNewtypeStmt(isPublic)
	case TokModule:
		return p.parseModuleStmt()
	case TokImport:
		return p.parseImportStmt()
	}

	loc := p.current.Loc

	return NewExprStmt(p.arena, loc, p.parseExpr())
}

func (p *Parser) parseLetStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'let'

	pat := p.parsePattern()

	var typ TypeAnn
	if p.match(TokColon) {
		typ = p.parseTypeAnn()
	}

	p.expect(TokEq, "'='")

	value := p.parseExpr()

	var els Expr

	if p.match(TokElse) {
		p.match(TokColon) // optional, either inline or colon-introduced
		els = p.parseBodyForm()
	}

	return NewLetStmt(p.arena, loc, pat, typ, value, els)
}

func (p *Parser) parseReturnStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'return'

	var value Expr
	if p.canStartExprForReturn() {
		value = p.parseExpr()
	}

	var cond Expr

	// A postfix `if`/`unless` only attaches when no dedent was crossed
	// reaching it, so a block-terminating dedent never accidentally binds
	// (spec.md §4.2, "Return with postfix guard").
	if p.dedentSeen == 0 {
		switch {
		case p.match(TokIf):
			cond = p.parseExpr()
		case p.match(TokUnless):
			cond = NewUnary(p.arena, p.previous.Loc, OpNot, p.parseExpr())
		}
	}

	return NewReturnStmt(p.arena, loc, value, cond)
}

// canStartExprForReturn reports whether the current token could begin the
// optional value expression of a bare `return`.
func (p *Parser) canStartExprForReturn() bool {
	switch p.current.Kind {
	case TokNewline, TokDedent, TokEOF, TokIf, TokUnless, TokRBrace, TokComma:
		return false
	}

	return true
}

func (p *Parser) parseDeferStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'defer'

	return NewDeferStmt(p.arena, loc, p.parseExpr())
}

func (p *Parser) parseBreakStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'break'

	var value Expr
	if p.canStartExprForReturn() {
		value = p.parseExpr()
	}

	return NewBreakStmt(p.arena, loc, value)
}

func (p *Parser) parseContinueStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'continue'

	return NewContinueStmt(p.arena, loc)
}

// parseTypedParams parses a comma-separated `name: Type` parameter list for
// a single-clause function, up to (not including) the closing `)`.
func (p *Parser) parseTypedParams() []Param {
	var params []Param

	if p.check(TokRParen) {
		return nil
	}

	for {
		name := p.expect(TokIdent, "parameter name").Text
		p.expect(TokColon, "':'")
		typ := p.parseTypeAnn()
		params = append(params, Param{Name: name, Type: typ})

		if !p.match(TokComma) {
			break
		}

		if p.check(TokRParen) {
			break
		}
	}

	return params
}

// parseFnStmt implements spec.md §4.2's typed-vs-pattern parameter
// disambiguation: after `fn name (`, if the first parameter is an
// identifier immediately followed by `:`, every parameter is typed and this
// is the single-clause shape; otherwise parameters are patterns and this is
// one clause of a (potentially multi-clause) function.
func (p *Parser) parseFnStmt(isPublic bool) Stmt {
	loc := p.current.Loc
	p.advance() // consume 'fn'

	name := p.expect(TokIdent, "function name").Text
	p.expect(TokLParen, "'('")

	isTyped := false

	if p.check(TokIdent) {
		snap := p.snapshot()
		p.advance()
		isTyped = p.check(TokColon)
		p.rewind(snap)
	}

	if isTyped {
		return p.parseSingleClauseFn(loc, name, isPublic)
	}

	return p.parseMultiClauseFnClause(loc, name, isPublic)
}

func (p *Parser) parseSingleClauseFn(loc SourceLoc, name string, isPublic bool) Stmt {
	params := p.parseTypedParams()
	p.expect(TokRParen, "')'")

	var ret TypeAnn
	if p.match(TokArrow) {
		ret = p.parseTypeAnn()
	}

	var where []Expr

	if p.match(TokWhere) {
		where = append(where, p.parseExpr())

		for p.match(TokComma) {
			where = append(where, p.parseExpr())
		}
	}

	p.expect(TokColon, "':'")

	body := p.parseBodyForm()

	return NewFnStmtSingle(p.arena, loc, name, isPublic, params, ret, where, body)
}

// parseMultiClauseFnClause parses one `fn name(patterns) -> [ReturnType:] body`
// clause. Whether a return type is present is resolved by speculatively
// parsing a type, then checking for the trailing `:` that only a return
// type annotation would be followed by; without it, the parse is rewound
// and the same tokens are re-read as the clause body expression.
func (p *Parser) parseMultiClauseFnClause(loc SourceLoc, name string, isPublic bool) Stmt {
	var patterns []Pattern

	if !p.check(TokRParen) {
		patterns = append(patterns, p.parsePattern())

		for p.match(TokComma) {
			patterns = append(patterns, p.parsePattern())
		}
	}

	p.expect(TokRParen, "')'")
	p.expect(TokArrow, "'->'")

	var ret TypeAnn

	snap := p.snapshot()
	maybeType := p.parseTypeAnn()

	var body Expr

	if p.check(TokColon) && len(p.diagnostics) == snap.diagCount {
		p.advance()

		ret = maybeType
		body = p.parseBodyForm()
	} else {
		p.rewind(snap)

		body = p.parseBodyForm()
	}

	clause := FnClause{Patterns: patterns, ReturnType: ret, Body: body}

	return NewFnStmtMulti(p.arena, loc, name, isPublic, []FnClause{clause})
}

func (p *Parser) parseTypeDeclStmt(isPublic bool) Stmt {
	loc := p.current.Loc
	p.advance() // consume 'type'

	name := p.expect(TokIdent, "type name").Text

	var typeParams []string

	if p.match(TokLt) {
		typeParams = append(typeParams, p.expect(TokIdent, "type parameter").Text)

		for p.match(TokComma) {
			typeParams = append(typeParams, p.expect(TokIdent, "type parameter").Text)
		}

		p.expect(TokGt, "'>'")
	}

	p.expect(TokEq, "'='")

	var fields []RecordField

	var variants []SumVariant

	if p.isSumTypeStart() {
		variants = p.parseSumVariants()
	} else {
		fields = p.parseRecordFields()
	}

	var derive []string

	if p.match(TokDerive) {
		p.expect(TokLParen, "'('")
		derive = append(derive, p.expect(TokIdent, "trait name").Text)

		for p.match(TokComma) {
			derive = append(derive, p.expect(TokIdent, "trait name").Text)
		}

		p.expect(TokRParen, "')'")
	}

	return NewTypeDeclStmt(p.arena, loc, name, isPublic, typeParams, fields, variants, derive)
}

// isSumTypeStart distinguishes a sum-type definition (`| Variant(...) | ...`)
// from a record definition (`{ field: Type, ... }`) by its leading token.
func (p *Parser) isSumTypeStart() bool {
	return p.check(TokPipe)
}

func (p *Parser) parseSumVariants() []SumVariant {
	var variants []SumVariant

	for p.match(TokPipe) {
		name := p.expect(TokIdent, "variant name").Text

		var fields []TypeAnn

		if p.match(TokLParen) {
			if !p.check(TokRParen) {
				fields = append(fields, p.parseTypeAnn())

				for p.match(TokComma) {
					fields = append(fields, p.parseTypeAnn())
				}
			}

			p.expect(TokRParen, "')'")
		}

		variants = append(variants, SumVariant{Name: name, Fields: fields})
	}

	return variants
}

func (p *Parser) parseRecordFields() []RecordField {
	p.expect(TokLBrace, "'{'")

	var fields []RecordField

	for !p.check(TokRBrace) && !p.check(TokEOF) {
		name := p.expect(TokIdent, "field name").Text
		p.expect(TokColon, "':'")
		typ := p.parseTypeAnn()
		fields = append(fields, RecordField{Name: name, Type: typ})

		if !p.match(TokComma) {
			break
		}
	}

	p.expect(TokRBrace, "'}'")

	return fields
}

func (p *Parser) parseTraitStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'trait'

	name := p.expect(TokIdent, "trait name").Text

	var typeParams []string

	if p.match(TokLt) {
		typeParams = append(typeParams, p.expect(TokIdent, "type parameter").Text)

		for p.match(TokComma) {
			typeParams = append(typeParams, p.expect(TokIdent, "type parameter").Text)
		}

		p.expect(TokGt, "'>'")
	}

	var superTraits []string

	if p.match(TokWhere) {
		superTraits = append(superTraits, p.expect(TokIdent, "super-trait name").Text)

		for p.match(TokComma) {
			superTraits = append(superTraits, p.expect(TokIdent, "super-trait name").Text)
		}
	}

	p.expect(TokColon, "':'")

	methods := p.parseMethodBlock()

	return NewTraitStmt(p.arena, loc, name, typeParams, superTraits, methods)
}

func (p *Parser) parseImplStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'impl'

	traitName := p.expect(TokIdent, "trait name").Text

	var typeArgs []TypeAnn

	if p.match(TokLt) {
		typeArgs = append(typeArgs, p.parseTypeAnn())

		for p.match(TokComma) {
			typeArgs = append(typeArgs, p.parseTypeAnn())
		}

		p.expect(TokGt, "'>'")
	}

	if p.match(TokFor) {
		typeArgs = append(typeArgs, p.parseTypeAnn())
	}

	p.expect(TokColon, "':'")

	methods := p.parseMethodBlock()

	return NewImplStmt(p.arena, loc, traitName, typeArgs, methods)
}

// parseMethodBlock parses the indented sequence of `fn` declarations inside
// a trait or impl body.
func (p *Parser) parseMethodBlock() []*FnStmt {
	var methods []*FnStmt

	for p.check(TokFn) {
		isPublic := false

		fn := p.parseFnStmt(isPublic)
		if f, ok := fn.(*FnStmt); ok {
			methods = append(methods, f)
		}

		if p.dedentSeen > 0 {
			break
		}
	}

	return groupMethodClauses(methods)
}

// groupMethodClauses applies the same adjacent multi-clause merge as
// groupMultiClauseFns, scoped to one trait/impl body's method list.
func groupMethodClauses(methods []*FnStmt) []*FnStmt {
	var out []*FnStmt

	i := 0
	for i < len(methods) {
		m := methods[i]

		if !m.IsMultiClause() {
			out = append(out, m)
			i++

			continue
		}

		j := i + 1

		for j < len(methods) && methods[j].IsMultiClause() && methods[j].Name == m.Name {
			m.Clauses = append(m.Clauses, methods[j].Clauses...)
			j++
		}

		out = append(out, m)
		i = j
	}

	return out
}

func (p *Parser) parseNewtypeStmt(isPublic bool) Stmt {
	loc := p.current.Loc
	p.advance() // consume 'newtype'

	name := p.expect(TokIdent, "type name").Text
	p.expect(TokEq, "'='")

	ctorName := p.expect(TokIdent, "constructor name").Text
	p.expect(TokLParen, "'('")

	inner := p.parseTypeAnn()

	p.expect(TokRParen, "')'")

	return NewNewtypeStmt(p.arena, loc, name, ctorName, inner, isPublic)
}

func (p *Parser) parseModuleStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'module'

	path := p.parseDottedPath()

	return NewModuleStmt(p.arena, loc, path)
}

func (p *Parser) parseImportStmt() Stmt {
	loc := p.current.Loc
	p.advance() // consume 'import'

	path := p.parseDottedPath()

	var items []string

	if p.match(TokLParen) {
		items = append(items, p.expect(TokIdent, "imported name").Text)

		for p.match(TokComma) {
			items = append(items, p.expect(TokIdent, "imported name").Text)
		}

		p.expect(TokRParen, "')'")
	}

	alias := ""

	if p.match(TokAs) {
		alias = p.expect(TokIdent, "alias name").Text
	}

	return NewImportStmt(p.arena, loc, path, items, alias)
}

func (p *Parser) parseDottedPath() []string {
	path := []string{p.expect(TokIdent, "identifier").Text}

	for p.match(TokDot) {
		path = append(path, p.expect(TokIdent, "identifier").Text)
	}

	return path
}

// groupMultiClauseFns is the post-parse pass spec.md §4.2 describes: it
// merges consecutive function statements sharing a name into one node whose
// Clauses list accumulates them in source order, and reports a syntax error
// (without halting) for same-name functions that are not adjacent.
func groupMultiClauseFns(p *Parser, stmts []Stmt) []Stmt {
	seen := make(map[string]bool)

	var out []Stmt

	i := 0
	for i < len(stmts) {
		fn, ok := stmts[i].(*FnStmt)
		if !ok || !fn.IsMultiClause() {
			out = append(out, stmts[i])
			i++

			continue
		}

		if seen[fn.Name] {
			p.errorAtLoc(fn.Loc(), fmt.Sprintf("non-adjacent clauses for function %q", fn.Name))
		}

		j := i + 1

		for j < len(stmts) {
			next, ok := stmts[j].(*FnStmt)
			if !ok || !next.IsMultiClause() || next.Name != fn.Name {
				break
			}

			fn.Clauses = append(fn.Clauses, next.Clauses...)
			j++
		}

		seen[fn.Name] = true
		out = append(out, fn)
		i = j
	}

	return out
}
