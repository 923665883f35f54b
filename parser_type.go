package fern

// parseTypeAnn parses one type annotation: named (with optional type
// arguments), function, or tuple.
func (p *Parser) parseTypeAnn() TypeAnn {
	loc := p.current.Loc

	if p.check(TokLParen) {
		return p.parseParenTypeAnn(loc)
	}

	if p.check(TokIdent) {
		return p.parseNamedTypeAnn(loc)
	}

	p.errorAt(p.current, "expected type, got "+p.current.Kind.String())

	if !p.check(TokEOF) {
		p.advance()
	}

	return NewNamedType(p.arena, loc, "<error>", nil)
}

func (p *Parser) parseNamedTypeAnn(loc SourceLoc) TypeAnn {
	name := p.current.Text
	p.advance()

	var args []TypeAnn

	if p.match(TokLt) {
		args = append(args, p.parseTypeAnn())

		for p.match(TokComma) {
			args = append(args, p.parseTypeAnn())
		}

		p.expect(TokGt, "'>'")
	}

	return NewNamedType(p.arena, loc, name, args)
}

// parseParenTypeAnn parses a parenthesised type: a function type
// `(T, U) -> R`, a grouped single type, or a tuple type.
func (p *Parser) parseParenTypeAnn(loc SourceLoc) TypeAnn {
	p.advance() // consume '('

	if p.match(TokRParen) {
		if p.match(TokArrow) {
			return NewFuncTypeAnn(p.arena, loc, nil, p.parseTypeAnn())
		}

		return NewTupleTypeAnn(p.arena, loc, nil)
	}

	elems := []TypeAnn{p.parseTypeAnn()}

	for p.match(TokComma) {
		if p.check(TokRParen) {
			break
		}

		elems = append(elems, p.parseTypeAnn())
	}

	p.expect(TokRParen, "')'")

	if p.match(TokArrow) {
		return NewFuncTypeAnn(p.arena, loc, elems, p.parseTypeAnn())
	}

	if len(elems) == 1 {
		return elems[0]
	}

	return NewTupleTypeAnn(p.arena, loc, elems)
}
