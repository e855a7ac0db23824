package parser

import (
	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/token"
)

// parseAssignExpr parses a single assignment-level expression. Operator
// structure is deliberately flat: the checker only needs the constructs, not
// precedence-faithful trees.
func (p *Parser) parseAssignExpr() bool {
	if !p.parseConditional() {
		return false
	}
	if p.at(token.Assign) {
		p.next()
		return p.parseAssignExpr()
	}
	return true
}

func (p *Parser) parseConditional() bool {
	if !p.parseBinary() {
		return false
	}
	if p.at(token.Question) {
		p.next()
		p.parseAssignExpr()
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional"); !ok {
			return false
		}
		p.parseAssignExpr()
	}
	return true
}

func (p *Parser) parseBinary() bool {
	if !p.parseUnary() {
		return false
	}
	for {
		switch p.cur().Kind {
		case token.Op, token.Star, token.KwIn:
			p.next()
			if !p.parseUnary() {
				return false
			}
		default:
			return true
		}
	}
}

func (p *Parser) parseUnary() bool {
	for p.at(token.Op) || p.at(token.Ellipsis) {
		// Prefix operators; a stray spread lands here only on malformed
		// input and is consumed for resync.
		p.next()
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by member access and
// call chains. Each argument list becomes a CallArgs construct.
func (p *Parser) parsePostfix() bool {
	calleeStart := p.i
	if !p.parsePrimary() {
		return false
	}
	for {
		switch p.cur().Kind {
		case token.Dot:
			p.next()
			if p.cur().IsIdentLike() || isKeywordName(p.cur().Kind) {
				p.next()
			} else {
				p.err(diag.SynExpectIdentifier, "expected property name after '.'")
				return false
			}
		case token.LBracket:
			p.next()
			p.parseAssignExpr()
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']'"); !ok {
				return false
			}
		case token.LParen:
			if !p.parseArguments(ast.CallArgs, calleeStart) {
				return false
			}
		case token.TemplateLit:
			// Tagged template.
			p.next()
		default:
			return true
		}
	}
}

func (p *Parser) parsePrimary() bool {
	cur := p.cur()
	switch {
	case cur.Kind == token.KwAsync && (p.arrowAhead(1) || (p.peekAt(1, token.Ident) && p.peekAt(2, token.Arrow))):
		p.next()
		return p.parsePrimary()
	case cur.IsIdentLike():
		ident := p.next()
		if p.at(token.Arrow) {
			// Single unparenthesized parameter: no bracketed list exists,
			// so no construct is recorded.
			p.next()
			return p.parseArrowBody()
		}
		_ = ident
		return true
	case cur.IsLiteral():
		p.next()
		return true
	case cur.Kind == token.LParen:
		if p.arrowAhead(0) {
			return p.parseArrow()
		}
		p.next()
		p.parseAssignExpr()
		for p.at(token.Comma) {
			p.next()
			p.parseAssignExpr()
		}
		_, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'")
		return ok
	case cur.Kind == token.LBrace:
		return p.parseObjectLiteral()
	case cur.Kind == token.LBracket:
		return p.parseArrayLiteral()
	case cur.Kind == token.KwFunction:
		p.parseFunction(ast.FuncExprParams)
		return true
	case cur.Kind == token.KwNew:
		return p.parseNew()
	default:
		p.err(diag.SynExpectExpression, "expected expression, got '"+cur.Text+"'")
		return false
	}
}

// arrowAhead reports whether the '(' at offset ahead opens an arrow
// parameter list, i.e. its matching ')' is immediately followed by '=>'.
func (p *Parser) arrowAhead(ahead int) bool {
	open := p.i + ahead
	if p.stream.At(open).Kind != token.LParen {
		return false
	}
	close := p.matchDelim(open)
	if close == ast.NoTok {
		return false
	}
	return p.stream.At(close+1).Kind == token.Arrow
}

func (p *Parser) parseObjectLiteral() bool {
	lb := p.next() // '{'
	elems := make([]ast.Element, 0, 4)

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		first := p.i
		if p.at(token.Ellipsis) {
			// Spread property: the grammar permits a comma after it.
			p.next()
			if !p.parseAssignExpr() {
				break
			}
			elems = append(elems, p.element(ast.ElemOrdinary, first, p.i-1))
		} else if !p.parseProperty() {
			break
		} else {
			elems = append(elems, p.element(ast.ElemOrdinary, first, p.i-1))
		}
		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}

	rb, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close object literal")
	if !ok {
		rb = p.i - 1
	}
	p.record(ast.Construct{
		Kind:     ast.ObjectLit,
		Span:     p.spanOf(lb, rb),
		FirstTok: lb,
		LastTok:  rb,
		Elems:    elems,
		BodyTok:  ast.NoTok,
	})
	return true
}

// parseProperty handles `key: value`, shorthand, shorthand with default,
// method shorthand, and get/set accessors.
func (p *Parser) parseProperty() bool {
	// Accessor: get/set followed by another property key.
	if cur := p.cur(); cur.Kind == token.Ident && (cur.Text == "get" || cur.Text == "set") {
		next := p.stream.At(p.i + 1)
		if next.IsIdentLike() || isKeywordName(next.Kind) ||
			next.Kind == token.StringLit || next.Kind == token.NumberLit || next.Kind == token.LBracket {
			p.next()
		}
	}
	if !p.parsePropertyKey() {
		return false
	}
	switch p.cur().Kind {
	case token.Colon:
		p.next()
		return p.parseAssignExpr()
	case token.LParen:
		// Method shorthand: parameter list plus block body.
		return p.parseMethodTail()
	case token.Assign:
		// Shorthand default, valid when the literal reparses as a pattern.
		p.next()
		return p.parseAssignExpr()
	default:
		// Shorthand property.
		return true
	}
}

func (p *Parser) parseArrayLiteral() bool {
	lb := p.next() // '['
	elems := make([]ast.Element, 0, 4)

	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			hole := p.next()
			elems = append(elems, ast.Element{
				Kind:     ast.ElemHole,
				Span:     p.stream.At(hole).Span,
				FirstTok: ast.NoTok,
				LastTok:  ast.NoTok,
			})
			continue
		}

		first := p.i
		if p.at(token.Ellipsis) {
			p.next()
			if !p.parseAssignExpr() {
				break
			}
		} else if !p.parseAssignExpr() {
			break
		}
		elems = append(elems, p.element(ast.ElemOrdinary, first, p.i-1))

		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}

	rb, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close array literal")
	if !ok {
		rb = p.i - 1
	}
	p.record(ast.Construct{
		Kind:     ast.ArrayLit,
		Span:     p.spanOf(lb, rb),
		FirstTok: lb,
		LastTok:  rb,
		Elems:    elems,
		BodyTok:  ast.NoTok,
	})
	return true
}

func (p *Parser) parseNew() bool {
	p.next() // 'new'
	// Member-only callee; a '(' after it is the constructor argument list.
	calleeStart := p.i
	if !p.parsePrimary() {
		return false
	}
	for {
		switch p.cur().Kind {
		case token.Dot:
			p.next()
			if p.cur().IsIdentLike() || isKeywordName(p.cur().Kind) {
				p.next()
			} else {
				return false
			}
		case token.LBracket:
			p.next()
			p.parseAssignExpr()
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']'"); !ok {
				return false
			}
		case token.LParen:
			return p.parseArguments(ast.NewArgs, calleeStart)
		default:
			// `new Foo` without parens: no argument list, no construct.
			return true
		}
	}
}

// parseArguments parses '(' args ')' and records a CallArgs/NewArgs
// construct covering the parentheses.
func (p *Parser) parseArguments(kind ast.Kind, calleeStart int) bool {
	lp := p.next() // '('
	elems := make([]ast.Element, 0, 4)

	for !p.at(token.RParen) && !p.at(token.EOF) {
		first := p.i
		if p.at(token.Ellipsis) {
			// Spread argument: a trailing comma after it stays legal.
			p.next()
			if !p.parseAssignExpr() {
				break
			}
		} else if !p.parseAssignExpr() {
			break
		}
		elems = append(elems, p.element(ast.ElemOrdinary, first, p.i-1))

		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}

	rp, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close arguments")
	if !ok {
		rp = p.i - 1
	}
	p.record(ast.Construct{
		Kind:     kind,
		Span:     p.spanOf(lp, rp),
		FirstTok: calleeStart,
		LastTok:  rp,
		Elems:    elems,
		BodyTok:  ast.NoTok,
	})
	return ok
}
