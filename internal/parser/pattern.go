package parser

import (
	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/token"
)

// parseBindingTarget parses an identifier, object pattern, or array pattern.
func (p *Parser) parseBindingTarget() bool {
	switch {
	case p.cur().IsIdentLike():
		p.next()
		return true
	case p.at(token.LBrace):
		return p.parseObjectPattern()
	case p.at(token.LBracket):
		return p.parseArrayPattern()
	default:
		p.err(diag.SynExpectPattern, "expected binding pattern, got '"+p.cur().Text+"'")
		return false
	}
}

func (p *Parser) parseObjectPattern() bool {
	lb := p.next() // '{'
	elems := make([]ast.Element, 0, 4)

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if n := len(elems); n > 0 && elems[n-1].Kind == ast.ElemRest {
			p.err(diag.SynRestMustBeLast, "rest element must be last")
		}
		first := p.i
		if p.at(token.Ellipsis) {
			p.next()
			p.parseBindingTarget()
			elems = append(elems, p.element(ast.ElemRest, first, p.i-1))
		} else {
			if !p.parsePropertyKey() {
				break
			}
			if p.at(token.Colon) {
				p.next()
				if !p.parseBindingTarget() {
					break
				}
			}
			if p.at(token.Assign) {
				p.next()
				p.parseAssignExpr()
			}
			elems = append(elems, p.element(ast.ElemOrdinary, first, p.i-1))
		}
		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}

	rb, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close object pattern")
	if !ok {
		rb = p.i - 1
	}
	p.record(ast.Construct{
		Kind:     ast.ObjectPattern,
		Span:     p.spanOf(lb, rb),
		FirstTok: lb,
		LastTok:  rb,
		Elems:    elems,
		BodyTok:  ast.NoTok,
	})
	return true
}

func (p *Parser) parseArrayPattern() bool {
	lb := p.next() // '['
	elems := make([]ast.Element, 0, 4)

	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if n := len(elems); n > 0 && elems[n-1].Kind == ast.ElemRest {
			p.err(diag.SynRestMustBeLast, "rest element must be last")
		}
		if p.at(token.Comma) {
			// Elision: a comma with no element before it.
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
		kind := ast.ElemOrdinary
		if p.at(token.Ellipsis) {
			p.next()
			kind = ast.ElemRest
			if !p.parseBindingTarget() {
				break
			}
		} else {
			if !p.parseBindingTarget() {
				break
			}
			if p.at(token.Assign) {
				p.next()
				p.parseAssignExpr()
			}
		}
		elems = append(elems, p.element(kind, first, p.i-1))

		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}

	rb, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close array pattern")
	if !ok {
		rb = p.i - 1
	}
	p.record(ast.Construct{
		Kind:     ast.ArrayPattern,
		Span:     p.spanOf(lb, rb),
		FirstTok: lb,
		LastTok:  rb,
		Elems:    elems,
		BodyTok:  ast.NoTok,
	})
	return true
}

// parsePropertyKey accepts identifier-like names, keywords used as names,
// string/number keys, and computed [expr] keys.
func (p *Parser) parsePropertyKey() bool {
	cur := p.cur()
	switch {
	case cur.IsIdentLike() || isKeywordName(cur.Kind):
		p.next()
		return true
	case cur.Kind == token.StringLit || cur.Kind == token.NumberLit:
		p.next()
		return true
	case cur.Kind == token.LBracket:
		p.next()
		p.parseAssignExpr()
		_, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close computed key")
		return ok
	default:
		p.err(diag.SynExpectPropertyName, "expected property name, got '"+cur.Text+"'")
		return false
	}
}

// isKeywordName reports whether a reserved word may serve as a property name.
func isKeywordName(k token.Kind) bool {
	switch k {
	case token.KwImport, token.KwExport, token.KwDefault, token.KwFunction,
		token.KwNew, token.KwConst, token.KwVar, token.KwReturn,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwIn:
		return true
	default:
		return false
	}
}
