package parser

import (
	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/token"
)

// parseFunction parses `function name? (params) { body }` for declarations
// and expressions; kind picks the construct variant.
func (p *Parser) parseFunction(kind ast.Kind) {
	p.next() // 'function'
	if p.at(token.Star) {
		p.next() // generator
	}
	if p.cur().IsIdentLike() {
		p.next()
	}
	p.parseFunctionTail(kind)
}

// parseMethodTail parses the params+body of a method shorthand; methods are
// function expressions for checking purposes.
func (p *Parser) parseMethodTail() bool {
	p.parseFunctionTail(ast.FuncExprParams)
	return true
}

func (p *Parser) parseFunctionTail(kind ast.Kind) {
	lp, elems, rp, ok := p.parseParams()
	if !ok {
		return
	}
	bodyTok := ast.NoTok
	if p.at(token.LBrace) {
		bodyTok = p.i
		p.parseBlock()
	} else {
		p.err(diag.SynUnexpectedToken, "expected '{' to open function body")
	}
	p.record(ast.Construct{
		Kind:     kind,
		Span:     p.spanOf(lp, rp),
		FirstTok: lp,
		LastTok:  rp,
		Elems:    elems,
		BodyTok:  bodyTok,
	})
}

// parseArrow parses `(params) => body`. Arrow parameter lists never carry a
// BodyTok: the anchor-token lookup for arrows goes through the last
// parameter, not the body, so expression bodies work the same as blocks.
func (p *Parser) parseArrow() bool {
	lp, elems, rp, ok := p.parseParams()
	if !ok {
		return false
	}
	if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '=>'"); !ok {
		return false
	}
	p.record(ast.Construct{
		Kind:     ast.ArrowParams,
		Span:     p.spanOf(lp, rp),
		FirstTok: lp,
		LastTok:  rp,
		Elems:    elems,
		BodyTok:  ast.NoTok,
	})
	return p.parseArrowBody()
}

func (p *Parser) parseArrowBody() bool {
	if p.at(token.LBrace) {
		p.parseBlock()
		return true
	}
	return p.parseAssignExpr()
}

// parseParams parses '(' params ')'. Rest parameters are ElemRest: the
// grammar forbids a comma after them.
func (p *Parser) parseParams() (lp int, elems []ast.Element, rp int, ok bool) {
	lp, ok = p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")
	if !ok {
		return ast.NoTok, nil, ast.NoTok, false
	}
	elems = make([]ast.Element, 0, 4)

	for !p.at(token.RParen) && !p.at(token.EOF) {
		if n := len(elems); n > 0 && elems[n-1].Kind == ast.ElemRest {
			p.err(diag.SynRestMustBeLast, "rest parameter must be last")
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

	rp, ok = p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parameters")
	if !ok {
		rp = p.i - 1
	}
	return lp, elems, rp, ok
}
