package parser

import (
	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/source"
	"dangle/internal/token"
)

// Parser walks one token stream and records every comma-delimited construct
// it encounters, with exact token-index ranges. It is tolerant: an
// unexpected token yields a SYN diagnostic and a one-token resync rather
// than an abort, so style checking still covers the rest of the file.
type Parser struct {
	stream     *token.Stream
	i          int
	reporter   diag.Reporter
	constructs []ast.Construct
}

// Parse consumes the stream and returns the constructs in depth-first
// source order.
func Parse(stream *token.Stream, reporter diag.Reporter) []ast.Construct {
	p := &Parser{
		stream:   stream,
		reporter: reporter,
	}
	p.parseProgram()
	ast.SortPreOrder(p.constructs)
	return p.constructs
}

func (p *Parser) parseProgram() {
	for !p.at(token.EOF) {
		before := p.i
		p.parseStatement()
		if p.i == before {
			// Safety net: parseStatement must always make progress.
			p.next()
		}
	}
}

// --- token helpers ---

func (p *Parser) cur() token.Token { return p.stream.At(p.i) }

func (p *Parser) at(k token.Kind) bool { return p.stream.At(p.i).Kind == k }

func (p *Parser) peekAt(ahead int, k token.Kind) bool {
	return p.stream.At(p.i+ahead).Kind == k
}

// next consumes the current token and returns its stream index.
func (p *Parser) next() int {
	idx := p.i
	if p.i < p.stream.Len()-1 {
		p.i++
	}
	return idx
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (int, bool) {
	if p.at(k) {
		return p.next(), true
	}
	p.err(code, msg)
	return ast.NoTok, false
}

func (p *Parser) err(code diag.Code, msg string) {
	if p.reporter != nil {
		p.reporter.Report(code, diag.SevError, p.cur().Span, msg, nil, nil)
	}
}

// spanOf covers the spans of the inclusive token index range.
func (p *Parser) spanOf(first, last int) source.Span {
	sp := p.stream.At(first).Span
	return sp.Cover(p.stream.At(last).Span)
}

func (p *Parser) record(con ast.Construct) {
	p.constructs = append(p.constructs, con)
}

// element builds an ordinary-shaped element over a token range.
func (p *Parser) element(kind ast.ElemKind, first, last int) ast.Element {
	return ast.Element{
		Kind:     kind,
		Span:     p.spanOf(first, last),
		FirstTok: first,
		LastTok:  last,
	}
}

// matchDelim returns the index of the closer matching the opener at open,
// or ast.NoTok when the stream ends first. Used for arrow lookahead.
func (p *Parser) matchDelim(open int) int {
	depth := 0
	for j := open; j < p.stream.Len(); j++ {
		switch p.stream.At(j).Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
			if depth == 0 {
				return j
			}
		case token.EOF:
			return ast.NoTok
		}
	}
	return ast.NoTok
}

// --- statements ---

func (p *Parser) parseStatement() {
	switch p.cur().Kind {
	case token.Semicolon:
		p.next()
	case token.KwImport:
		p.parseImport()
	case token.KwExport:
		p.parseExport()
	case token.KwConst, token.KwLet, token.KwVar:
		p.parseVarDecl()
	case token.KwFunction:
		p.parseFunction(ast.FuncDeclParams)
	case token.KwAsync:
		if p.peekAt(1, token.KwFunction) {
			p.next()
			p.parseFunction(ast.FuncDeclParams)
			return
		}
		p.parseExprStatement()
	case token.KwReturn:
		p.next()
		switch p.cur().Kind {
		case token.Semicolon, token.RBrace, token.EOF:
		default:
			p.parseAssignExpr()
		}
		p.eatSemicolon()
	case token.LBrace:
		p.parseBlock()
	case token.EOF:
	default:
		p.parseExprStatement()
	}
}

func (p *Parser) parseExprStatement() {
	before := p.i
	ok := p.parseAssignExpr()
	if !ok && p.i == before {
		p.err(diag.SynUnexpectedToken, "unexpected token '"+p.cur().Text+"'")
		p.next()
		return
	}
	// Tolerate comma sequences at statement level.
	for p.at(token.Comma) {
		p.next()
		p.parseAssignExpr()
	}
	p.eatSemicolon()
}

func (p *Parser) eatSemicolon() {
	if p.at(token.Semicolon) {
		p.next()
	}
}

func (p *Parser) parseBlock() {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		return
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.i
		p.parseStatement()
		if p.i == before {
			p.next()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'")
}

func (p *Parser) parseVarDecl() {
	p.next() // const | let | var
	for {
		if !p.parseBindingTarget() {
			return
		}
		if p.at(token.Assign) {
			p.next()
			p.parseAssignExpr()
		}
		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}
	p.eatSemicolon()
}
