package parser

import (
	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/token"
)

// parseImport recognizes the forms:
//
//	import 'mod';
//	import def from 'mod';
//	import * as ns from 'mod';
//	import {a, b as c} from 'mod';
//	import def, {a} from 'mod';
//	import def, * as ns from 'mod';
//
// All specifiers, default and namespace included, become one ImportList
// construct; the checker demands the last slot be a named specifier before
// acting.
func (p *Parser) parseImport() {
	p.next() // 'import'

	if p.at(token.StringLit) {
		// Side-effect import carries no specifier list.
		p.next()
		p.eatSemicolon()
		return
	}

	firstSpec := p.i
	elems := make([]ast.Element, 0, 4)

	switch {
	case p.cur().IsIdentLike():
		first := p.next()
		elems = append(elems, p.element(ast.ElemNonNamed, first, first))
		if p.at(token.Comma) {
			p.next()
			if !p.parseImportSecondary(&elems) {
				return
			}
		}
	case p.at(token.Star):
		if !p.parseNamespaceSpec(&elems) {
			return
		}
	case p.at(token.LBrace):
		if !p.parseNamedList(&elems, "import") {
			return
		}
	default:
		p.err(diag.SynUnexpectedToken, "expected import specifiers, got '"+p.cur().Text+"'")
		return
	}
	lastSpec := p.i - 1

	if _, ok := p.expect(token.KwFrom, diag.SynExpectFrom, "expected 'from' after import clause"); !ok {
		return
	}
	if _, ok := p.expect(token.StringLit, diag.SynExpectModulePath, "expected module path string"); !ok {
		return
	}
	p.eatSemicolon()

	p.record(ast.Construct{
		Kind:     ast.ImportList,
		Span:     p.spanOf(firstSpec, lastSpec),
		FirstTok: firstSpec,
		LastTok:  lastSpec,
		Elems:    elems,
		BodyTok:  ast.NoTok,
	})
}

func (p *Parser) parseImportSecondary(elems *[]ast.Element) bool {
	switch {
	case p.at(token.Star):
		return p.parseNamespaceSpec(elems)
	case p.at(token.LBrace):
		return p.parseNamedList(elems, "import")
	default:
		p.err(diag.SynUnexpectedToken, "expected '*' or '{' after ',' in import clause")
		return false
	}
}

func (p *Parser) parseNamespaceSpec(elems *[]ast.Element) bool {
	first := p.next() // '*'
	if _, ok := p.expect(token.KwAs, diag.SynUnexpectedToken, "expected 'as' after '*'"); !ok {
		return false
	}
	if !p.cur().IsIdentLike() {
		p.err(diag.SynExpectIdentifier, "expected namespace alias")
		return false
	}
	last := p.next()
	*elems = append(*elems, p.element(ast.ElemNonNamed, first, last))
	return true
}

// parseNamedList parses '{' spec (',' spec)* ','? '}' for imports and
// exports; each specifier is an ordinary slot.
func (p *Parser) parseNamedList(elems *[]ast.Element, what string) bool {
	p.next() // '{'

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		first := p.i
		if !p.specifierName() {
			return false
		}
		if p.at(token.KwAs) {
			p.next()
			if !p.specifierName() {
				return false
			}
		}
		*elems = append(*elems, p.element(ast.ElemOrdinary, first, p.i-1))

		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}

	_, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close "+what+" specifiers")
	return ok
}

// specifierName consumes one specifier name: an identifier, a keyword used
// as a name, a string alias, or 'default'.
func (p *Parser) specifierName() bool {
	cur := p.cur()
	if cur.IsIdentLike() || isKeywordName(cur.Kind) || cur.Kind == token.StringLit || cur.Kind == token.KwDefault {
		p.next()
		return true
	}
	p.err(diag.SynExpectIdentifier, "expected specifier name, got '"+cur.Text+"'")
	return false
}

// parseExport recognizes named export lists, re-exports, default exports,
// and exported declarations. Only the named list produces a construct.
func (p *Parser) parseExport() {
	p.next() // 'export'

	switch p.cur().Kind {
	case token.LBrace:
		lb := p.i
		elems := make([]ast.Element, 0, 4)
		if !p.parseNamedList(&elems, "export") {
			return
		}
		rb := p.i - 1
		if p.at(token.KwFrom) {
			p.next()
			if _, ok := p.expect(token.StringLit, diag.SynExpectModulePath, "expected module path string"); !ok {
				return
			}
		}
		p.eatSemicolon()
		p.record(ast.Construct{
			Kind:     ast.ExportList,
			Span:     p.spanOf(lb, rb),
			FirstTok: lb,
			LastTok:  rb,
			Elems:    elems,
			BodyTok:  ast.NoTok,
		})
	case token.KwDefault:
		p.next()
		p.parseAssignExpr()
		p.eatSemicolon()
	case token.Star:
		p.next()
		if p.at(token.KwAs) {
			p.next()
			if !p.cur().IsIdentLike() {
				p.err(diag.SynExpectIdentifier, "expected namespace alias")
				return
			}
			p.next()
		}
		if _, ok := p.expect(token.KwFrom, diag.SynExpectFrom, "expected 'from' in re-export"); !ok {
			return
		}
		if _, ok := p.expect(token.StringLit, diag.SynExpectModulePath, "expected module path string"); !ok {
			return
		}
		p.eatSemicolon()
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
		p.err(diag.SynUnexpectedToken, "unexpected 'async' in export")
	default:
		p.err(diag.SynUnexpectedToken, "unexpected token after 'export': '"+p.cur().Text+"'")
	}
}
