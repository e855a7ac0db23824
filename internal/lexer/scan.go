package lexer

import (
	"dangle/internal/diag"
	"dangle/internal/token"
)

const utf8RuneSelf = 0x80

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b >= utf8RuneSelf
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	span := lx.cursor.SpanFrom(mark)
	text := string(lx.file.Content[span.Start:span.End])

	kind := token.Ident
	if kw, ok := token.Keywords[text]; ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: span, Text: text}
}

func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump()

	// Hex, octal, binary prefixes.
	if lx.file.Content[mark] == '0' && !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			lx.cursor.Bump()
			digits := 0
			for !lx.cursor.EOF() && (isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
				if lx.cursor.Peek() != '_' {
					digits++
				}
				lx.cursor.Bump()
			}
			span := lx.cursor.SpanFrom(mark)
			if digits == 0 {
				lx.report(diag.LexBadNumber, span, "malformed number literal")
			}
			return token.Token{Kind: token.NumberLit, Span: span, Text: lx.text(span.Start, span.End)}
		}
	}

	for !lx.cursor.EOF() && (isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if p := lx.cursor.Peek(); p == 'e' || p == 'E' {
		lx.cursor.Bump()
		if p := lx.cursor.Peek(); p == '+' || p == '-' {
			lx.cursor.Bump()
		}
		digits := 0
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			digits++
			lx.cursor.Bump()
		}
		if digits == 0 {
			lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(mark), "malformed exponent")
		}
	}
	span := lx.cursor.SpanFrom(mark)
	return token.Token{Kind: token.NumberLit, Span: span, Text: lx.text(span.Start, span.End)}
}

func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			span := lx.cursor.SpanFrom(mark)
			lx.report(diag.LexUnterminatedString, span, "unterminated string literal")
			return token.Token{Kind: token.StringLit, Span: span, Text: lx.text(span.Start, span.End)}
		}
		ch := lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if ch == quote {
			break
		}
	}
	span := lx.cursor.SpanFrom(mark)
	return token.Token{Kind: token.StringLit, Span: span, Text: lx.text(span.Start, span.End)}
}

// scanTemplate consumes a backtick template as one token, tracking `${}`
// interpolation brace depth so an interpolated `}` or backtick does not end
// the literal early. Strings inside interpolations are skipped whole.
func (lx *Lexer) scanTemplate() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	depth := 0
	for {
		if lx.cursor.EOF() {
			span := lx.cursor.SpanFrom(mark)
			lx.report(diag.LexUnterminatedTemplate, span, "unterminated template literal")
			return token.Token{Kind: token.TemplateLit, Span: span, Text: lx.text(span.Start, span.End)}
		}
		ch := lx.cursor.Bump()
		switch {
		case ch == '\\' && !lx.cursor.EOF():
			lx.cursor.Bump()
		case ch == '$' && depth == 0 && lx.cursor.Peek() == '{':
			lx.cursor.Bump()
			depth++
		case ch == '{' && depth > 0:
			depth++
		case ch == '}' && depth > 0:
			depth--
		case (ch == '"' || ch == '\'') && depth > 0:
			lx.skipNestedString(ch)
		case ch == '`' && depth == 0:
			span := lx.cursor.SpanFrom(mark)
			return token.Token{Kind: token.TemplateLit, Span: span, Text: lx.text(span.Start, span.End)}
		}
	}
}

func (lx *Lexer) skipNestedString(quote byte) {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		ch := lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if ch == quote {
			return
		}
	}
}

func (lx *Lexer) scanPunct() token.Token {
	mark := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Op
	switch ch {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case ':':
		kind = token.Colon
	case '?':
		// '?.'/'??' stay generic operators.
		if p := lx.cursor.Peek(); p == '.' || p == '?' {
			lx.cursor.Bump()
			if p == '?' && lx.cursor.Peek() == '=' {
				lx.cursor.Bump()
			}
		} else {
			kind = token.Question
		}
	case '.':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = token.Ellipsis
		} else {
			kind = token.Dot
		}
	case '=':
		switch lx.cursor.Peek() {
		case '>':
			lx.cursor.Bump()
			kind = token.Arrow
		case '=':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '=' {
				lx.cursor.Bump()
			}
		default:
			kind = token.Assign
		}
	case '*':
		if p := lx.cursor.Peek(); p == '*' || p == '=' {
			lx.cursor.Bump()
			if lx.cursor.Peek() == '=' {
				lx.cursor.Bump()
			}
		} else {
			kind = token.Star
		}
	case '+', '-', '/', '%', '^':
		if p := lx.cursor.Peek(); p == '=' || p == ch {
			lx.cursor.Bump()
		}
	case '&', '|':
		if p := lx.cursor.Peek(); p == ch {
			lx.cursor.Bump()
			if lx.cursor.Peek() == '=' {
				lx.cursor.Bump()
			}
		} else if p == '=' {
			lx.cursor.Bump()
		}
	case '<', '>':
		for !lx.cursor.EOF() {
			p := lx.cursor.Peek()
			if p == ch || p == '=' {
				lx.cursor.Bump()
				if p == '=' {
					break
				}
				continue
			}
			break
		}
	case '!', '~':
		for lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
		}
	default:
		span := lx.cursor.SpanFrom(mark)
		lx.report(diag.LexUnknownChar, span, "unknown character '"+string(ch)+"'")
		return token.Token{Kind: token.Invalid, Span: span, Text: lx.text(span.Start, span.End)}
	}

	span := lx.cursor.SpanFrom(mark)
	return token.Token{Kind: kind, Span: span, Text: lx.text(span.Start, span.End)}
}

func (lx *Lexer) text(start, end uint32) string {
	return string(lx.file.Content[start:end])
}
