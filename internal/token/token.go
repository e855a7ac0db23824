package token

import (
	"dangle/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsComma reports whether the token is the ',' punctuator.
func (t Token) IsComma() bool { return t.Kind == Comma }

// IsIdentLike reports whether the token can act as an identifier,
// including the contextual keywords.
func (t Token) IsIdentLike() bool {
	switch t.Kind {
	case Ident, KwFrom, KwAs, KwOf, KwAsync, KwLet:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a number, string, template, or
// boolean/null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TemplateLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}
