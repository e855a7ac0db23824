package lexer_test

import (
	"testing"

	"dangle/internal/diag"
	"dangle/internal/lexer"
	"dangle/internal/source"
	"dangle/internal/token"
)

func tokenize(t *testing.T, src string) (*token.Stream, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(src))
	bag := diag.NewBag(64)
	stream := lexer.Tokenize(fs.Get(id), diag.BagReporter{Bag: bag})
	return stream, bag
}

func kinds(s *token.Stream) []token.Kind {
	out := make([]token.Kind, 0, s.Len())
	for _, tok := range s.Tokens() {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenizeObjectLiteral(t *testing.T) {
	stream, bag := tokenize(t, "const o = {a: 1, b: 2,}")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %+v", bag.Items())
	}
	want := []token.Kind{
		token.KwConst, token.Ident, token.Assign, token.LBrace,
		token.Ident, token.Colon, token.NumberLit, token.Comma,
		token.Ident, token.Colon, token.NumberLit, token.Comma,
		token.RBrace, token.EOF,
	}
	got := kinds(stream)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeCommentsSkipped(t *testing.T) {
	stream, bag := tokenize(t, "[1, /* inner */ 2, // line\n3]")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %+v", bag.Items())
	}
	// Comments must not appear between tokens: indices stay adjacent.
	want := []token.Kind{
		token.LBracket, token.NumberLit, token.Comma, token.NumberLit,
		token.Comma, token.NumberLit, token.RBracket, token.EOF,
	}
	got := kinds(stream)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestTokenizePunctuators(t *testing.T) {
	stream, _ := tokenize(t, "(...rest) => a === b")
	want := []token.Kind{
		token.LParen, token.Ellipsis, token.Ident, token.RParen,
		token.Arrow, token.Ident, token.Op, token.Ident, token.EOF,
	}
	got := kinds(stream)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeStringsAndTemplates(t *testing.T) {
	stream, bag := tokenize(t, "import x from 'mod'; `a ${f({b: 1})} c`")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %+v", bag.Items())
	}
	got := kinds(stream)
	want := []token.Kind{
		token.KwImport, token.Ident, token.KwFrom, token.StringLit,
		token.Semicolon, token.TemplateLit, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	tmpl := stream.At(5)
	if tmpl.Text != "`a ${f({b: 1})} c`" {
		t.Errorf("template text = %q", tmpl.Text)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, bag := tokenize(t, "'abc")
	if !bag.HasErrors() {
		t.Fatal("expected unterminated string diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v", bag.Items()[0].Code)
	}
}

func TestTokenizeSpans(t *testing.T) {
	stream, _ := tokenize(t, "{a, b}")
	comma := stream.At(2)
	if comma.Kind != token.Comma {
		t.Fatalf("token 2 = %v", comma.Kind)
	}
	if comma.Span.Start != 2 || comma.Span.End != 3 {
		t.Errorf("comma span = %v", comma.Span)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	stream, bag := tokenize(t, "[0x1f, 1_000, 3.14, 1e-9]")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %+v", bag.Items())
	}
	count := 0
	for _, tok := range stream.Tokens() {
		if tok.Kind == token.NumberLit {
			count++
		}
	}
	if count != 4 {
		t.Errorf("number literals = %d, want 4", count)
	}
}
