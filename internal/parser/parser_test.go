package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/lexer"
	"dangle/internal/parser"
	"dangle/internal/source"
	"dangle/internal/token"
)

func parse(t *testing.T, src string) ([]ast.Construct, *token.Stream, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(src))
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	stream := lexer.Tokenize(fs.Get(id), rep)
	constructs := parser.Parse(stream, rep)
	return constructs, stream, bag
}

func kindsOf(constructs []ast.Construct) []ast.Kind {
	out := make([]ast.Kind, 0, len(constructs))
	for _, c := range constructs {
		out = append(out, c.Kind)
	}
	return out
}

func TestParseObjectLiteral(t *testing.T) {
	constructs, stream, bag := parse(t, "const o = {a: 1, b, ...rest,}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	if len(constructs) != 1 || constructs[0].Kind != ast.ObjectLit {
		t.Fatalf("constructs = %v", kindsOf(constructs))
	}
	c := constructs[0]
	if len(c.Elems) != 3 {
		t.Fatalf("elems = %d, want 3", len(c.Elems))
	}
	// Spread in a literal stays an ordinary slot: a comma may follow it.
	if c.Elems[2].Kind != ast.ElemOrdinary {
		t.Errorf("spread elem kind = %v", c.Elems[2].Kind)
	}
	if stream.At(c.LastTok).Kind != token.RBrace {
		t.Errorf("LastTok should be the closing brace, got %v", stream.At(c.LastTok).Kind)
	}
}

func TestParseArrayLiteralWithHoles(t *testing.T) {
	constructs, _, _ := parse(t, "[1, , 2]")
	if len(constructs) != 1 || constructs[0].Kind != ast.ArrayLit {
		t.Fatalf("constructs = %v", kindsOf(constructs))
	}
	got := make([]ast.ElemKind, 0)
	for _, e := range constructs[0].Elems {
		got = append(got, e.Kind)
	}
	want := []ast.ElemKind{ast.ElemOrdinary, ast.ElemHole, ast.ElemOrdinary}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("element kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTrailingCommaIsNotHole(t *testing.T) {
	constructs, _, _ := parse(t, "[1, 2,]")
	if len(constructs[0].Elems) != 2 {
		t.Errorf("trailing comma must not create a hole, elems = %d", len(constructs[0].Elems))
	}
}

func TestParseDestructuring(t *testing.T) {
	constructs, _, bag := parse(t, "const {a, b: {c}, ...rest} = o; const [x, ...ys] = a")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	got := kindsOf(constructs)
	want := []ast.Kind{ast.ObjectPattern, ast.ObjectPattern, ast.ArrayPattern}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("construct kinds mismatch (-want +got):\n%s", diff)
	}
	outer := constructs[0]
	if outer.Elems[2].Kind != ast.ElemRest {
		t.Errorf("object pattern rest kind = %v", outer.Elems[2].Kind)
	}
	arr := constructs[2]
	if arr.Elems[1].Kind != ast.ElemRest {
		t.Errorf("array pattern rest kind = %v", arr.Elems[1].Kind)
	}
}

func TestParseImportForms(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		elemKinds []ast.ElemKind
	}{
		{"named only", "import {a, b as c} from 'm'", []ast.ElemKind{ast.ElemOrdinary, ast.ElemOrdinary}},
		{"default only", "import def from 'm'", []ast.ElemKind{ast.ElemNonNamed}},
		{"namespace", "import * as ns from 'm'", []ast.ElemKind{ast.ElemNonNamed}},
		{"default plus named", "import def, {a} from 'm'", []ast.ElemKind{ast.ElemNonNamed, ast.ElemOrdinary}},
		{"empty braces", "import {} from 'm'", []ast.ElemKind{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constructs, _, bag := parse(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %+v", bag.Items())
			}
			if len(constructs) != 1 || constructs[0].Kind != ast.ImportList {
				t.Fatalf("constructs = %v", kindsOf(constructs))
			}
			got := make([]ast.ElemKind, 0)
			for _, e := range constructs[0].Elems {
				got = append(got, e.Kind)
			}
			if diff := cmp.Diff(tt.elemKinds, got); diff != "" {
				t.Errorf("element kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSideEffectImport(t *testing.T) {
	constructs, _, bag := parse(t, "import 'polyfill'")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	if len(constructs) != 0 {
		t.Errorf("side-effect import should record no construct, got %v", kindsOf(constructs))
	}
}

func TestParseExportList(t *testing.T) {
	constructs, _, bag := parse(t, "export {a, b as default,} ; export * from 'm'; export default 1")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	if len(constructs) != 1 || constructs[0].Kind != ast.ExportList {
		t.Fatalf("constructs = %v", kindsOf(constructs))
	}
	if len(constructs[0].Elems) != 2 {
		t.Errorf("elems = %d, want 2", len(constructs[0].Elems))
	}
}

func TestParseFunctions(t *testing.T) {
	src := "function f(a, b = 1, ...rest) {}\nconst g = function(x) {}\nconst h = (a, b) => a + b"
	constructs, _, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	got := kindsOf(constructs)
	want := []ast.Kind{ast.FuncDeclParams, ast.FuncExprParams, ast.ArrowParams}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("construct kinds mismatch (-want +got):\n%s", diff)
	}
	decl := constructs[0]
	if decl.BodyTok == ast.NoTok {
		t.Error("function declaration should record its body token")
	}
	if decl.Elems[2].Kind != ast.ElemRest {
		t.Errorf("rest param kind = %v", decl.Elems[2].Kind)
	}
	arrow := constructs[2]
	if arrow.BodyTok != ast.NoTok {
		t.Error("arrow params must not carry a body token")
	}
}

func TestParseUnparenthesizedArrowParam(t *testing.T) {
	constructs, _, bag := parse(t, "const f = x => x * 2")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	if len(constructs) != 0 {
		t.Errorf("no bracketed list exists for a bare arrow param, got %v", kindsOf(constructs))
	}
}

func TestParseCallsAndNew(t *testing.T) {
	constructs, stream, bag := parse(t, "f(1, 2,); new Foo(a); new Bar")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	got := kindsOf(constructs)
	want := []ast.Kind{ast.CallArgs, ast.NewArgs}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("construct kinds mismatch (-want +got):\n%s", diff)
	}
	call := constructs[0]
	if len(call.Elems) != 2 {
		t.Errorf("call elems = %d, want 2", len(call.Elems))
	}
	if stream.At(call.LastTok).Kind != token.RParen {
		t.Errorf("call LastTok = %v, want ')'", stream.At(call.LastTok).Kind)
	}
}

func TestParseNestedPreOrder(t *testing.T) {
	constructs, _, bag := parse(t, "const o = {list: [1, {x: 2}]}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	got := kindsOf(constructs)
	want := []ast.Kind{ast.ObjectLit, ast.ArrayLit, ast.ObjectLit}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}
	if constructs[0].FirstTok > constructs[1].FirstTok {
		t.Error("outer construct must come first")
	}
}

func TestParseMethodsAndAccessors(t *testing.T) {
	constructs, _, bag := parse(t, "const o = {m(a, b) {}, get x() { return 1 }}")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %+v", bag.Items())
	}
	got := kindsOf(constructs)
	want := []ast.Kind{ast.ObjectLit, ast.FuncExprParams, ast.FuncExprParams}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("construct kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRestMustBeLast(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"function params", "function f(...r, x) {}"},
		{"arrow params", "(...r, x) => x"},
		{"array pattern", "const [a, ...r, b] = c"},
		{"object pattern", "const {...r, b} = c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, bag := parse(t, tc.src)
			found := false
			for _, d := range bag.Items() {
				if d.Code == diag.SynRestMustBeLast {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no rest-must-be-last diagnostic for %q: %+v", tc.src, bag.Items())
			}
		})
	}
}

func TestParseRestWithTrailingCommaIsNotAnError(t *testing.T) {
	// A comma after the rest slot with nothing following it is the style
	// rule's business, not a syntax error.
	for _, src := range []string{
		"function f(a, ...r,) {}",
		"const [x, ...ys,] = a",
	} {
		_, _, bag := parse(t, src)
		for _, d := range bag.Items() {
			if d.Code == diag.SynRestMustBeLast {
				t.Errorf("unexpected rest-must-be-last for %q", src)
			}
		}
	}
}

func TestParseResyncKeepsGoing(t *testing.T) {
	constructs, _, bag := parse(t, "@@ ; const o = {a: 1}")
	if !bag.HasErrors() {
		t.Fatal("expected a syntax or lex diagnostic")
	}
	if len(constructs) != 1 || constructs[0].Kind != ast.ObjectLit {
		t.Errorf("parser should recover and still record constructs, got %v", kindsOf(constructs))
	}
}
