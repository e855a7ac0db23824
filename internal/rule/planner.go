package rule

import (
	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/fix"
	"dangle/internal/source"
	"dangle/internal/token"
)

const (
	msgUnexpected = "Unexpected trailing comma."
	msgMissing    = "Missing trailing comma."
)

// planner emits at most one finding per construct visit, always paired with
// a single-token fix. It never applies edits itself.
type planner struct {
	file     *source.File
	stream   *token.Stream
	reporter diag.Reporter
}

// forbid flags an existing trailing comma and offers its removal.
func (p *planner) forbid(c *ast.Construct) {
	a, ok := resolveAnchor(p.stream, c)
	if !ok {
		return
	}
	tok := p.stream.At(a.tok)
	if !tok.IsComma() {
		return
	}
	diag.ReportWarning(p.reporter, diag.StyUnexpectedTrailingComma, tok.Span, msgUnexpected).
		WithFix(fix.DeleteSpan("Remove trailing comma", tok.Span, ",", fix.Preferred())).
		Emit()
}

// force flags a missing trailing comma and offers its insertion. A rest slot
// can never be followed by a comma, so force degrades to forbid there; the
// grammar constraint wins over the style preference.
func (p *planner) force(c *ast.Construct) {
	a, ok := resolveAnchor(p.stream, c)
	if !ok {
		return
	}
	if a.elem.Kind == ast.ElemRest {
		p.forbid(c)
		return
	}
	tok := p.stream.At(a.tok)
	if tok.IsComma() {
		return
	}
	at := source.Point(tok.Span.File, tok.Span.End)
	diag.ReportWarning(p.reporter, diag.StyMissingTrailingComma, at, msgMissing).
		WithFix(fix.InsertText("Insert trailing comma", at, ",", "", fix.Preferred())).
		Emit()
}

func (p *planner) forceIfMultiline(c *ast.Construct) {
	if isMultiline(p.file, p.stream, c) {
		p.force(c)
		return
	}
	p.forbid(c)
}

// allowIfMultiline tolerates both presence and absence on multiline
// constructs and forbids the comma on single-line ones.
func (p *planner) allowIfMultiline(c *ast.Construct) {
	if isMultiline(p.file, p.stream, c) {
		return
	}
	p.forbid(c)
}
