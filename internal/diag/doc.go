// Package diag defines the diagnostic model shared by the lexer, parser,
// and the trailing-comma rule.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string ID (LEX/SYN/STY/IO/OBS ranges), a human message, the primary
// source.Span, optional Notes, and optional Fixes.
//
// Fixes are intentionally data-only: a Fix carries a title, classification,
// applicability, and concrete TextEdits (span + new/old text). Producers
// never touch files; the fix engine in internal/fix validates OldText guards
// and applies edits deterministically.
//
// Phases emit through the Reporter interface to stay decoupled from storage.
// BagReporter aggregates into a Bag (bounded, sortable, dedupable);
// DedupReporter filters repeats. ReportBuilder offers chained construction:
//
//	diag.ReportWarning(r, code, span, msg).WithFix(fx).Emit()
package diag
