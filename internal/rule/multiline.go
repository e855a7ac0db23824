package rule

import (
	"dangle/internal/ast"
	"dangle/internal/source"
	"dangle/internal/token"
)

// isMultiline reports whether the trailing token and the token after it
// (the closing delimiter, or the boundary toward it) sit on different lines.
// This deliberately measures the gap between the last element and the close,
// not the construct's overall span: an object whose opening brace is on its
// own line but whose single property and closing brace share a line is not
// multiline.
func isMultiline(file *source.File, stream *token.Stream, c *ast.Construct) bool {
	a, ok := resolveAnchor(stream, c)
	if !ok {
		return false
	}
	afterIdx := stream.After(a.tok, 0)
	if !stream.Ok(afterIdx) {
		return false
	}
	trailing := stream.At(a.tok)
	after := stream.At(afterIdx)
	return endLine(file, trailing.Span) != file.LineOf(after.Span.Start)
}

func endLine(file *source.File, sp source.Span) uint32 {
	if sp.End > sp.Start {
		return file.LineOf(sp.End - 1)
	}
	return file.LineOf(sp.Start)
}
