package rule

import (
	"dangle/internal/ast"
	"dangle/internal/token"
)

// anchor is the resolved check point of one construct: the last actionable
// slot and the trailing token, which is either an existing trailing comma or
// the token a comma would be inserted after.
type anchor struct {
	elem ast.Element
	tok  int
}

// resolveAnchor finds the anchor for a construct, or reports that the
// construct has no actionable last item. Every policy path goes through this
// one lookup so the anchor token is computed identically no matter which
// operation triggered it.
func resolveAnchor(stream *token.Stream, c *ast.Construct) (anchor, bool) {
	last, ok := c.LastElem()
	if !ok {
		return anchor{}, false
	}
	switch last.Kind {
	case ast.ElemHole:
		// A sparse-array elision is not a last item.
		return anchor{}, false
	case ast.ElemNonNamed:
		// Import clause ending in a default or namespace specifier.
		return anchor{}, false
	}

	idx := token.NoIndex
	switch c.Kind {
	case ast.ObjectLit, ast.ObjectPattern, ast.ArrayLit, ast.ArrayPattern,
		ast.CallArgs, ast.NewArgs:
		// One token back from the closing bracket: the comma or the last
		// real token of the last element.
		idx = stream.LastIn(c.FirstTok, c.LastTok, 1)
	case ast.FuncDeclParams, ast.FuncExprParams:
		if c.BodyTok != ast.NoTok {
			// Two tokens back from the block body, past the ')'.
			idx = stream.Before(c.BodyTok, 1)
			break
		}
		idx = afterOrLast(stream, last)
	default:
		// Import/export specifier lists and arrow parameters.
		idx = afterOrLast(stream, last)
	}

	if !stream.Ok(idx) {
		return anchor{}, false
	}
	return anchor{elem: last, tok: idx}, true
}

// afterOrLast returns the comma right after the last slot when present,
// otherwise the last token of the slot itself.
func afterOrLast(stream *token.Stream, last ast.Element) int {
	after := stream.After(last.LastTok, 0)
	if stream.Ok(after) && stream.At(after).IsComma() {
		return after
	}
	return last.LastTok
}
