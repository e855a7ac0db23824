package ast

import (
	"dangle/internal/source"
)

// Kind is the closed set of comma-delimited constructs the checker observes.
// New kinds must extend the locator and classifier match arms together.
type Kind uint8

const (
	// ObjectLit is an object literal expression.
	ObjectLit Kind = iota
	// ObjectPattern is an object destructuring pattern.
	ObjectPattern
	// ArrayLit is an array literal expression.
	ArrayLit
	// ArrayPattern is an array destructuring pattern.
	ArrayPattern
	// ImportList covers all specifiers of an import declaration.
	ImportList
	// ExportList is a named export specifier list.
	ExportList
	// FuncDeclParams is the parameter list of a function declaration.
	FuncDeclParams
	// FuncExprParams is the parameter list of a function expression.
	FuncExprParams
	// ArrowParams is a parenthesized arrow-function parameter list.
	ArrowParams
	// CallArgs is a call-expression argument list.
	CallArgs
	// NewArgs is a constructor-call argument list.
	NewArgs
)

func (k Kind) String() string {
	switch k {
	case ObjectLit:
		return "ObjectLit"
	case ObjectPattern:
		return "ObjectPattern"
	case ArrayLit:
		return "ArrayLit"
	case ArrayPattern:
		return "ArrayPattern"
	case ImportList:
		return "ImportList"
	case ExportList:
		return "ExportList"
	case FuncDeclParams:
		return "FuncDeclParams"
	case FuncExprParams:
		return "FuncExprParams"
	case ArrowParams:
		return "ArrowParams"
	case CallArgs:
		return "CallArgs"
	case NewArgs:
		return "NewArgs"
	}
	return "Unknown"
}

// IsFunctionLike reports whether the construct is only observed when the
// functions option is enabled.
func (k Kind) IsFunctionLike() bool {
	switch k {
	case FuncDeclParams, FuncExprParams, ArrowParams, CallArgs, NewArgs:
		return true
	default:
		return false
	}
}

// ElemKind discriminates element slots.
type ElemKind uint8

const (
	// ElemOrdinary is a regular slot: a property, element, named specifier,
	// parameter, argument, or a spread inside a literal/argument list (JS
	// permits a comma after those).
	ElemOrdinary ElemKind = iota
	// ElemRest is a rest slot in a pattern or parameter list; a following
	// comma is a syntax error there.
	ElemRest
	// ElemHole is an elision in a sparse array; not an actionable last item.
	ElemHole
	// ElemNonNamed is a default or namespace import specifier; a list ending
	// in one has no actionable last item.
	ElemNonNamed
)

func (k ElemKind) String() string {
	switch k {
	case ElemOrdinary:
		return "Ordinary"
	case ElemRest:
		return "Rest"
	case ElemHole:
		return "Hole"
	case ElemNonNamed:
		return "NonNamed"
	}
	return "Unknown"
}

// Element is one slot of a construct's comma-delimited sequence.
// FirstTok/LastTok are inclusive stream indices; holes carry NoTok.
type Element struct {
	Kind     ElemKind
	Span     source.Span
	FirstTok int
	LastTok  int
}

// NoTok marks an absent token index (holes, constructs without a body).
const NoTok = -1

// Construct is one bracketed, comma-delimited list found in a file.
// FirstTok/LastTok are inclusive stream indices covering the brackets where
// the kind has them (the whole call for CallArgs, the braces for literals).
// BodyTok is the stream index of the '{' opening a block body for
// function-like kinds, NoTok otherwise.
type Construct struct {
	Kind     Kind
	Span     source.Span
	FirstTok int
	LastTok  int
	Elems    []Element
	BodyTok  int
}

// LastElem returns the final element slot. The second result is false for
// empty sequences; absence of a usable slot (holes, ineligible specifiers)
// is judged by the checker, not here.
func (c *Construct) LastElem() (Element, bool) {
	if len(c.Elems) == 0 {
		return Element{}, false
	}
	return c.Elems[len(c.Elems)-1], true
}
