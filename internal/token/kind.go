package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwFrom represents the contextual 'from' keyword.
	KwFrom // from
	// KwAs represents the contextual 'as' keyword.
	KwAs // as
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwAsync represents the contextual 'async' keyword.
	KwAsync // async
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null
	// KwOf represents the contextual 'of' keyword.
	KwOf // of
	// KwIn represents the 'in' keyword.
	KwIn // in

	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// TemplateLit represents a backtick template literal, interpolations included.
	TemplateLit

	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen
	// LBrace is '{'.
	LBrace
	// RBrace is '}'.
	RBrace
	// LBracket is '['.
	LBracket
	// RBracket is ']'.
	RBracket

	// Comma is ','.
	Comma
	// Semicolon is ';'.
	Semicolon
	// Colon is ':'.
	Colon
	// Dot is '.'.
	Dot
	// Ellipsis is '...'.
	Ellipsis
	// Arrow is '=>'.
	Arrow
	// Assign is '='.
	Assign
	// Question is '?'.
	Question
	// Star is '*'.
	Star

	// Op is any other operator or punctuator; Text carries the glyphs.
	Op
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	KwImport:    "import",
	KwExport:    "export",
	KwFrom:      "from",
	KwAs:        "as",
	KwDefault:   "default",
	KwFunction:  "function",
	KwAsync:     "async",
	KwNew:       "new",
	KwConst:     "const",
	KwLet:       "let",
	KwVar:       "var",
	KwReturn:    "return",
	KwTrue:      "true",
	KwFalse:     "false",
	KwNull:      "null",
	KwOf:        "of",
	KwIn:        "in",
	NumberLit:   "Number",
	StringLit:   "String",
	TemplateLit: "Template",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
	Comma:       ",",
	Semicolon:   ";",
	Colon:       ":",
	Dot:         ".",
	Ellipsis:    "...",
	Arrow:       "=>",
	Assign:      "=",
	Question:    "?",
	Star:        "*",
	Op:          "Op",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Keywords maps source text to keyword kinds. Contextual keywords (from, as,
// of, async) are classified here and treated as identifiers by the parser
// where the grammar allows.
var Keywords = map[string]Kind{
	"import":   KwImport,
	"export":   KwExport,
	"from":     KwFrom,
	"as":       KwAs,
	"default":  KwDefault,
	"function": KwFunction,
	"async":    KwAsync,
	"new":      KwNew,
	"const":    KwConst,
	"let":      KwLet,
	"var":      KwVar,
	"return":   KwReturn,
	"true":     KwTrue,
	"false":    KwFalse,
	"null":     KwNull,
	"of":       KwOf,
	"in":       KwIn,
}
