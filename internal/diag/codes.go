package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectFrom         Code = 2004
	SynExpectModulePath   Code = 2005
	SynExpectPropertyName Code = 2006
	SynExpectPattern      Code = 2007
	SynExpectExpression   Code = 2008
	SynExpectColon        Code = 2009
	SynRestMustBeLast     Code = 2010

	// Style
	StyInfo                    Code = 3000
	StyUnexpectedTrailingComma Code = 3001
	StyMissingTrailingComma    Code = 3002

	// I/O
	IOLoadFileError Code = 4000

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown diagnostic",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number literal",
	LexUnterminatedTemplate:     "unterminated template literal",
	SynInfo:                     "Syntactic information",
	SynUnexpectedToken:          "unexpected token",
	SynUnclosedDelimiter:        "unclosed delimiter",
	SynExpectIdentifier:         "expected identifier",
	SynExpectFrom:               "expected 'from' after import clause",
	SynExpectModulePath:         "expected module path string",
	SynExpectPropertyName:       "expected property name",
	SynExpectPattern:            "expected binding pattern",
	SynExpectExpression:         "expected expression",
	SynExpectColon:              "expected ':'",
	SynRestMustBeLast:           "rest element must be last",
	StyInfo:                     "Style information",
	StyUnexpectedTrailingComma:  "Unexpected trailing comma.",
	StyMissingTrailingComma:     "Missing trailing comma.",
	IOLoadFileError:             "I/O load file error",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
