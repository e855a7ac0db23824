package rule

import (
	"fmt"

	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/source"
	"dangle/internal/token"
)

// Mode selects the trailing-comma policy.
type Mode uint8

const (
	// ModeNever forbids trailing commas everywhere.
	ModeNever Mode = iota
	// ModeAlways requires a trailing comma after every last element.
	ModeAlways
	// ModeAlwaysMultiline requires the comma on multiline constructs and
	// forbids it on single-line ones.
	ModeAlwaysMultiline
	// ModeOnlyMultiline tolerates the comma on multiline constructs and
	// forbids it on single-line ones.
	ModeOnlyMultiline
)

func (m Mode) String() string {
	switch m {
	case ModeNever:
		return "never"
	case ModeAlways:
		return "always"
	case ModeAlwaysMultiline:
		return "always-multiline"
	case ModeOnlyMultiline:
		return "only-multiline"
	}
	return "unknown"
}

// ParseMode maps a configuration string to a Mode. The empty string behaves
// as "never".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "never":
		return ModeNever, nil
	case "always":
		return ModeAlways, nil
	case "always-multiline":
		return ModeAlwaysMultiline, nil
	case "only-multiline":
		return ModeOnlyMultiline, nil
	}
	return ModeNever, fmt.Errorf("unknown mode %q (want never, always, always-multiline or only-multiline)", s)
}

// Options is the resolved rule configuration. Functions extends coverage to
// parameter and argument lists; literals, patterns and specifier lists are
// always observed.
type Options struct {
	Mode      Mode
	Functions bool
}

// Checker binds a policy once per configuration and applies it to every
// construct of a file. It holds no per-file state; one Checker may serve any
// number of files.
type Checker struct {
	opts Options
}

func NewChecker(opts Options) *Checker {
	return &Checker{opts: opts}
}

func (c *Checker) Options() Options { return c.opts }

// Check runs the bound policy over constructs in their given order, emitting
// findings through reporter. At most one finding is produced per construct.
func (c *Checker) Check(file *source.File, stream *token.Stream, constructs []ast.Construct, reporter diag.Reporter) {
	p := planner{file: file, stream: stream, reporter: reporter}
	var op func(*ast.Construct)
	switch c.opts.Mode {
	case ModeAlways:
		op = p.force
	case ModeAlwaysMultiline:
		op = p.forceIfMultiline
	case ModeOnlyMultiline:
		op = p.allowIfMultiline
	default:
		op = p.forbid
	}
	for i := range constructs {
		if constructs[i].Kind.IsFunctionLike() && !c.opts.Functions {
			continue
		}
		op(&constructs[i])
	}
}
