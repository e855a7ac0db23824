package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"dangle/internal/diag"
	"dangle/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per item:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by notes and fix titles when enabled. Callers are expected to
// bag.Sort() beforehand.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printOne(w, d, fs, opts)
	}
}

func printOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	path := formatPath(fs, d.Primary.File, opts.PathMode)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		severityLabel(d.Severity, opts.Color),
		d.Code.ID(), d.Message)

	if opts.Context {
		printContext(w, fs, d.Primary, opts.Color)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				formatPath(fs, n.Span.File, opts.PathMode), nStart.Line, nStart.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			marker := ""
			if f.IsPreferred {
				marker = " (preferred)"
			}
			fmt.Fprintf(w, "  fix: %s%s\n", f.Title, marker)
		}
	}
}

// printContext prints the first line of the span with a caret underline. The
// underline covers the spanned text on that line; zero-length spans (pure
// insertion points) get a single caret.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span, colored bool) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" && start.Line == 0 {
		return
	}

	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}
	prefix := line[:col-1]

	spanLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		text := line[col-1:]
		n := int(end.Col - start.Col)
		if n > len(text) {
			n = len(text)
		}
		spanLen = runewidth.StringWidth(text[:n])
		if spanLen < 1 {
			spanLen = 1
		}
	}

	underline := "^" + strings.Repeat("~", spanLen-1)
	if colored {
		underline = forced(color.FgGreen, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", runewidth.StringWidth(prefix)), underline)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return forced(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return forced(color.FgYellow, color.Bold).Sprint(label)
	default:
		return forced(color.FgCyan).Sprint(label)
	}
}

// forced builds a color that ignores the package-global TTY detection; the
// caller already decided via PrettyOpts.Color.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", fs.BaseDir())
	}
}
