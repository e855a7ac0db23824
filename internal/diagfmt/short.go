package diagfmt

import (
	"fmt"
	"io"

	"dangle/internal/diag"
	"dangle/internal/source"
)

// Short renders one line per diagnostic with no color, context, or fixes.
// The shape is stable, which makes it the format of choice for golden files
// and shell pipelines.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: [%s] %s\n",
			formatPath(fs, d.Primary.File, mode), start.Line, start.Col,
			d.Code.ID(), d.Message)
	}
}
