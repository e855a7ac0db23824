package driver

import (
	"dangle/internal/ast"
	"dangle/internal/diag"
	"dangle/internal/lexer"
	"dangle/internal/observ"
	"dangle/internal/parser"
	"dangle/internal/rule"
	"dangle/internal/source"
	"dangle/internal/token"
)

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path       string
	FileID     source.FileID
	Bag        *diag.Bag
	Stream     *token.Stream
	Constructs []ast.Construct
	Timing     *observ.Report
	FromCache  bool
}

// LintFile runs the full pipeline over one already-loaded file: tokenize,
// parse, check. The cache, when present, short-circuits the pipeline for
// unchanged content.
func LintFile(fileSet *source.FileSet, fileID source.FileID, path string, opts Options) FileResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	file := fileSet.Get(fileID)

	if opts.Cache != nil {
		key := FileDigest(file.Content, opts.Rule)
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			replayPayload(&payload, fileID, bag)
			return FileResult{
				Path:      path,
				FileID:    fileID,
				Bag:       bag,
				FromCache: true,
			}
		}
	}

	timer := observ.NewTimer()
	// The tolerant parser can resync onto a token it already reported.
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	idx := timer.Begin("tokenize")
	stream := lexer.Tokenize(file, reporter)
	timer.End(idx, "")

	idx = timer.Begin("parse")
	constructs := parser.Parse(stream, reporter)
	timer.End(idx, "")

	idx = timer.Begin("check")
	rule.NewChecker(opts.Rule).Check(file, stream, constructs, reporter)
	timer.End(idx, "")

	result := FileResult{
		Path:       path,
		FileID:     fileID,
		Bag:        bag,
		Stream:     stream,
		Constructs: constructs,
	}
	if opts.Timings {
		report := timer.Report()
		result.Timing = &report
	}

	if opts.Cache != nil {
		key := FileDigest(file.Content, opts.Rule)
		// Cache misses are not fatal; next run redoes the work.
		_ = opts.Cache.Put(key, payloadFromBag(bag))
	}
	return result
}
