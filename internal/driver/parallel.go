package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"dangle/internal/diag"
	"dangle/internal/rule"
	"dangle/internal/source"
)

// Options configures a lint run.
type Options struct {
	Rule           rule.Options
	MaxDiagnostics int
	Jobs           int
	Cache          *DiskCache
	Timings        bool
}

// Event reports per-file progress to an optional observer (the terminal UI).
type Event struct {
	Path     string
	Index    int
	Total    int
	Findings int
	Cached   bool
}

// sourceExts are the file extensions the walker picks up.
var sourceExts = map[string]bool{
	".js":  true,
	".mjs": true,
	".cjs": true,
}

// ListSourceFiles returns a sorted list of all checkable files under target,
// which may be a single file or a directory walked recursively.
func ListSourceFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	var files []string
	err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name == "node_modules" || strings.HasPrefix(name, ".") && path != target {
				return filepath.SkipDir
			}
			return nil
		}
		if sourceExts[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of walk scheduling.
	sort.Strings(files)
	return files, nil
}

// LintTargets checks every source file under the given targets in parallel.
// Results come back indexed in the same deterministic order as the expanded
// file list. Files that fail to load yield a bag with a single I/O error.
func LintTargets(ctx context.Context, targets []string, opts Options, events chan<- Event) (*source.FileSet, []FileResult, error) {
	files := make([]string, 0)
	for _, target := range targets {
		expanded, err := ListSourceFiles(target)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, expanded...)
	}

	baseDir := "."
	if len(targets) == 1 {
		if info, err := os.Stat(targets[0]); err == nil && info.IsDir() {
			baseDir = targets[0]
		}
	}
	fileSet := source.NewFileSetWithBase(baseDir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Index per goroutine is unique, no mutex needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: path, Bag: bag}
			} else {
				results[i] = LintFile(fileSet, fileIDs[path], path, opts)
			}

			if events != nil {
				select {
				case events <- Event{
					Path:     path,
					Index:    i,
					Total:    len(files),
					Findings: results[i].Bag.Len(),
					Cached:   results[i].FromCache,
				}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags collects every per-file bag into one sorted bag for rendering.
func MergeBags(results []FileResult, maxDiagnostics int) *diag.Bag {
	merged := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r.Bag != nil {
			merged.Merge(r.Bag)
		}
	}
	merged.Sort()
	return merged
}
