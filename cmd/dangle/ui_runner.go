package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dangle/internal/driver"
	"dangle/internal/source"
	"dangle/internal/ui"
)

type lintOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

// lintWithUI runs the parallel check while a Bubble Tea progress view consumes
// the per-file events. The event channel is closed once the run finishes,
// which tells the model to quit.
func lintWithUI(ctx context.Context, title string, targets []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	files := make([]string, 0)
	for _, target := range targets {
		expanded, err := driver.ListSourceFiles(target)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, expanded...)
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan lintOutcome, 1)

	go func() {
		fs, results, err := driver.LintTargets(ctx, targets, opts, events)
		outcomeCh <- lintOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
