package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pseudo/internal/driver"
	"pseudo/internal/ui"
)

type convertOutcome struct {
	results []*driver.ConvertResult
	err     error
}

// runConvertWithUI runs a batch conversion behind a Bubble Tea progress
// view. Per-file events come from the driver's result callback; the UI
// quits when the event channel closes.
func runConvertWithUI(ctx context.Context, title string, paths []string, opts driver.Options, batch driver.BatchOptions) ([]*driver.ConvertResult, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan convertOutcome, 1)

	batchCopy := batch
	batchCopy.OnResult = func(r *driver.ConvertResult) {
		status := ui.StatusDone
		switch {
		case r.Bag.HasErrors():
			status = ui.StatusError
		case r.Cached:
			status = ui.StatusCached
		}
		events <- ui.Event{Path: r.Path, Status: status}
		if batch.OnResult != nil {
			batch.OnResult(r)
		}
	}

	go func() {
		results, err := driver.ConvertPaths(ctx, paths, opts, batchCopy)
		outcomeCh <- convertOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
