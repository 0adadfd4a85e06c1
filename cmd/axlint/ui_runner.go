package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"axlint/internal/driver"
	"axlint/internal/ui"
)

type checkOutcome struct {
	result *driver.CheckResult
	err    error
}

// runCheckWithUI runs the check pipeline in the background while a Bubble
// Tea model renders per-file progress in the foreground.
func runCheckWithUI(cmd *cobra.Command, paths []string, opts driver.Options) (*driver.CheckResult, error) {
	files, err := driver.ListFiles(paths)
	if err != nil {
		return nil, err
	}

	observer := ui.NewChannelObserver(256)
	opts.Observer = observer
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		res, err := driver.Check(cmd.Context(), paths, opts)
		outcomeCh <- checkOutcome{result: res, err: err}
		observer.Close()
	}()

	model := ui.NewProgressModel("axlint check", files, observer.Events())
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
