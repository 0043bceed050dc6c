// Package ui provides the terminal presentation layer: headless detection,
// spinners and progress bars, markdown and table rendering, and a Prompter
// that answers wizard prompts without a terminal.
package ui

import "errors"

// ErrHeadlessNoAnswer is returned by the headless prompter when a required
// prompt has neither an answer nor a default.
var ErrHeadlessNoAnswer = errors.New("ui: no answer for required prompt in headless mode")

// Progress creates progress indicators.
type Progress interface {
	// Start creates a determinate progress bar with total steps.
	Start(title string, total int) ProgressBar
	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
