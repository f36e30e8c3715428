package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows activity on stderr while a query is in flight. It never
// writes to stdout, so piped output stays clean.
type Spinner struct {
	bar   *progressbar.ProgressBar
	label string
}

// NewSpinner creates a spinner for operations with unknown duration.
func NewSpinner(label string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &Spinner{bar: bar, label: label}
}

// FinishSuccess clears the spinner completely (no output).
func (s *Spinner) FinishSuccess() {
	s.bar.Finish()
	s.bar.Clear()
}

// FinishError clears the spinner and prints a failure note to stderr.
func (s *Spinner) FinishError() {
	s.bar.Finish()
	s.bar.Clear()
	fmt.Fprintf(os.Stderr, "%s failed\n", s.label)
}
