package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/eriklarko/expression-finder/src/finder"
)

type TUI struct {
	output io.Writer
}

func New() *TUI {
	return &TUI{
		output: os.Stdout,
	}
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// PrintExpressions prints each matching expression on its own line.
func (t *TUI) PrintExpressions(expressions []string) {
	for _, expression := range expressions {
		fmt.Fprintln(t.output, expression)
	}
}

// PrintSummary prints a human-oriented recap of one search. Meant for
// interactive terminals; scripts parsing the output should never see it.
func (t *TUI) PrintSummary(report *finder.Report) {
	if !report.HasMatches() {
		fmt.Fprintln(t.output, "No expressions matched the target.")
	}
	fmt.Fprintf(t.output, "Evaluated %d candidate expressions, %d matched.\n",
		report.Candidates, len(report.Matches))
	if report.Excluded > 0 {
		fmt.Fprintf(t.output, "Skipped %d candidates that divide by zero.\n", report.Excluded)
	}
}
