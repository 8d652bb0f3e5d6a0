package wizard

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mcptools/mcp-setup/internal/synth"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	skipColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
)

// printNothingToDo reports a graceful no-op.
func printNothingToDo(w io.Writer) {
	fmt.Fprintln(w, "Nothing to do.")
}

// printSummary reports the outcome of a successful run.
func printSummary(w io.Writer, configPath string, result *synth.Result, bootstrapFailed []string) {
	fmt.Fprintln(w)
	successColor.Fprintln(w, "Configuration written.")
	fmt.Fprintf(w, "  Config: %s\n", configPath)

	for _, id := range result.Added {
		successColor.Fprintf(w, "  + %s\n", id)
	}
	for _, id := range result.Overwritten {
		successColor.Fprintf(w, "  ~ %s (replaced)\n", id)
	}
	for _, id := range result.Skipped {
		skipColor.Fprintf(w, "  = %s (already configured, skipped)\n", id)
	}
	for _, id := range bootstrapFailed {
		failColor.Fprintf(w, "  ! %s (bootstrap failed, not configured)\n", id)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Restart the desktop application to pick up the new servers.")
}
