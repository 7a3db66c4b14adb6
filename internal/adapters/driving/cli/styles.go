package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// Status colours.
var (
	colorSuccess = lipgloss.Color("#A6E3A1")
	colorWarning = lipgloss.Color("#F9E2AF")
	colorError   = lipgloss.Color("#F38BA8")
)

var (
	wroteStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

// printOutcome reports each written path and, for empty results, the reason.
func printOutcome(cmd *cobra.Command, outcome domain.Outcome) {
	out := cmd.OutOrStdout()
	if outcome.IsEmpty() && outcome.Reason != "" {
		fmt.Fprintln(out, noticeStyle.Render(outcome.Reason))
	}
	for _, p := range outcome.Paths {
		fmt.Fprintln(out, wroteStyle.Render("Wrote:"), p)
	}
}
