package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow aggregates the successful runs for one (model, category) pair.
type SummaryRow struct {
	Model       string
	Category    string
	Runs        int
	AvgDuration float64 // seconds
	AvgEvalRate float64 // tokens/s
}

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	summaryFaintStyle = lipgloss.NewStyle().Faint(true)
	summaryModelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// RenderSummary renders the end-of-run console summary.
func RenderSummary(rows []SummaryRow) string {
	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("Benchmark Summary"))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(summaryFaintStyle.Render("no successful runs recorded"))
		b.WriteString("\n")
		return b.String()
	}

	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s  %-16s runs=%d  avg=%.2fs  eval=%.2f tokens/s\n",
			summaryModelStyle.Render(fmt.Sprintf("%-24s", r.Model)),
			r.Category, r.Runs, r.AvgDuration, r.AvgEvalRate))
	}
	return b.String()
}
