package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/khrees2412/quickcv/internal/score"
	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/spf13/cobra"
)

const barWidth = 30

var (
	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show how complete your resume is",
	Long:  "Display the completeness score and which sections still have empty required fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printScore(cmd.OutOrStdout(), getApp(cmd).Resume())
		return nil
	},
}

func printScore(out io.Writer, r models.Resume) {
	sections := score.Breakdown(r)
	total := score.Total(sections)

	fmt.Fprintln(out, titleStyle.Render("Resume Completeness"))
	fmt.Fprintf(out, "%s %d%%\n", progressBar(total.Percent()), total.Percent())

	fmt.Fprintf(out, "\n%s\n", labelStyle.Render("Breakdown"))
	for _, s := range sections {
		if s.Total == 0 {
			fmt.Fprintf(out, "  %-14s %s\n", s.Name, mutedStyle.Render("no entries"))
			continue
		}
		fmt.Fprintf(out, "  %-14s %d/%d fields (%d%%)\n", s.Name, s.Filled, s.Total, s.Percent())
	}
}

// progressBar renders pct as a bar of barWidth cells
func progressBar(pct int) string {
	filled := pct * barWidth / 100
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
