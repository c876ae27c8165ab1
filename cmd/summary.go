package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/quickcv/internal/session"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Manage your professional summary",
}

var showSummaryCmd = &cobra.Command{
	Use:   "show",
	Short: "Display your professional summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Professional Summary"))
		fmt.Fprintln(out, orDash(getApp(cmd).Resume().Summary))
		return nil
	},
}

var setSummaryCmd = &cobra.Command{
	Use:     "set <text>...",
	Short:   "Replace your professional summary",
	Args:    cobra.MinimumNArgs(1),
	Example: `  quickcv summary set "Backend engineer with eight years of Go."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		getApp(cmd).Dispatch(session.SetSummary{Text: strings.Join(args, " ")})
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Summary updated")
		return nil
	},
}

var clearSummaryCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove your professional summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		getApp(cmd).Dispatch(session.SetSummary{})
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Summary cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.AddCommand(showSummaryCmd)
	summaryCmd.AddCommand(setSummaryCmd)
	summaryCmd.AddCommand(clearSummaryCmd)
}
