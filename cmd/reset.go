package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/khrees2412/quickcv/internal/session"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the whole resume",
	Long:  "Replace the resume with an empty one. The empty resume is saved like any other change.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprint(cmd.OutOrStdout(), "This deletes every section of your resume. Continue? [y/N]: ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
		}

		getApp(cmd).Dispatch(session.Reset{})
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Resume cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
