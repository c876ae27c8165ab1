package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/khrees2412/quickcv/internal/document"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Preview your resume as it will be exported",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := getApp(cmd).Resume()
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}

		printDocument(out, document.Build(r))
		return nil
	},
}

func printDocument(out io.Writer, doc document.Document) {
	fmt.Fprintln(out, titleStyle.Render(orDash(doc.Name)))
	if len(doc.Contact) > 0 {
		fmt.Fprintln(out, mutedStyle.Render(strings.Join(doc.Contact, " | ")))
	}
	if len(doc.Sections) == 0 {
		fmt.Fprintln(out, "\nNothing to show yet. Start with 'quickcv profile edit'")
		return
	}

	for _, s := range doc.Sections {
		fmt.Fprintf(out, "\n%s\n", labelStyle.Render(strings.ToUpper(s.Title)))
		if s.Text != "" {
			fmt.Fprintln(out, s.Text)
		}
		for _, line := range s.Skills {
			fmt.Fprintf(out, "%s %s\n", valueStyle.Bold(true).Render(line.Label+":"), line.Items)
		}
		for _, e := range s.Entries {
			head := e.Title
			if e.Dates != "" {
				head += "  " + mutedStyle.Render(e.Dates)
			}
			fmt.Fprintln(out, head)
			if e.Subtitle != "" {
				fmt.Fprintln(out, "  "+e.Subtitle)
			}
			for _, d := range e.Details {
				fmt.Fprintln(out, "  "+d)
			}
			if e.Body != "" {
				fmt.Fprintln(out, "  "+e.Body)
			}
			for _, b := range e.Bullets {
				fmt.Fprintln(out, "  • "+b)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("json", false, "Print the stored resume as JSON")
}
