package cmd

import (
	"fmt"

	"github.com/khrees2412/quickcv/internal/score"
	"github.com/khrees2412/quickcv/internal/store"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show save and export status",
	Long:  "Display whether your latest changes are saved, whether an export is running and how complete the resume is",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp(cmd)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, titleStyle.Render("Status"))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Session:"), a.Session.ID)
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Autosave:"), autosaveLabel(a.Autosave))

		st, lastSaved, lastErr := a.Autosave.Status()
		if lastSaved.IsZero() {
			// nothing written by this process yet, fall back to the stored time
			if at, ok, err := a.Store.SavedAt(cmd.Context()); err == nil && ok {
				lastSaved = at.Local()
			}
		}
		if !lastSaved.IsZero() {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Last Saved:"), lastSaved.Format("Jan 2 2006 15:04:05"))
		}
		if st == store.StatusError && lastErr != nil {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Save Error:"), errorStyle.Render(lastErr.Error()))
		}

		exporting := "idle"
		if a.Exporter.Busy() {
			exporting = "running"
		}
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Export:"), exporting)
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("PDF Engine:"), a.Config.PDFEngine)
		fmt.Fprintf(out, "%s %d%%\n", labelStyle.Render("Completeness:"), score.Compute(a.Resume()))
		return nil
	},
}

func autosaveLabel(a *store.Autosaver) string {
	if a.Pending() {
		return "pending changes"
	}
	st, _, _ := a.Status()
	switch st {
	case store.StatusError:
		return errorStyle.Render("last save failed")
	case store.StatusSaving:
		return "saving"
	}
	return "all changes saved"
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
