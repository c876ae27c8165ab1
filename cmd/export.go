package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khrees2412/quickcv/internal/app"
	"github.com/khrees2412/quickcv/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <pdf|docx|all>",
	Short: "Export your resume to PDF or Word",
	Long: `Render the current resume and write it to the output directory.
Files are named after you, e.g. Ada_Lovelace_Resume.pdf. Only one export
runs at a time.`,
	Args: cobra.ExactArgs(1),
	Example: `  quickcv export pdf
  quickcv export all --out ~/Documents
  quickcv export pdf --engine chrome`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", app.ErrInvalidArgument, err)
		}

		a := getApp(cmd)
		engine, _ := cmd.Flags().GetString("engine")
		exporter, err := a.ExporterFor(engine)
		if err != nil {
			return err
		}
		if exporter.Busy() {
			return app.ErrExportBusy
		}

		dir, _ := cmd.Flags().GetString("out")
		if dir == "" {
			dir = a.Config.OutputDir
		}
		dir = expandHome(dir)

		// the snapshot taken here is what gets exported, later edits do not
		// leak into a running export
		r := a.Resume()
		out := cmd.OutOrStdout()

		background, _ := cmd.Flags().GetBool("background")
		if background {
			fmt.Fprintf(out, "⏳ Exporting %s in the background...\n", format)
			ctx := context.WithoutCancel(cmd.Context())
			a.Go(func() {
				paths, err := exporter.Export(ctx, r, format, dir)
				switch {
				case errors.Is(err, app.ErrExportBusy):
					notices.post(errorStyle.Render("✗ Another export is still running"))
				case err != nil:
					notices.post(errorStyle.Render("✗ " + err.Error()))
				default:
					for _, p := range paths {
						notices.post(fmt.Sprintf("✓ Saved %s", p))
					}
				}
			})
			return nil
		}

		fmt.Fprintf(out, "⏳ Exporting %s...\n", format)
		paths, err := exporter.Export(cmd.Context(), r, format, dir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(out, "✓ Saved %s\n", p)
		}
		return nil
	},
}

func expandHome(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~"))
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "Output directory (defaults to output_dir from the config)")
	exportCmd.Flags().String("engine", "", "PDF engine: native or chrome (defaults to pdf_engine from the config)")
	exportCmd.Flags().Bool("background", false, "Return immediately and report when the export finishes")
}
