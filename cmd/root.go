package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/khrees2412/quickcv/internal/app"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// current is the application shared by every command of one process,
// including commands typed into the shell
var current *app.App

// openApp builds the application; tests replace it
var openApp = app.NewApp

var rootCmd = &cobra.Command{
	Use:   "quickcv",
	Short: "Build a resume in your terminal and export it to PDF or Word",
	Long: `quickcv keeps one resume on your machine, saves every change automatically
and exports it as a paginated PDF or a Word document.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil {
			application, err := openApp(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			current = application

			if application.Recovered != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Saved resume could not be read and was replaced by an empty one."))
			}
		}

		// Store app in command context
		cmd.SetContext(app.WithApp(cmd.Context(), current))
		return nil
	},
}

// getApp returns the application attached to cmd
func getApp(cmd *cobra.Command) *app.App {
	if a := app.FromContext(cmd.Context()); a != nil {
		return a
	}
	return current
}

// closeApp flushes pending saves and releases the database
func closeApp() error {
	if current == nil {
		return nil
	}
	err := current.Close()
	current = nil
	return err
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)

	// Cleanup: flush the last edit and close app resources
	if closeErr := closeApp(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	printNotices(os.Stdout)

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		cancel()
		os.Exit(1)
	}
}
