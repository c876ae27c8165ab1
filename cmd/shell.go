package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit your resume interactively",
	Long: `Start an interactive prompt that accepts every quickcv command without the
leading "quickcv". Changes are saved in the background while you type and
exports can run with --background. Type "exit" or "quit" to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
	},
}

func runShell(cmd *cobra.Command, in *bufio.Reader, out io.Writer) error {
	root := cmd.Root()
	ctx := cmd.Context()

	// subcommands that prompt read from the same buffered reader
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	defer func() {
		root.SetIn(nil)
		root.SetArgs(nil)
	}()

	fmt.Fprintln(out, titleStyle.Render("quickcv shell"))
	fmt.Fprintln(out, `Type "help" for commands, "exit" to leave`)

	for {
		if ctx.Err() != nil {
			return nil
		}
		printNotices(out)
		fmt.Fprint(out, "quickcv> ")
		line, readErr := in.ReadString('\n')

		args, err := splitArgs(line)
		switch {
		case err != nil:
			fmt.Fprintln(out, errorStyle.Render("Error:"), err)
		case len(args) == 0:
		case args[0] == "exit" || args[0] == "quit":
			return nil
		case args[0] == "shell":
			fmt.Fprintln(out, "Already in the shell")
		default:
			root.SetArgs(args)
			if err := root.ExecuteContext(ctx); err != nil {
				fmt.Fprintln(out, errorStyle.Render("Error:"), err)
			}
			resetFlags(root)
		}

		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				return readErr
			}
			fmt.Fprintln(out)
			return nil
		}
	}
}

// resetFlags restores every flag to its default so values typed for one
// command do not carry over to the next
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// splitArgs splits a command line the way a POSIX shell would, without
// expanding variables or running anything. Control operators are refused so
// text after them is never dropped silently.
func splitArgs(line string) ([]string, error) {
	p := shellwords.NewParser()
	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", strings.TrimSpace(line), err)
	}
	if runes := []rune(line); p.Position >= 0 && p.Position < len(runes) {
		return nil, fmt.Errorf("quote %q to use it in an argument", string(runes[p.Position]))
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args, nil
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
