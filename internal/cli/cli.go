// Package cli parses the notepad0 command line.
//
// The editor accepts at most one positional argument, the text file to open
// at startup, plus the standard --help and --version flags. Parsing happens
// before any window exists, so every failure here is reported on the console.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"notepad0/internal/buildinfo"
)

// Exit codes returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const textFileUsage = "[TEXT_FILE]"

// ErrHelpShown is returned by Parse when --help or --version was handled and
// the process should exit successfully without opening a window.
var ErrHelpShown = errors.New("help or version shown")

// UsageError reports a malformed command line.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %v", e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Options is the result of a successful parse.
type Options struct {
	// TextPath is the file named on the command line, or "" when absent.
	TextPath string
}

func init() {
	// The editor is a GUI program; launching it from Explorer must not
	// trigger cobra's "this is a command line tool" prompt on Windows.
	cobra.MousetrapHelpText = ""
}

// newRootCommand builds the cobra command. The parsed options are written
// into opts when the command runs.
func newRootCommand(info buildinfo.Info, opts *Options, ran *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   info.Name + " " + textFileUsage,
		Short: info.Description,
		Long: fmt.Sprintf(`%s %s
%s

Arguments:
  TEXT_FILE   [テキストファイル名] text file to open at startup`, info.Name, info.Version, info.Description),
		Version:       info.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			if len(args) == 1 {
				opts.TextPath = args[0]
			}
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().SortFlags = false
	return cmd
}

// Parse parses args (without the program name).
//
// It returns ErrHelpShown after printing help or version text to stdout, and
// a *UsageError after printing the problem and usage text to stderr.
func Parse(info buildinfo.Info, args []string, stdout, stderr io.Writer) (Options, error) {
	var opts Options
	ran := false

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	// cobra always routes __complete* to its hidden shell-completion
	// command; a file with that name is still a text file
	if len(args) > 0 && strings.HasPrefix(args[0], cobra.ShellCompRequestCmd) {
		args = append([]string{"--"}, args...)
	}

	cmd := newRootCommand(info, &opts, &ran)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return Options{}, &UsageError{Err: err}
	}

	if !ran {
		return Options{}, ErrHelpShown
	}
	return opts, nil
}

// ExitCode maps a Parse error to the process exit status.
func ExitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil, errors.Is(err, ErrHelpShown):
		return ExitOK
	case errors.As(err, &usageErr):
		return ExitUsage
	default:
		return ExitFailure
	}
}
