// Package cmd assembles the esm command line tool: a thin driver over
// registry, hint and keyword for trying the clue-indexed matching pipeline
// against real patterns and text without writing Go.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// progname is the name reported in usage text and log lines.
const progname = "esm"

// ExitCode is a process exit code suitable for use with os.Exit.
type ExitCode int

const (
	// ExFail is an exit code indicating an unspecified error.
	ExFail ExitCode = 1

	// ExUsage is an exit code indicating invalid invocation syntax.
	ExUsage ExitCode = 64

	// ExNoInput is an exit code indicating missing or unreadable input.
	ExNoInput ExitCode = 66

	// ExDataErr means the input data itself was malformed.
	ExDataErr ExitCode = 65
)

// ExitError captures an ExitCode and its associated error message.
type ExitError struct {
	Code ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitErrorf formats an error message along with the ExitCode.
func ExitErrorf(code ExitCode, format string, args ...interface{}) error {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// CommandWithDefaults overwrites default values shared by every subcommand.
func CommandWithDefaults(c *cobra.Command) *cobra.Command {
	c.SilenceUsage = true
	c.SilenceErrors = true
	c.DisableFlagsInUseLine = true
	return c
}

// NewRootCommand builds the esm command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   progname,
		Short: "Match regular expressions against text via literal hints",
		Long: `esm indexes regular expressions by a literal substring each one
guarantees, then scans text against that index instead of running every
regex in turn.`,
	}

	root.AddCommand(NewScanCommand())

	return CommandWithDefaults(root)
}
