package root

import (
	"io"
	"strings"

	"github.com/samuell/scicommander/internal/buildinfo"
	"github.com/samuell/scicommander/internal/invocation"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for sci.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sci <command>",
		Short:   "CLI: Echo the given command back to the terminal",
		Version: buildinfo.Summary(),
		Args:    commandArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return invocation.New(args[0]).Acknowledge(cmd.OutOrStdout())
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return FlagError{Err: err}
	})
	return cmd
}

// commandArg accepts exactly one positional value.
func commandArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return MissingArgumentError{}
	case len(args) > 1:
		return UnexpectedArgumentError{Extra: args[1:]}
	}
	return nil
}

// Execute runs the root command with provided args and writers.
func Execute(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args when handed a nil slice.
		args = []string{}
	}
	if len(args) > 0 && strings.HasPrefix(args[0], cobra.ShellCompRequestCmd) {
		// cobra always registers its hidden __complete commands; a leading
		// "--" keeps the word positional so it is echoed like any other.
		args = append([]string{"--"}, args...)
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
