package root

import "fmt"

// exitUsage is the process exit code for command-line usage mistakes.
const exitUsage = 2

const usageLine = "usage: sci <command>"

// MissingArgumentError is returned when the required positional command is absent.
type MissingArgumentError struct{}

func (MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument <command> (%s)", usageLine)
}

func (MissingArgumentError) ExitCode() int { return exitUsage }

// UnexpectedArgumentError reports positional values after the command.
type UnexpectedArgumentError struct {
	Extra []string
}

func (e UnexpectedArgumentError) Error() string {
	if len(e.Extra) == 0 {
		return fmt.Sprintf("unexpected argument (%s)", usageLine)
	}
	return fmt.Sprintf("unexpected argument %q (%s)", e.Extra[0], usageLine)
}

func (UnexpectedArgumentError) ExitCode() int { return exitUsage }

// FlagError wraps a flag parsing failure so it exits as a usage error.
type FlagError struct {
	Err error
}

func (e FlagError) Error() string {
	return fmt.Sprintf("%v (%s)", e.Err, usageLine)
}

func (e FlagError) Unwrap() error { return e.Err }

func (FlagError) ExitCode() int { return exitUsage }
