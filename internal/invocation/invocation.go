package invocation

import (
	"fmt"
	"io"
)

// Invocation is a single run of the CLI. It carries the one positional value
// the user supplied and is never modified once built.
type Invocation struct {
	Command string
}

// New builds an Invocation. The value is taken verbatim; the empty string is
// a valid command.
func New(command string) Invocation {
	return Invocation{Command: command}
}

// Acknowledge writes the single acknowledgment line for the invocation.
func (inv Invocation) Acknowledge(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Command: %s\n", inv.Command); err != nil {
		return fmt.Errorf("write acknowledgment: %w", err)
	}
	return nil
}
