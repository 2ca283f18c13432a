package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/samuell/scicommander/cmd/sci/root"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	err := root.Execute(args, stdout, stderr)
	if err == nil {
		return 0
	}
	// Print a short, single-line error to stderr on failures.
	// Do not print usage or stack traces.
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = io.WriteString(stderr, msg+"\n")
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return 1
}
