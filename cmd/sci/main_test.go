package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCapture(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantCode   int
	}{
		{name: "build", args: []string{"build"}, wantStdout: "Command: build\n", wantCode: 0},
		{name: "deploy", args: []string{"deploy"}, wantStdout: "Command: deploy\n", wantCode: 0},
		{name: "empty string", args: []string{""}, wantStdout: "Command: \n", wantCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCapture(tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout)
			assert.Empty(t, stderr, "success path must not write to stderr")
		})
	}
}

func TestRun_NoArguments(t *testing.T) {
	stdout, stderr, code := runCapture()
	assert.NotEqual(t, 0, code)
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.NotEmpty(t, stderr)
	assert.Equal(t, 1, strings.Count(stderr, "\n"), "error must be a single line")
	assert.True(t, strings.HasSuffix(stderr, "\n"))
}

func TestRun_TooManyArguments(t *testing.T) {
	stdout, stderr, code := runCapture("build", "deploy")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "deploy")
}

func TestRun_SameArgumentSameOutput(t *testing.T) {
	first, _, firstCode := runCapture("build")
	second, _, secondCode := runCapture("build")
	assert.Equal(t, first, second)
	assert.Equal(t, firstCode, secondCode)
}

type codedErr struct{ code int }

func (e codedErr) Error() string { return "coded" }
func (e codedErr) ExitCode() int { return e.code }

func TestExitCoderDetection(t *testing.T) {
	var ec exitCoder
	wrapped := errors.Join(errors.New("context"), codedErr{code: 3})
	assert.True(t, errors.As(wrapped, &ec))
	assert.Equal(t, 3, ec.ExitCode())
}
