package buildinfo

import (
	"strings"

	"github.com/samuell/scicommander/cli"
)

// Package buildinfo exposes version metadata for the sci CLI. Values can be
// overridden at build time via -ldflags and fall back to cli.Version/cli.Date.

var (
	// Version is the semantic version or custom string. Defaults to cli.Version or "dev".
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build date (optional). Falls back to cli.Date.
	Date = ""
	// BuiltBy identifies the builder (optional).
	BuiltBy = ""
)

const shortCommitLen = 7

// Summary returns a concise single-line version string.
func Summary() string {
	v := firstNonEmpty(Version, cli.Version, "dev")

	parts := make([]string, 0, 3)
	if Commit != "" {
		c := Commit
		if len(c) > shortCommitLen {
			c = c[:shortCommitLen]
		}
		parts = append(parts, "commit="+c)
	}
	if d := firstNonEmpty(Date, cli.Date); d != "" {
		parts = append(parts, "date="+d)
	}
	if BuiltBy != "" {
		parts = append(parts, "built_by="+BuiltBy)
	}
	if len(parts) == 0 {
		return v
	}
	return v + " (" + strings.Join(parts, ", ") + ")"
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
