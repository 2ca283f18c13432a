// Package cli holds the legacy build-time hooks read by external build scripts.
package cli

// Version and Date can be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/samuell/scicommander/cli.Version=0.5.0' -X 'github.com/samuell/scicommander/cli.Date=2026-10-14'"
//
// Prefer the variables in internal/buildinfo; these are consulted only when
// those are empty.
var (
	Version string
	Date    string
)
