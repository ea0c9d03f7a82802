// Package version exposes build metadata injected with -ldflags.
package version

import (
	goversion "go.hein.dev/go-version"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info renders the build metadata. shortened prints only the version; output
// selects "json" or "yaml".
func Info(shortened bool, output string) string {
	return goversion.FuncWithOutput(shortened, Version, Commit, Date, output)
}
