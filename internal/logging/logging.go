// Package logging builds the leveled console logger shared by prio commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "prio"

// DefaultLevel keeps routine runs quiet.
const DefaultLevel = log.WarnLevel

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
}

// New returns a text logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel resolves a configured level name such as "debug" or "warn".
func ParseLevel(value string) (log.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(value))
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}
