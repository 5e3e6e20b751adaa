// Package logger configures the process-wide structured logger from the
// loaded configuration. The wizard core never logs; only the shell and
// the HTTP client do.
package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

func parseLevel(level string) charmlog.Level {
	switch level {
	case "debug":
		return charmlog.DebugLevel
	case "info":
		return charmlog.InfoLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// New builds a logger writing to w at the given level. JSON output is
// for scripted runs where the TUI does not own the terminal.
func New(w io.Writer, level string, json bool) *charmlog.Logger {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           parseLevel(level),
	})
	if json {
		l.SetFormatter(charmlog.JSONFormatter)
	}
	return l
}

// Setup installs a logger on stderr as the package default so that
// charmlog.Info and friends pick up the configured level. Stderr keeps
// log lines out of the TUI's stdout.
func Setup(level string, json bool) {
	charmlog.SetDefault(New(os.Stderr, level, json))
}
