// Package logging builds the structured loggers used by the command hosts.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr with the given prefix.
// An unknown level falls back to info.
func New(prefix, level string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, prefix, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
