package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line of the generator
const Prefix = "auto-gen-summary"

// New returns a logger writing to stderr. Stdout is reserved for the
// preprocessor response.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a logger writing to w. Unknown levels fall back to warn.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  lvl,
	})
}
