package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// PreprocessorName is the table name under [preprocessor] in book.toml
	PreprocessorName = "auto-gen-summary"
	// DefaultSourceDir is used when book.src is not set
	DefaultSourceDir = "src"
	// DefaultLogLevel keeps the host's output quiet unless something is wrong
	DefaultLogLevel = "warn"
)

// SourceDir returns the source directory from AUTOGEN_SUMMARY_SRC,
// falling back to DefaultSourceDir.
func SourceDir() string {
	if env := os.Getenv("AUTOGEN_SUMMARY_SRC"); env != "" {
		return env
	}
	return DefaultSourceDir
}

// LedgerPath returns the run ledger database from AUTOGEN_SUMMARY_LEDGER.
// An empty result disables the ledger.
func LedgerPath() string {
	return ExpandHome(os.Getenv("AUTOGEN_SUMMARY_LEDGER"))
}

// LogLevel returns the log level from AUTOGEN_SUMMARY_LOG_LEVEL,
// falling back to DefaultLogLevel.
func LogLevel() string {
	if env := os.Getenv("AUTOGEN_SUMMARY_LOG_LEVEL"); env != "" {
		return strings.ToLower(env)
	}
	return DefaultLogLevel
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
