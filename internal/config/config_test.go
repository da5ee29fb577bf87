package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvironment(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("AUTOGEN_SUMMARY_SRC", "")
		t.Setenv("AUTOGEN_SUMMARY_LEDGER", "")
		t.Setenv("AUTOGEN_SUMMARY_LOG_LEVEL", "")

		if got := SourceDir(); got != DefaultSourceDir {
			t.Errorf("SourceDir() = %s", got)
		}
		if got := LedgerPath(); got != "" {
			t.Errorf("LedgerPath() = %s", got)
		}
		if got := LogLevel(); got != DefaultLogLevel {
			t.Errorf("LogLevel() = %s", got)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("AUTOGEN_SUMMARY_SRC", "docs")
		t.Setenv("AUTOGEN_SUMMARY_LOG_LEVEL", "DEBUG")

		if got := SourceDir(); got != "docs" {
			t.Errorf("SourceDir() = %s", got)
		}
		if got := LogLevel(); got != "debug" {
			t.Errorf("LogLevel() = %s", got)
		}
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/runs.db"); got != filepath.Join(home, "runs.db") {
		t.Errorf("ExpandHome() = %s", got)
	}
	if got := ExpandHome("/tmp/runs.db"); got != "/tmp/runs.db" {
		t.Errorf("ExpandHome() = %s", got)
	}
}
