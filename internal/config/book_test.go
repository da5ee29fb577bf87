package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name  string
		table map[string]any
		want  PreprocessorSettings
	}{
		{name: "missing table", table: nil, want: PreprocessorSettings{}},
		{name: "link text enabled", table: map[string]any{"first-line-as-link-text": true}, want: PreprocessorSettings{FirstLineAsLinkText: true}},
		{name: "link text not a bool", table: map[string]any{"first-line-as-link-text": "yes"}, want: PreprocessorSettings{}},
		{name: "blow-up by presence", table: map[string]any{"blow-up": false}, want: PreprocessorSettings{BlowUp: true}},
		{name: "unknown keys ignored", table: map[string]any{"command": "auto-gen-summary"}, want: PreprocessorSettings{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSettings(tt.table); got != tt.want {
				t.Errorf("ParseSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadBookConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.toml")
	content := `[book]
title = "Handbook"
src = "docs"

[preprocessor.auto-gen-summary]
first-line-as-link-text = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadBookConfig(path)
	if err != nil {
		t.Fatalf("LoadBookConfig failed: %v", err)
	}
	if cfg.Book.Title != "Handbook" {
		t.Errorf("expected title Handbook, got %q", cfg.Book.Title)
	}
	if cfg.SourceDir() != "docs" {
		t.Errorf("expected src docs, got %q", cfg.SourceDir())
	}
	if !cfg.Settings().RenderOptions().UseTitleAsLinkText {
		t.Error("expected link text from first heading")
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadBookConfig(filepath.Join(t.TempDir(), "book.toml")); err == nil {
			t.Error("expected error for missing config")
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "book.toml")
		os.WriteFile(bad, []byte("[book\n"), 0644)
		if _, err := LoadBookConfig(bad); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestBookConfig_SourceDirDefault(t *testing.T) {
	var cfg BookConfig
	if cfg.SourceDir() != DefaultSourceDir {
		t.Errorf("expected %s, got %s", DefaultSourceDir, cfg.SourceDir())
	}
}
