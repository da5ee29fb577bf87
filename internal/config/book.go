package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"autogensummary/internal/domain"
)

const (
	blowUpKey              = "blow-up"
	firstLineAsLinkTextKey = "first-line-as-link-text"
)

// BookConfig mirrors the parts of book.toml the generator reads.
// The documentation host sends the same structure as JSON.
type BookConfig struct {
	Book         BookSection               `json:"book" toml:"book"`
	Preprocessor map[string]map[string]any `json:"preprocessor" toml:"preprocessor"`
}

// BookSection is the [book] table
type BookSection struct {
	Title string `json:"title" toml:"title"`
	Src   string `json:"src" toml:"src"`
}

// SourceDir returns book.src or DefaultSourceDir
func (c *BookConfig) SourceDir() string {
	if c.Book.Src == "" {
		return DefaultSourceDir
	}
	return c.Book.Src
}

// Settings interprets the [preprocessor.auto-gen-summary] table
func (c *BookConfig) Settings() PreprocessorSettings {
	return ParseSettings(c.Preprocessor[PreprocessorName])
}

// LoadBookConfig reads a book.toml file
func LoadBookConfig(path string) (*BookConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book config: %w", err)
	}

	var cfg BookConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// PreprocessorSettings holds the per-invocation options of the generator
type PreprocessorSettings struct {
	BlowUp              bool // Fail before scanning; used to test host error reporting
	FirstLineAsLinkText bool
}

// ParseSettings interprets a preprocessor table. Missing tables and
// unknown keys fall back to defaults; a non-boolean link text flag is false.
func ParseSettings(table map[string]any) PreprocessorSettings {
	var s PreprocessorSettings
	if table == nil {
		return s
	}
	_, s.BlowUp = table[blowUpKey]
	if v, ok := table[firstLineAsLinkTextKey].(bool); ok {
		s.FirstLineAsLinkText = v
	}
	return s
}

// RenderOptions converts the settings for the summary renderer
func (s PreprocessorSettings) RenderOptions() domain.RenderOptions {
	return domain.RenderOptions{UseTitleAsLinkText: s.FirstLineAsLinkText}
}
