package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"autogensummary/internal/application"
	"autogensummary/internal/config"
	"autogensummary/internal/domain"
	"autogensummary/internal/ports"
)

// PreprocessResult contains the regenerated book
type PreprocessResult struct {
	Book      *domain.Book
	Generate  *GenerateResult
	LedgerErr error // Set when the run could not be recorded; the book is still valid
}

// PreprocessCommand regenerates the summary of a book on behalf of the
// documentation host and reloads the book from it
type PreprocessCommand struct {
	scanner ports.TreeScanner
	store   ports.SummaryStore
	loader  ports.BookLoader
	ledger  ports.RunLedger
	Root    string
	Config  *config.BookConfig
}

// NewPreprocessCommand creates a new PreprocessCommand
func NewPreprocessCommand(scanner ports.TreeScanner, store ports.SummaryStore, loader ports.BookLoader, root string, cfg *config.BookConfig) *PreprocessCommand {
	if cfg == nil {
		cfg = &config.BookConfig{}
	}
	return &PreprocessCommand{
		scanner: scanner,
		store:   store,
		loader:  loader,
		Root:    root,
		Config:  cfg,
	}
}

// WithLedger records the generation in ledger
func (c *PreprocessCommand) WithLedger(ledger ports.RunLedger) *PreprocessCommand {
	c.ledger = ledger
	return c
}

// Validate checks if the preprocess operation is valid
func (c *PreprocessCommand) Validate() error {
	return application.ValidateRequired("root", c.Root)
}

// SourceDir returns the book source directory the command works on
func (c *PreprocessCommand) SourceDir() string {
	src := c.Config.SourceDir()
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(c.Root, src)
}

// Execute runs the preprocess command
func (c *PreprocessCommand) Execute(ctx context.Context) (*PreprocessResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	settings := c.Config.Settings()
	if settings.BlowUp {
		return nil, application.ErrForcedFailure
	}

	sourceDir := c.SourceDir()
	gen := NewGenerateCommand(c.scanner, c.store, sourceDir, settings.RenderOptions()).
		WithLedger(c.ledger)
	result, err := gen.Execute(ctx)
	var ledgerErr error
	if err != nil {
		if result == nil || !errors.Is(err, application.ErrLedger) {
			return nil, err
		}
		ledgerErr = err
	}

	book, err := c.loader.LoadBook(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load book: %w", err)
	}

	return &PreprocessResult{Book: book, Generate: result, LedgerErr: ledgerErr}, nil
}
