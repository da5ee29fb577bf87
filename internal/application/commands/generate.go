package commands

import (
	"context"
	"path/filepath"
	"time"

	"autogensummary/internal/application"
	"autogensummary/internal/domain"
	"autogensummary/internal/ports"
)

// GenerateResult contains the result of a generation
type GenerateResult struct {
	SourceDir   string
	SummaryPath string
	Text        string
	Fingerprint string
	Changed     bool
	Root        *domain.Group
	Stats       domain.GenerateStats
}

// GenerateCommand scans a source directory, renders its summary and
// persists it when the content changed
type GenerateCommand struct {
	scanner   ports.TreeScanner
	store     ports.SummaryStore
	ledger    ports.RunLedger
	SourceDir string
	Options   domain.RenderOptions
	DryRun    bool // Render only, never touch SUMMARY.md
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(scanner ports.TreeScanner, store ports.SummaryStore, sourceDir string, opts domain.RenderOptions) *GenerateCommand {
	return &GenerateCommand{
		scanner:   scanner,
		store:     store,
		SourceDir: sourceDir,
		Options:   opts,
	}
}

// WithLedger records every persisted run in ledger. A nil ledger disables recording.
func (c *GenerateCommand) WithLedger(ledger ports.RunLedger) *GenerateCommand {
	c.ledger = ledger
	return c
}

// Validate checks if the generate operation is valid
func (c *GenerateCommand) Validate() error {
	return application.ValidateRequired("sourceDir", c.SourceDir)
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	sourceDir := filepath.Clean(c.SourceDir)

	root, err := c.scanner.Scan(sourceDir)
	if err != nil {
		return nil, &application.ScanError{Root: sourceDir, Err: err}
	}

	lines := domain.RenderSummary(sourceDir, root, c.Options)
	text := domain.JoinSummary(lines)
	groups, documents := root.Count()

	result := &GenerateResult{
		SourceDir:   sourceDir,
		SummaryPath: filepath.Join(sourceDir, domain.SummaryFile),
		Text:        text,
		Fingerprint: domain.Fingerprint(text),
		Root:        root,
		Stats: domain.GenerateStats{
			Groups:    groups,
			Documents: documents,
			Lines:     len(lines),
		},
	}

	if c.DryRun {
		result.Stats.Duration = time.Since(start)
		return result, nil
	}

	changed, err := c.store.WriteIfChanged(result.SummaryPath, text)
	if err != nil {
		return nil, &application.PersistError{Path: result.SummaryPath, Err: err}
	}
	result.Changed = changed
	result.Stats.Duration = time.Since(start)

	if c.ledger != nil {
		run := &domain.Run{
			SourceDir:   sourceDir,
			Fingerprint: result.Fingerprint,
			Changed:     changed,
			Documents:   documents,
			Groups:      groups,
			Duration:    result.Stats.Duration,
			CreatedAt:   time.Now(),
		}
		if err := c.ledger.Record(run); err != nil {
			return result, &application.LedgerError{Err: err}
		}
	}

	return result, nil
}
