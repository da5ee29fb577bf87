package mdbook

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"autogensummary/internal/application/commands"
	"autogensummary/internal/ports"
)

// Preprocessor answers one host request: it regenerates SUMMARY.md for the
// book described by the request and writes the reloaded book back
type Preprocessor struct {
	scanner ports.TreeScanner
	store   ports.SummaryStore
	loader  ports.BookLoader
	ledger  ports.RunLedger
	logger  *log.Logger
}

// NewPreprocessor creates a new Preprocessor
func NewPreprocessor(scanner ports.TreeScanner, store ports.SummaryStore, loader ports.BookLoader, logger *log.Logger) *Preprocessor {
	if logger == nil {
		logger = log.Default()
	}
	return &Preprocessor{
		scanner: scanner,
		store:   store,
		loader:  loader,
		logger:  logger,
	}
}

// WithLedger records every run in ledger
func (p *Preprocessor) WithLedger(ledger ports.RunLedger) *Preprocessor {
	p.ledger = ledger
	return p
}

// Run reads a request from in and writes the response to out
func (p *Preprocessor) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	req, err := ParseRequest(in)
	if err != nil {
		return err
	}

	if v := req.Context.MdbookVersion; v != "" && v != TargetVersion {
		p.logger.Warn("host version differs from the version this plugin was built against",
			"plugin", TargetVersion, "host", v)
	}

	cfg := req.Context.Config
	cmd := commands.NewPreprocessCommand(p.scanner, p.store, p.loader, req.Context.Root, &cfg).
		WithLedger(p.ledger)
	result, err := cmd.Execute(ctx)
	if err != nil {
		return err
	}

	if result.LedgerErr != nil {
		p.logger.Warn("run not recorded", "error", result.LedgerErr)
	}

	gen := result.Generate
	p.logger.Debug("summary generated",
		"path", gen.SummaryPath,
		"changed", gen.Changed,
		"groups", gen.Stats.Groups,
		"documents", gen.Stats.Documents,
		"duration", gen.Stats.Duration,
	)

	return WriteBook(out, result.Book)
}
