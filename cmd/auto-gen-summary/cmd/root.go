package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autogensummary/internal/adapters/filesystem"
	"autogensummary/internal/adapters/mdbook"
	"autogensummary/internal/adapters/sqlite"
	"autogensummary/internal/config"
	"autogensummary/internal/logging"
	"autogensummary/internal/ports"
)

var (
	ledgerPath string
	logger     = logging.New(config.LogLevel())
	ledger     *sqlite.Ledger
)

var rootCmd = &cobra.Command{
	Use:   "auto-gen-summary",
	Short: "Generate the SUMMARY.md of a documentation book from its directory tree",
	Long: `auto-gen-summary scans a book source directory and writes a SUMMARY.md
that mirrors its layout. Every directory that has its own README.md becomes a
section; every other markdown file becomes a chapter.

Run without a subcommand it acts as a preprocessor for the documentation
host: it reads [context, book] JSON from stdin, regenerates SUMMARY.md and
writes the reloaded book to stdout.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := openLedger()
		if err != nil {
			return err
		}

		pre := mdbook.NewPreprocessor(
			filesystem.NewScanner(),
			filesystem.NewStore(),
			filesystem.NewBookLoader(logger),
			logger,
		).WithLedger(l)

		return pre.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// exitError ends the process with code without printing anything
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if ledger != nil {
		if cerr := ledger.Close(); cerr != nil {
			logger.Warn("failed to close run ledger", "error", cerr)
		}
	}

	if err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", config.LedgerPath(), "sqlite file that records every generation (empty disables)")
}

// openLedger opens the run ledger once. It returns a nil interface when
// no ledger is configured.
func openLedger() (ports.RunLedger, error) {
	if ledger != nil {
		return ledger, nil
	}
	if ledgerPath == "" {
		return nil, nil
	}

	l, err := sqlite.Open(config.ExpandHome(ledgerPath))
	if err != nil {
		return nil, err
	}
	ledger = l
	logger.Debug("run ledger opened", "path", l.Path())
	return ledger, nil
}
