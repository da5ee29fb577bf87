package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"autogensummary/internal/adapters/filesystem"
	"autogensummary/internal/adapters/tui/styles"
	"autogensummary/internal/application"
	"autogensummary/internal/application/commands"
	"autogensummary/internal/config"
	"autogensummary/internal/domain"
)

var (
	genUseTitle   bool
	genConfigPath string
)

var genCmd = &cobra.Command{
	Use:   "gen [dir]",
	Short: "Generate SUMMARY.md for a book source directory",
	Long: `Scan a book source directory and write its SUMMARY.md.
The file is only rewritten when its content would change.

Examples:
  auto-gen-summary gen
  auto-gen-summary gen docs/src --use-title
  auto-gen-summary gen --config book.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.SourceDir()
		if len(args) > 0 {
			dir = args[0]
		}

		opts, err := genOptions(cmd)
		if err != nil {
			return err
		}

		l, err := openLedger()
		if err != nil {
			return err
		}

		result, err := commands.NewGenerateCommand(filesystem.NewScanner(), filesystem.NewStore(), dir, opts).
			WithLedger(l).
			Execute(cmd.Context())
		if errors.Is(err, application.ErrLedger) && result != nil {
			logger.Warn("run not recorded", "error", err)
		} else if err != nil {
			return err
		}

		logger.Debug("summary generated",
			"groups", result.Stats.Groups,
			"documents", result.Stats.Documents,
			"lines", result.Stats.Lines,
			"duration", result.Stats.Duration)

		if result.Changed {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.Success.Render("updated"), result.SummaryPath)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.Unchanged.Render("unchanged"), result.SummaryPath)
		}
		return nil
	},
}

// genOptions merges the book configuration with the command line.
// An explicit --use-title wins over the configuration file.
func genOptions(cmd *cobra.Command) (domain.RenderOptions, error) {
	opts := domain.RenderOptions{UseTitleAsLinkText: genUseTitle}
	if genConfigPath == "" {
		return opts, nil
	}

	cfg, err := config.LoadBookConfig(genConfigPath)
	if err != nil {
		return opts, err
	}
	settings := cfg.Settings()
	if settings.BlowUp {
		return opts, application.ErrForcedFailure
	}
	if !cmd.Flags().Changed("use-title") {
		opts = settings.RenderOptions()
	}
	return opts, nil
}

func init() {
	genCmd.Flags().BoolVarP(&genUseTitle, "use-title", "t", false, "use each document's first heading as its link text")
	genCmd.Flags().StringVarP(&genConfigPath, "config", "c", "", "book.toml to read preprocessor settings from")
	rootCmd.AddCommand(genCmd)
}
