package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"autogensummary/internal/adapters/tui/styles"
	"autogensummary/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent summary generations",
	Long: `List the most recent generations recorded in the run ledger.

Example:
  auto-gen-summary history --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := openLedger()
		if err != nil {
			return err
		}

		runs, err := commands.NewHistoryCommand(l, historyLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, styles.MutedText.Render("No runs recorded"))
			return nil
		}

		for _, run := range runs {
			status := styles.Unchanged.Render("unchanged")
			if run.Changed {
				status = styles.Success.Render("updated  ")
			}
			fmt.Fprintf(out, "%s  %s  %s  %3d groups %4d docs  %s  %s\n",
				run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				status,
				run.Fingerprint[:min(8, len(run.Fingerprint))],
				run.Groups,
				run.Documents,
				run.Duration.Round(time.Millisecond),
				run.SourceDir,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
