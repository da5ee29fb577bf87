package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"autogensummary/internal/adapters/editor"
	"autogensummary/internal/adapters/filesystem"
	"autogensummary/internal/adapters/tui"
	"autogensummary/internal/config"
	"autogensummary/internal/domain"
)

var previewUseTitle bool

var previewCmd = &cobra.Command{
	Use:   "preview [dir]",
	Short: "Preview the generated summary interactively",
	Long: `Open a terminal view of the summary a source directory would get.
Nothing is written until you press w.

Example:
  auto-gen-summary preview docs/src`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.SourceDir()
		if len(args) > 0 {
			dir = args[0]
		}

		app := tui.NewApp(
			filesystem.NewScanner(),
			filesystem.NewStore(),
			dir,
			domain.RenderOptions{UseTitleAsLinkText: previewUseTitle},
			editor.NewOpener(),
		)

		_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	previewCmd.Flags().BoolVarP(&previewUseTitle, "use-title", "t", false, "start with first headings as link text")
	rootCmd.AddCommand(previewCmd)
}
