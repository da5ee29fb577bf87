package cmd

import (
	"github.com/spf13/cobra"

	"autogensummary/internal/application/commands"
)

var supportsCmd = &cobra.Command{
	Use:   "supports <renderer>",
	Short: "Report whether a renderer is supported",
	Long: `Exit with status 0 when the named renderer is supported and 1 otherwise.
The documentation host calls this before running the preprocessor.

Example:
  auto-gen-summary supports html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		supported, err := commands.NewSupportsRendererCommand(args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if !supported {
			return &exitError{code: 1}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supportsCmd)
}
