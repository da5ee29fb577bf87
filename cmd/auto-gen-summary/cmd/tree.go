package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"autogensummary/internal/adapters/filesystem"
	"autogensummary/internal/adapters/tui/styles"
	"autogensummary/internal/config"
	"autogensummary/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree [dir]",
	Short: "Display the groups and documents that would be summarized",
	Long: `Display the scanned tree of a book source directory.
Directories without a README.md are left out, as they are in SUMMARY.md.

Example:
  auto-gen-summary tree docs/src`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.SourceDir()
		if len(args) > 0 {
			dir = args[0]
		}

		root, err := filesystem.NewScanner().Scan(dir)
		if err != nil {
			return err
		}

		printTree(cmd.OutOrStdout(), root, 0)
		groups, docs := root.Count()
		fmt.Fprintln(cmd.OutOrStdout(), styles.MutedText.Render(fmt.Sprintf("%d groups, %d documents", groups, docs)))
		return nil
	},
}

func printTree(w io.Writer, g *domain.Group, depth int) {
	if g == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, styles.SummaryGroup.Render(g.DisplayName()+"/"))

	for _, doc := range g.Documents {
		line := indent + "  " + doc.Name
		if doc.Title != "" {
			line += " " + styles.DocumentTitle.Render(fmt.Sprintf("%q", doc.Title))
		}
		fmt.Fprintln(w, line)
	}

	for _, sub := range g.Subgroups {
		printTree(w, sub, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
