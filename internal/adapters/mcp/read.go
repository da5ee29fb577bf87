package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"autogensummary/internal/application/commands"
	"autogensummary/internal/domain"
	"autogensummary/internal/ports"
)

// Deps holds what the tools need to run the pipeline
type Deps struct {
	Scanner    ports.TreeScanner
	Store      ports.SummaryStore
	Ledger     ports.RunLedger // Optional
	DefaultDir string          // Used when a call omits "dir"
}

// RegisterReadTools adds all tools that never write to the book.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(renderTool(), renderHandler(deps))
	s.AddTool(treeTool(), treeHandler(deps))
	s.AddTool(supportsTool(), supportsHandler())
}

// --- render_summary ---

func renderTool() mcp.Tool {
	return mcp.NewTool("render_summary",
		mcp.WithDescription("Render the SUMMARY.md a source directory would get, without writing it."),
		mcp.WithString("dir",
			mcp.Description("Book source directory. Omit to use the server's default."),
		),
		mcp.WithBoolean("use_title",
			mcp.Description("Use each document's first heading as link text"),
		),
	)
}

func renderHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewGenerateCommand(deps.Scanner, deps.Store, sourceDir(deps, req), renderOptions(req))
		cmd.DryRun = true

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Text), nil
	}
}

// --- summary_tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("summary_tree",
		mcp.WithDescription("Display the groups and documents that would appear in the summary, after pruning directories without README.md."),
		mcp.WithString("dir",
			mcp.Description("Book source directory. Omit to use the server's default."),
		),
	)
}

func treeHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, err := deps.Scanner.Scan(sourceDir(deps, req))
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		renderTree(&sb, root, "")
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, group *domain.Group, prefix string) {
	fmt.Fprintf(sb, "%s%s/\n", prefix, group.Name)
	prefix += "  "
	for _, doc := range group.Documents {
		if doc.Title != "" {
			fmt.Fprintf(sb, "%s%s  %q\n", prefix, filepath.Base(doc.Path), doc.Title)
		} else {
			fmt.Fprintf(sb, "%s%s\n", prefix, filepath.Base(doc.Path))
		}
	}
	for _, sub := range group.Subgroups {
		renderTree(sb, sub, prefix)
	}
}

// --- supports_renderer ---

func supportsTool() mcp.Tool {
	return mcp.NewTool("supports_renderer",
		mcp.WithDescription("Check whether a documentation renderer is supported by the generator."),
		mcp.WithString("renderer",
			mcp.Description("Renderer name, e.g. html"),
			mcp.Required(),
		),
	)
}

func supportsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		renderer := req.GetString("renderer", "")
		supported, err := commands.NewSupportsRendererCommand(renderer).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if supported {
			return mcp.NewToolResultText(fmt.Sprintf("%s is supported", renderer)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s is not supported", renderer)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func sourceDir(deps Deps, req mcp.CallToolRequest) string {
	return req.GetString("dir", deps.DefaultDir)
}

func renderOptions(req mcp.CallToolRequest) domain.RenderOptions {
	return domain.RenderOptions{UseTitleAsLinkText: req.GetBool("use_title", false)}
}
