package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"autogensummary/internal/application"
	"autogensummary/internal/application/commands"
)

// RegisterWriteTools adds all tools that persist SUMMARY.md.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(generateTool(), generateHandler(deps))
}

// --- generate_summary ---

func generateTool() mcp.Tool {
	return mcp.NewTool("generate_summary",
		mcp.WithDescription("Regenerate SUMMARY.md for a book source directory. The file is only rewritten when its content changes."),
		mcp.WithString("dir",
			mcp.Description("Book source directory. Omit to use the server's default."),
		),
		mcp.WithBoolean("use_title",
			mcp.Description("Use each document's first heading as link text"),
		),
	)
}

func generateHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewGenerateCommand(deps.Scanner, deps.Store, sourceDir(deps, req), renderOptions(req)).
			WithLedger(deps.Ledger)

		result, err := cmd.Execute(ctx)
		var note string
		if errors.Is(err, application.ErrLedger) && result != nil {
			note = fmt.Sprintf("; %v", err)
		} else if err != nil {
			return toolError(err)
		}

		status := "unchanged"
		if result.Changed {
			status = "updated"
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s %s (%d groups, %d documents)%s",
			status, result.SummaryPath, result.Stats.Groups, result.Stats.Documents, note)), nil
	}
}
