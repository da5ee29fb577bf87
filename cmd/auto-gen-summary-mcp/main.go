package main

import (
	"flag"

	"github.com/mark3labs/mcp-go/server"

	"autogensummary/internal/adapters/filesystem"
	mcpadapter "autogensummary/internal/adapters/mcp"
	"autogensummary/internal/adapters/sqlite"
	"autogensummary/internal/config"
	"autogensummary/internal/logging"
)

func main() {
	dirFlag := flag.String("dir", config.SourceDir(), "default book source directory")
	ledgerFlag := flag.String("ledger", config.LedgerPath(), "sqlite run ledger (empty disables)")
	flag.Parse()

	logger := logging.New(config.LogLevel())

	deps := mcpadapter.Deps{
		Scanner:    filesystem.NewScanner(),
		Store:      filesystem.NewStore(),
		DefaultDir: *dirFlag,
	}
	if *ledgerFlag != "" {
		ledger, err := sqlite.Open(config.ExpandHome(*ledgerFlag))
		if err != nil {
			logger.Fatal("failed to open run ledger", "error", err)
		}
		defer ledger.Close()
		deps.Ledger = ledger
	}

	mcpServer := server.NewMCPServer(
		"auto-gen-summary-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
