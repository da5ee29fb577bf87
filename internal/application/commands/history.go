package commands

import (
	"context"

	"autogensummary/internal/application"
	"autogensummary/internal/domain"
	"autogensummary/internal/ports"
)

// DefaultHistoryLimit is used when no positive limit is given
const DefaultHistoryLimit = 20

// HistoryCommand lists recent runs from the ledger
type HistoryCommand struct {
	ledger ports.RunLedger
	Limit  int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(ledger ports.RunLedger, limit int) *HistoryCommand {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryCommand{ledger: ledger, Limit: limit}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]domain.Run, error) {
	if c.ledger == nil {
		return nil, &application.ValidationError{
			Field:   "ledger",
			Message: "no run ledger configured",
		}
	}
	return c.ledger.Recent(c.Limit)
}
