package commands

import (
	"context"
	"testing"

	"autogensummary/internal/domain"
)

func TestHistoryCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("without ledger", func(t *testing.T) {
		if _, err := NewHistoryCommand(nil, 5).Execute(ctx); err == nil {
			t.Error("expected error without a ledger")
		}
	})

	t.Run("default limit", func(t *testing.T) {
		if got := NewHistoryCommand(nil, 0).Limit; got != DefaultHistoryLimit {
			t.Errorf("expected limit %d, got %d", DefaultHistoryLimit, got)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ledger := &memLedger{}
		scanner := &fakeScanner{root: sourceTree("src")}
		store := newMemStore()
		for range 3 {
			if _, err := NewGenerateCommand(scanner, store, "src", domain.RenderOptions{}).WithLedger(ledger).Execute(ctx); err != nil {
				t.Fatalf("generate failed: %v", err)
			}
		}

		runs, err := NewHistoryCommand(ledger, 2).Execute(ctx)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(runs) != 2 {
			t.Fatalf("expected 2 runs, got %d", len(runs))
		}
		if runs[0].ID != 3 || runs[1].ID != 2 {
			t.Errorf("unexpected order: %d, %d", runs[0].ID, runs[1].ID)
		}
	})
}
