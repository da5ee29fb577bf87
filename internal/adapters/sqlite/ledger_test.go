package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"autogensummary/internal/domain"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()

	l, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedger_RecordAndRecent(t *testing.T) {
	l := openTestLedger(t)
	base := time.Now().Truncate(time.Millisecond)

	for i := range 3 {
		run := &domain.Run{
			SourceDir:   "book/src",
			Fingerprint: domain.Fingerprint(string(rune('a' + i))),
			Changed:     i == 0,
			Documents:   4 + i,
			Groups:      2,
			Duration:    time.Duration(i+1) * time.Millisecond,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}
		if err := l.Record(run); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if run.ID == 0 {
			t.Error("expected Record to set the run ID")
		}
	}

	runs, err := l.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	newest := runs[0]
	if newest.Documents != 6 {
		t.Errorf("expected newest run first, got documents=%d", newest.Documents)
	}
	if newest.Changed {
		t.Error("expected newest run to be unchanged")
	}
	if newest.Duration != 3*time.Millisecond {
		t.Errorf("expected 3ms, got %v", newest.Duration)
	}
	if !newest.CreatedAt.Equal(base.Add(2 * time.Second)) {
		t.Errorf("unexpected created_at %v", newest.CreatedAt)
	}
	if runs[1].Documents != 5 {
		t.Errorf("expected second newest run next, got documents=%d", runs[1].Documents)
	}
}

func TestLedger_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := l.Record(&domain.Run{SourceDir: "src", Fingerprint: "X", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	l.Close()

	l, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer l.Close()

	runs, err := l.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 persisted run, got %d", len(runs))
	}
	if l.Path() != path {
		t.Errorf("expected path %s, got %s", path, l.Path())
	}
}
