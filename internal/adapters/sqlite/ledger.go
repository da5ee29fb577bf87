package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"autogensummary/internal/domain"
	"autogensummary/internal/ports"
)

const schemaVersion = "1"

// Ledger implements ports.RunLedger using SQLite
type Ledger struct {
	db     *sql.DB
	dbPath string
}

// Ensure Ledger implements RunLedger
var _ ports.RunLedger = (*Ledger)(nil)

// Open opens (and creates if needed) the ledger database at dbPath
func Open(dbPath string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_dir TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			changed INTEGER NOT NULL,
			documents INTEGER NOT NULL,
			groups_count INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup ledger: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Ledger{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record appends a run and sets its ID
func (l *Ledger) Record(run *domain.Run) error {
	res, err := l.db.Exec(`
		INSERT INTO runs (source_dir, fingerprint, changed, documents, groups_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.SourceDir, run.Fingerprint, run.Changed, run.Documents, run.Groups,
		run.Duration.Milliseconds(), run.CreatedAt.UnixMilli())
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	run.ID = id
	return nil
}

// Recent returns up to limit runs, newest first
func (l *Ledger) Recent(limit int) ([]domain.Run, error) {
	rows, err := l.db.Query(`
		SELECT id, source_dir, fingerprint, changed, documents, groups_count, duration_ms, created_at
		FROM runs ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		var r domain.Run
		var durationMs, createdAt int64
		if err := rows.Scan(&r.ID, &r.SourceDir, &r.Fingerprint, &r.Changed,
			&r.Documents, &r.Groups, &durationMs, &createdAt); err != nil {
			return nil, err
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = time.UnixMilli(createdAt)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// Path returns the database file the ledger writes to
func (l *Ledger) Path() string {
	return l.dbPath
}
