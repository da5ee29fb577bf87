package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"autogensummary/internal/domain"
)

// Store implements ports.SummaryStore using the filesystem
type Store struct{}

// NewStore creates a new filesystem summary store
func NewStore() *Store {
	return &Store{}
}

// Read returns the content of path, or "" when it does not exist yet
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read summary: %w", err)
	}
	return string(data), nil
}

// WriteIfChanged replaces path with text unless both fingerprints match.
// The replacement goes through a temporary file so readers never see a
// partial summary.
func (s *Store) WriteIfChanged(path, text string) (bool, error) {
	current, err := s.Read(path)
	if err != nil {
		return false, err
	}

	if domain.Fingerprint(current) == domain.Fingerprint(text) {
		return false, nil
	}

	if err := writeFileAtomic(path, []byte(text)); err != nil {
		return false, err
	}
	return true, nil
}

// writeFileAtomic replaces path through a temp file and a rename. A symlinked
// summary keeps its link and the file it points to is replaced instead.
// Hard links to the old file keep the old content.
func writeFileAtomic(path string, data []byte) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".summary-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to set summary permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace summary: %w", err)
	}
	return nil
}
