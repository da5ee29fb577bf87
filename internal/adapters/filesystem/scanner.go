package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"autogensummary/internal/domain"
)

// Scanner implements ports.TreeScanner using the filesystem
type Scanner struct{}

// NewScanner creates a new filesystem scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks root recursively. Any unreadable directory or document
// aborts the whole scan.
func (s *Scanner) Scan(root string) (*domain.Group, error) {
	root = filepath.Clean(root)
	group, err := s.scanDir(root)
	if err != nil {
		return nil, err
	}

	// "." and "/" have no usable base name
	if group.Name == "." || group.Name == string(filepath.Separator) {
		if abs, err := filepath.Abs(root); err == nil {
			group.Name = filepath.Base(abs)
		}
	}
	return group, nil
}

func (s *Scanner) scanDir(dir string) (*domain.Group, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	group := &domain.Group{
		Name: filepath.Base(dir),
		Path: dir,
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			sub, err := s.scanDir(path)
			if err != nil {
				return nil, err
			}
			// Only directories with their own README are reachable
			if sub.HasIndex {
				group.Subgroups = append(group.Subgroups, sub)
			}
			continue
		}

		name := entry.Name()
		stem, ok := domain.SplitDocumentName(name)
		if !ok {
			continue
		}
		if name == domain.IndexFile {
			group.HasIndex = true
			continue
		}
		if domain.IsReserved(name) {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}

		group.Documents = append(group.Documents, domain.Document{
			Name:  stem,
			Title: domain.ExtractTitle(string(content)),
			Path:  path,
		})
	}

	domain.SortDocuments(group.Documents)
	domain.SortGroups(group.Subgroups)

	return group, nil
}
