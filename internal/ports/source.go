package ports

import "autogensummary/internal/domain"

// TreeScanner builds the navigation tree for a source directory
type TreeScanner interface {
	// Scan walks root and returns its group, pruning directories
	// without a direct index document
	Scan(root string) (*domain.Group, error)
}

// SummaryStore persists rendered summaries
type SummaryStore interface {
	// WriteIfChanged overwrites path with text only when the fingerprints
	// of text and the current content differ. A missing file counts as empty.
	WriteIfChanged(path, text string) (changed bool, err error)

	// Read returns the current content of path, "" if it does not exist
	Read(path string) (string, error)
}

// BookLoader turns a persisted summary into the host's chapter tree
type BookLoader interface {
	LoadBook(sourceDir string) (*domain.Book, error)
}
