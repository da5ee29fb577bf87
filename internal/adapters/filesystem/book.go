package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"autogensummary/internal/domain"
)

// BookLoader implements ports.BookLoader by reading SUMMARY.md and the
// chapter files it links to
type BookLoader struct {
	logger *log.Logger
}

// NewBookLoader creates a new BookLoader. A nil logger uses the default logger.
func NewBookLoader(logger *log.Logger) *BookLoader {
	if logger == nil {
		logger = log.Default()
	}
	return &BookLoader{logger: logger}
}

// LoadBook parses the summary in sourceDir and fills in chapter content.
// Chapters whose file is missing keep empty content.
func (l *BookLoader) LoadBook(sourceDir string) (*domain.Book, error) {
	data, err := os.ReadFile(filepath.Join(sourceDir, domain.SummaryFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}

	book, err := domain.ParseSummary(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary: %w", err)
	}

	for _, chapter := range book.Chapters() {
		if chapter.Path == "" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(sourceDir, filepath.FromSlash(chapter.Path)))
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("chapter file not found", "path", chapter.Path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read chapter %s: %w", chapter.Path, err)
		}
		chapter.Content = string(content)
	}

	return book, nil
}
