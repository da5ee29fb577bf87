package commands

import (
	"errors"
	"strings"

	"autogensummary/internal/domain"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

type fakeScanner struct {
	root  *domain.Group
	err   error
	calls int
}

func (s *fakeScanner) Scan(root string) (*domain.Group, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.root, nil
}

type memStore struct {
	files  map[string]string
	writes int
	err    error
}

func newMemStore() *memStore {
	return &memStore{files: map[string]string{}}
}

func (s *memStore) Read(path string) (string, error) {
	return s.files[path], nil
}

func (s *memStore) WriteIfChanged(path, text string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if current, ok := s.files[path]; ok && domain.Fingerprint(current) == domain.Fingerprint(text) {
		return false, nil
	}
	s.files[path] = text
	s.writes++
	return true, nil
}

type memLedger struct {
	runs []domain.Run
	err  error
}

func (l *memLedger) Record(run *domain.Run) error {
	if l.err != nil {
		return l.err
	}
	run.ID = int64(len(l.runs) + 1)
	l.runs = append(l.runs, *run)
	return nil
}

func (l *memLedger) Recent(limit int) ([]domain.Run, error) {
	if l.err != nil {
		return nil, l.err
	}
	var out []domain.Run
	for i := len(l.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.runs[i])
	}
	return out, nil
}

func (l *memLedger) Close() error { return nil }

type fakeLoader struct {
	book *domain.Book
	dirs []string
}

func (l *fakeLoader) LoadBook(sourceDir string) (*domain.Book, error) {
	l.dirs = append(l.dirs, sourceDir)
	if l.book == nil {
		return nil, errors.New("no book")
	}
	return l.book, nil
}

func sourceTree(dir string) *domain.Group {
	return &domain.Group{
		Name:      "src",
		Path:      dir,
		HasIndex:  true,
		Documents: []domain.Document{{Name: "intro", Title: "Getting Started", Path: dir + "/intro.md"}},
	}
}
