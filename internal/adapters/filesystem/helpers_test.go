package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestBook creates a source directory named "src" inside a temp dir
// and writes files into it. Keys are slash-separated paths relative to src.
func setupTestBook(t *testing.T, files map[string]string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "src")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create source dir: %v", err)
	}

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
	return root
}
