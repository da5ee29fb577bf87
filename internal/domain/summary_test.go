package domain

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func sampleTree(rootDir string) *Group {
	guide := filepath.Join(rootDir, "guide")
	advanced := filepath.Join(guide, "advanced")
	return &Group{
		Name:     filepath.Base(rootDir),
		Path:     rootDir,
		HasIndex: true,
		Documents: []Document{
			{Name: "intro", Title: "Getting Started", Path: filepath.Join(rootDir, "intro.md")},
		},
		Subgroups: []*Group{
			{
				Name:      "guide",
				Path:      guide,
				HasIndex:  true,
				Documents: []Document{{Name: "setup", Path: filepath.Join(guide, "setup.md")}},
				Subgroups: []*Group{
					{
						Name:      "advanced",
						Path:      advanced,
						HasIndex:  true,
						Documents: []Document{{Name: "tips", Title: "Tips", Path: filepath.Join(advanced, "tips.md")}},
					},
				},
			},
		},
	}
}

func TestRenderSummary(t *testing.T) {
	t.Run("root documents use file names", func(t *testing.T) {
		rootDir := filepath.Join("book", "docs")
		root := &Group{
			Name:      "docs",
			Path:      rootDir,
			HasIndex:  true,
			Documents: []Document{{Name: "intro", Title: "Getting Started", Path: filepath.Join(rootDir, "intro.md")}},
		}

		got := RenderSummary(rootDir, root, RenderOptions{})
		want := []string{
			"# Summary",
			"\n",
			"----",
			"* [docs](README.md)",
			"* [intro](intro.md)",
		}
		if !slices.Equal(got, want) {
			t.Errorf("RenderSummary() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
		}
	})

	t.Run("first heading as link text", func(t *testing.T) {
		rootDir := filepath.Join("book", "docs")
		root := &Group{
			Name:     "docs",
			Path:     rootDir,
			HasIndex: true,
			Documents: []Document{
				{Name: "intro", Title: "Getting Started", Path: filepath.Join(rootDir, "intro.md")},
				{Name: "untitled", Path: filepath.Join(rootDir, "untitled.md")},
			},
		}

		got := RenderSummary(rootDir, root, RenderOptions{UseTitleAsLinkText: true})
		if !slices.Contains(got, "* [Getting Started](intro.md)") {
			t.Errorf("expected heading link text, got %q", got)
		}
		if !slices.Contains(got, "* [untitled](untitled.md)") {
			t.Errorf("expected file name fallback for untitled document, got %q", got)
		}
	})

	t.Run("nested groups under the source root", func(t *testing.T) {
		rootDir := filepath.Join("book", "src")

		got := RenderSummary(rootDir, sampleTree(rootDir), RenderOptions{})
		want := []string{
			"# Summary",
			"\n",
			"* [Welcome](README.md)",
			"* [intro](intro.md)",
			"\n",
			"----",
			"* [guide](guide/README.md)",
			"    * [setup](guide/setup.md)",
			"    * [advanced](guide/advanced/README.md)",
			"        * [tips](guide/advanced/tips.md)",
		}
		if !slices.Equal(got, want) {
			t.Errorf("RenderSummary() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
		}
	})

	t.Run("reserved documents are never linked", func(t *testing.T) {
		rootDir := "src"
		root := &Group{
			Name:     "src",
			Path:     rootDir,
			HasIndex: true,
			Documents: []Document{
				{Name: "README", Path: filepath.Join(rootDir, "README.md")},
				{Name: "SUMMARY", Path: filepath.Join(rootDir, "SUMMARY.md")},
				{Name: "intro", Path: filepath.Join(rootDir, "intro.md")},
			},
		}

		got := RenderSummary(rootDir, root, RenderOptions{})
		for _, line := range got {
			if strings.Contains(line, "[README]") || strings.Contains(line, "[SUMMARY]") {
				t.Errorf("unexpected reserved entry %q", line)
			}
		}
	})
}

func TestRenderSummary_JoinedSectionBreaks(t *testing.T) {
	rootDir := filepath.Join("book", "src")
	got := JoinSummary(RenderSummary(rootDir, sampleTree(rootDir), RenderOptions{}))
	want := "# Summary\n\n\n* [Welcome](README.md)\n* [intro](intro.md)\n\n\n----\n" +
		"* [guide](guide/README.md)\n    * [setup](guide/setup.md)\n" +
		"    * [advanced](guide/advanced/README.md)\n        * [tips](guide/advanced/tips.md)"
	if got != want {
		t.Errorf("JoinSummary(RenderSummary()) =\n%q\nwant\n%q", got, want)
	}
}

func TestJoinSummary(t *testing.T) {
	got := JoinSummary([]string{"# Summary", "", "* [Welcome](README.md)"})
	if got != "# Summary\n\n* [Welcome](README.md)" {
		t.Errorf("JoinSummary() = %q", got)
	}
}

func TestParseSummary(t *testing.T) {
	rootDir := filepath.Join("book", "src")
	text := JoinSummary(RenderSummary(rootDir, sampleTree(rootDir), RenderOptions{}))

	book, err := ParseSummary(text)
	if err != nil {
		t.Fatalf("ParseSummary() error = %v", err)
	}

	if len(book.Sections) != 4 {
		t.Fatalf("expected 4 top-level items, got %d", len(book.Sections))
	}
	if book.Sections[2].Kind != ItemSeparator {
		t.Errorf("expected third item to be a separator")
	}

	chapters := book.Chapters()
	tests := []struct {
		name    string
		path    string
		number  []int
		parents []string
	}{
		{"Welcome", "README.md", []int{1}, nil},
		{"intro", "intro.md", []int{2}, nil},
		{"guide", "guide/README.md", []int{3}, nil},
		{"setup", "guide/setup.md", []int{3, 1}, []string{"guide"}},
		{"advanced", "guide/advanced/README.md", []int{3, 2}, []string{"guide"}},
		{"tips", "guide/advanced/tips.md", []int{3, 2, 1}, []string{"guide", "advanced"}},
	}
	if len(chapters) != len(tests) {
		t.Fatalf("expected %d chapters, got %d", len(tests), len(chapters))
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := chapters[i]
			if ch.Name != tt.name || ch.Path != tt.path {
				t.Errorf("got %s (%s), want %s (%s)", ch.Name, ch.Path, tt.name, tt.path)
			}
			if !slices.Equal(ch.Number, tt.number) {
				t.Errorf("number = %v, want %v", ch.Number, tt.number)
			}
			if !slices.Equal(ch.ParentNames, tt.parents) {
				t.Errorf("parents = %v, want %v", ch.ParentNames, tt.parents)
			}
		})
	}

	t.Run("unrecognized line", func(t *testing.T) {
		if _, err := ParseSummary("# Summary\nnot a link"); err == nil {
			t.Error("expected error for unrecognized line")
		}
	})
}
