package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// SummaryTitle is the first line of every generated summary
	SummaryTitle = "# Summary"
	// SeparatorLine separates top-level sections
	SeparatorLine = "----"
	// IndentUnit is repeated once per nesting level
	IndentUnit = "    "
	// SectionBreak opens every level-0 section. It is a line of its own,
	// so the joined text carries two blank lines before the section.
	SectionBreak = "\n"
)

// RenderOptions controls how link text is chosen
type RenderOptions struct {
	UseTitleAsLinkText bool
}

// RenderSummary produces the summary lines for the tree rooted at root.
// rootDir is the directory all link targets are made relative to.
func RenderSummary(rootDir string, root *Group, opts RenderOptions) []string {
	r := &summaryRenderer{rootDir: filepath.Clean(rootDir), opts: opts}
	return r.renderGroup(root, nil)
}

// JoinSummary joins rendered lines into the persisted text.
// No trailing newline is added.
func JoinSummary(lines []string) string {
	return strings.Join(lines, "\n")
}

type summaryRenderer struct {
	rootDir string
	opts    RenderOptions
}

func (r *summaryRenderer) renderGroup(g *Group, lines []string) []string {
	rel := r.relPath(g.Path)
	indent := indentFor(rel)
	name := g.Name

	var link string
	if rel == "" {
		name = g.DisplayName()
		lines = append(lines, SummaryTitle)
		link = fmt.Sprintf("* [%s](%s)", name, IndexFile)
	} else {
		link = fmt.Sprintf("%s* [%s](%s/%s)", indent, name, rel, IndexFile)
	}

	// Level-0 groups open a new section
	if indent == "" {
		lines = append(lines, SectionBreak)
		if name != WelcomeLabel {
			lines = append(lines, SeparatorLine)
		}
	}
	lines = append(lines, link)

	for _, doc := range g.Documents {
		docRel := r.relPath(doc.Path)
		if docRel == SummaryFile || strings.HasSuffix(docRel, IndexFile) {
			continue
		}
		text := doc.Name
		if r.opts.UseTitleAsLinkText && doc.Title != "" {
			text = doc.Title
		}
		lines = append(lines, fmt.Sprintf("%s* [%s](%s)", indentFor(docRel), text, docRel))
	}

	for _, sub := range g.Subgroups {
		lines = r.renderGroup(sub, lines)
	}
	return lines
}

// relPath returns path relative to the root with forward slashes,
// or "" for the root itself.
func (r *summaryRenderer) relPath(path string) string {
	rel, err := filepath.Rel(r.rootDir, filepath.Clean(path))
	if err != nil {
		rel = strings.TrimPrefix(strings.TrimPrefix(path, r.rootDir), string(filepath.Separator))
	}
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// indentFor returns the indentation for a root-relative path.
// The first segment is not indented, so root entries and top-level
// groups share level zero.
func indentFor(rel string) string {
	if rel == "" {
		return ""
	}
	return strings.Repeat(IndentUnit, strings.Count(rel, "/"))
}
