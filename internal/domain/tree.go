package domain

import (
	"slices"
	"strings"
)

const (
	// IndexFile marks a directory as navigable and is its landing page
	IndexFile = "README.md"
	// SummaryFile is the generated navigation document
	SummaryFile = "SUMMARY.md"
	// DocumentExt is the recognized document extension (compared case-insensitively)
	DocumentExt = "md"
	// RootDirName is the conventional source directory name
	RootDirName = "src"
	// WelcomeLabel replaces RootDirName as the root display name
	WelcomeLabel = "Welcome"
)

// Document represents one discovered content file
type Document struct {
	Name  string // File name without extension, e.g. "intro"
	Title string // First top-level heading, empty if none
	Path  string // Full file path
}

// Group represents a directory node in the navigation tree
type Group struct {
	Name      string // Directory base name
	Path      string // Full directory path
	HasIndex  bool   // README.md directly present
	Documents []Document
	Subgroups []*Group
}

// DisplayName returns the link text for the group when it is the tree root
func (g *Group) DisplayName() string {
	if g.Name == RootDirName {
		return WelcomeLabel
	}
	return g.Name
}

// Count returns the number of groups (including g) and documents in the tree
func (g *Group) Count() (groups, documents int) {
	groups = 1
	documents = len(g.Documents)
	for _, sub := range g.Subgroups {
		sg, sd := sub.Count()
		groups += sg
		documents += sd
	}
	return groups, documents
}

// IsReserved reports whether a file name is one of the reserved names
// that are never listed as documents
func IsReserved(fileName string) bool {
	return fileName == IndexFile || fileName == SummaryFile
}

// SplitDocumentName splits a file name into stem and extension on the last dot.
// ok is false when the file is not a recognized document.
func SplitDocumentName(fileName string) (stem string, ok bool) {
	dot := strings.LastIndex(fileName, ".")
	if dot <= 0 || dot == len(fileName)-1 {
		return "", false
	}
	if !strings.EqualFold(fileName[dot+1:], DocumentExt) {
		return "", false
	}
	return fileName[:dot], true
}

// SortDocuments sorts documents by file path in ascending order
func SortDocuments(docs []Document) {
	slices.SortFunc(docs, func(a, b Document) int {
		return strings.Compare(a.Path, b.Path)
	})
}

// SortGroups sorts groups by name in ascending order
func SortGroups(groups []*Group) {
	slices.SortFunc(groups, func(a, b *Group) int {
		return strings.Compare(a.Name, b.Name)
	})
}
