package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// BookItemKind distinguishes the entries of a book
type BookItemKind int

const (
	ItemChapter BookItemKind = iota
	ItemSeparator
)

// Book is the chapter tree the documentation host renders
type Book struct {
	Sections []BookItem
}

// BookItem is either a chapter or a separator
type BookItem struct {
	Kind    BookItemKind
	Chapter *Chapter
}

// Chapter is one linked page of the book
type Chapter struct {
	Name        string
	Content     string
	Number      []int  // e.g. [2 1] for "2.1."
	Path        string // Link target relative to the source directory
	ParentNames []string
	SubItems    []BookItem
}

// Chapters returns every chapter of the book in depth-first order
func (b *Book) Chapters() []*Chapter {
	var result []*Chapter
	collectChapters(b.Sections, &result)
	return result
}

func collectChapters(items []BookItem, result *[]*Chapter) {
	for _, item := range items {
		if item.Kind != ItemChapter {
			continue
		}
		*result = append(*result, item.Chapter)
		collectChapters(item.Chapter.SubItems, result)
	}
}

var summaryItemPattern = regexp.MustCompile(`^( *)\* \[(.*)\]\((.*)\)$`)

// ParseSummary builds a book skeleton from summary text in the format
// RenderSummary produces. Chapter content is left empty.
func ParseSummary(text string) (*Book, error) {
	book := &Book{}
	var stack []*Chapter
	topLevel := 0

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, headingPrefix):
			continue
		case isSeparator(trimmed):
			book.Sections = append(book.Sections, BookItem{Kind: ItemSeparator})
			stack = stack[:0]
			continue
		}

		matches := summaryItemPattern.FindStringSubmatch(line)
		if matches == nil {
			return nil, fmt.Errorf("line %d: unrecognized summary entry %q", i+1, line)
		}

		level := len(matches[1]) / len(IndentUnit)
		if level > len(stack) {
			level = len(stack)
		}
		stack = stack[:level]

		chapter := &Chapter{
			Name: matches[2],
			Path: matches[3],
		}
		for _, parent := range stack {
			chapter.ParentNames = append(chapter.ParentNames, parent.Name)
		}

		if level == 0 {
			topLevel++
			chapter.Number = []int{topLevel}
			book.Sections = append(book.Sections, BookItem{Kind: ItemChapter, Chapter: chapter})
		} else {
			parent := stack[level-1]
			chapter.Number = append(slices.Clone(parent.Number), countChapters(parent.SubItems)+1)
			parent.SubItems = append(parent.SubItems, BookItem{Kind: ItemChapter, Chapter: chapter})
		}
		stack = append(stack, chapter)
	}

	return book, nil
}

func isSeparator(line string) bool {
	return len(line) >= 3 && strings.Trim(line, "-") == ""
}

func countChapters(items []BookItem) int {
	n := 0
	for _, item := range items {
		if item.Kind == ItemChapter {
			n++
		}
	}
	return n
}
