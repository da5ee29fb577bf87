package mdbook

import (
	"encoding/json"
	"fmt"
	"io"

	"autogensummary/internal/application"
	"autogensummary/internal/config"
	"autogensummary/internal/domain"
)

// TargetVersion is the host version whose wire format this adapter speaks
const TargetVersion = "0.4.40"

// Context is the first element of the host's request
type Context struct {
	Root          string            `json:"root"`
	Config        config.BookConfig `json:"config"`
	Renderer      string            `json:"renderer"`
	MdbookVersion string            `json:"mdbook_version"`
}

// Request is the decoded [context, book] pair. The incoming book is kept
// raw: the generator rebuilds the book from the regenerated summary.
type Request struct {
	Context Context
	Book    json.RawMessage
}

// ParseRequest decodes a host request from r
func ParseRequest(r io.Reader) (*Request, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &application.ProtocolError{Reason: "cannot decode input", Err: err}
	}
	if len(raw) != 2 {
		return nil, &application.ProtocolError{
			Reason: fmt.Sprintf("expected [context, book], got %d elements", len(raw)),
		}
	}

	var ctx Context
	if err := json.Unmarshal(raw[0], &ctx); err != nil {
		return nil, &application.ProtocolError{Reason: "cannot decode context", Err: err}
	}
	if ctx.Root == "" {
		return nil, &application.ProtocolError{Reason: "context has no root"}
	}

	return &Request{Context: ctx, Book: raw[1]}, nil
}

// WriteBook encodes book in the host's format
func WriteBook(w io.Writer, book *domain.Book) error {
	wb := wireBook{Sections: toWireItems(book.Sections)}
	if err := json.NewEncoder(w).Encode(wb); err != nil {
		return fmt.Errorf("failed to write book: %w", err)
	}
	return nil
}

type wireBook struct {
	Sections      []wireItem `json:"sections"`
	NonExhaustive *struct{}  `json:"__non_exhaustive"`
}

// wireItem is an externally tagged enum: {"Chapter": {...}} or "Separator"
type wireItem struct {
	chapter *wireChapter
}

func (i wireItem) MarshalJSON() ([]byte, error) {
	if i.chapter == nil {
		return json.Marshal("Separator")
	}
	return json.Marshal(map[string]*wireChapter{"Chapter": i.chapter})
}

type wireChapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []int      `json:"number"`
	SubItems    []wireItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
}

func toWireItems(items []domain.BookItem) []wireItem {
	result := make([]wireItem, 0, len(items))
	for _, item := range items {
		if item.Kind == domain.ItemSeparator {
			result = append(result, wireItem{})
			continue
		}
		result = append(result, wireItem{chapter: toWireChapter(item.Chapter)})
	}
	return result
}

func toWireChapter(ch *domain.Chapter) *wireChapter {
	wc := &wireChapter{
		Name:        ch.Name,
		Content:     ch.Content,
		Number:      ch.Number,
		SubItems:    toWireItems(ch.SubItems),
		ParentNames: append([]string{}, ch.ParentNames...),
	}
	if ch.Path != "" {
		path := ch.Path
		wc.Path = &path
		wc.SourcePath = &path
	}
	return wc
}
