package result

import (
	"github.com/kailas-cloud/docsearch/internal/domain"
	"github.com/kailas-cloud/docsearch/internal/domain/document"
)

// Snippet limits.
const (
	SnippetLength = 50
	Ellipsis      = "..."
)

// Hit is a raw match returned by the document store, in relevance order.
type Hit struct {
	ID     string
	Score  float64
	Fields map[string]string
}

// Result is the display form of a hit.
type Result struct {
	Title   string
	Snippet string
}

// Project maps hits to results one-to-one, preserving order.
// A hit without a title or content field fails the whole projection.
func Project(hits []Hit) ([]Result, error) {
	results := make([]Result, 0, len(hits))
	for i := range hits {
		r, err := project(&hits[i])
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func project(h *Hit) (Result, error) {
	title, ok := h.Fields[document.FieldTitle]
	if !ok {
		return Result{}, &domain.MissingFieldError{HitID: h.ID, Field: document.FieldTitle}
	}
	content, ok := h.Fields[document.FieldContent]
	if !ok {
		return Result{}, &domain.MissingFieldError{HitID: h.ID, Field: document.FieldContent}
	}
	return Result{Title: title, Snippet: Snippet(content)}, nil
}

// Snippet truncates content to SnippetLength characters, appending Ellipsis
// only when something was cut.
func Snippet(content string) string {
	n := 0
	for i := range content {
		if n == SnippetLength {
			return content[:i] + Ellipsis
		}
		n++
	}
	return content
}
