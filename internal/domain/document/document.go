package document

import (
	"fmt"
	"strconv"
)

// Stored field names shared by every backend.
const (
	FieldTitle       = "title"
	FieldContent     = "content"
	FieldContentType = "content_type"
)

// ContentType is an exact-match category label.
type ContentType string

// Known content types.
const (
	Article  ContentType = "article"
	News     ContentType = "news"
	Report   ContentType = "report"
	Tutorial ContentType = "tutorial"
)

// ContentTypes lists the known categories in display order.
func ContentTypes() []ContentType {
	return []ContentType{Article, News, Report, Tutorial}
}

// IsValid reports whether t is one of the known categories.
func (t ContentType) IsValid() bool {
	switch t {
	case Article, News, Report, Tutorial:
		return true
	}
	return false
}

// Document is an indexed document (immutable value object).
type Document struct {
	id          int
	title       string
	content     string
	contentType ContentType
}

// New validates and creates a Document. IDs start at 1.
func New(id int, title, content string, contentType ContentType) (Document, error) {
	if id < 1 {
		return Document{}, fmt.Errorf("document ID must be positive, got %d", id)
	}
	if title == "" {
		return Document{}, fmt.Errorf("title is required")
	}
	if !contentType.IsValid() {
		return Document{}, fmt.Errorf("unknown content type %q", contentType)
	}
	return Document{id: id, title: title, content: content, contentType: contentType}, nil
}

// ID returns the store identifier.
func (d *Document) ID() int { return d.id }

// Key returns the identifier in the form the store receives it.
func (d *Document) Key() string { return strconv.Itoa(d.id) }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Content returns the document body.
func (d *Document) Content() string { return d.content }

// ContentType returns the document category.
func (d *Document) ContentType() ContentType { return d.contentType }

// Fields returns the stored representation of the document.
func (d *Document) Fields() map[string]string {
	return map[string]string{
		FieldTitle:       d.title,
		FieldContent:     d.content,
		FieldContentType: string(d.contentType),
	}
}
