package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/docsearch/internal/db"
	"github.com/kailas-cloud/docsearch/internal/domain"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
)

// store is the consumer interface for documents (ISP).
type store interface {
	IndexExists(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexDocument(ctx context.Context, index, id string, fields map[string]string, refresh bool) error
}

// Repo implements usecase/bootstrap.Repository.
type Repo struct {
	store  store
	index  string
	shards int
}

// New creates a document repository bound to one index.
func New(s store, index string, shards int) *Repo {
	return &Repo{store: s, index: index, shards: shards}
}

// Index returns the bound index name.
func (r *Repo) Index() string { return r.index }

// Definition returns the schema of the documents index: title and content
// are analyzed text, content_type is an exact-match keyword.
func (r *Repo) Definition() (*db.IndexDefinition, error) {
	return db.NewIndex(r.index).
		Shards(r.shards).
		Text(domdoc.FieldTitle).
		Text(domdoc.FieldContent).
		Keyword(domdoc.FieldContentType).
		Build()
}

// EnsureIndex creates the index when it is absent. Returns true if this call
// created it; an index created concurrently by someone else counts as present.
func (r *Repo) EnsureIndex(ctx context.Context) (bool, error) {
	exists, err := r.store.IndexExists(ctx, r.index)
	if err != nil {
		return false, fmt.Errorf("check index %s: %w", r.index, err)
	}
	if exists {
		return false, nil
	}

	def, err := r.Definition()
	if err != nil {
		return false, fmt.Errorf("build index %s: %w", r.index, err)
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return false, nil
		}
		return false, fmt.Errorf("create index %s: %w", r.index, err)
	}
	return true, nil
}

// Insert stores a document under its id, replacing any previous version,
// and makes it searchable before returning.
func (r *Repo) Insert(ctx context.Context, doc *domdoc.Document) error {
	if doc == nil || doc.ID() < 1 {
		return domain.ErrInvalidDocument
	}
	if err := r.store.IndexDocument(ctx, r.index, doc.Key(), doc.Fields(), true); err != nil {
		return fmt.Errorf("index document %s: %w", doc.Key(), err)
	}
	return nil
}
