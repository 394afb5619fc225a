package document

import (
	"context"
	"testing"

	"github.com/kailas-cloud/docsearch/internal/db"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	indexExistsFn   func(ctx context.Context, name string) (bool, error)
	createIndexFn   func(ctx context.Context, def *db.IndexDefinition) error
	indexDocumentFn func(ctx context.Context, index, id string, fields map[string]string, refresh bool) error
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexDocument(
	ctx context.Context, index, id string, fields map[string]string, refresh bool,
) error {
	if m.indexDocumentFn != nil {
		return m.indexDocumentFn(ctx, index, id, fields, refresh)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, "documents", 1)
	return repo, ms
}

func testDocument(t *testing.T) domdoc.Document {
	t.Helper()
	doc, err := domdoc.New(3, "Docker Compose for Development", "Using Docker Compose", domdoc.Tutorial)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return doc
}
