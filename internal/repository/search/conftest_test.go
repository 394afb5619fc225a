package search

import (
	"context"
	"testing"

	"github.com/kailas-cloud/docsearch/internal/db"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn func(ctx context.Context, index string, req *request.Request) (*db.SearchResult, error)
}

func (m *mockStore) Search(ctx context.Context, index string, req *request.Request) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, index, req)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, "documents")
	return repo, ms
}
