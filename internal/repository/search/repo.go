package search

import (
	"context"

	"github.com/kailas-cloud/docsearch/internal/db"
	"github.com/kailas-cloud/docsearch/internal/domain"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	Search(ctx context.Context, index string, req *request.Request) (*db.SearchResult, error)
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store store
	index string
}

// New creates a search repository bound to one index.
func New(s store, index string) *Repo {
	return &Repo{store: s, index: index}
}

// Search runs req once and returns hits in backend relevance order along
// with the total number of matches, which may exceed len(hits).
// Any backend failure comes back as *domain.QueryError.
func (r *Repo) Search(ctx context.Context, req *request.Request) ([]result.Hit, int, error) {
	sr, err := r.store.Search(ctx, r.index, req)
	if err != nil {
		return nil, 0, &domain.QueryError{Index: r.index, Err: err}
	}
	if sr == nil {
		return []result.Hit{}, 0, nil
	}
	return toHits(sr), sr.Total, nil
}

// toHits converts store hits to projector hits.
func toHits(sr *db.SearchResult) []result.Hit {
	hits := make([]result.Hit, 0, len(sr.Hits))
	for _, h := range sr.Hits {
		hits = append(hits, result.Hit{ID: h.ID, Score: h.Score, Fields: h.Fields})
	}
	return hits
}
