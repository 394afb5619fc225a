package search

import (
	"context"

	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
)

// Repository defines the storage contract for search operations.
type Repository interface {
	// Search returns hits in relevance order and the total match count.
	Search(ctx context.Context, req *request.Request) ([]result.Hit, int, error)
}
