package db

import (
	"context"

	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
)

// Store is the document store facade combining all sub-interfaces.
type Store interface {
	Pinger
	IndexManager
	DocumentWriter
	Searcher
	Close()
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IndexManager provides index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// DocumentWriter stores documents under explicit ids.
// refresh makes the document searchable before the call returns.
type DocumentWriter interface {
	IndexDocument(ctx context.Context, index, id string, fields map[string]string, refresh bool) error
}

// Searcher runs structured search requests.
type Searcher interface {
	Search(ctx context.Context, index string, req *request.Request) (*SearchResult, error)
}
