package bootstrap

import (
	"context"

	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
)

// Pinger checks document store availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repository defines the storage contract for schema setup and seeding.
type Repository interface {
	Index() string
	EnsureIndex(ctx context.Context) (bool, error)
	Insert(ctx context.Context, doc *domdoc.Document) error
}
