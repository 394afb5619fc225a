package redis

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// IndexDocument stores a document as a hash under the index prefix.
// Redis indexes hashes synchronously on write, so refresh needs no extra step.
func (s *Store) IndexDocument(
	ctx context.Context, index, id string, fields map[string]string, _ bool,
) error {
	if id == "" {
		return fmt.Errorf("document id is required")
	}
	if len(fields) == 0 {
		return fmt.Errorf("document %s has no fields", id)
	}

	cmd := s.b().Hset().Key(s.docPrefix(index) + id).FieldValue()
	for k, v := range fields {
		cmd = cmd.FieldValue(k, v)
	}
	if err := s.do(ctx, cmd.Build()).Error(); err != nil {
		return &db.Error{Op: db.OpIndex, Err: err}
	}
	return nil
}
