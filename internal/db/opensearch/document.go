package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// IndexDocument stores a document under an explicit id, replacing any
// previous version. refresh=true makes it searchable immediately.
func (s *Store) IndexDocument(
	ctx context.Context, index, id string, fields map[string]string, refresh bool,
) error {
	if id == "" {
		return fmt.Errorf("document id is required")
	}
	if len(fields) == 0 {
		return fmt.Errorf("document %s has no fields", id)
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", id, err)
	}

	req := opensearchapi.IndexReq{
		Index:      index,
		DocumentID: id,
		Body:       bytes.NewReader(body),
	}
	if refresh {
		req.Params.Refresh = "true"
	}

	if _, err := s.client.Index(ctx, req); err != nil {
		return &db.Error{Op: db.OpIndex, Err: err}
	}
	return nil
}
