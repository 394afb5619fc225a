package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// CreateIndex creates an index with the given shard count and mappings.
func (s *Store) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	body, err := buildCreateBody(def)
	if err != nil {
		return err
	}

	_, err = s.client.Indices.Create(ctx, opensearchapi.IndicesCreateReq{
		Index: def.Name,
		Body:  bytes.NewReader(body),
	})
	if err != nil {
		if isOpenSearchErr(err, "resource_already_exists_exception") {
			return db.ErrIndexExists
		}
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	return nil
}

// IndexExists probes the index with HEAD /{index}; 404 means absent.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	resp, err := s.client.Indices.Exists(ctx, opensearchapi.IndicesExistsReq{
		Indices: []string{name},
	})
	closeBody(resp)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if err != nil {
		return false, &db.Error{Op: db.OpIndexExists, Err: err}
	}
	return true, nil
}

type fieldMapping struct {
	Type string `json:"type"`
}

// buildCreateBody renders the settings+mappings body. Prefixes are a
// key-store concept and are ignored here.
func buildCreateBody(def *db.IndexDefinition) ([]byte, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	props := make(map[string]fieldMapping, len(def.Fields))
	for _, f := range def.Fields {
		props[f.Name] = fieldMapping{Type: f.Type.String()}
	}

	body := map[string]any{
		"mappings": map[string]any{"properties": props},
	}
	if def.Shards > 0 {
		body["settings"] = map[string]any{
			"index": map[string]any{"number_of_shards": def.Shards},
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal index body: %w", err)
	}
	return data, nil
}
