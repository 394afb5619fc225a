package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/kailas-cloud/docsearch/internal/db"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
)

// Search sends the request as a bool query body. No size, from or sort is
// set, so cluster defaults apply.
func (s *Store) Search(ctx context.Context, index string, req *request.Request) (*db.SearchResult, error) {
	if index == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if req == nil {
		return nil, fmt.Errorf("request is required")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	resp, err := s.client.Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{index},
		Body:    bytes.NewReader(body),
	})
	if err != nil {
		if isOpenSearchErr(err, "index_not_found_exception") {
			return nil, &db.Error{Op: db.OpSearch, Err: db.ErrIndexNotFound}
		}
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	hits := make([]db.Hit, 0, len(resp.Hits.Hits))
	for _, h := range resp.Hits.Hits {
		fields, err := decodeSource(h.Source)
		if err != nil {
			return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("decode hit %s: %w", h.ID, err)}
		}
		hits = append(hits, db.Hit{
			ID:     h.ID,
			Score:  float64(h.Score),
			Fields: fields,
		})
	}

	return &db.SearchResult{Total: int(resp.Hits.Total.Value), Hits: hits}, nil
}

// decodeSource keeps the string-valued fields of a hit's _source.
func decodeSource(raw json.RawMessage) (map[string]string, error) {
	fields := make(map[string]string)
	if len(raw) == 0 {
		return fields, nil
	}

	var src map[string]json.RawMessage
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, err
	}
	for k, v := range src {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			fields[k] = s
		}
	}
	return fields, nil
}
