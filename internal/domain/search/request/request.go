package request

import (
	"encoding/json"
	"strings"

	"github.com/kailas-cloud/docsearch/internal/domain/document"
)

// AllContentTypes is the category value meaning "no filter".
const AllContentTypes = "all"

// SearchFields are the fields the free-text query is matched against.
var SearchFields = []string{document.FieldTitle, document.FieldContent}

// MultiMatch matches query text across several text fields.
type MultiMatch struct {
	Query  string
	Fields []string
}

// Term restricts results to documents whose field equals Value exactly.
type Term struct {
	Field string
	Value string
}

// Request is a backend-neutral boolean search: a mandatory scoring clause
// plus non-scoring filters. A nil MultiMatch means match all documents.
type Request struct {
	must   *MultiMatch
	filter []Term
}

// Build translates a free-text query and optional category into a Request.
// Empty (or whitespace-only) queries match every document. contentType is
// passed through unvalidated; "" and "all" add no filter.
func Build(query, contentType string) Request {
	var r Request
	if strings.TrimSpace(query) != "" {
		fields := make([]string, len(SearchFields))
		copy(fields, SearchFields)
		r.must = &MultiMatch{Query: query, Fields: fields}
	}
	if contentType != "" && contentType != AllContentTypes {
		r.filter = []Term{{Field: document.FieldContentType, Value: contentType}}
	}
	return r
}

// Must returns the scoring clause, or nil for match-all.
func (r *Request) Must() *MultiMatch { return r.must }

// MatchAll reports whether the request matches every document.
func (r *Request) MatchAll() bool { return r.must == nil }

// Filters returns the exact-match filter clauses.
func (r *Request) Filters() []Term { return r.filter }

// HasFilter reports whether any filter clause is present.
func (r *Request) HasFilter() bool { return len(r.filter) > 0 }

// MarshalJSON renders the request as an OpenSearch query body.
func (r Request) MarshalJSON() ([]byte, error) {
	boolQuery := map[string]any{}

	if r.must == nil {
		boolQuery["must"] = map[string]any{"match_all": map[string]any{}}
	} else {
		boolQuery["must"] = map[string]any{
			"multi_match": map[string]any{
				"query":  r.must.Query,
				"fields": r.must.Fields,
			},
		}
	}

	switch len(r.filter) {
	case 0:
	case 1:
		boolQuery["filter"] = termClause(r.filter[0])
	default:
		clauses := make([]any, len(r.filter))
		for i, t := range r.filter {
			clauses[i] = termClause(t)
		}
		boolQuery["filter"] = clauses
	}

	return json.Marshal(map[string]any{
		"query": map[string]any{"bool": boolQuery},
	})
}

func termClause(t Term) map[string]any {
	return map[string]any{"term": map[string]any{t.Field: t.Value}}
}
