package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/docsearch/internal/db"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
)

// Search runs a structured request via FT.SEARCH with BM25 scores.
// No LIMIT is sent, so the server default page size applies.
func (s *Store) Search(ctx context.Context, index string, req *request.Request) (*db.SearchResult, error) {
	if index == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if req == nil {
		return nil, fmt.Errorf("request is required")
	}

	args := []string{index, buildQuery(req), "WITHSCORES", "DIALECT", "2"}

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "no such index") || isRedisErr(err, "unknown index name") {
			return nil, &db.Error{Op: db.OpSearch, Err: db.ErrIndexNotFound}
		}
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseScoredResult(raw, s.docPrefix(index))
}

// --- Query building ---

// buildQuery renders a request as an FT.SEARCH query string. Filters come
// first; clauses separated by a space are intersected.
func buildQuery(req *request.Request) string {
	var parts []string

	for _, t := range req.Filters() {
		parts = append(parts, buildTagFilter(t.Field, t.Value))
	}

	if m := req.Must(); m != nil {
		if text := buildMultiMatch(m); text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}

// buildMultiMatch matches any query term in any of the fields, mirroring
// multi_match's default OR operator.
func buildMultiMatch(m *request.MultiMatch) string {
	terms := tokenize(m.Query)
	if len(terms) == 0 || len(m.Fields) == 0 {
		return ""
	}
	return fmt.Sprintf("@%s:(%s)", strings.Join(m.Fields, "|"), strings.Join(terms, "|"))
}

// tokenize splits q on whitespace and the default separator set, the same
// way indexed text is tokenized. No query syntax character survives it.
func tokenize(q string) []string {
	return strings.FieldsFunc(q, isSeparator)
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// separators is the RediSearch default tokenization set.
const separators = ",.<>{}[]\"':;!@#$%^&*()-+=~|/\\"

func buildTagFilter(key, value string) string {
	return fmt.Sprintf("@%s:{%s}", key, tagEscaper.Replace(value))
}

// --- Result parsing ---

func parseScoredResult(raw []rueidis.RedisMessage, prefix string) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	hits := make([]db.Hit, 0, (len(raw)-1)/3)
	// 3-stride: [total, key1, score1, fields1, key2, score2, fields2, ...]
	for i := 1; i+2 < len(raw); i += 3 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}

		fields, err := raw[i+2].ToArray()
		if err != nil {
			continue
		}

		hits = append(hits, db.Hit{
			ID:     strings.TrimPrefix(key, prefix),
			Score:  score,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Hits: hits}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Escaping ---

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	"|", "\\|",
	" ", "\\ ",
)
