package redis

import (
	"context"
	"errors"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// CreateIndex creates an FT index over document hashes.
func (s *Store) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	args, err := s.buildCreateArgs(def)
	if err != nil {
		return err
	}

	cmd := s.b().Arbitrary("FT.CREATE").Args(args...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			return db.ErrIndexExists
		}
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	return nil
}

// IndexExists probes index existence via FT.INFO; "unknown index name" means absent.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	cmd := s.b().Arbitrary("FT.INFO").Args(name).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "unknown index name") || isRedisErr(err, "no such index") {
			return false, nil
		}
		return false, &db.Error{Op: db.OpIndexExists, Err: err}
	}
	return true, nil
}

// buildCreateArgs renders FT.CREATE arguments. Shards are ignored; keyword
// fields become case-sensitive TAGs so filtering is exact-match.
func (s *Store) buildCreateArgs(idx *db.IndexDefinition) ([]string, error) {
	if err := idx.Validate(); err != nil {
		return nil, err
	}

	args := []string{idx.Name, "ON", "HASH"}

	args = append(args, "PREFIX", "1", s.docPrefix(idx.Name))

	args = append(args, "SCHEMA")

	for i := range idx.Fields {
		f := &idx.Fields[i]
		switch f.Type {
		case db.IndexFieldText:
			args = append(args, f.Name, "TEXT")
		case db.IndexFieldKeyword:
			args = append(args, f.Name, "TAG", "CASESENSITIVE")
		default:
			return nil, errors.New("unknown field type")
		}
	}

	return args, nil
}
