package search

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
	"github.com/kailas-cloud/docsearch/internal/logger"
	"github.com/kailas-cloud/docsearch/internal/metrics"
)

// Service runs form searches: build the request, query once, project hits.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs query against title and content, restricted to contentType
// unless it is empty or request.AllContentTypes. Errors are returned
// unchanged; there is no retry.
func (s *Service) Search(ctx context.Context, query, contentType string) ([]result.Result, error) {
	req := request.Build(query, contentType)
	results, total, err := s.search(ctx, &req)

	metrics.SearchRequestsTotal.
		WithLabelValues(metrics.Outcome(err), strconv.FormatBool(req.HasFilter())).
		Inc()

	log := logger.FromContext(ctx)
	if err != nil {
		log.Warn("Search failed",
			zap.String("query", query),
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.SearchResultsTotal.Observe(float64(len(results)))
	log.Debug("Search completed",
		zap.String("query", query),
		zap.String("content_type", contentType),
		zap.Bool("match_all", req.MatchAll()),
		zap.Int("results", len(results)),
		zap.Int("total", total),
	)
	return results, nil
}

func (s *Service) search(ctx context.Context, req *request.Request) ([]result.Result, int, error) {
	hits, total, err := s.repo.Search(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	results, err := result.Project(hits)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
