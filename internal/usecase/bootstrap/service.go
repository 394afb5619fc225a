package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/domain"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/metrics"
)

// Defaults for the connection retry loop.
const (
	DefaultMaxAttempts   = 10
	DefaultRetryInterval = 5 * time.Second
	DefaultPingTimeout   = 10 * time.Second
)

// Config bounds the connection retry loop.
type Config struct {
	MaxAttempts   int
	RetryInterval time.Duration
	// PingTimeout bounds a single attempt.
	PingTimeout time.Duration
}

// Service prepares the document store before the server accepts traffic.
// Each stage is idempotent and can be run on its own.
type Service struct {
	pinger Pinger
	repo   Repository
	pick   domdoc.Picker
	cfg    Config
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a bootstrap service. pick chooses each sample's category.
func New(pinger Pinger, repo Repository, pick domdoc.Picker, cfg Config, logger *zap.Logger) *Service {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryInterval < 0 {
		cfg.RetryInterval = DefaultRetryInterval
	}
	if cfg.PingTimeout <= 0 {
		cfg.PingTimeout = DefaultPingTimeout
	}
	return &Service{
		pinger: pinger,
		repo:   repo,
		pick:   pick,
		cfg:    cfg,
		logger: logger,
		sleep:  sleepContext,
	}
}

// Run connects, ensures the index and seeds the sample documents, in order.
func (s *Service) Run(ctx context.Context) error {
	if err := s.WaitForStore(ctx); err != nil {
		return err
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}
	if _, err := s.Seed(ctx); err != nil {
		return err
	}
	return nil
}

// WaitForStore pings the store up to MaxAttempts times, sleeping
// RetryInterval between attempts. On exhaustion it returns an error
// wrapping domain.ErrConnectivity and the last ping failure.
func (s *Service) WaitForStore(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		lastErr = s.ping(ctx)
		metrics.BootstrapAttemptsTotal.WithLabelValues(metrics.Outcome(lastErr)).Inc()
		if lastErr == nil {
			s.logger.Info("Document store reachable", zap.Int("attempt", attempt))
			return nil
		}

		s.logger.Warn("Document store not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.cfg.MaxAttempts),
			zap.Error(lastErr),
		)
		if attempt == s.cfg.MaxAttempts {
			break
		}
		if err := s.sleep(ctx, s.cfg.RetryInterval); err != nil {
			return fmt.Errorf("wait for store: %w", err)
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", domain.ErrConnectivity, s.cfg.MaxAttempts, lastErr)
}

// EnsureSchema creates the documents index unless it already exists.
func (s *Service) EnsureSchema(ctx context.Context) error {
	created, err := s.repo.EnsureIndex(ctx)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if created {
		s.logger.Info("Index created", zap.String("index", s.repo.Index()))
	} else {
		s.logger.Info("Index already exists", zap.String("index", s.repo.Index()))
	}
	return nil
}

// Seed writes the sample documents under ids 1..n. Rerunning overwrites
// the same ids, so the index never holds duplicates.
func (s *Service) Seed(ctx context.Context) ([]domdoc.Document, error) {
	docs, err := domdoc.Samples(s.pick)
	if err != nil {
		return nil, fmt.Errorf("build samples: %w", err)
	}
	for i := range docs {
		if err := s.repo.Insert(ctx, &docs[i]); err != nil {
			return nil, fmt.Errorf("seed document %d: %w", docs[i].ID(), err)
		}
		s.logger.Debug("Document indexed",
			zap.Int("id", docs[i].ID()),
			zap.String("content_type", string(docs[i].ContentType())),
		)
	}
	s.logger.Info("Sample documents indexed", zap.Int("count", len(docs)))
	return docs, nil
}

func (s *Service) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.PingTimeout)
	defer cancel()
	return s.pinger.Ping(ctx)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
