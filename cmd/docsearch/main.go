package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/config"
	"github.com/kailas-cloud/docsearch/internal/db"
	dbOpenSearch "github.com/kailas-cloud/docsearch/internal/db/opensearch"
	dbRedis "github.com/kailas-cloud/docsearch/internal/db/redis"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
	logpkg "github.com/kailas-cloud/docsearch/internal/logger"
	"github.com/kailas-cloud/docsearch/internal/metrics"
	documentrepo "github.com/kailas-cloud/docsearch/internal/repository/document"
	searchrepo "github.com/kailas-cloud/docsearch/internal/repository/search"
	chiTransport "github.com/kailas-cloud/docsearch/internal/transport/chi"
	bootstrapuc "github.com/kailas-cloud/docsearch/internal/usecase/bootstrap"
	healthuc "github.com/kailas-cloud/docsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docsearch/internal/usecase/search"
	"github.com/kailas-cloud/docsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting docsearch",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("index", cfg.Index.Name),
	)

	store, err := newStore(&cfg)
	if err != nil {
		logger.Fatal("Failed to create document store", zap.Error(err))
	}
	defer store.Close()

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterDomainMetrics()

	docRepo := documentrepo.New(store, cfg.Index.Name, cfg.Index.Shards)
	searchRepo := searchrepo.New(store, cfg.Index.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boot := bootstrapuc.New(store, docRepo, newPicker(cfg.Seed.RandomSeed), bootstrapuc.Config{
		MaxAttempts:   cfg.Bootstrap.MaxAttempts,
		RetryInterval: time.Duration(cfg.Bootstrap.RetryIntervalSec) * time.Second,
		PingTimeout:   time.Duration(cfg.Database.ReadinessTimeout) * time.Second,
	}, logger)
	if err := boot.Run(ctx); err != nil {
		logger.Fatal("Bootstrap failed", zap.Error(err))
	}

	searchSvc := searchuc.New(searchRepo)
	healthSvc := healthuc.New(store)
	server := chiTransport.NewServer(searchSvc, healthSvc, nil, logger)

	r := chi.NewRouter()
	useMiddleware(r, logger)
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newStore creates the document store for the configured driver.
func newStore(cfg *config.Config) (db.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverOpenSearch:
		s, err := dbOpenSearch.NewStore(dbOpenSearch.Config{
			Addrs:              cfg.Database.Addrs,
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			InsecureSkipVerify: cfg.Database.InsecureSkipVerify,
			Compress:           cfg.Database.Compress,
		})
		if err != nil {
			return nil, fmt.Errorf("opensearch: %w", err)
		}
		return s, nil
	case config.DriverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.Database.Addrs,
			Username:  cfg.Database.Username,
			Password:  cfg.Database.Password,
			KeyPrefix: cfg.Index.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// newPicker returns a category picker. seed 0 picks a time-based seed.
func newPicker(seed uint64) domdoc.Picker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // non-negative wall clock
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint:gosec // sample data, not security-sensitive
	return rng.IntN
}

// useMiddleware mounts the request middleware. Recoverer sits inside
// WideEvent so a panicking request is still logged with its status.
func useMiddleware(r chi.Router, logger *zap.Logger) {
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEvent(logger))
	r.Use(chiTransport.Recoverer(logger))
	r.Use(metrics.Middleware())
}
