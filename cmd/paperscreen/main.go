// Command paperscreen trains a publishability classifier on a labeled PDF
// manifest, classifies every PDF in a target directory and writes the
// results table.
//
// Usage:
//
//	paperscreen -dir papers/ [-manifest manifest.yaml] [-out results.csv]
//
// Env vars:
//
//	ENV             config environment name (default: local)
//	OPENAI_API_KEY  embedding provider key (referenced from config)
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/scholarmill/paperscreen/internal/config"
	dbRedis "github.com/scholarmill/paperscreen/internal/db/redis"
	"github.com/scholarmill/paperscreen/internal/domain"
	"github.com/scholarmill/paperscreen/internal/export"
	"github.com/scholarmill/paperscreen/internal/extract"
	logpkg "github.com/scholarmill/paperscreen/internal/logger"
	"github.com/scholarmill/paperscreen/internal/metrics"
	"github.com/scholarmill/paperscreen/internal/repository/embcache"
	openaiEmb "github.com/scholarmill/paperscreen/internal/transport/openai"
	"github.com/scholarmill/paperscreen/internal/usecase/dataset"
	"github.com/scholarmill/paperscreen/internal/usecase/pipeline"
	"github.com/scholarmill/paperscreen/internal/usecase/screen"
	"github.com/scholarmill/paperscreen/internal/usecase/train"
	"github.com/scholarmill/paperscreen/internal/version"
)

type flags struct {
	dir      string
	manifest string
	out      string
	format   string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.dir, "dir", "", "directory of PDFs to classify (required)")
	flag.StringVar(&f.manifest, "manifest", "", "training manifest path (overrides config)")
	flag.StringVar(&f.out, "out", "", "results table path (overrides config)")
	flag.StringVar(&f.format, "format", "", "results format: csv or parquet (overrides config)")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	applyOverrides(&cfg, f)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if f.dir == "" {
		logger.Fatal("Missing required -dir flag")
	}

	logger.Info("Starting paperscreen",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("dir", f.dir),
		zap.String("manifest", cfg.Training.Manifest),
		zap.String("model", cfg.Embedding.Model),
	)

	// Register metrics explicitly (no init())
	metrics.Register()
	if cfg.Metrics.Port > 0 {
		srv := serveMetrics(cfg.Metrics.Port, logger)
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
	}

	ctx := context.Background()

	embedder, cleanup, err := buildEmbedder(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build embedder", zap.Error(err))
	}
	defer cleanup()

	extractor := extract.New(logger)
	featurePipeline := pipeline.New(extractor, embedder, logger)

	// Train
	docs, err := dataset.LoadManifest(cfg.Training.Manifest)
	if err != nil {
		logger.Fatal("Failed to load training manifest", zap.Error(err))
	}

	builder := dataset.NewBuilder(featurePipeline, logger)
	trainer := train.New(builder, train.Options{
		TestFraction: cfg.Training.TestFraction,
		Seed:         cfg.Training.Seed,
		Trees:        cfg.Training.Trees,
	}, logger)

	m, eval, err := trainer.Train(ctx, docs)
	if err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}
	fmt.Printf("F1 score: %.4f\n%s\n", eval.F1, eval.Report())

	// Classify
	screener := screen.New(featurePipeline, m, logger)
	res, err := screener.ClassifyDir(ctx, f.dir)
	if err != nil {
		logger.Fatal("Batch classification failed", zap.Error(err))
	}
	for _, skip := range res.Skipped {
		logger.Warn("Document excluded from results",
			zap.String("path", skip.Path),
			zap.String("reason", skip.Reason),
		)
	}

	if err := export.Write(cfg.Output.Path, cfg.Output.Format, res.Predictions); err != nil {
		logger.Fatal("Failed to write results", zap.Error(err))
	}

	logger.Info("Done",
		zap.String("output", cfg.Output.Path),
		zap.Int("classified", len(res.Predictions)),
		zap.Int("skipped", len(res.Skipped)),
	)
}

func applyOverrides(cfg *config.Config, f flags) {
	if f.manifest != "" {
		cfg.Training.Manifest = f.manifest
	}
	if f.out != "" {
		cfg.Output.Path = f.out
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
}

// buildEmbedder assembles the embedder chain: OpenAI transport, optionally
// wrapped in the Redis cache. The returned cleanup closes the cache store.
func buildEmbedder(ctx context.Context, cfg config.Config, logger *zap.Logger) (domain.Embedder, func(), error) {
	transport := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})

	if err := transport.HealthCheck(ctx); err != nil {
		return nil, nil, fmt.Errorf("embedding provider not reachable: %w", err)
	}

	if !cfg.Cache.Enabled {
		return transport, func() {}, nil
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Cache.Addrs,
		Password: cfg.Cache.Password,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create cache store: %w", err)
	}
	if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("cache store not ready: %w", err)
	}
	logger.Info("Embedding cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))

	cached := embcache.New(
		transport,
		store,
		time.Duration(cfg.Cache.TTLHours)*time.Hour,
		metrics.EmbeddingCacheTotal,
		logger,
	)
	return cached, store.Close, nil
}

// serveMetrics exposes the Prometheus registry on the given port.
func serveMetrics(port int, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Serving metrics", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server error", zap.Error(err))
		}
	}()
	return srv
}
