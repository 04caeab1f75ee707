// API server entry point for the Legal-AI-Analyzer platform.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/application/document"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/config"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/database/postgres"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/database/postgres/repositories"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/database/redis"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/messaging/kafka"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/prometheus"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/storage/minio"
	httpserver "github.com/Ayushi4206/Legal-AI-Analyzer/internal/interfaces/http"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/interfaces/http/handlers"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/interfaces/http/middleware"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/analyzer"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/patterns"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/intelligence/segmenter"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	fromFile := err == nil
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, falling back to environment configuration\n", err)
		if cfg, err = config.LoadFromEnv(); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	// Hot-reload the safe subset of settings on config file edits.  Only
	// the log level can change at runtime; everything else requires a
	// restart.
	if fromFile {
		config.Watch(*configPath, func(updated *config.Config) {
			if setter, ok := logger.(logging.LevelSetter); ok {
				setter.SetLevel(updated.Log.Level)
			}
			logger.Info("configuration reloaded",
				logging.String("log_level", updated.Log.Level))
		})
	}

	logger.Info("starting Legal-AI-Analyzer API server",
		logging.String("version", config.Version),
		logging.Int("port", cfg.Server.Port))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// PostgreSQL is the system of record and is required.
	conn, err := postgres.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", logging.Err(err))
	}
	defer conn.Close()

	if cfg.Database.MigrationPath != "" {
		if err := postgres.RunMigrations(postgres.BuildDSN(cfg.Database), cfg.Database.MigrationPath); err != nil {
			logger.Fatal("failed to run migrations", logging.Err(err))
		}
		logger.Info("database migrations applied")
	}

	repo := repositories.NewDocumentRepository(conn.Pool(), logger)
	checkers := []handlers.HealthChecker{{Name: "postgres", Check: conn.HealthCheck}}

	// The remaining backends are optional: their absence degrades the
	// deployment but never blocks startup.
	var cache document.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := redis.NewCache(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn("running without cache", logging.Err(err))
		} else {
			cache = redisCache
			checkers = append(checkers, handlers.HealthChecker{Name: "redis", Check: redisCache.Ping})
			defer redisCache.Close()
		}
	}

	var store document.TextStore
	if cfg.MinIO.Endpoint != "" {
		docStore, err := minio.NewDocumentStore(ctx, cfg.MinIO, logger)
		if err != nil {
			logger.Warn("running without object storage", logging.Err(err))
		} else {
			store = docStore
		}
	}

	var events document.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka, logger)
		events = producer
		defer producer.Close()
	}

	metrics := prometheus.New()

	eng := analyzer.New(patterns.Default(), nil, analyzer.Options{
		Segmentation: segmenter.Options{
			MaxClauses:         cfg.Analysis.MaxClauses,
			MinClauseLength:    cfg.Analysis.MinClauseLength,
			FallbackMaxClauses: cfg.Analysis.FallbackMaxClauses,
		},
		MinSubstantialLength: cfg.Analysis.MinSubstantialLength,
	}, logger)

	svc := document.NewService(eng, repo, store, cache, events, metrics, logger, document.Options{
		MaxTextLength:       cfg.Analysis.MaxTextLength,
		DefaultJurisdiction: cfg.Analysis.DefaultJurisdiction,
	})

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	defer limiter.Stop()

	router := httpserver.NewRouter(cfg.Server, httpserver.RouterDeps{
		Service:  svc,
		Logger:   logger,
		Metrics:  metrics,
		Limiter:  limiter,
		Checkers: checkers,
	})
	server := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", logging.Err(err))
		}
	}

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown error", logging.Err(err))
	}
	logger.Info("server stopped")
}
