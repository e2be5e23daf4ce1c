package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/bet-staking-service/internal/bookmaker"
	"github.com/cypherlabdev/bet-staking-service/internal/cache"
	"github.com/cypherlabdev/bet-staking-service/internal/config"
	"github.com/cypherlabdev/bet-staking-service/internal/feed"
	httpHandler "github.com/cypherlabdev/bet-staking-service/internal/handler/http"
	"github.com/cypherlabdev/bet-staking-service/internal/jobs"
	"github.com/cypherlabdev/bet-staking-service/internal/messaging"
	"github.com/cypherlabdev/bet-staking-service/internal/results"
	"github.com/cypherlabdev/bet-staking-service/internal/service"
	"github.com/cypherlabdev/bet-staking-service/internal/store"
	"github.com/cypherlabdev/bet-staking-service/pkg/staking"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting bet-staking-service")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create Postgres store
	pgStore, err := store.NewPostgresStore(
		ctx,
		store.PostgresConfig{
			URL:          cfg.Database.URL,
			MaxConns:     cfg.Database.MaxConns,
			ConnLifetime: cfg.Database.ConnLifetime,
		},
		logger,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Postgres")
	}
	defer pgStore.Close()
	logger.Info().Msg("connected to Postgres")

	// Create Redis feed cache
	feedCache := cache.NewFeedCache(
		cache.FeedCacheConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		},
		logger,
	)
	defer feedCache.Close()

	// Test Redis connection
	if err := feedCache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Create bookmaker API client
	bookmakerClient := bookmaker.NewClient(
		bookmaker.ClientConfig{
			BaseURL:        cfg.Bookmaker.BaseURL,
			RequestTimeout: cfg.Bookmaker.RequestTimeout,
			RequestsPerSec: cfg.Bookmaker.RequestsPerSec,
			UserAgent:      cfg.Bookmaker.UserAgent,
		},
		logger,
	)
	logger.Info().Str("base_url", cfg.Bookmaker.BaseURL).Msg("bookmaker client initialized")

	// Create market availability checker
	checker := feed.NewChecker(bookmakerClient, feedCache, logger)

	// Create staking engine
	params := cfg.Staking.ToStakingParams()
	builder := staking.NewBuilder(params, logger)
	allocator := staking.NewAllocator(params, logger)
	logger.Info().
		Int("batch_size", cfg.Staking.BatchSize).
		Float64("usable_fraction", cfg.Staking.UsableFraction).
		Msg("staking engine initialized")

	executor := service.NewProfileBetExecutor(
		service.ExecutorConfig{
			MinBalance:  params.MinBalance,
			SubmitDelay: cfg.Staking.SubmitDelay,
		},
		pgStore,
		checker,
		builder,
		allocator,
		logger,
	)

	withdrawer := service.NewWithdrawalEngine(
		service.WithdrawalConfig{
			MinAmount:   cfg.Withdrawal.MinAmount,
			MaxAmount:   cfg.Withdrawal.MaxAmount,
			MaxAttempts: cfg.Withdrawal.MaxAttempts,
		},
		logger,
	)

	orchestrator := service.NewOrchestrator(
		pgStore,
		&bookmakerAdapter{client: bookmakerClient},
		withdrawer,
		executor,
		cfg.Staking.WorkerPoolSize,
		logger,
	)
	logger.Info().Int("pool_size", cfg.Staking.WorkerPoolSize).Msg("orchestrator initialized")

	// Create result resolver
	resolver := results.NewResolver(bookmakerClient, pgStore, logger)

	// Create Kafka consumer for predicted selections
	consumer := messaging.NewKafkaConsumer(
		messaging.KafkaConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		},
		pgStore,
		logger,
	)
	defer consumer.Close()

	// Start Kafka consumer in goroutine
	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Error().Err(err).Msg("Kafka consumer failed")
		}
	}()

	// Start cron scheduler for the periodic sweeps
	scheduler := jobs.NewScheduler(
		orchestrator,
		jobs.TaskFunc(resolver.Resolve),
		logger,
	)
	if err := scheduler.Start(ctx, cfg.Jobs); err != nil {
		logger.Fatal().Err(err).Msg("failed to start scheduler")
	}

	// Initialize HTTP handler
	stakingHandler := httpHandler.NewStakingHandler(pgStore, orchestrator, logger)
	logger.Info().Msg("HTTP handler initialized")

	// Setup HTTP server routes
	mux := http.NewServeMux()

	// Health and monitoring endpoints
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, pgStore, feedCache)
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Register API routes
	stakingHandler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	// Cancel context to stop consumer and in-flight sweeps
	cancel()

	// Stop scheduler, waiting for running jobs
	scheduler.Stop()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// bookmakerAdapter narrows *bookmaker.Client to the service-layer Bookmaker
// interface, which returns sessions as an interface for mockability.
type bookmakerAdapter struct {
	client *bookmaker.Client
}

func (a *bookmakerAdapter) Login(ctx context.Context, phone, password string) (service.Session, error) {
	return a.client.Login(ctx, phone, password)
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "bet-staking").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, db *store.PostgresStore, feedCache *cache.FeedCache) {
	// Check Postgres connection
	if err := db.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Postgres unavailable"))
		return
	}

	// Check Redis connection
	if err := feedCache.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
