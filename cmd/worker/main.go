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
	"github.com/rs/zerolog/log"

	"github.com/healsmart/healsmart-api/internal/config"
	"github.com/healsmart/healsmart-api/internal/email"
	"github.com/healsmart/healsmart-api/internal/repository/postgres"
	"github.com/healsmart/healsmart-api/pkg/logger"
	"github.com/healsmart/healsmart-api/pkg/messaging/redis"
	"github.com/healsmart/healsmart-api/pkg/metrics"
	"github.com/healsmart/healsmart-api/pkg/worker"
)

const (
	batchSize       = 100
	pollInterval    = 5 * time.Second
	retryAttempts   = 3
	retryDelay      = 5 * time.Second
	retentionDays   = 30
	cleanupInterval = time.Hour
)

// The worker drains the outbox: it publishes appointment events to Redis
// and sends confirmation emails for approvals. It runs separately from
// the API so request latency never includes broker or SMTP round trips.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	outboxRepo := postgres.NewOutboxRepository(db)

	broker, err := redis.NewRedisBroker(redis.Config{URL: cfg.Redis.URL}, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	var mailer worker.ConfirmationSender
	if cfg.Email.Host != "" {
		mailer = email.NewSMTPService(cfg.Email)
	} else {
		log.Warn().Msg("email not configured, confirmation emails disabled")
	}

	processor := worker.NewOutboxProcessor(
		outboxRepo,
		broker,
		mailer,
		worker.OutboxProcessorConfig{
			BatchSize:     batchSize,
			PollInterval:  pollInterval,
			RetryAttempts: retryAttempts,
			RetryDelay:    retryDelay,
			RetentionDays: retentionDays,
		},
		logger.NewLogger(nil),
		metrics.NewMetrics("healsmart", "worker"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go processor.Start(ctx)
	go processor.StartCleanup(ctx, cleanupInterval)

	// Expose worker metrics on a side port.
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port+1),
		Handler: promhttp.Handler(),
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down worker...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("metrics server forced to shutdown")
	}

	log.Info().Msg("worker exited properly")
}
