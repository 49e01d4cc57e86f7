// cmd/responder/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"support-responder/internal/api"
	"support-responder/internal/classifier"
	"support-responder/internal/common/aws"
	"support-responder/internal/common/config"
	"support-responder/internal/common/database"
	"support-responder/internal/common/logger"
	"support-responder/internal/common/observability"
	"support-responder/internal/handlers"
	"support-responder/internal/notify"
	"support-responder/internal/respond"
	"support-responder/internal/router"
	"support-responder/internal/stats"
	"support-responder/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting support responder...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rd *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rd, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rd.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rd.Close()
	zapLog.Info("Redis connected successfully")

	// --- Build the request flow ---
	gateway := store.NewGateway(pg.GetDB(), log)
	formatter := respond.NewFormatter(cfg.Responder.Signature)
	deps := handlers.NewDeps(gateway, formatter, log)

	classifierClient := classifier.NewClient(&cfg.Classifier, log)
	queryRouter := router.New(classifierClient, log)

	recorder := stats.NewRecorder(rd.GetClient(), log)

	service := api.NewService(queryRouter, deps, log).WithStats(recorder).WithObservability(obs)

	// --- Optional notification channels ---
	if cfg.Notifications.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		service.WithMailer(notify.NewMailer(sesClient, cfg.Notifications.Email.FromEmail, log))
		zapLog.Info("reply email delivery enabled")
	}
	if cfg.Notifications.Escalation.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		service.WithEscalator(notify.NewEscalator(snsClient, cfg.Notifications.Escalation.TopicARN, log))
		zapLog.Info("complaint escalation enabled")
	}

	server, err := api.NewServer(cfg.Server, service, log)
	if err != nil {
		zapLog.Fatal("server init failed", zap.Error(err))
	}
	server.WithSnapshot(recorder.Snapshot).WithDailyVolume(recorder.DailyVolume)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Wait for shutdown signal ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
