package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MohamedElashri/ostap/internal/config"
	"github.com/MohamedElashri/ostap/internal/logging"
	"github.com/MohamedElashri/ostap/internal/monitoring"
	"github.com/MohamedElashri/ostap/internal/server"
	"github.com/MohamedElashri/ostap/math/sentry"
)

func main() {
	cfg := config.LoadOrDefault()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := monitoring.NewMetrics()
	if cfg.Numerics.Advisories {
		sentry.Set(monitoring.NewAdvisoryRecorder(logger, metrics))
	}

	srv := server.New(cfg, logger, metrics)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}
}
