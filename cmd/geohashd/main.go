package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cloudmollusc/xkcd-geohash/internal/adapter/djia"
	httpadapter "github.com/cloudmollusc/xkcd-geohash/internal/adapter/http"
	"github.com/cloudmollusc/xkcd-geohash/internal/config"
	"github.com/cloudmollusc/xkcd-geohash/internal/observability"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load env vars", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	sources := cfg.DJIASources
	if len(sources) == 0 {
		sources = djia.DefaultSources()
	}
	provider := djia.NewClient(sources, cfg.DJIATimeout, logger, metrics)
	logger.Info("dow price sources configured", "sources", len(sources), "timeout", cfg.DJIATimeout)

	srv := httpadapter.NewServer(cfg.HTTPAddr, provider, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
