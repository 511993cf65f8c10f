package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api"
	getOccupancyTrendsHandler "github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers/get_occupancy_trends"
	healthHandler "github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers/health"
	predictOccupancyHandler "github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers/predict_occupancy"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/scheduler"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	cfg, log, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting LodgeEase forecaster...")
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var registry prometheus.Registerer
	if cfg.Metrics.Enabled {
		registry = prometheus.DefaultRegisterer
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	a, err := newApp(ctx, cfg, log, registry)
	if err != nil {
		return err
	}
	defer a.Close()

	// Периодический пересчет прогноза
	if cfg.Scheduler.Enabled && a.metrics != nil {
		var invalidator scheduler.Invalidator
		if a.cache != nil {
			invalidator = a.cache
		}
		go scheduler.New(a.forecast, a.metrics, invalidator, cfg.Scheduler.IntervalDuration(), log).Start(ctx)
	} else if cfg.Scheduler.Enabled {
		log.Warn("Scheduler requires metrics to publish results, skipping")
	}

	// Инициализируем handlers
	router := api.NewRouter(cfg, api.Handlers{
		Health:           healthHandler.NewHandler(a.db, log),
		PredictOccupancy: predictOccupancyHandler.NewHandler(a.forecast, log),
		OccupancyTrends:  getOccupancyTrendsHandler.NewHandler(a.trends, log),
	}, a.metrics, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ожидаем сигнал завершения
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
