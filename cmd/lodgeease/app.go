package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/config"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/infra/db"
	bookingRepo "github.com/strix8755/LodgeEaseApp-sub000/internal/infra/storage/booking"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/infra/storage/cached"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/infra/storage/gormstore"
	roomRepo "github.com/strix8755/LodgeEaseApp-sub000/internal/infra/storage/room"
	bookingsService "github.com/strix8755/LodgeEaseApp-sub000/internal/service/bookings"
	getOccupancyTrendsUC "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/get_occupancy_trends"
	predictOccupancyUC "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/predict_occupancy"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/dbmetrics"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/logger"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/metrics"
)

type bookingRepository interface {
	QueryBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]*domain.Booking, error)
}

type roomRepository interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// app собранные зависимости сервиса
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	db    pinger
	cache *cached.Repository

	forecast *predictOccupancyUC.UseCase
	trends   *getOccupancyTrendsUC.UseCase

	closers []func() error
}

// loadConfig загружает конфигурацию и инициализирует логгер
func loadConfig(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

// newApp подключается к хранилищу и собирает use cases
// registry == nil отключает метрики
func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger, registry prometheus.Registerer) (*app, error) {
	a := &app{cfg: cfg, log: log}

	if registry != nil {
		a.metrics = metrics.NewWithRegistry(cfg.Metrics.ServiceName, registry)
	}

	// Инициализируем репозитории под выбранный драйвер
	var (
		bookings bookingRepository
		rooms    roomRepository
	)

	switch cfg.Database.Driver {
	case "postgres":
		sqlDB, err := db.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, sqlDB.Close)
		a.db = sqlDB
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if a.metrics != nil {
			stopMetricsCh := make(chan struct{})
			wrappedDB := dbmetrics.WrapWithDefault(sqlDB, a.metrics, stopMetricsCh)
			a.closers = append(a.closers, func() error {
				close(stopMetricsCh)
				return nil
			})
			log.Info("Database metrics collection started")

			bookings = bookingRepo.NewRepository(wrappedDB)
			rooms = roomRepo.NewRepository(wrappedDB)
		} else {
			bookings = bookingRepo.NewRepository(sqlDB)
			rooms = roomRepo.NewRepository(sqlDB)
		}

	case "sqlite":
		gdb, err := openGorm(cfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		a.db = sqlDB

		if err := gormstore.Migrate(gdb); err != nil {
			a.Close()
			return nil, err
		}
		store := gormstore.New(gdb)
		bookings, rooms = store, store
		log.Info("Using embedded sqlite storage at %s", cfg.Database.SQLitePath)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	// Кэш чтений (если включен)
	if cfg.Cache.Enabled {
		var observer cached.Observer
		if a.metrics != nil {
			observer = a.metrics
		}
		a.cache = cached.NewRepository(bookings, rooms, cfg.Cache.TTLDuration(), observer)
		bookings, rooms = a.cache, a.cache
		log.Info("Repository cache enabled, ttl=%s", cfg.Cache.TTLDuration())
	}

	// Инициализируем сервисы
	var degraded bookingsService.DegradedCounter
	if a.metrics != nil {
		degraded = a.metrics.DegradedQueriesTotal
	}
	bookingSvc := bookingsService.NewService(bookings, degraded, log)

	// Инициализируем use cases
	location, err := cfg.Forecast.Location()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.forecast = predictOccupancyUC.NewUseCase(rooms, bookingSvc, predictOccupancyUC.Config{
		ConfidencePolicy: domain.ConfidencePolicy(cfg.Forecast.ConfidencePolicy),
		PaceWindowDays:   cfg.Forecast.PaceWindowDays,
		Location:         location,

		HistoricalPaceYearShift: cfg.Forecast.HistoricalPaceYearShift,
	}, log)
	a.trends = getOccupancyTrendsUC.NewUseCase(rooms, bookingSvc, location, log)

	return a, nil
}

// Close освобождает ресурсы в обратном порядке
func (a *app) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

// openGorm открывает gorm для migrate/import и встроенного хранилища
func openGorm(cfg *config.Config) (*gorm.DB, error) {
	return db.OpenGorm(cfg.Database, gormLogLevel(cfg.Logs.Level))
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return gormlogger.Info
	case "error", "fatal":
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}
