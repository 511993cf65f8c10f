package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/config"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/infra/storage/gormstore"
	predictOccupancyUC "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/predict_occupancy"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/logger"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/ptr"
)

func sqliteConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "lodgeease.db")
	cfg.Cache.Enabled = true
	return cfg
}

func TestNewApp_SQLiteForecast(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)

	gdb, err := openGorm(cfg)
	require.NoError(t, err)
	require.NoError(t, gormstore.Migrate(gdb))
	store := gormstore.New(gdb)

	june := domain.MonthPeriod(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.UpsertRooms(ctx, []*domain.Room{
		{ID: "r1", Number: "101", Status: domain.RoomStatusAvailable},
		{ID: "r2", Number: "102", Status: domain.RoomStatusAvailable},
	}))
	require.NoError(t, store.UpsertBookings(ctx, []*domain.Booking{{
		ID:        "b1",
		RoomID:    "r1",
		CheckIn:   june.Start,
		CheckOut:  june.End,
		Status:    domain.StatusConfirmed,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}}))
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	a, err := newApp(ctx, cfg, logger.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	defer a.Close()

	result, err := a.forecast.Execute(ctx, &predictOccupancyUC.Request{
		ReferenceDate: ptr.Ptr(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06", result.TargetPeriod)
	assert.Equal(t, 1, result.ConfirmedBookings)
	assert.Equal(t, 2, result.TotalRooms)
	assert.False(t, result.Details.Degraded)

	assert.Positive(t, testutil.ToFloat64(a.metrics.CacheRequestsTotal.WithLabelValues("rooms", "miss")))
	require.NoError(t, a.db.PingContext(ctx))
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "mysql"

	_, err := newApp(context.Background(), cfg, logger.NewNop(), nil)
	assert.Error(t, err)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, gormLogLevel("DEBUG"))
	assert.Equal(t, gormlogger.Error, gormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, gormLogLevel("info"))
}
