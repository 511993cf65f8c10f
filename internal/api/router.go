package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api/middleware"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/config"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/metrics"
)

// Handler обработчик одного маршрута
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers набор обработчиков API
type Handlers struct {
	Health           Handler
	PredictOccupancy Handler
	OccupancyTrends  Handler
}

type Logger interface {
	Info(format string, v ...interface{})
}

// NewRouter собирает роутер сервиса
// m может быть nil, если метрики выключены
func NewRouter(cfg *config.Config, h Handlers, m *metrics.Metrics, logger Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))

	// Добавляем metrics middleware (если метрики включены)
	if m != nil {
		r.Use(middleware.MetricsMiddleware(m))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		logger.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", h.Health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
		logger.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Прогноз загрузки на следующий месяц
	api.HandleFunc("/forecast/occupancy", h.PredictOccupancy.Handle).Methods(http.MethodGet)

	// Помесячная аналитика загрузки и выручки
	api.HandleFunc("/analytics/occupancy-trends", h.OccupancyTrends.Handle).Methods(http.MethodGet)

	return r
}
