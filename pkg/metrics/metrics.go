package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lodgeease"

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge

	// Кэш репозиториев
	CacheRequestsTotal *prometheus.CounterVec

	// Прогноз загрузки
	ForecastPredictedRate prometheus.Gauge
	ForecastConfidence    prometheus.Gauge
	ForecastRunsTotal     *prometheus.CounterVec
	DegradedQueriesTotal  prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		CacheRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "cache_requests_total",
			Help:        "Repository cache lookups by result",
			ConstLabels: labels,
		}, []string{"resource", "result"}),

		ForecastPredictedRate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "forecast_predicted_rate",
			Help:        "Last predicted occupancy rate for next month, percent",
			ConstLabels: labels,
		}),
		ForecastConfidence: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "forecast_confidence",
			Help:        "Confidence of the last occupancy forecast, percent",
			ConstLabels: labels,
		}),
		ForecastRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "forecast_runs_total",
			Help:        "Scheduled forecast runs by result",
			ConstLabels: labels,
		}, []string{"result"}),
		DegradedQueriesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "degraded_queries_total",
			Help:        "Indexed booking queries that fell back to a full scan",
			ConstLabels: labels,
		}),
	}
}

// SetForecast публикует результат последнего прогноза
func (m *Metrics) SetForecast(predictedRate, confidence float64) {
	m.ForecastPredictedRate.Set(predictedRate)
	m.ForecastConfidence.Set(confidence)
	m.ForecastRunsTotal.WithLabelValues("success").Inc()
}

// ForecastFailed учитывает неудачный запуск прогноза
func (m *Metrics) ForecastFailed() {
	m.ForecastRunsTotal.WithLabelValues("error").Inc()
}

// CacheHit / CacheMiss учитывают обращения к кэшу репозиториев
func (m *Metrics) CacheHit(resource string) {
	m.CacheRequestsTotal.WithLabelValues(resource, "hit").Inc()
}

func (m *Metrics) CacheMiss(resource string) {
	m.CacheRequestsTotal.WithLabelValues(resource, "miss").Inc()
}
