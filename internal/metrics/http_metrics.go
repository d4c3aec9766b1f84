package metrics

import (
	"strconv"
	"time"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics интерфейс для метрик HTTP запросов
type HTTPMetrics interface {
	ObserveRequest(method, path string, status int, duration time.Duration)
}

type httpMetrics struct {
	log      *logger.Logger
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics создает новые метрики HTTP запросов
func NewHTTPMetrics(registry *prometheus.Registry, log *logger.Logger) HTTPMetrics {
	requests := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "The total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	duration := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	return &httpMetrics{
		log:      log,
		requests: requests,
		duration: duration,
	}
}

// ObserveRequest записывает один обработанный запрос
func (m *httpMetrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, path).Observe(duration.Seconds())
}
