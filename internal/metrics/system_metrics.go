package metrics

import (
	"runtime"
	"time"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SystemMetrics периодически записывает показатели рантайма
type SystemMetrics struct {
	log        *logger.Logger
	goroutines prometheus.Gauge
	memAlloc   prometheus.Gauge
	memSys     prometheus.Gauge
	stopCh     chan struct{}
}

// NewSystemMetrics создает новые системные метрики
func NewSystemMetrics(registry *prometheus.Registry, log *logger.Logger) *SystemMetrics {
	return &SystemMetrics{
		log: log,
		goroutines: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "system_goroutines",
			Help: "Current number of goroutines",
		}),
		memAlloc: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "system_memory_alloc_bytes",
			Help: "Currently allocated memory in bytes",
		}),
		memSys: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "system_memory_system_bytes",
			Help: "Total memory obtained from system in bytes",
		}),
		stopCh: make(chan struct{}),
	}
}

// record снимает текущие показатели рантайма
func (m *SystemMetrics) record() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m.goroutines.Set(float64(runtime.NumGoroutine()))
	m.memAlloc.Set(float64(memStats.Alloc))
	m.memSys.Set(float64(memStats.Sys))
}

// StartRecording начинает запись метрик с заданным интервалом
func (m *SystemMetrics) StartRecording(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.record()
			case <-m.stopCh:
				return
			}
		}
	}()
	m.log.Info("System metrics recording started with interval %s", interval)
}

// Stop останавливает запись метрик
func (m *SystemMetrics) Stop() {
	close(m.stopCh)
}
