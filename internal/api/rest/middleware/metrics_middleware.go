package middleware

import (
	"time"

	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics - Gin middleware, записывающий метрики запросов в Prometheus.
func HTTPMetrics(m metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Шаблон маршрута вместо сырого пути, чтобы не раздувать кардинальность
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
