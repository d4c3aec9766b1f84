package middleware

import (
	"time"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger - Gin middleware для логирования запросов.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Время начала обработки запроса
		start := time.Now()

		// Путь запроса
		path := c.Request.URL.Path
		// Сырой query string, если есть
		rawQuery := c.Request.URL.RawQuery
		if rawQuery != "" {
			path = path + "?" + rawQuery
		}

		// Обрабатываем запрос следующим middleware/обработчиком
		c.Next()

		// Время окончания обработки
		latency := time.Since(start)

		// Получаем детали ответа
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method

		// Логируем всю информацию
		log.Infow("Request handled",
			"status_code", statusCode,
			"method", method,
			"path", path,
			"latency_ms", latency.Milliseconds(),
			"client_ip", clientIP,
			"request_id", c.Writer.Header().Get(RequestIDHeader),
		)
	}
}
