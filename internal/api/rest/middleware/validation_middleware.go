package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// customerShape минимальная форма тела запроса, проверяемая до биндинга.
// Имена свойств сопоставляются без учета регистра (encoding/json).
type customerShape struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RequestValidation - Gin middleware предварительной проверки тела POST/PUT
// запросов. Тело буферизуется и восстанавливается, чтобы последующие
// обработчики могли прочитать его заново. Проверка применяется ко всем
// POST/PUT маршрутам без разбора целевого ресурса.
func RequestValidation(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			log.Errorw("Failed to read request body", "error", err, "path", c.Request.URL.Path)
			c.String(http.StatusInternalServerError, "Failed to read request body.")
			c.Abort()
			return
		}

		// Восстанавливаем тело для последующих обработчиков
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if strings.TrimSpace(string(body)) == "" {
			log.Warn("Rejected %s %s: empty request body", c.Request.Method, c.Request.URL.Path)
			c.String(http.StatusBadRequest, "The request body is empty.")
			c.Abort()
			return
		}

		var customer customerShape
		if err := json.Unmarshal(body, &customer); err != nil {
			log.Warn("Rejected %s %s: malformed JSON", c.Request.Method, c.Request.URL.Path)
			c.String(http.StatusBadRequest, "Invalid JSON format.")
			c.Abort()
			return
		}

		if strings.TrimSpace(customer.FirstName) == "" || strings.TrimSpace(customer.LastName) == "" {
			log.Warn("Rejected %s %s: missing first or last name", c.Request.Method, c.Request.URL.Path)
			c.String(http.StatusBadRequest, "Customer's first and last names are required.")
			c.Abort()
			return
		}

		c.Next()
	}
}
