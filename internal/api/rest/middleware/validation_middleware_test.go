package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidationRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seenBody string
	router := gin.New()
	router.Use(RequestValidation(logger.New(logger.ERROR)))
	handle := func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seenBody = string(body)
		c.Status(http.StatusOK)
	}
	router.POST("/customers", handle)
	router.PUT("/customers", handle)
	router.GET("/customers", handle)
	return router, &seenBody
}

func TestRequestValidationEmptyBody(t *testing.T) {
	router, _ := newValidationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(""))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The request body is empty.", w.Body.String())
}

func TestRequestValidationWhitespaceBody(t *testing.T) {
	router, _ := newValidationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/customers", strings.NewReader("   \n\t "))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The request body is empty.", w.Body.String())
}

func TestRequestValidationMalformedJSON(t *testing.T) {
	router, _ := newValidationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader("{not json"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON format.", w.Body.String())
}

func TestRequestValidationMissingLastName(t *testing.T) {
	router, _ := newValidationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(`{"firstName":"John","lastName":""}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Customer's first and last names are required.", w.Body.String())
}

func TestRequestValidationPassesValidBodyDownstream(t *testing.T) {
	router, seenBody := newValidationRouter(t)

	payload := `{"firstName":"John","lastName":"Smith","email":"john@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(payload))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Обработчик должен получить тело целиком, несмотря на буферизацию
	assert.Equal(t, payload, *seenBody)
}

func TestRequestValidationSkipsOtherMethods(t *testing.T) {
	router, _ := newValidationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
