package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/kafka/producer"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerRouter(t *testing.T) (*gin.Engine, service.CustomerService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New(logger.ERROR)
	orders := repository.NewInMemoryOrderRepository(log)
	repo := repository.NewInMemoryCustomerRepository(orders, log)
	svc := service.NewCustomerService(repo, producer.NoOpEventProducer{}, log)
	handler := NewCustomerHandler(svc, log)

	router := gin.New()
	customer := router.Group("/api/customer")
	{
		customer.GET("/GetCustomers", handler.GetCustomers)
		customer.GET("/GetCustomer/:id", handler.GetCustomer)
		customer.POST("/CreateCustomer", handler.CreateCustomer)
		customer.PUT("/UpdateCustomer/:id", handler.UpdateCustomer)
		customer.DELETE("/DeleteCustomer/:id", handler.DeleteCustomer)
		customer.PATCH("/PatchCustomer/:id", handler.PatchCustomer)
	}
	return router, svc
}

func TestCreateCustomerReturnsCreatedWithLocation(t *testing.T) {
	router, _ := newCustomerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customer/CreateCustomer",
		strings.NewReader(`{"firstName":"John","lastName":"Smith","email":"john@example.com"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "John", created.FirstName)
	assert.Equal(t, fmt.Sprintf("/api/customer/GetCustomer/%d", created.ID), w.Header().Get("Location"))
}

func TestCreateCustomerRejectsInvalidEmail(t *testing.T) {
	router, _ := newCustomerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customer/CreateCustomer",
		strings.NewReader(`{"firstName":"John","lastName":"Smith","email":"not-an-email"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCustomerNotFound(t *testing.T) {
	router, _ := newCustomerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customer/GetCustomer/123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCustomerInvalidID(t *testing.T) {
	router, _ := newCustomerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customer/GetCustomer/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid customer ID format")
}

func TestUpdateCustomerIDMismatch(t *testing.T) {
	router, svc := newCustomerRouter(t)

	created, err := svc.Create(context.Background(), domain.CustomerRequest{
		FirstName: "John", LastName: "Smith", Email: "john@example.com",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	body := fmt.Sprintf(`{"id":%d,"firstName":"John","lastName":"Smith","email":"john@example.com"}`, created.ID+1)
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/customer/UpdateCustomer/%d", created.ID), strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Customer ID mismatch")
}

func TestUpdateCustomerNotFound(t *testing.T) {
	router, _ := newCustomerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/customer/UpdateCustomer/55",
		strings.NewReader(`{"id":55,"firstName":"John","lastName":"Smith","email":"john@example.com"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCustomer(t *testing.T) {
	router, svc := newCustomerRouter(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerRequest{
		FirstName: "John", LastName: "Smith", Email: "john@example.com",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	body := fmt.Sprintf(`{"id":%d,"firstName":"Johnny","lastName":"Smith","email":"john@example.com"}`, created.ID)
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/customer/UpdateCustomer/%d", created.ID), strings.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Johnny", got.FirstName)
}

func TestPatchCustomerEmailOnly(t *testing.T) {
	router, svc := newCustomerRouter(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerRequest{
		FirstName: "John", LastName: "Smith", Email: "john@example.com",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/customer/PatchCustomer/%d", created.ID),
		strings.NewReader(`{"email":"new@example.com"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Smith", got.LastName)
	assert.Equal(t, "new@example.com", got.Email)
}

func TestPatchCustomerNotFound(t *testing.T) {
	router, _ := newCustomerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/customer/PatchCustomer/42",
		strings.NewReader(`{"email":"new@example.com"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Customer with ID 42 not found")
}

func TestDeleteCustomerIsIdempotent(t *testing.T) {
	router, svc := newCustomerRouter(t)

	created, err := svc.Create(context.Background(), domain.CustomerRequest{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete,
			fmt.Sprintf("/api/customer/DeleteCustomer/%d", created.ID), nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestGetCustomersReturnsAll(t *testing.T) {
	router, svc := newCustomerRouter(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.Create(ctx, domain.CustomerRequest{
			FirstName: "John", LastName: "Smith", Email: email,
		})
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customer/GetCustomers", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var list []domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}
