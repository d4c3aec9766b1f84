package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// CustomerHandler обработчик для клиентов
type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

// NewCustomerHandler создает новый обработчик клиентов
func NewCustomerHandler(svc service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		log:     log,
	}
}

// GetCustomers возвращает список всех клиентов
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer возвращает клиента по ID
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.log.Warn("Invalid customer ID: %s", c.Param("id"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		h.log.Error("Failed to get customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer создает нового клиента
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req domain.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Failed to create customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	h.log.Info("Created customer with ID: %d", customer.ID)
	c.Header("Location", fmt.Sprintf("/api/customer/GetCustomer/%d", customer.ID))
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer обновляет существующего клиента
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.log.Warn("Invalid customer ID: %s", c.Param("id"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	var req domain.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer ID mismatch"})
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		h.log.Error("Failed to update customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCustomer удаляет клиента; отсутствие записи не считается ошибкой
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.log.Warn("Invalid customer ID: %s", c.Param("id"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchCustomer применяет частичное обновление клиента
func (h *CustomerHandler) PatchCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.log.Warn("Invalid customer ID: %s", c.Param("id"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	var patch domain.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.Patch(c.Request.Context(), id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Customer with ID %d not found", id)})
			return
		}

		h.log.Error("Failed to patch customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to patch customer"})
		return
	}

	c.Status(http.StatusNoContent)
}
