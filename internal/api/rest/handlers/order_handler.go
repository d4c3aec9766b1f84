package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// OrderHandler обработчик для заказов
type OrderHandler struct {
	service service.OrderService
	log     *logger.Logger
}

// NewOrderHandler создает новый обработчик заказов
func NewOrderHandler(svc service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		log:     log,
	}
}

// GetAllOrders возвращает список всех заказов
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder возвращает заказ по ID
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		h.log.Warn("Invalid order ID: %s", c.Param("orderId"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		h.log.Error("Failed to get order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrdersByCustomer возвращает заказы клиента.
// Для неизвестного клиента возвращается пустой список, не ошибка.
func (h *OrderHandler) GetOrdersByCustomer(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		h.log.Warn("Invalid customer ID: %s", c.Param("customerId"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	orders, err := h.service.GetByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		h.log.Error("Failed to get orders by customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder создает новый заказ
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
			return
		}

		h.log.Error("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	h.log.Info("Created order with ID: %d", order.ID)
	c.Header("Location", "/api/order/GetOrder/"+strconv.Itoa(order.ID))
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder обновляет существующий заказ
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		h.log.Warn("Invalid order ID: %s", c.Param("orderId"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ID != orderID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID mismatch"})
		return
	}

	if _, err := h.service.Update(c.Request.Context(), orderID, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		h.log.Error("Failed to update order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteOrder удаляет заказ; отсутствующий заказ дает 404
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		h.log.Warn("Invalid order ID: %s", c.Param("orderId"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	if _, err := h.service.GetByID(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		h.log.Error("Failed to get order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), orderID); err != nil {
		h.log.Error("Failed to delete order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetLastOrderById возвращает заказ по ID; при отсутствии - 200 с пустым телом.
func (h *OrderHandler) GetLastOrderById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.log.Warn("Invalid order ID: %s", c.Param("id"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, err := h.service.GetLastByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}

		h.log.Error("Failed to get last order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
