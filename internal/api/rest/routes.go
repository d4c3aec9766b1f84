package rest

import (
	"github.com/Dhoini/Customer-microservice/internal/api/rest/handlers"
	"github.com/Dhoini/Customer-microservice/internal/api/rest/middleware"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter настраивает маршрутизатор Gin с маршрутами и middleware
func SetupRouter(
	customerService service.CustomerService,
	orderService service.OrderService,
	registry *prometheus.Registry,
	log *logger.Logger,
) *gin.Engine {
	r := gin.New()

	// Подключение middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.HTTPMetrics(metrics.NewHTTPMetrics(registry, log)))
	r.Use(gin.Recovery())

	// Предварительная проверка тела действует на все POST/PUT маршруты
	r.Use(middleware.RequestValidation(log))

	// Endpoint для проверки работоспособности сервиса
	r.GET("/health", handlers.HealthCheck)

	// Prometheus метрики
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Инициализация обработчиков
	customerHandler := handlers.NewCustomerHandler(customerService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	api := r.Group("/api")
	{
		// Клиенты
		customer := api.Group("/customer")
		{
			customer.GET("/GetCustomers", customerHandler.GetCustomers)
			customer.GET("/GetCustomer/:id", customerHandler.GetCustomer)
			customer.POST("/CreateCustomer", customerHandler.CreateCustomer)
			customer.PUT("/UpdateCustomer/:id", customerHandler.UpdateCustomer)
			customer.DELETE("/DeleteCustomer/:id", customerHandler.DeleteCustomer)
			customer.PATCH("/PatchCustomer/:id", customerHandler.PatchCustomer)
		}

		// Заказы
		order := api.Group("/order")
		{
			order.GET("/GetAllOrders", orderHandler.GetAllOrders)
			order.GET("/GetOrder/:orderId", orderHandler.GetOrder)
			order.GET("/GetOrdersByCustomer/:customerId", orderHandler.GetOrdersByCustomer)
			order.POST("/CreateOrder", orderHandler.CreateOrder)
			order.PUT("/UpdateOrder/:orderId", orderHandler.UpdateOrder)
			order.DELETE("/DeleteOrder/:orderId", orderHandler.DeleteOrder)
			order.GET("/GetLastOrderById/:id", orderHandler.GetLastOrderById)
		}
	}

	log.Infow("API routes successfully configured")

	return r
}
