package service

import (
	"context"
	"errors"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/kafka/producer"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// OrderService интерфейс сервиса для работы с заказами
type OrderService interface {
	GetAll(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int) (domain.Order, error)
	GetByCustomerID(ctx context.Context, customerID int) ([]domain.Order, error)
	Create(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
	Update(ctx context.Context, id int, req domain.OrderRequest) (domain.Order, error)
	Delete(ctx context.Context, id int) error
	GetLastByID(ctx context.Context, id int) (domain.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	events    producer.EventProducer
	log       *logger.Logger
}

// NewOrderService создает новый сервис для работы с заказами
func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	events producer.EventProducer,
	log *logger.Logger,
) OrderService {
	return &orderService{
		orders:    orders,
		customers: customers,
		events:    events,
		log:       log,
	}
}

func (s *orderService) GetAll(ctx context.Context) ([]domain.Order, error) {
	s.log.Debug("Getting all orders")
	return s.orders.GetAll(ctx)
}

func (s *orderService) GetByID(ctx context.Context, id int) (domain.Order, error) {
	s.log.Debug("Getting order by ID: %d", id)
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) GetByCustomerID(ctx context.Context, customerID int) ([]domain.Order, error) {
	s.log.Debug("Getting orders for customer: %d", customerID)
	return s.orders.GetByCustomerID(ctx, customerID)
}

func (s *orderService) Create(ctx context.Context, req domain.OrderRequest) (domain.Order, error) {
	s.log.Debug("Creating order for customer: %d", req.CustomerID)

	// Заказ создается только для существующего клиента
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("Order rejected, customer %d does not exist", req.CustomerID)
			return domain.Order{}, ErrCustomerNotFound
		}
		return domain.Order{}, err
	}

	order := domain.Order{
		ProductName: req.ProductName,
		Amount:      req.Amount,
		CustomerID:  req.CustomerID,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.events.PublishOrderCreated(ctx, created); err != nil {
		s.log.Warnw("Failed to publish order created event", "error", err, "id", created.ID)
	}

	return created, nil
}

func (s *orderService) Update(ctx context.Context, id int, req domain.OrderRequest) (domain.Order, error) {
	s.log.Debug("Updating order with ID: %d", id)

	order := domain.Order{
		ID:          id,
		ProductName: req.ProductName,
		Amount:      req.Amount,
		CustomerID:  req.CustomerID,
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id int) error {
	s.log.Debug("Deleting order with ID: %d", id)
	return s.orders.Delete(ctx, id)
}

func (s *orderService) GetLastByID(ctx context.Context, id int) (domain.Order, error) {
	s.log.Debug("Getting last order by ID: %d", id)
	return s.orders.GetLastByID(ctx, id)
}
