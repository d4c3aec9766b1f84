package service

import (
	"context"
	"fmt"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/kafka/producer"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// CustomerService интерфейс сервиса для работы с клиентами
type CustomerService interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int) (domain.Customer, error)
	Create(ctx context.Context, req domain.CustomerRequest) (domain.Customer, error)
	Update(ctx context.Context, id int, req domain.CustomerRequest) (domain.Customer, error)
	Patch(ctx context.Context, id int, patch domain.CustomerPatch) (domain.Customer, error)
	Delete(ctx context.Context, id int) error
	GetCustomerOrderDetails(ctx context.Context, id int) ([]domain.CustomerOrder, error)
	GetOrderPlacedCustomerDetails(ctx context.Context) ([]domain.CustomerOrder, error)
}

type customerService struct {
	repo     repository.CustomerRepository
	events   producer.EventProducer
	validate *validator.Validate
	log      *logger.Logger
}

// NewCustomerService создает новый сервис для работы с клиентами
func NewCustomerService(repo repository.CustomerRepository, events producer.EventProducer, log *logger.Logger) CustomerService {
	return &customerService{
		repo:     repo,
		events:   events,
		validate: validator.New(),
		log:      log,
	}
}

func (s *customerService) GetAll(ctx context.Context) ([]domain.Customer, error) {
	s.log.Debug("Getting all customers")
	return s.repo.GetAll(ctx)
}

func (s *customerService) GetByID(ctx context.Context, id int) (domain.Customer, error) {
	s.log.Debug("Getting customer by ID: %d", id)
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) Create(ctx context.Context, req domain.CustomerRequest) (domain.Customer, error) {
	s.log.Debug("Creating customer with email: %s", req.Email)

	// Повторная проверка перед обращением к хранилищу: сервис не полагается
	// на то, что вызывающая сторона уже проверила данные
	if err := s.validate.Struct(req); err != nil {
		s.log.Warn("Invalid customer data: %v", err)
		return domain.Customer{}, fmt.Errorf("%w: %v", repository.ErrInvalidData, err)
	}

	customer := domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return domain.Customer{}, err
	}

	if err := s.events.PublishCustomerCreated(ctx, created); err != nil {
		s.log.Warnw("Failed to publish customer created event", "error", err, "id", created.ID)
	}

	return created, nil
}

func (s *customerService) Update(ctx context.Context, id int, req domain.CustomerRequest) (domain.Customer, error) {
	s.log.Debug("Updating customer with ID: %d", id)

	customer := domain.Customer{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *customerService) Patch(ctx context.Context, id int, patch domain.CustomerPatch) (domain.Customer, error) {
	s.log.Debug("Patching customer with ID: %d", id)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	// Применяем только переданные поля
	if patch.FirstName != nil {
		existing.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		existing.LastName = *patch.LastName
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return domain.Customer{}, err
	}

	return existing, nil
}

func (s *customerService) Delete(ctx context.Context, id int) error {
	s.log.Debug("Deleting customer with ID: %d", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.events.PublishCustomerDeleted(ctx, id); err != nil {
		s.log.Warnw("Failed to publish customer deleted event", "error", err, "id", id)
	}

	return nil
}

func (s *customerService) GetCustomerOrderDetails(ctx context.Context, id int) ([]domain.CustomerOrder, error) {
	s.log.Debug("Getting customer order details")
	return s.repo.GetCustomerOrderDetails(ctx, id)
}

func (s *customerService) GetOrderPlacedCustomerDetails(ctx context.Context) ([]domain.CustomerOrder, error) {
	s.log.Debug("Getting order placed customer details")
	return s.repo.GetOrderPlacedCustomerDetails(ctx)
}
