package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// Минимальная сумма заказа, попадающего в отчет по покупкам
const reportMinAmount = 50

// CustomerRepository интерфейс для работы с клиентами
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int) (domain.Customer, error)
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) error
	Delete(ctx context.Context, id int) error
	// GetCustomerOrderDetails возвращает соединение клиентов и заказов с
	// суммой больше 50, отсортированное по фамилии. Параметр id не
	// используется в выборке.
	GetCustomerOrderDetails(ctx context.Context, id int) ([]domain.CustomerOrder, error)
	// GetOrderPlacedCustomerDetails возвращает по одной строке на каждого
	// клиента, у которого есть хотя бы один заказ (только имя).
	GetOrderPlacedCustomerDetails(ctx context.Context) ([]domain.CustomerOrder, error)
}

// InMemoryCustomerRepository реализация репозитория клиентов в памяти
type InMemoryCustomerRepository struct {
	customers map[int]domain.Customer
	orders    *InMemoryOrderRepository
	nextID    int
	mutex     sync.RWMutex
	log       *logger.Logger
}

// NewInMemoryCustomerRepository создает новый репозиторий клиентов в памяти.
// Репозиторий заказов нужен для отчетных соединений.
func NewInMemoryCustomerRepository(orders *InMemoryOrderRepository, log *logger.Logger) *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: make(map[int]domain.Customer),
		orders:    orders,
		nextID:    1,
		log:       log,
	}
}

// GetAll возвращает всех клиентов
func (r *InMemoryCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	customers := make([]domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })

	return customers, nil
}

// GetByID возвращает клиента по ID
func (r *InMemoryCustomerRepository) GetByID(ctx context.Context, id int) (domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	customer, exists := r.customers[id]
	if !exists {
		return domain.Customer{}, ErrNotFound
	}

	return customer, nil
}

// Create создает нового клиента; ID назначается хранилищем
func (r *InMemoryCustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = customer

	return customer, nil
}

// Update обновляет существующего клиента
func (r *InMemoryCustomerRepository) Update(ctx context.Context, customer domain.Customer) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.customers[customer.ID]; !exists {
		return ErrNotFound
	}

	r.customers[customer.ID] = customer

	return nil
}

// Delete удаляет клиента; отсутствие записи не считается ошибкой
func (r *InMemoryCustomerRepository) Delete(ctx context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.customers, id)

	return nil
}

// GetCustomerOrderDetails соединяет клиентов с заказами на сумму больше 50
func (r *InMemoryCustomerRepository) GetCustomerOrderDetails(ctx context.Context, id int) ([]domain.CustomerOrder, error) {
	r.mutex.RLock()
	customers := make([]domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}
	r.mutex.RUnlock()

	sort.Slice(customers, func(i, j int) bool { return customers[i].LastName < customers[j].LastName })

	orders := r.orders.snapshot()
	byCustomer := make(map[int][]domain.Order, len(orders))
	for _, order := range orders {
		byCustomer[order.CustomerID] = append(byCustomer[order.CustomerID], order)
	}

	details := make([]domain.CustomerOrder, 0)
	for _, customer := range customers {
		for _, order := range byCustomer[customer.ID] {
			if order.Amount > reportMinAmount {
				details = append(details, domain.CustomerOrder{
					CustomerName: customer.FirstName + " " + customer.LastName,
					Product:      order.ProductName,
					Price:        order.Amount,
				})
			}
		}
	}

	for _, item := range details {
		r.log.Info("%s bought %s for $%v", item.CustomerName, item.Product, item.Price)
	}

	return details, nil
}

// GetOrderPlacedCustomerDetails возвращает клиентов, сделавших хотя бы один заказ
func (r *InMemoryCustomerRepository) GetOrderPlacedCustomerDetails(ctx context.Context) ([]domain.CustomerOrder, error) {
	r.mutex.RLock()
	customers := make([]domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}
	r.mutex.RUnlock()

	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })

	placed := make(map[int]bool)
	for _, order := range r.orders.snapshot() {
		placed[order.CustomerID] = true
	}

	details := make([]domain.CustomerOrder, 0)
	for _, customer := range customers {
		if placed[customer.ID] {
			details = append(details, domain.CustomerOrder{
				CustomerName: customer.FirstName + " " + customer.LastName,
			})
		}
	}

	return details, nil
}
