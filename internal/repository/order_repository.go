package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// OrderRepository интерфейс для работы с заказами
type OrderRepository interface {
	GetAll(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int) (domain.Order, error)
	GetByCustomerID(ctx context.Context, customerID int) ([]domain.Order, error)
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	Update(ctx context.Context, order domain.Order) error
	Delete(ctx context.Context, id int) error
	// GetLastByID - обычный поиск по идентификатору заказа,
	// никакой логики "последнего" заказа нет.
	GetLastByID(ctx context.Context, id int) (domain.Order, error)
}

// InMemoryOrderRepository реализация репозитория заказов в памяти
type InMemoryOrderRepository struct {
	orders map[int]domain.Order
	nextID int
	mutex  sync.RWMutex
	log    *logger.Logger
}

// NewInMemoryOrderRepository создает новый репозиторий заказов в памяти
func NewInMemoryOrderRepository(log *logger.Logger) *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[int]domain.Order),
		nextID: 1,
		log:    log,
	}
}

// GetAll возвращает все заказы
func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]domain.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	return orders, nil
}

// GetByID возвращает заказ по ID
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id int) (domain.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return domain.Order{}, ErrNotFound
	}

	return order, nil
}

// GetByCustomerID возвращает заказы клиента (пустой список, если заказов нет)
func (r *InMemoryOrderRepository) GetByCustomerID(ctx context.Context, customerID int) ([]domain.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	orders := make([]domain.Order, 0)
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	return orders, nil
}

// Create создает новый заказ
func (r *InMemoryOrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order

	return order, nil
}

// Update обновляет существующий заказ
func (r *InMemoryOrderRepository) Update(ctx context.Context, order domain.Order) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.orders[order.ID]; !exists {
		return ErrNotFound
	}

	r.orders[order.ID] = order

	return nil
}

// Delete удаляет заказ; отсутствие записи не считается ошибкой
func (r *InMemoryOrderRepository) Delete(ctx context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.orders, id)

	return nil
}

// GetLastByID возвращает заказ по ID (см. комментарий в интерфейсе)
func (r *InMemoryOrderRepository) GetLastByID(ctx context.Context, id int) (domain.Order, error) {
	return r.GetByID(ctx, id)
}

// snapshot возвращает копию заказов для соединений в CustomerRepository
func (r *InMemoryOrderRepository) snapshot() []domain.Order {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	return orders
}
