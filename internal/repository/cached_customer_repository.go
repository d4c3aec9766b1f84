package repository

import (
	"context"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// CachedCustomerRepository реализует CustomerRepository с кешированием
type CachedCustomerRepository struct {
	repo  CustomerRepository
	cache *RedisCacheRepository
	log   *logger.Logger
}

// NewCachedCustomerRepository создает новый репозиторий клиентов с кешированием
func NewCachedCustomerRepository(
	repo CustomerRepository,
	cache *RedisCacheRepository,
	log *logger.Logger,
) CustomerRepository {
	return &CachedCustomerRepository{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// GetAll возвращает всех клиентов (без кеширования списков)
func (r *CachedCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return r.repo.GetAll(ctx)
}

// GetByID получает клиента по ID (сначала из кеша, потом из БД)
func (r *CachedCustomerRepository) GetByID(ctx context.Context, id int) (domain.Customer, error) {
	cached, err := r.cache.GetCachedCustomer(ctx, id)
	if err != nil {
		r.log.Warnw("Error getting customer from cache", "error", err, "id", id)
		// Продолжаем выполнение при ошибке кеша
	}

	if cached != nil {
		r.log.Debugw("Customer found in cache", "id", id)
		return *cached, nil
	}

	customer, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	if err := r.cache.CacheCustomer(ctx, customer); err != nil {
		r.log.Warnw("Failed to cache customer after read", "error", err, "id", id)
	}

	return customer, nil
}

// Create сохраняет клиента в БД и кеширует его
func (r *CachedCustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	created, err := r.repo.Create(ctx, customer)
	if err != nil {
		return domain.Customer{}, err
	}

	if err := r.cache.CacheCustomer(ctx, created); err != nil {
		r.log.Warnw("Failed to cache customer after creation", "error", err, "id", created.ID)
		// Продолжаем выполнение, несмотря на ошибку кеширования
	}

	return created, nil
}

// Update обновляет клиента в БД и инвалидирует кеш
func (r *CachedCustomerRepository) Update(ctx context.Context, customer domain.Customer) error {
	if err := r.repo.Update(ctx, customer); err != nil {
		return err
	}

	if err := r.cache.InvalidateCustomerCache(ctx, customer.ID); err != nil {
		r.log.Warnw("Failed to invalidate customer cache after update", "error", err, "id", customer.ID)
	}

	return nil
}

// Delete удаляет клиента из БД и из кеша
func (r *CachedCustomerRepository) Delete(ctx context.Context, id int) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := r.cache.InvalidateCustomerCache(ctx, id); err != nil {
		r.log.Warnw("Failed to invalidate customer cache after delete", "error", err, "id", id)
	}

	return nil
}

// GetCustomerOrderDetails отчетные выборки всегда идут в основное хранилище
func (r *CachedCustomerRepository) GetCustomerOrderDetails(ctx context.Context, id int) ([]domain.CustomerOrder, error) {
	return r.repo.GetCustomerOrderDetails(ctx, id)
}

// GetOrderPlacedCustomerDetails отчетные выборки всегда идут в основное хранилище
func (r *CachedCustomerRepository) GetOrderPlacedCustomerDetails(ctx context.Context) ([]domain.CustomerOrder, error) {
	return r.repo.GetOrderPlacedCustomerDetails(ctx)
}
