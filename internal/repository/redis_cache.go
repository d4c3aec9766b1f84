package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	// Префиксы ключей для различных типов данных
	customerKeyPrefix = "customer:"

	// TTL для кэша
	defaultCacheTTL = 15 * time.Minute
)

// RedisCacheRepository реализует кеширование для репозиториев с использованием Redis
type RedisCacheRepository struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisCacheRepository создает новый экземпляр Redis репозитория
func NewRedisCacheRepository(redisAddr, redisPassword string, redisDB int, log *logger.Logger) (*RedisCacheRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	// Проверяем соединение с Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorw("Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Infow("Connected to Redis successfully", "addr", redisAddr)
	return &RedisCacheRepository{
		client: client,
		log:    log,
	}, nil
}

// Close закрывает соединение с Redis
func (r *RedisCacheRepository) Close() error {
	return r.client.Close()
}

// CacheCustomer кеширует клиента в Redis
func (r *RedisCacheRepository) CacheCustomer(ctx context.Context, customer domain.Customer) error {
	key := customerKeyPrefix + strconv.Itoa(customer.ID)

	data, err := json.Marshal(customer)
	if err != nil {
		r.log.Errorw("Failed to marshal customer for caching", "error", err, "id", customer.ID)
		return fmt.Errorf("failed to marshal customer: %w", err)
	}

	if err := r.client.Set(ctx, key, data, defaultCacheTTL).Err(); err != nil {
		r.log.Errorw("Failed to cache customer in Redis", "error", err, "id", customer.ID)
		return fmt.Errorf("failed to cache customer: %w", err)
	}

	r.log.Debugw("Customer cached successfully", "id", customer.ID)
	return nil
}

// GetCachedCustomer получает клиента из кеша; (nil, nil) при промахе
func (r *RedisCacheRepository) GetCachedCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	key := customerKeyPrefix + strconv.Itoa(id)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		r.log.Errorw("Failed to get customer from Redis", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get cached customer: %w", err)
	}

	var customer domain.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		r.log.Errorw("Failed to unmarshal cached customer", "error", err, "id", id)
		return nil, fmt.Errorf("failed to unmarshal cached customer: %w", err)
	}

	return &customer, nil
}

// InvalidateCustomerCache удаляет клиента из кеша
func (r *RedisCacheRepository) InvalidateCustomerCache(ctx context.Context, id int) error {
	key := customerKeyPrefix + strconv.Itoa(id)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.log.Errorw("Failed to invalidate customer cache", "error", err, "id", id)
		return fmt.Errorf("failed to invalidate customer cache: %w", err)
	}

	return nil
}
