package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/jmoiron/sqlx"
)

type postgresOrderRepository struct {
	db  *sqlx.DB
	log *logger.Logger
}

// NewOrderRepository создает репозиторий заказов на PostgreSQL
func NewOrderRepository(db *sqlx.DB, log *logger.Logger) repository.OrderRepository {
	return &postgresOrderRepository{
		db:  db,
		log: log,
	}
}

func (r *postgresOrderRepository) GetAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, product_name, amount, customer_id
		FROM orders
	`

	orders := make([]domain.Order, 0)
	if err := r.db.SelectContext(ctx, &orders, query); err != nil {
		r.log.Errorw("Failed to get orders", "error", err)
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

func (r *postgresOrderRepository) GetByID(ctx context.Context, id int) (domain.Order, error) {
	var order domain.Order

	query := `
		SELECT id, product_name, amount, customer_id
		FROM orders
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, repository.ErrNotFound
		}

		r.log.Errorw("Failed to get order by ID", "error", err, "id", id)
		return domain.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (r *postgresOrderRepository) GetByCustomerID(ctx context.Context, customerID int) ([]domain.Order, error) {
	query := `
		SELECT id, product_name, amount, customer_id
		FROM orders
		WHERE customer_id = $1
	`

	orders := make([]domain.Order, 0)
	if err := r.db.SelectContext(ctx, &orders, query, customerID); err != nil {
		r.log.Errorw("Failed to get orders by customer", "error", err, "customerID", customerID)
		return nil, fmt.Errorf("failed to get orders by customer: %w", err)
	}

	return orders, nil
}

func (r *postgresOrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	query := `
		INSERT INTO orders (product_name, amount, customer_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		order.ProductName,
		order.Amount,
		order.CustomerID,
	).Scan(&order.ID)

	if err != nil {
		r.log.Errorw("Failed to create order", "error", err, "customerID", order.CustomerID)
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (r *postgresOrderRepository) Update(ctx context.Context, order domain.Order) error {
	query := `
		UPDATE orders
		SET product_name = $1, amount = $2, customer_id = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		order.ProductName,
		order.Amount,
		order.CustomerID,
		order.ID,
	)

	if err != nil {
		r.log.Errorw("Failed to update order", "error", err, "id", order.ID)
		return fmt.Errorf("failed to update order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *postgresOrderRepository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM orders
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.log.Errorw("Failed to delete order", "error", err, "id", id)
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

func (r *postgresOrderRepository) GetLastByID(ctx context.Context, id int) (domain.Order, error) {
	// Исходный метод GetLastOrderById — обычный поиск по идентификатору заказа
	return r.GetByID(ctx, id)
}
