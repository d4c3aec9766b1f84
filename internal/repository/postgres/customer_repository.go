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

type postgresCustomerRepository struct {
	db  *sqlx.DB
	log *logger.Logger
}

// NewCustomerRepository создает репозиторий клиентов на PostgreSQL
func NewCustomerRepository(db *sqlx.DB, log *logger.Logger) repository.CustomerRepository {
	return &postgresCustomerRepository{
		db:  db,
		log: log,
	}
}

func (r *postgresCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM customers
	`

	customers := make([]domain.Customer, 0)
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		r.log.Errorw("Failed to get customers", "error", err)
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

func (r *postgresCustomerRepository) GetByID(ctx context.Context, id int) (domain.Customer, error) {
	var customer domain.Customer

	query := `
		SELECT id, first_name, last_name, email
		FROM customers
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, repository.ErrNotFound
		}

		r.log.Errorw("Failed to get customer by ID", "error", err, "id", id)
		return domain.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	query := `
		INSERT INTO customers (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
	).Scan(&customer.ID)

	if err != nil {
		r.log.Errorw("Failed to create customer", "error", err, "email", customer.Email)
		return domain.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (r *postgresCustomerRepository) Update(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.ID,
	)

	if err != nil {
		r.log.Errorw("Failed to update customer", "error", err, "id", customer.ID)
		return fmt.Errorf("failed to update customer: %w", err)
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

func (r *postgresCustomerRepository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM customers
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.log.Errorw("Failed to delete customer", "error", err, "id", id)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}

func (r *postgresCustomerRepository) GetCustomerOrderDetails(ctx context.Context, id int) ([]domain.CustomerOrder, error) {
	// Параметр id не участвует в выборке, соединение строится по всем клиентам
	query := `
		SELECT c.first_name || ' ' || c.last_name AS customer_name,
		       o.product_name AS product,
		       o.amount AS price
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		WHERE o.amount > 50
		ORDER BY c.last_name
	`

	details := make([]domain.CustomerOrder, 0)
	if err := r.db.SelectContext(ctx, &details, query); err != nil {
		r.log.Errorw("Failed to get customer order details", "error", err)
		return nil, fmt.Errorf("failed to get customer order details: %w", err)
	}

	for _, item := range details {
		r.log.Info("%s bought %s for $%v", item.CustomerName, item.Product, item.Price)
	}

	return details, nil
}

func (r *postgresCustomerRepository) GetOrderPlacedCustomerDetails(ctx context.Context) ([]domain.CustomerOrder, error) {
	query := `
		SELECT c.first_name || ' ' || c.last_name AS customer_name
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.first_name, c.last_name
	`

	details := make([]domain.CustomerOrder, 0)
	if err := r.db.SelectContext(ctx, &details, query); err != nil {
		r.log.Errorw("Failed to get order placed customer details", "error", err)
		return nil, fmt.Errorf("failed to get order placed customer details: %w", err)
	}

	return details, nil
}
