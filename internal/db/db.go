package db

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Схема создается при старте, если таблиц еще нет
const schema = `
CREATE TABLE IF NOT EXISTS customers (
    id         SERIAL PRIMARY KEY,
    first_name VARCHAR(50)  NOT NULL,
    last_name  VARCHAR(50)  NOT NULL,
    email      VARCHAR(100) NOT NULL
);

-- customer_id без внешнего ключа: удаление клиента оставляет его заказы
CREATE TABLE IF NOT EXISTS orders (
    id           SERIAL PRIMARY KEY,
    product_name TEXT           NOT NULL,
    amount       NUMERIC(12, 2) NOT NULL,
    customer_id  INTEGER        NOT NULL
);
`

// DBClient представляет клиент для работы с базой данных.
type DBClient struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewDBClient создает новый экземпляр DBClient.
// Первичное подключение повторяется с экспоненциальной задержкой,
// чтобы пережить старт базы данных рядом с сервисом.
func NewDBClient(ctx context.Context, dsn string, log *zap.Logger) (*DBClient, error) {
	var db *sqlx.DB

	connect := func() error {
		var err error
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			log.Warn("Database not ready, retrying", zap.Error(err))
			return err
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(connect, backoff.WithContext(policy, ctx)); err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		log.Error("Failed to ping database", zap.Error(err))
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DBClient{db: db, log: log}, nil
}

// DB возвращает низкоуровневое соединение sqlx
func (dc *DBClient) DB() *sqlx.DB {
	return dc.db
}

// EnsureSchema создает таблицы customers и orders, если их еще нет
func (dc *DBClient) EnsureSchema(ctx context.Context) error {
	if _, err := dc.db.ExecContext(ctx, schema); err != nil {
		dc.log.Error("Failed to ensure database schema", zap.Error(err))
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}

	dc.log.Debug("Database schema ensured")
	return nil
}

// Close закрывает соединение с базой данных.
func (dc *DBClient) Close() error {
	err := dc.db.Close()
	if err != nil {
		dc.log.Error("Failed to close database connection", zap.Error(err))
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
