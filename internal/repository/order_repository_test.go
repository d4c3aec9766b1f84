package repository

import (
	"context"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestOrderCreateAndGetByID(t *testing.T) {
	orders := NewInMemoryOrderRepository(logger.New(logger.ERROR))
	ctx := context.Background()

	created, err := orders.Create(ctx, domain.Order{ProductName: "Laptop", Amount: 999.99, CustomerID: 1})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := orders.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestOrderGetByIDNotFound(t *testing.T) {
	orders := NewInMemoryOrderRepository(logger.New(logger.ERROR))

	_, err := orders.GetByID(context.Background(), 7)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderUpdate(t *testing.T) {
	orders := NewInMemoryOrderRepository(logger.New(logger.ERROR))
	ctx := context.Background()

	created, err := orders.Create(ctx, domain.Order{ProductName: "Mouse", Amount: 25, CustomerID: 1})
	require.NoError(t, err)

	created.Amount = 30
	require.NoError(t, orders.Update(ctx, created))

	got, err := orders.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, float64(30), got.Amount)
}

func TestOrderDelete(t *testing.T) {
	orders := NewInMemoryOrderRepository(logger.New(logger.ERROR))
	ctx := context.Background()

	created, err := orders.Create(ctx, domain.Order{ProductName: "Desk", Amount: 120, CustomerID: 2})
	require.NoError(t, err)

	require.NoError(t, orders.Delete(ctx, created.ID))

	_, err = orders.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderGetByCustomerID(t *testing.T) {
	orders := NewInMemoryOrderRepository(logger.New(logger.ERROR))
	ctx := context.Background()

	_, err := orders.Create(ctx, domain.Order{ProductName: "Desk", Amount: 120, CustomerID: 1})
	require.NoError(t, err)
	_, err = orders.Create(ctx, domain.Order{ProductName: "Chair", Amount: 80, CustomerID: 1})
	require.NoError(t, err)
	_, err = orders.Create(ctx, domain.Order{ProductName: "Lamp", Amount: 40, CustomerID: 2})
	require.NoError(t, err)

	list, err := orders.GetByCustomerID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Для клиента без заказов возвращается пустой список, а не ошибка
	empty, err := orders.GetByCustomerID(ctx, 99)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestOrderGetLastByIDMatchesGetByID(t *testing.T) {
	orders := NewInMemoryOrderRepository(logger.New(logger.ERROR))
	ctx := context.Background()

	created, err := orders.Create(ctx, domain.Order{ProductName: "Monitor", Amount: 300, CustomerID: 3})
	require.NoError(t, err)

	byID, err := orders.GetByID(ctx, created.ID)
	require.NoError(t, err)
	last, err := orders.GetLastByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, byID, last)

	_, err = orders.GetLastByID(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
}
