package service

import (
	"context"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/kafka/producer"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (OrderService, *repository.InMemoryCustomerRepository, *repository.InMemoryOrderRepository) {
	t.Helper()
	log := logger.New(logger.ERROR)
	orders := repository.NewInMemoryOrderRepository(log)
	customers := repository.NewInMemoryCustomerRepository(orders, log)
	svc := NewOrderService(orders, customers, producer.NoOpEventProducer{}, log)
	return svc, customers, orders
}

func TestOrderServiceCreateRequiresExistingCustomer(t *testing.T) {
	svc, _, orders := newOrderService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.OrderRequest{
		ProductName: "Laptop",
		Amount:      999,
		CustomerID:  123,
	})
	require.ErrorIs(t, err, ErrCustomerNotFound)

	// Отклоненный заказ не попадает в хранилище
	all, err := orders.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestOrderServiceCreate(t *testing.T) {
	svc, customers, _ := newOrderService(t)
	ctx := context.Background()

	customer, err := customers.Create(ctx, domain.Customer{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
	})
	require.NoError(t, err)

	created, err := svc.Create(ctx, domain.OrderRequest{
		ProductName: "Laptop",
		Amount:      999,
		CustomerID:  customer.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, customer.ID, created.CustomerID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestOrderServiceUpdateNotFound(t *testing.T) {
	svc, _, _ := newOrderService(t)

	_, err := svc.Update(context.Background(), 9, domain.OrderRequest{
		ID:          9,
		ProductName: "Chair",
		Amount:      50,
		CustomerID:  1,
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderServiceGetLastByID(t *testing.T) {
	svc, customers, _ := newOrderService(t)
	ctx := context.Background()

	customer, err := customers.Create(ctx, domain.Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)

	created, err := svc.Create(ctx, domain.OrderRequest{
		ProductName: "Monitor",
		Amount:      250,
		CustomerID:  customer.ID,
	})
	require.NoError(t, err)

	last, err := svc.GetLastByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, last)

	_, err = svc.GetLastByID(ctx, 999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
