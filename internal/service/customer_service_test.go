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

func newCustomerService(t *testing.T) (CustomerService, *repository.InMemoryCustomerRepository) {
	t.Helper()
	log := logger.New(logger.ERROR)
	orders := repository.NewInMemoryOrderRepository(log)
	repo := repository.NewInMemoryCustomerRepository(orders, log)
	return NewCustomerService(repo, producer.NoOpEventProducer{}, log), repo
}

func TestCustomerServiceCreateAndGetByID(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerRequest{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestCustomerServiceCreateRejectsInvalidEmail(t *testing.T) {
	svc, repo := newCustomerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CustomerRequest{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "not-an-email",
	})
	require.ErrorIs(t, err, repository.ErrInvalidData)

	// Невалидный запрос не должен попадать в хранилище
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestCustomerServiceCreateRejectsMissingNames(t *testing.T) {
	svc, _ := newCustomerService(t)

	_, err := svc.Create(context.Background(), domain.CustomerRequest{
		Email: "john@example.com",
	})
	require.ErrorIs(t, err, repository.ErrInvalidData)
}

func TestCustomerServiceUpdateNotFound(t *testing.T) {
	svc, _ := newCustomerService(t)

	_, err := svc.Update(context.Background(), 5, domain.CustomerRequest{
		ID:        5,
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCustomerServicePatchOnlySetsProvidedFields(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerRequest{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
	})
	require.NoError(t, err)

	email := "new@example.com"
	patched, err := svc.Patch(ctx, created.ID, domain.CustomerPatch{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "John", patched.FirstName)
	require.Equal(t, "Smith", patched.LastName)
	require.Equal(t, "new@example.com", patched.Email)
}

func TestCustomerServicePatchNotFound(t *testing.T) {
	svc, _ := newCustomerService(t)

	first := "Jane"
	_, err := svc.Patch(context.Background(), 77, domain.CustomerPatch{FirstName: &first})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCustomerServiceDeleteIsIdempotent(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))
}
