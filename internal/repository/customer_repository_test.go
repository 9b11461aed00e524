package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.ERROR)
}

func TestCustomerRepositoryCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewInMemoryCustomerRepository(newTestLogger())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		created, err := repo.Create(ctx, domain.Customer{
			Name:  fmt.Sprintf("Customer %d", i),
			Email: fmt.Sprintf("customer%d@example.com", i),
			Age:   20 + i,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i), created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	}
}

func TestCustomerRepositoryGetAllInsertionOrder(t *testing.T) {
	repo := NewInMemoryCustomerRepository(newTestLogger())
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, domain.Customer{
			Name:  fmt.Sprintf("Customer %d", i),
			Email: fmt.Sprintf("customer%d@example.com", i),
			Age:   30,
		})
		require.NoError(t, err)
	}

	customers, err := repo.GetAll(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, customers, 5)

	for i, customer := range customers {
		assert.Equal(t, int64(i+1), customer.ID)
	}
}

func TestCustomerRepositoryGetAllPagination(t *testing.T) {
	repo := NewInMemoryCustomerRepository(newTestLogger())
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		_, err := repo.Create(ctx, domain.Customer{
			Name:  fmt.Sprintf("Customer %d", i),
			Email: fmt.Sprintf("customer%d@example.com", i),
			Age:   30,
		})
		require.NoError(t, err)
	}

	// Вторая страница с хвостом короче limit
	customers, err := repo.GetAll(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, customers, 5)
	assert.Equal(t, int64(11), customers[0].ID)
	assert.Equal(t, int64(15), customers[4].ID)

	// skip за пределами данных дает пустой список
	customers, err = repo.GetAll(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, customers)

	// limit=0 дает пустой список
	customers, err = repo.GetAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomerRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewInMemoryCustomerRepository(newTestLogger())

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerRepositoryUpdate(t *testing.T) {
	repo := NewInMemoryCustomerRepository(newTestLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Customer{
		Name:  "John Doe",
		Email: "john@example.com",
		Age:   30,
	})
	require.NoError(t, err)

	created.Name = "Jane Doe"
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestCustomerRepositoryUpdateNotFound(t *testing.T) {
	repo := NewInMemoryCustomerRepository(newTestLogger())

	err := repo.Update(context.Background(), domain.Customer{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerRepositoryDelete(t *testing.T) {
	repo := NewInMemoryCustomerRepository(newTestLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Customer{
		Name:  "John Doe",
		Email: "john@example.com",
		Age:   30,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
}

func TestCustomerRepositoryIDsNotReusedAfterDelete(t *testing.T) {
	repo := NewInMemoryCustomerRepository(newTestLogger())
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.Customer{Name: "First", Email: "first@example.com", Age: 30})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second, err := repo.Create(ctx, domain.Customer{Name: "Second", Email: "second@example.com", Age: 30})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}
