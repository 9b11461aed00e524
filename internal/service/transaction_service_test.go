package service

import (
	"context"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t)

	tx, err := env.transactions.Create(ctx, domain.TransactionCreate{
		CustomerID:  customer.ID,
		Amount:      decimal.RequireFromString("100.50"),
		Description: "Monthly payment",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), tx.ID)
	assert.Equal(t, customer.ID, tx.CustomerID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("100.50")))
}

func TestTransactionCreateNegativeAmount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t)

	// Списания передаются отрицательной суммой
	tx, err := env.transactions.Create(ctx, domain.TransactionCreate{
		CustomerID:  customer.ID,
		Amount:      decimal.RequireFromString("-25.00"),
		Description: "Refund",
	})
	require.NoError(t, err)
	assert.True(t, tx.Amount.IsNegative())
}

func TestTransactionCreateCustomerNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.transactions.Create(ctx, domain.TransactionCreate{
		CustomerID:  42,
		Amount:      decimal.NewFromInt(100),
		Description: "Monthly payment",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Customer with ID 42 not found")

	// Ничего не сохранено
	all, err := env.transactions.GetAll(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransactionGetAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t)

	for i := 0; i < 3; i++ {
		_, err := env.transactions.Create(ctx, domain.TransactionCreate{
			CustomerID:  customer.ID,
			Amount:      decimal.NewFromInt(int64(i + 1)),
			Description: "payment",
		})
		require.NoError(t, err)
	}

	all, err := env.transactions.GetAll(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[2].ID)
}
