package repository

import (
	"context"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepositoryCreate(t *testing.T) {
	repo := NewInMemoryTransactionRepository(newTestLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Transaction{
		CustomerID:  1,
		Amount:      decimal.RequireFromString("100.50"),
		Description: "Monthly payment",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("100.50")))
	assert.False(t, created.CreatedAt.IsZero())
}

func TestTransactionRepositoryGetByCustomer(t *testing.T) {
	repo := NewInMemoryTransactionRepository(newTestLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.Transaction{CustomerID: 1, Amount: decimal.NewFromInt(10), Description: "first"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Transaction{CustomerID: 2, Amount: decimal.NewFromInt(20), Description: "other"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Transaction{CustomerID: 1, Amount: decimal.NewFromInt(-5), Description: "refund"})
	require.NoError(t, err)

	transactions, err := repo.GetByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	// Порядок создания сохраняется
	assert.Equal(t, "first", transactions[0].Description)
	assert.Equal(t, "refund", transactions[1].Description)
}

func TestTransactionRepositoryGetAllPagination(t *testing.T) {
	repo := NewInMemoryTransactionRepository(newTestLogger())
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := repo.Create(ctx, domain.Transaction{
			CustomerID:  1,
			Amount:      decimal.NewFromInt(int64(i)),
			Description: "payment",
		})
		require.NoError(t, err)
	}

	page, err := repo.GetAll(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(11), page[0].ID)
}

func TestTransactionRepositoryDeleteByCustomer(t *testing.T) {
	repo := NewInMemoryTransactionRepository(newTestLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.Transaction{CustomerID: 1, Amount: decimal.NewFromInt(10), Description: "keep out"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Transaction{CustomerID: 2, Amount: decimal.NewFromInt(20), Description: "keep"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByCustomer(ctx, 1))

	all, err := repo.GetAll(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].CustomerID)
}
