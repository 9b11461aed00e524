package repository

import (
	"context"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepositoryCreateAllowsDuplicates(t *testing.T) {
	repo := NewInMemorySubscriptionRepository(newTestLogger())
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.CustomerPlan{
		CustomerID: 1,
		PlanID:     1,
		Status:     domain.SubscriptionStatusActive,
	})
	require.NoError(t, err)

	second, err := repo.Create(ctx, domain.CustomerPlan{
		CustomerID: 1,
		PlanID:     1,
		Status:     domain.SubscriptionStatusActive,
	})
	require.NoError(t, err)

	// Повторная подписка дает отдельную запись
	assert.NotEqual(t, first.ID, second.ID)

	links, err := repo.GetByCustomerAndStatus(ctx, 1, domain.SubscriptionStatusActive)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestSubscriptionRepositoryFilterByStatus(t *testing.T) {
	repo := NewInMemorySubscriptionRepository(newTestLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CustomerPlan{CustomerID: 1, PlanID: 1, Status: domain.SubscriptionStatusActive})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.CustomerPlan{CustomerID: 1, PlanID: 2, Status: domain.SubscriptionStatusInactive})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.CustomerPlan{CustomerID: 2, PlanID: 1, Status: domain.SubscriptionStatusActive})
	require.NoError(t, err)

	active, err := repo.GetByCustomerAndStatus(ctx, 1, domain.SubscriptionStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int64(1), active[0].PlanID)

	inactive, err := repo.GetByCustomerAndStatus(ctx, 1, domain.SubscriptionStatusInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, int64(2), inactive[0].PlanID)
}

func TestSubscriptionRepositoryDeleteByCustomer(t *testing.T) {
	repo := NewInMemorySubscriptionRepository(newTestLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CustomerPlan{CustomerID: 1, PlanID: 1, Status: domain.SubscriptionStatusActive})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.CustomerPlan{CustomerID: 2, PlanID: 1, Status: domain.SubscriptionStatusActive})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByCustomer(ctx, 1))

	gone, err := repo.GetByCustomerAndStatus(ctx, 1, domain.SubscriptionStatusActive)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := repo.GetByCustomerAndStatus(ctx, 2, domain.SubscriptionStatusActive)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
