package service

import (
	"context"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) createPlan(t *testing.T, name string) domain.Plan {
	t.Helper()

	plan, err := e.plans.Create(context.Background(), domain.PlanCreate{
		Name:        name,
		Price:       decimal.RequireFromString("9.99"),
		Description: "Pro features",
	})
	require.NoError(t, err)
	return plan
}

func TestSubscribe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t)
	plan := env.createPlan(t, "Pro")

	link, err := env.subscriptions.Subscribe(ctx, customer.ID, plan.ID, domain.SubscriptionStatusActive)
	require.NoError(t, err)

	assert.Equal(t, customer.ID, link.CustomerID)
	assert.Equal(t, plan.ID, link.PlanID)
	assert.Equal(t, domain.SubscriptionStatusActive, link.Status)
}

func TestSubscribeCustomerNotFound(t *testing.T) {
	env := newTestEnv(t)
	plan := env.createPlan(t, "Pro")

	_, err := env.subscriptions.Subscribe(context.Background(), 42, plan.ID, domain.SubscriptionStatusActive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Customer with ID 42 not found")
}

func TestSubscribePlanNotFound(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)

	_, err := env.subscriptions.Subscribe(context.Background(), customer.ID, 42, domain.SubscriptionStatusActive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Plan with ID 42 not found")
}

func TestSubscribeDuplicateAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t)
	plan := env.createPlan(t, "Pro")

	first, err := env.subscriptions.Subscribe(ctx, customer.ID, plan.ID, domain.SubscriptionStatusActive)
	require.NoError(t, err)

	second, err := env.subscriptions.Subscribe(ctx, customer.ID, plan.ID, domain.SubscriptionStatusActive)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestListCustomerPlansFiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t)
	pro := env.createPlan(t, "Pro")
	basic := env.createPlan(t, "Basic")

	_, err := env.subscriptions.Subscribe(ctx, customer.ID, pro.ID, domain.SubscriptionStatusActive)
	require.NoError(t, err)
	_, err = env.subscriptions.Subscribe(ctx, customer.ID, basic.ID, domain.SubscriptionStatusInactive)
	require.NoError(t, err)

	active, err := env.subscriptions.ListCustomerPlans(ctx, customer.ID, domain.SubscriptionStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Pro", active[0].Name)

	inactive, err := env.subscriptions.ListCustomerPlans(ctx, customer.ID, domain.SubscriptionStatusInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Basic", inactive[0].Name)
}

func TestListCustomerPlansEmptyWithoutSubscriptions(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)

	plans, err := env.subscriptions.ListCustomerPlans(context.Background(), customer.ID, domain.SubscriptionStatusActive)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestListCustomerPlansCustomerNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.subscriptions.ListCustomerPlans(context.Background(), 42, domain.SubscriptionStatusActive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
